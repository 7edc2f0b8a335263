package webapp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var byteSizeUnits = []string{"B", "kB", "MB", "GB", "TB"}

// ByteSizeToFriendlyString formats a byte count with binary multiples, e.g.
// 1536 is "1.50 kB".
func ByteSizeToFriendlyString(length int64) string {
	size, unit := float64(length), 0
	for ; size >= 1024 && unit < len(byteSizeUnits)-1; unit++ {
		size /= 1024
	}

	return fmt.Sprintf("%.2f %v", size, byteSizeUnits[unit])
}

// UnmarshalFromResponse decodes the JSON body of res into model, typically a
// problem.Details written by Context.Error.
func UnmarshalFromResponse(res *http.Response, model interface{}) error {
	defer res.Body.Close()

	return json.NewDecoder(res.Body).Decode(model)
}
