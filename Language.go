package webapp

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LanguageQueryParameter is the query parameter that overrides the
// Accept-Language header.
const LanguageQueryParameter = "lang"

// anyLanguage is the base of the tag the Accept-Language wildcard "*" parses
// to.
var anyLanguage = language.MustParseBase("mul")

// ResolveLanguage determines the base language code (e.g. "de" for "de-AT")
// the client asked for.  The lang query parameter takes precedence over the
// Accept-Language header; fallback is returned when neither is usable.
func ResolveLanguage(r *http.Request, fallback string) string {
	if r == nil {
		return fallback
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LanguageQueryParameter)); value != "" {
		if tag, err := language.Parse(value); err == nil && isSpecificLanguage(tag) {
			return baseLanguage(tag)
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil {
			for _, tag := range tags {
				if isSpecificLanguage(tag) {
					return baseLanguage(tag)
				}
			}
		}
	}

	return fallback
}

// isSpecificLanguage rejects "und" and the "*" wildcard.  Base infers a
// language for "und", so it is compared as a whole tag.
func isSpecificLanguage(tag language.Tag) bool {
	if tag == language.Und {
		return false
	}

	base, _ := tag.Base()
	return base != anyLanguage
}

func baseLanguage(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
