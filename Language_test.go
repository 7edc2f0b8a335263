package webapp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ljpx/test"
)

func TestResolveLanguage(t *testing.T) {
	testCases := []struct {
		target   string
		accept   string
		expected string
	}{
		{target: "/", expected: "en"},
		{target: "/", accept: "de", expected: "de"},
		{target: "/", accept: "pt-BR,pt;q=0.8,en;q=0.5", expected: "pt"},
		{target: "/", accept: "en;q=0.2, ja", expected: "ja"},
		{target: "/", accept: "*", expected: "en"},
		{target: "/", accept: "*, fr;q=0.5", expected: "fr"},
		{target: "/?lang=mul", accept: "it", expected: "it"},
		{target: "/?lang=und", expected: "en"},
		{target: "/", accept: ";;;", expected: "en"},
		{target: "/?lang=es-MX", accept: "de", expected: "es"},
		{target: "/?lang=%21%21", accept: "de", expected: "de"},
	}

	for _, testCase := range testCases {
		// Arrange.
		r := httptest.NewRequest(http.MethodGet, testCase.target, nil)
		if testCase.accept != "" {
			r.Header.Set("Accept-Language", testCase.accept)
		}

		// Act.
		lang := ResolveLanguage(r, "en")

		// Assert.
		test.That(t, lang).IsEqualTo(testCase.expected)
	}
}

func TestResolveLanguageWithoutRequest(t *testing.T) {
	// Act and Assert.
	test.That(t, ResolveLanguage(nil, "fr")).IsEqualTo("fr")
}
