// Package lang resolves the display language for a request. The site is
// bilingual English/Japanese; anything that is not recognizably Japanese
// falls back to English.
package lang

import (
	"net/http"
	"strings"
)

// Lang is a two-letter display language code.
type Lang string

const (
	EN Lang = "en"
	JA Lang = "ja"
)

// Other returns the opposite display language, used for bilingual fallback.
func (l Lang) Other() Lang {
	if l == JA {
		return EN
	}
	return JA
}

// Normalize maps a user-supplied language value to a supported Lang.
// Matching is case-insensitive on the prefix, so "ja-JP" and "en-US" work.
// Unknown or empty values return ("", false).
func Normalize(value string) (Lang, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "ja"):
		return JA, true
	case strings.HasPrefix(v, "en"):
		return EN, true
	default:
		return "", false
	}
}

// FromRequest resolves the display language for an HTTP request.
// Precedence: explicit lang query parameter, then an Accept-Language header
// mentioning Japanese, then English.
func FromRequest(r *http.Request) Lang {
	if l, ok := Normalize(r.URL.Query().Get("lang")); ok {
		return l
	}
	if strings.Contains(strings.ToLower(r.Header.Get("Accept-Language")), "ja") {
		return JA
	}
	return EN
}
