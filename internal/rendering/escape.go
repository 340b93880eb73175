// Package rendering builds the server-rendered output documents: the résumé
// HTML page, the sitemap XML feed, and robots.txt. Markup is assembled with
// escaping-aware builders; interpolated values always pass through exactly
// one of the escapers below, never raw concatenation.
package rendering

import "strings"

// EscapeHTML escapes text for interpolation into HTML content or attribute
// values. Covered characters: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeXML escapes text for interpolation into XML content or attribute
// values. Same character set as HTML, with ' as &apos;.
func EscapeXML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&apos;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
