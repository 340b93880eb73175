// Package urlsafe validates and canonicalizes URLs before they reach rendered
// output, and resolves the site origin used for canonical links and sitemaps.
package urlsafe

import (
	"net/url"
	"strings"
)

// DefaultOrigin is the production origin used when neither configuration nor
// request headers yield a usable origin.
const DefaultOrigin = "https://ymori.dev"

// SafeURL canonicalizes a candidate URL. A missing scheme defaults to https.
// Returns ("", false) when the value does not parse or the scheme is not
// http/https; callers treat that the same as an absent field.
func SafeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	if parsed.Host == "" {
		return "", false
	}
	return parsed.String(), true
}

// placeholderSuffixes are template-leftover domains that must never become the
// canonical site origin. They are still fine as ordinary profile links.
var placeholderSuffixes = []string{"example.com", "example.org", "example.net"}

func isPlaceholderHost(host string) bool {
	host = strings.ToLower(host)
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}
	if strings.Contains(host, "your-domain") || strings.Contains(host, "yourdomain") {
		return true
	}
	for _, suffix := range placeholderSuffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}

// ResolveOrigin picks the site origin for canonical URLs. Precedence:
// explicitly configured value (validated and placeholder-rejecting), then the
// forwarded host, then the request host, then DefaultOrigin. Origins derived
// from a live request's Host headers are never placeholder-checked.
func ResolveOrigin(configured, host, forwardedHost, forwardedProto string) string {
	if configured != "" {
		if canonical, ok := SafeURL(configured); ok {
			parsed, err := url.Parse(canonical)
			if err == nil && !isPlaceholderHost(parsed.Host) {
				return parsed.Scheme + "://" + parsed.Host
			}
		}
	}
	proto := requestProto(forwardedProto)
	if h := strings.TrimSpace(forwardedHost); h != "" {
		return proto + "://" + h
	}
	if h := strings.TrimSpace(host); h != "" {
		return proto + "://" + h
	}
	return DefaultOrigin
}

// requestProto interprets an x-forwarded-proto header value. Only an explicit
// leading "http" downgrades; anything else stays https.
func requestProto(forwardedProto string) string {
	first, _, _ := strings.Cut(forwardedProto, ",")
	if strings.ToLower(strings.TrimSpace(first)) == "http" {
		return "http"
	}
	return "https"
}
