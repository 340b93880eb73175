package projection

import (
	"fmt"
	"strings"

	"github.com/ymori/portfolio-server/internal/fields"
	"github.com/ymori/portfolio-server/internal/urlsafe"
)

// knownLinkFields are single-purpose profile URL fields with fixed labels.
// They are resolved first and prepended to the generic list, so a known-field
// entry always wins over a duplicate discovered in the generic list.
var knownLinkFields = []struct {
	label string
	keys  []string
}{
	{"GitHub", []string{"github", "github_url", "githubUrl", "github_link"}},
	{"LinkedIn", []string{"linkedin", "linkedin_url", "linkedinUrl"}},
	{"X", []string{"twitter", "twitter_url", "twitterUrl", "x", "x_url", "xUrl"}},
	{"Website", []string{"website", "website_url", "websiteUrl", "homepage"}},
	{"Blog", []string{"blog", "blog_url", "blogUrl"}},
	{"YouTube", []string{"youtube", "youtube_url", "youtubeUrl"}},
}

// genericLinkKeys hold free-form link collections: native lists or strings
// split on newlines/commas, entries either "label|url" or bare URLs.
var genericLinkKeys = []string{"profile_links", "profileLinks", "links", "sameAs", "same_as"}

// ParseProfileLinks resolves all profile links from a site document:
// known single-purpose fields first, then the generic collection, URL-gated
// and deduplicated by URL with first occurrence winning.
func ParseProfileLinks(record map[string]any) []ProfileLink {
	var links []ProfileLink

	for _, field := range knownLinkFields {
		raw := fields.ToScalar(fields.Resolve(record, field.keys...))
		if url, ok := urlsafe.SafeURL(raw); ok {
			links = append(links, ProfileLink{Label: field.label, URL: url})
		}
	}

	entries := linkEntries(fields.Resolve(record, genericLinkKeys...))
	for i, entry := range entries {
		label, urlPart, found := strings.Cut(entry, "|")
		if !found {
			urlPart = entry
			label = ""
		}
		label = strings.TrimSpace(label)
		if label == "" {
			// Position in the pre-filter entry list, 1-indexed.
			label = fmt.Sprintf("Profile %d", i+1)
		}
		if url, ok := urlsafe.SafeURL(urlPart); ok {
			links = append(links, ProfileLink{Label: label, URL: url})
		}
	}

	return dedupeByURL(links)
}

// linkEntries normalizes the generic collection into trimmed entries,
// preserving scan order. Strings split on newlines or commas.
func linkEntries(value any) []string {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []any:
		entries := make([]string, 0, len(v))
		for _, item := range v {
			if entry := fields.ToScalar(item); entry != "" {
				entries = append(entries, entry)
			}
		}
		return entries
	case []string:
		entries := make([]string, 0, len(v))
		for _, item := range v {
			if entry := strings.TrimSpace(item); entry != "" {
				entries = append(entries, entry)
			}
		}
		return entries
	default:
		text := fields.ToScalar(value)
		if text == "" {
			return nil
		}
		parts := strings.FieldsFunc(text, func(r rune) bool {
			return r == '\n' || r == ','
		})
		entries := make([]string, 0, len(parts))
		for _, part := range parts {
			if entry := strings.TrimSpace(part); entry != "" {
				entries = append(entries, entry)
			}
		}
		return entries
	}
}

// dedupeByURL drops later occurrences of a URL, preserving scan order.
func dedupeByURL(links []ProfileLink) []ProfileLink {
	if len(links) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(links))
	out := make([]ProfileLink, 0, len(links))
	for _, link := range links {
		if seen[link.URL] {
			continue
		}
		seen[link.URL] = true
		out = append(out, link)
	}
	return out
}
