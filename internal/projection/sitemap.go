package projection

import (
	"strings"
	"time"
)

// pageTimestampKeys are the explicit "updated" fields an authored page
// document may carry on top of its storage-level update time.
var pageTimestampKeys = []string{"updated", "updated_at", "updatedAt"}

// TimestampedDoc pairs a raw document with its storage-level update time.
// A missing document is the zero value.
type TimestampedDoc struct {
	Data      map[string]any
	UpdatedAt time.Time
}

// PageDocs collects everything the sitemap draws from.
type PageDocs struct {
	Home     TimestampedDoc
	About    TimestampedDoc
	Contact  TimestampedDoc
	Resume   TimestampedDoc
	Projects []ProjectProjection
}

// AlternateLink is an hreflang alternate emitted as an xhtml:link child.
type AlternateLink struct {
	Hreflang string
	Href     string
}

// SitemapEntry is one <url> element of the sitemap.
type SitemapEntry struct {
	Location   string
	LastMod    string // ISO 8601 date, no time
	Alternates []AlternateLink
	ImageURLs  []string
}

// SitemapEntries builds the sitemap entry list: one entry per static route
// plus one per project. lastmod for each entry is the most recent parsable
// timestamp source; when none is available it falls back to the generation
// date.
func SitemapEntries(baseURL string, docs PageDocs, now time.Time) []SitemapEntry {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")

	resumeLastMod := isoDate(pageLastMod(docs.Resume), now)

	entries := []SitemapEntry{
		{Location: base + "/", LastMod: isoDate(pageLastMod(docs.Home), now)},
		{Location: base + "/about", LastMod: isoDate(pageLastMod(docs.About), now)},
		{Location: base + "/projects", LastMod: isoDate(latestProject(docs.Projects), now)},
		{Location: base + "/contact", LastMod: isoDate(pageLastMod(docs.Contact), now)},
		{
			Location: base + "/resume",
			LastMod:  resumeLastMod,
			Alternates: []AlternateLink{
				{Hreflang: "en", Href: base + "/resume?lang=en"},
				{Hreflang: "ja", Href: base + "/resume?lang=ja"},
				{Hreflang: "x-default", Href: base + "/resume"},
			},
		},
		{Location: base + "/resume.pdf", LastMod: resumeLastMod},
	}

	for _, project := range docs.Projects {
		entry := SitemapEntry{
			Location: base + "/projects/" + project.ID,
			LastMod:  isoDate(project.LastModified, now),
		}
		if project.CoverImageURL != "" {
			entry.ImageURLs = []string{project.CoverImageURL}
		}
		entries = append(entries, entry)
	}

	return entries
}

func pageLastMod(doc TimestampedDoc) time.Time {
	return latestTimestamp(doc.Data, doc.UpdatedAt, pageTimestampKeys...)
}

func latestProject(projects []ProjectProjection) time.Time {
	var latest time.Time
	for _, project := range projects {
		if project.LastModified.After(latest) {
			latest = project.LastModified
		}
	}
	return latest
}

func isoDate(t time.Time, fallback time.Time) string {
	if t.IsZero() {
		t = fallback
	}
	return t.UTC().Format("2006-01-02")
}
