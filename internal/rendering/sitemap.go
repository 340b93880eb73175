package rendering

import (
	"strings"

	"github.com/ymori/portfolio-server/internal/projection"
)

// Sitemap renders the sitemap XML feed from prepared entries. The root
// urlset declares the sitemap, xhtml and image namespaces; all text content
// is XML-escaped.
func Sitemap(entries []projection.SitemapEntry) string {
	var b strings.Builder
	b.Grow(512 + len(entries)*256)

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"` +
		` xmlns:xhtml="http://www.w3.org/1999/xhtml"` +
		` xmlns:image="http://www.google.com/schemas/sitemap-image/1.1">` + "\n")

	for _, entry := range entries {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + EscapeXML(entry.Location) + "</loc>\n")
		if entry.LastMod != "" {
			b.WriteString("    <lastmod>" + EscapeXML(entry.LastMod) + "</lastmod>\n")
		}
		for _, alt := range entry.Alternates {
			b.WriteString(`    <xhtml:link rel="alternate" hreflang="` + EscapeXML(alt.Hreflang) +
				`" href="` + EscapeXML(alt.Href) + `"/>` + "\n")
		}
		for _, image := range entry.ImageURLs {
			b.WriteString("    <image:image>\n")
			b.WriteString("      <image:loc>" + EscapeXML(image) + "</image:loc>\n")
			b.WriteString("    </image:image>\n")
		}
		b.WriteString("  </url>\n")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(origin string) string {
	base := strings.TrimRight(strings.TrimSpace(origin), "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + base + "/sitemap.xml\n")
	return b.String()
}
