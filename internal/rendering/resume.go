package rendering

import (
	"encoding/json"
	"strings"

	"github.com/ymori/portfolio-server/internal/lang"
	"github.com/ymori/portfolio-server/internal/projection"
)

// robotsMeta is the fixed permissive robots directive for indexable pages.
const robotsMeta = "index,follow,max-snippet:-1,max-image-preview:large,max-video-preview:-1"

// resumeCopy is the fixed per-language page copy.
type resumeCopy struct {
	pageTitle     string
	subtitle      string
	lead          string
	updatedPrefix string
	downloadPDF   string
	profilesTitle string
	emptyState    string
}

var resumeCopyByLang = map[lang.Lang]resumeCopy{
	lang.EN: {
		pageTitle:     "Résumé",
		subtitle:      "Software Engineer",
		lead:          "Work history, projects, and skills.",
		updatedPrefix: "Last updated: ",
		downloadPDF:   "Download PDF",
		profilesTitle: "Profiles",
		emptyState:    "The résumé is being prepared. Please check back soon.",
	},
	lang.JA: {
		pageTitle:     "経歴書",
		subtitle:      "ソフトウェアエンジニア",
		lead:          "職務経歴・プロジェクト・スキルの一覧です。",
		updatedPrefix: "最終更新: ",
		downloadPDF:   "PDFをダウンロード",
		profilesTitle: "プロフィール",
		emptyState:    "経歴書は現在準備中です。しばらくお待ちください。",
	},
}

// ResumeHTML renders the complete résumé page for one language. baseURL is
// the canonical site origin without a trailing slash. The output is a full
// HTML document; every interpolated value is HTML-escaped.
func ResumeHTML(site projection.SiteProjection, resume projection.ResumeProjection, l lang.Lang, baseURL string) string {
	text := resumeCopyByLang[l]
	base := strings.TrimRight(baseURL, "/")
	name := site.DisplayName.For(l)

	title := text.pageTitle
	if name != "" {
		title = name + " | " + text.pageTitle
	}

	description := text.lead
	if summary := resume.Summary.For(l); len(summary) > 0 {
		description = summary[0]
	}

	var b strings.Builder
	b.Grow(4096)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + string(l) + "\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + EscapeHTML(title) + "</title>\n")
	b.WriteString(`<meta name="description" content="` + EscapeHTML(description) + "\">\n")
	b.WriteString(`<meta name="robots" content="` + robotsMeta + "\">\n")
	b.WriteString(`<meta property="og:type" content="profile">` + "\n")
	b.WriteString(`<meta property="og:title" content="` + EscapeHTML(title) + "\">\n")
	b.WriteString(`<meta property="og:description" content="` + EscapeHTML(description) + "\">\n")
	b.WriteString(`<meta property="og:url" content="` + EscapeHTML(base+"/resume") + "\">\n")
	b.WriteString(`<link rel="canonical" href="` + EscapeHTML(base+"/resume") + "\">\n")
	b.WriteString(`<link rel="alternate" hreflang="en" href="` + EscapeHTML(base+"/resume?lang=en") + "\">\n")
	b.WriteString(`<link rel="alternate" hreflang="ja" href="` + EscapeHTML(base+"/resume?lang=ja") + "\">\n")
	b.WriteString(`<link rel="alternate" hreflang="x-default" href="` + EscapeHTML(base+"/resume") + "\">\n")
	b.WriteString(`<link rel="alternate" type="application/pdf" href="` + EscapeHTML(base+"/resume.pdf") + "\">\n")
	b.WriteString(`<script type="application/ld+json">` + profilePageJSONLD(name, site.ProfileLinks) + "</script>\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<header>\n")
	heading := name
	if heading == "" {
		heading = text.pageTitle
	}
	b.WriteString("<h1>" + EscapeHTML(heading) + "</h1>\n")
	b.WriteString(`<p class="subtitle">` + EscapeHTML(text.subtitle) + "</p>\n")
	b.WriteString(`<p class="lead">` + EscapeHTML(text.lead) + "</p>\n")
	if resume.UpdatedAt != "" {
		b.WriteString(`<p class="meta">` + EscapeHTML(text.updatedPrefix+resume.UpdatedAt) + "</p>\n")
	}
	if resume.ETALabel != "" {
		b.WriteString(`<p class="meta">` + EscapeHTML(resume.ETALabel) + "</p>\n")
	}

	b.WriteString(`<nav class="lang-switch">` + "\n")
	b.WriteString(`<a href="/resume?lang=en">English</a>` + "\n")
	b.WriteString(`<a href="/resume?lang=ja">日本語</a>` + "\n")
	if resume.PreferredPDFURL(l) != "" {
		b.WriteString(`<a href="/resume.pdf">` + EscapeHTML(text.downloadPDF) + "</a>\n")
	}
	b.WriteString("</nav>\n")

	if len(site.ProfileLinks) > 0 {
		b.WriteString(`<nav class="profiles" aria-label="` + EscapeHTML(text.profilesTitle) + "\">\n<ul>\n")
		for _, link := range site.ProfileLinks {
			b.WriteString(`<li><a href="` + EscapeHTML(link.URL) + `" rel="me">` + EscapeHTML(link.Label) + "</a></li>\n")
		}
		b.WriteString("</ul>\n</nav>\n")
	}
	b.WriteString("</header>\n")

	b.WriteString("<main>\n")
	summary := resume.Summary.For(l)
	if len(summary) == 0 && len(resume.Sections) == 0 {
		// The empty state must never be silently blank.
		b.WriteString(`<p class="empty">` + EscapeHTML(text.emptyState) + "</p>\n")
	} else {
		for _, paragraph := range summary {
			b.WriteString(`<p class="summary">` + EscapeHTML(paragraph) + "</p>\n")
		}
		for _, section := range resume.Sections {
			writeSection(&b, section, l)
		}
	}
	b.WriteString("</main>\n")

	b.WriteString("<footer>\n")
	if site.FooterNote != "" {
		b.WriteString("<p>" + EscapeHTML(site.FooterNote) + "</p>\n")
	}
	if site.ContactEmail != "" {
		b.WriteString(`<p><a href="mailto:` + EscapeHTML(site.ContactEmail) + `">` + EscapeHTML(site.ContactEmail) + "</a></p>\n")
	}
	b.WriteString("</footer>\n</body>\n</html>\n")

	return b.String()
}

func writeSection(b *strings.Builder, section projection.ResumeSection, l lang.Lang) {
	title := section.Title.For(l)
	items := section.Items.For(l)
	if title == "" && len(items) == 0 {
		return
	}
	b.WriteString(`<section id="` + EscapeHTML(section.ID) + "\">\n")
	if title != "" {
		b.WriteString("<h2>" + EscapeHTML(title) + "</h2>\n")
	}
	if len(items) > 0 {
		b.WriteString("<ul>\n")
		for _, item := range items {
			b.WriteString("<li>" + EscapeHTML(item) + "</li>\n")
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</section>\n")
}

// profilePageJSONLD builds the ProfilePage structured-data block. The result
// comes from json.Marshal, which escapes <, > and & and is therefore safe to
// embed inside a script element without further HTML escaping.
func profilePageJSONLD(name string, links []projection.ProfileLink) string {
	person := map[string]any{
		"@type": "Person",
		"name":  name,
	}
	if len(links) > 0 {
		urls := make([]string, 0, len(links))
		for _, link := range links {
			urls = append(urls, link.URL)
		}
		person["sameAs"] = urls
	}
	data, err := json.Marshal(map[string]any{
		"@context":   "https://schema.org",
		"@type":      "ProfilePage",
		"mainEntity": person,
	})
	if err != nil {
		return "{}"
	}
	return string(data)
}
