package projection

import (
	"fmt"

	"github.com/ymori/portfolio-server/internal/fields"
	"github.com/ymori/portfolio-server/internal/lang"
	"github.com/ymori/portfolio-server/internal/urlsafe"
)

// Resume projects the raw résumé document. PDF URLs are gated per language
// before they enter the projection, so later fallback decisions operate on
// safety-checked results: an invalid primary URL never blocks fallback to a
// valid secondary one.
func Resume(record map[string]any) ResumeProjection {
	return ResumeProjection{
		PDFURL: BilingualText{
			EN: gatedURL(resolveLang(record, "en", []string{"url", "pdf_url", "resume_url"})),
			JA: gatedURL(resolveLang(record, "ja", []string{"url", "pdf_url", "resume_url"})),
		},
		UpdatedAt: fields.ToScalar(fields.Resolve(record, "updated_at", "updatedAt", "updated", "last_updated", "lastUpdated")),
		ETALabel:  fields.ToScalar(fields.Resolve(record, "eta", "eta_label", "etaLabel", "eta_text")),
		Summary:   biParagraphs(record, "summary"),
		Sections:  normalizeSections(record),
	}
}

// PreferredPDFURL returns the gated PDF URL for the requested language,
// falling back to the other language. Empty when neither language has a
// valid URL.
func (r ResumeProjection) PreferredPDFURL(l lang.Lang) string {
	return r.PDFURL.For(l)
}

func gatedURL(value any) string {
	if url, ok := urlsafe.SafeURL(fields.ToScalar(value)); ok {
		return url
	}
	return ""
}

// normalizeSections iterates the raw sections list. Entries that resolve
// empty in both languages for both title and items are dropped; ids default
// to section-<index> using the entry's position in the raw list.
func normalizeSections(record map[string]any) []ResumeSection {
	raw, ok := fields.Resolve(record, "sections").([]any)
	if !ok {
		return nil
	}
	sections := make([]ResumeSection, 0, len(raw))
	for i, item := range raw {
		entry, _ := item.(map[string]any)
		title := biText(entry, "title")
		items := biLines(entry, "items")
		if title.IsEmpty() && items.IsEmpty() {
			continue
		}
		id := fields.ToScalar(fields.Resolve(entry, "id"))
		if id == "" {
			id = fmt.Sprintf("section-%d", i)
		}
		sections = append(sections, ResumeSection{ID: id, Title: title, Items: items})
	}
	return sections
}
