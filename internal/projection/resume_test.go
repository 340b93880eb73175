package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymori/portfolio-server/internal/lang"
)

func TestResume_PDFURLPerLanguage(t *testing.T) {
	resume := Resume(map[string]any{
		"url_en": "https://cdn.ymori.dev/resume-en.pdf",
		"url_ja": "https://cdn.ymori.dev/resume-ja.pdf",
	})
	assert.Equal(t, "https://cdn.ymori.dev/resume-en.pdf", resume.PreferredPDFURL(lang.EN))
	assert.Equal(t, "https://cdn.ymori.dev/resume-ja.pdf", resume.PreferredPDFURL(lang.JA))
}

func TestResume_PDFURLFallbackToOtherLanguage(t *testing.T) {
	resume := Resume(map[string]any{
		"url_en": "https://cdn.ymori.dev/resume-en.pdf",
	})
	assert.Equal(t, "https://cdn.ymori.dev/resume-en.pdf", resume.PreferredPDFURL(lang.JA))
}

func TestResume_InvalidPrimaryDoesNotBlockFallback(t *testing.T) {
	// Fallback applies to the safety-checked result: an invalid primary URL
	// falls through to a valid secondary one.
	resume := Resume(map[string]any{
		"url_ja": "ftp://cdn.ymori.dev/resume-ja.pdf",
		"url_en": "https://cdn.ymori.dev/resume-en.pdf",
	})
	assert.Equal(t, "", resume.PDFURL.JA)
	assert.Equal(t, "https://cdn.ymori.dev/resume-en.pdf", resume.PreferredPDFURL(lang.JA))
}

func TestResume_LegacyURLResolvesInBothLanguages(t *testing.T) {
	resume := Resume(map[string]any{"pdf_url": "https://cdn.ymori.dev/resume.pdf"})
	assert.Equal(t, resume.PDFURL.EN, resume.PDFURL.JA)
	assert.Equal(t, "https://cdn.ymori.dev/resume.pdf", resume.PDFURL.EN)
}

func TestResume_NoPDFConfigured(t *testing.T) {
	resume := Resume(map[string]any{})
	assert.Equal(t, "", resume.PreferredPDFURL(lang.EN))
	assert.Equal(t, "", resume.PreferredPDFURL(lang.JA))
}

func TestNormalizeSections_DropsEmptySections(t *testing.T) {
	resume := Resume(map[string]any{
		"sections": []any{
			map[string]any{"title_en": "", "items": []any{}},
			map[string]any{
				"title_en": "Experience",
				"items_en": []any{"Role A"},
			},
		},
	})
	require.Len(t, resume.Sections, 1)
	assert.Equal(t, "Experience", resume.Sections[0].Title.EN)
}

func TestNormalizeSections_JapaneseOnlySectionIncludedWithFallback(t *testing.T) {
	resume := Resume(map[string]any{
		"sections": []any{
			map[string]any{"title_ja": "職務経歴"},
		},
	})
	require.Len(t, resume.Sections, 1)
	section := resume.Sections[0]
	// English rendering falls back to the Japanese title.
	assert.Equal(t, "職務経歴", section.Title.For(lang.EN))
	assert.Empty(t, section.Items.For(lang.EN))
}

func TestNormalizeSections_IDDefaultsToPositionalName(t *testing.T) {
	resume := Resume(map[string]any{
		"sections": []any{
			map[string]any{"id": "experience", "title_en": "Experience"},
			map[string]any{"title_en": "Education"},
		},
	})
	require.Len(t, resume.Sections, 2)
	assert.Equal(t, "experience", resume.Sections[0].ID)
	assert.Equal(t, "section-1", resume.Sections[1].ID)
}

func TestNormalizeSections_NonListValue(t *testing.T) {
	assert.Empty(t, Resume(map[string]any{"sections": "oops"}).Sections)
	assert.Empty(t, Resume(map[string]any{}).Sections)
}

func TestNormalizeSections_NewlineDelimitedItems(t *testing.T) {
	resume := Resume(map[string]any{
		"sections": []any{
			map[string]any{
				"title_en": "Skills",
				"items_en": "Go\nTypeScript\nPostgreSQL",
			},
		},
	})
	require.Len(t, resume.Sections, 1)
	assert.Equal(t, []string{"Go", "TypeScript", "PostgreSQL"}, resume.Sections[0].Items.EN)
}

func TestResume_MetadataFields(t *testing.T) {
	resume := Resume(map[string]any{
		"updatedAt": "2025-06-01",
		"eta_label": "Next revision: autumn 2025",
	})
	assert.Equal(t, "2025-06-01", resume.UpdatedAt)
	assert.Equal(t, "Next revision: autumn 2025", resume.ETALabel)
}
