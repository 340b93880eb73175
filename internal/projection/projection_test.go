package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ymori/portfolio-server/internal/lang"
)

func TestProjectors_NilRecord(t *testing.T) {
	// A missing document is a normal input: every projector returns a
	// well-formed empty projection.
	site := Site(nil)
	assert.Empty(t, site.DisplayName.EN)
	assert.Empty(t, site.ProfileLinks)

	resume := Resume(nil)
	assert.Empty(t, resume.Sections)
	assert.Empty(t, resume.Summary.For(lang.EN))
	assert.Empty(t, resume.PreferredPDFURL(lang.JA))

	home := Home(nil)
	assert.Empty(t, home.Headline.For(lang.JA))

	about := About(nil)
	assert.Empty(t, about.Body.For(lang.EN))

	contact := Contact(nil)
	assert.Empty(t, contact.Email)
}

func TestProjectors_EmptyRecord(t *testing.T) {
	assert.Empty(t, Site(map[string]any{}).ContactEmail)
	assert.Empty(t, Resume(map[string]any{}).UpdatedAt)
}

func TestResume_LegacySummaryResolvesInBothLanguages(t *testing.T) {
	// A document with only the legacy unsuffixed field resolves to that
	// value in both languages equally.
	resume := Resume(map[string]any{
		"summary": "First paragraph.\n\nSecond paragraph.",
	})
	want := []string{"First paragraph.", "Second paragraph."}
	assert.Equal(t, want, resume.Summary.EN)
	assert.Equal(t, want, resume.Summary.JA)
	assert.Equal(t, resume.Summary.For(lang.EN), resume.Summary.For(lang.JA))
}

func TestSite_DisplayNameKeyPrecedence(t *testing.T) {
	site := Site(map[string]any{
		"display_name_en": "Yuki Mori",
		"displayNameJa":   "森 由紀",
		"name":            "legacy",
	})
	assert.Equal(t, "Yuki Mori", site.DisplayName.EN)
	assert.Equal(t, "森 由紀", site.DisplayName.JA)
}

func TestSite_DisplayNameLegacyFallback(t *testing.T) {
	site := Site(map[string]any{"name": "Yuki Mori"})
	assert.Equal(t, "Yuki Mori", site.DisplayName.EN)
	assert.Equal(t, "Yuki Mori", site.DisplayName.JA)
}

func TestBilingualText_DisplayFallback(t *testing.T) {
	text := BilingualText{JA: "日本語のみ"}
	assert.Equal(t, "日本語のみ", text.For(lang.EN))
	assert.Equal(t, "日本語のみ", text.For(lang.JA))

	both := BilingualText{EN: "english", JA: "日本語"}
	assert.Equal(t, "english", both.For(lang.EN))
	assert.Equal(t, "日本語", both.For(lang.JA))

	assert.Equal(t, "", BilingualText{}.For(lang.EN))
}

func TestBilingualList_WholeListFallback(t *testing.T) {
	list := BilingualList{EN: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, list.For(lang.JA))

	both := BilingualList{EN: []string{"a"}, JA: []string{"あ"}}
	assert.Equal(t, []string{"あ"}, both.For(lang.JA))
}

func TestHome_IntroParagraphs(t *testing.T) {
	home := Home(map[string]any{
		"intro_ja": "こんにちは。\n\nポートフォリオです。",
	})
	assert.Equal(t, []string{"こんにちは。", "ポートフォリオです。"}, home.Intro.JA)
	assert.Empty(t, home.Intro.EN)
	assert.Equal(t, home.Intro.JA, home.Intro.For(lang.EN))
}

func TestContact_EmailKeys(t *testing.T) {
	contact := Contact(map[string]any{"contactEmail": " me@ymori.dev "})
	assert.Equal(t, "me@ymori.dev", contact.Email)
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "displayName", camelCase("display_name"))
	assert.Equal(t, "title", camelCase("title"))
	assert.Equal(t, "githubPushedAt", camelCase("github_pushed_at"))
}
