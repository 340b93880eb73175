// Package projection turns raw stored documents into normalized,
// language-resolved views ready for rendering. Projections are derived and
// read-only: they are recomputed from storage on every request and never
// written back. Every projector accepts a nil record and returns a well-formed
// empty projection, so a missing document is a normal input, not an error.
package projection

import (
	"time"

	"github.com/ymori/portfolio-server/internal/lang"
)

// BilingualText holds the English and Japanese values of one logical field.
// Either side may be empty; display resolution falls back to the other.
type BilingualText struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

// For returns the display value for the requested language, falling back to
// the other language when the primary is empty.
func (t BilingualText) For(l lang.Lang) string {
	primary, secondary := t.EN, t.JA
	if l == lang.JA {
		primary, secondary = t.JA, t.EN
	}
	if primary != "" {
		return primary
	}
	return secondary
}

// IsEmpty reports whether both languages are empty.
func (t BilingualText) IsEmpty() bool {
	return t.EN == "" && t.JA == ""
}

// BilingualList holds per-language lists. Fallback is whole-list: an empty
// list for the requested language yields the other language's list as-is,
// never a per-item merge.
type BilingualList struct {
	EN []string `json:"en"`
	JA []string `json:"ja"`
}

// For returns the display list for the requested language with whole-list
// fallback.
func (l BilingualList) For(active lang.Lang) []string {
	primary, secondary := l.EN, l.JA
	if active == lang.JA {
		primary, secondary = l.JA, l.EN
	}
	if len(primary) > 0 {
		return primary
	}
	return secondary
}

// IsEmpty reports whether both languages' lists are empty.
func (l BilingualList) IsEmpty() bool {
	return len(l.EN) == 0 && len(l.JA) == 0
}

// ProfileLink is a labeled external URL that has passed the URL safety gate.
type ProfileLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ResumeSection is one normalized résumé section.
type ResumeSection struct {
	ID    string        `json:"id"`
	Title BilingualText `json:"title"`
	Items BilingualList `json:"items"`
}

// SiteProjection is the normalized site identity document.
type SiteProjection struct {
	DisplayName  BilingualText `json:"display_name"`
	FooterNote   string        `json:"footer_note"`
	ContactEmail string        `json:"contact_email"`
	ProfileLinks []ProfileLink `json:"profile_links"`
}

// ResumeProjection is the normalized résumé document. PDFURL values are
// already URL-gated per language, or empty.
type ResumeProjection struct {
	PDFURL    BilingualText   `json:"pdf_url"`
	UpdatedAt string          `json:"updated_at"`
	ETALabel  string          `json:"eta_label"`
	Summary   BilingualList   `json:"summary"`
	Sections  []ResumeSection `json:"sections"`
}

// HomeProjection is the normalized home page document.
type HomeProjection struct {
	Headline BilingualText `json:"headline"`
	Tagline  BilingualText `json:"tagline"`
	Intro    BilingualList `json:"intro"`
}

// AboutProjection is the normalized about page document.
type AboutProjection struct {
	Title BilingualText `json:"title"`
	Body  BilingualList `json:"body"`
}

// ContactProjection is the normalized contact page document.
type ContactProjection struct {
	Title BilingualText `json:"title"`
	Body  BilingualList `json:"body"`
	Email string        `json:"email"`
}

// ProjectProjection is the normalized view of one project document.
// LastModified is the max over the document's timestamp sources and is zero
// when no source parses.
type ProjectProjection struct {
	ID            string        `json:"id"`
	Title         BilingualText `json:"title"`
	Summary       BilingualText `json:"summary"`
	LinkURL       string        `json:"link_url"`
	RepoURL       string        `json:"repo_url"`
	CoverImageURL string        `json:"cover_image_url"`
	LastModified  time.Time     `json:"last_modified"`
}
