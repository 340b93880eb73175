package projection

import "github.com/ymori/portfolio-server/internal/fields"

// Site projects the raw site identity document. A nil record projects to an
// all-empty projection.
func Site(record map[string]any) SiteProjection {
	return SiteProjection{
		DisplayName:  biText(record, "display_name", "name"),
		FooterNote:   fields.ToScalar(fields.Resolve(record, "footer_note", "footerNote", "footer")),
		ContactEmail: fields.ToScalar(fields.Resolve(record, "contact_email", "contactEmail", "email")),
		ProfileLinks: ParseProfileLinks(record),
	}
}
