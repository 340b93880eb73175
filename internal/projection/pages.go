package projection

import "github.com/ymori/portfolio-server/internal/fields"

// Home projects the raw home page document.
func Home(record map[string]any) HomeProjection {
	return HomeProjection{
		Headline: biText(record, "headline", "title"),
		Tagline:  biText(record, "tagline", "subtitle"),
		Intro:    biParagraphs(record, "intro", "body"),
	}
}

// About projects the raw about page document.
func About(record map[string]any) AboutProjection {
	return AboutProjection{
		Title: biText(record, "title"),
		Body:  biParagraphs(record, "body", "content"),
	}
}

// Contact projects the raw contact page document.
func Contact(record map[string]any) ContactProjection {
	return ContactProjection{
		Title: biText(record, "title"),
		Body:  biParagraphs(record, "body", "content"),
		Email: fields.ToScalar(fields.Resolve(record, "contact_email", "contactEmail", "email")),
	}
}
