package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/ymori/portfolio-server/internal/db"
	"github.com/ymori/portfolio-server/internal/lang"
	"github.com/ymori/portfolio-server/internal/projection"
	"github.com/ymori/portfolio-server/internal/rendering"
)

// docData extracts the record of a possibly missing document. A nil document
// yields a nil map, which every projector accepts.
func docData(doc *db.Document) map[string]any {
	if doc == nil {
		return nil
	}
	return doc.Data
}

func tsDoc(doc *db.Document) projection.TimestampedDoc {
	if doc == nil {
		return projection.TimestampedDoc{}
	}
	return projection.TimestampedDoc{Data: doc.Data, UpdatedAt: doc.UpdatedAt}
}

// handleResume renders the résumé page in the requested language.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := lang.FromRequest(r)

	siteDoc, err := s.store.GetDocument(ctx, "public", "site")
	if err != nil {
		s.internalError(w, "resume", err)
		return
	}
	resumeDoc, err := s.store.GetDocument(ctx, "public", "resume")
	if err != nil {
		s.internalError(w, "resume", err)
		return
	}

	site := projection.Site(docData(siteDoc))
	resume := projection.Resume(docData(resumeDoc))
	html := rendering.ResumeHTML(site, resume, l, s.origin(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Header().Set("Vary", "Accept-Language")
	w.Write([]byte(html))
}

// handleResumePDF redirects to the externally hosted PDF for the requested
// language, or 404s when no valid URL is configured.
func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	l := lang.FromRequest(r)

	resumeDoc, err := s.store.GetDocument(r.Context(), "public", "resume")
	if err != nil {
		s.internalError(w, "resume.pdf", err)
		return
	}

	resume := projection.Resume(docData(resumeDoc))
	pdfURL := resume.PreferredPDFURL(l)
	if pdfURL == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Resume PDF is not available."))
		return
	}

	http.Redirect(w, r, pdfURL, http.StatusFound)
}

// handleSitemap builds sitemap.xml from every public document. The reads are
// independent, so they run concurrently; any failure fails the whole response.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	g, ctx := errgroup.WithContext(r.Context())

	var homeDoc, aboutDoc, contactDoc, resumeDoc *db.Document
	var projectDocs []db.Document

	fetch := func(id string, dst **db.Document) func() error {
		return func() error {
			doc, err := s.store.GetDocument(ctx, "public", id)
			if err != nil {
				return err
			}
			*dst = doc
			return nil
		}
	}
	g.Go(fetch("home", &homeDoc))
	g.Go(fetch("about", &aboutDoc))
	g.Go(fetch("contact", &contactDoc))
	g.Go(fetch("resume", &resumeDoc))
	g.Go(func() error {
		docs, err := s.store.ListProjects(ctx)
		if err != nil {
			return err
		}
		projectDocs = docs
		return nil
	})

	if err := g.Wait(); err != nil {
		s.internalError(w, "sitemap", err)
		return
	}

	docs := projection.PageDocs{
		Home:    tsDoc(homeDoc),
		About:   tsDoc(aboutDoc),
		Contact: tsDoc(contactDoc),
		Resume:  tsDoc(resumeDoc),
	}
	for _, p := range projectDocs {
		docs.Projects = append(docs.Projects, projection.Project(p.ID, p.Data, p.UpdatedAt))
	}

	entries := projection.SitemapEntries(s.origin(r), docs, s.now().UTC())
	xml := rendering.Sitemap(entries)

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(xml))
}

// handleRobots serves robots.txt pointing crawlers at the sitemap.
func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(rendering.Robots(s.origin(r))))
}
