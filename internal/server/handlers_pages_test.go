package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymori/portfolio-server/internal/db"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	docs     map[string]*db.Document
	projects []db.Document
	err      error
	puts     map[string]map[string]any
	deleted  map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:    make(map[string]*db.Document),
		puts:    make(map[string]map[string]any),
		deleted: make(map[string]bool),
	}
}

func (f *fakeStore) add(collection, id string, data map[string]any, updatedAt time.Time) {
	f.docs[collection+"/"+id] = &db.Document{
		Collection: collection,
		ID:         id,
		Data:       data,
		UpdatedAt:  updatedAt,
	}
}

func (f *fakeStore) GetDocument(_ context.Context, collection, id string) (*db.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs[collection+"/"+id], nil
}

func (f *fakeStore) PutDocument(_ context.Context, collection, id string, data map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.puts[collection+"/"+id] = data
	f.add(collection, id, data, time.Now())
	return nil
}

func (f *fakeStore) DeleteDocument(_ context.Context, collection, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := collection + "/" + id
	if _, ok := f.docs[key]; !ok {
		return false, nil
	}
	delete(f.docs, key)
	f.deleted[key] = true
	return true, nil
}

func (f *fakeStore) ListProjects(_ context.Context) ([]db.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func newTestServer(store Store) *Server {
	s := newServer(store, "https://ymori.dev")
	s.now = func() time.Time {
		return time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func seedResumeStore() *fakeStore {
	store := newFakeStore()
	store.add("public", "site", map[string]any{
		"display_name_en": "Yuki Mori",
		"display_name_ja": "森 由紀",
		"github":          "github.com/ymori",
		"contact_email":   "hello@ymori.dev",
	}, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	store.add("public", "resume", map[string]any{
		"url_en":     "https://files.ymori.dev/resume-en.pdf",
		"url_ja":     "https://files.ymori.dev/resume-ja.pdf",
		"updated_at": "2025-06-01",
		"summary_en": "Engineer building web platforms.",
	}, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	return store
}

func TestHandleResume_Success(t *testing.T) {
	s := newTestServer(seedResumeStore())

	rec := doRequest(s, http.MethodGet, "/resume")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Accept-Language", rec.Header().Get("Vary"))
	assert.Contains(t, rec.Body.String(), "Yuki Mori")
	assert.Contains(t, rec.Body.String(), "Engineer building web platforms.")
}

func TestHandleResume_JapaneseQuery(t *testing.T) {
	s := newTestServer(seedResumeStore())

	rec := doRequest(s, http.MethodGet, "/resume?lang=ja")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "森 由紀")
	assert.Contains(t, rec.Body.String(), `lang="ja"`)
}

func TestHandleResume_AcceptLanguageHeader(t *testing.T) {
	s := newTestServer(seedResumeStore())

	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	req.Header.Set("Accept-Language", "ja-JP,ja;q=0.9,en;q=0.8")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "森 由紀")
}

func TestHandleResume_MissingDocumentsStillRenders(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doRequest(s, http.MethodGet, "/resume")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "being prepared")
}

func TestHandleResume_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = assert.AnError
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/resume")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHandleResumePDF_Redirect(t *testing.T) {
	s := newTestServer(seedResumeStore())

	rec := doRequest(s, http.MethodGet, "/resume.pdf")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://files.ymori.dev/resume-en.pdf", rec.Header().Get("Location"))
}

func TestHandleResumePDF_JapaneseRedirect(t *testing.T) {
	s := newTestServer(seedResumeStore())

	rec := doRequest(s, http.MethodGet, "/resume.pdf?lang=ja")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://files.ymori.dev/resume-ja.pdf", rec.Header().Get("Location"))
}

func TestHandleResumePDF_NotConfigured(t *testing.T) {
	store := newFakeStore()
	store.add("public", "resume", map[string]any{"summary": "text only"}, time.Now())
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/resume.pdf")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "not available")
}

func TestHandleResumePDF_MissingDocument(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doRequest(s, http.MethodGet, "/resume.pdf")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleResumePDF_InvalidURLRejected(t *testing.T) {
	store := newFakeStore()
	store.add("public", "resume", map[string]any{"url": "javascript:alert(1)"}, time.Now())
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/resume.pdf")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSitemap_Success(t *testing.T) {
	store := seedResumeStore()
	store.add("public", "home", map[string]any{"updated_at": "2025-05-01"}, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	store.projects = []db.Document{
		{
			Collection: "projects",
			ID:         "p1",
			Data:       map[string]any{"title": "Portfolio", "updated_at": "2025-04-01"},
			UpdatedAt:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://ymori.dev/</loc>")
	assert.Contains(t, body, "<loc>https://ymori.dev/resume</loc>")
	assert.Contains(t, body, "<loc>https://ymori.dev/resume.pdf</loc>")
	assert.Contains(t, body, "<loc>https://ymori.dev/projects/p1</loc>")
	assert.Contains(t, body, "<lastmod>2025-05-01</lastmod>")
}

func TestHandleSitemap_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = assert.AnError
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/sitemap.xml")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func TestHandleRobots_PointsAtSitemap(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doRequest(s, http.MethodGet, "/robots.txt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Sitemap: https://ymori.dev/sitemap.xml")
}

func TestHandleRobots_ForwardedHostWhenUnconfigured(t *testing.T) {
	s := newServer(newFakeStore(), "")

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	req.Header.Set("X-Forwarded-Host", "staging.ymori.dev")
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), "Sitemap: https://staging.ymori.dev/sitemap.xml")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doRequest(s, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
