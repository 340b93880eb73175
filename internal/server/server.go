// Package server provides the HTTP surface for the portfolio site: the
// public server-rendered pages (résumé, PDF redirect, sitemap, robots)
// and a small admin API for editing content documents.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ymori/portfolio-server/internal/config"
	"github.com/ymori/portfolio-server/internal/db"
	"github.com/ymori/portfolio-server/internal/urlsafe"
)

// Store is the document storage the handlers read from and write to.
// *db.DB satisfies it; tests substitute an in-memory implementation.
type Store interface {
	GetDocument(ctx context.Context, collection, id string) (*db.Document, error)
	PutDocument(ctx context.Context, collection, id string, data map[string]any) error
	DeleteDocument(ctx context.Context, collection, id string) (bool, error)
	ListProjects(ctx context.Context) ([]db.Document, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	siteURL    string
	validate   *validator.Validate
	closeStore func()
	now        func() time.Time
}

// New creates a new server instance backed by PostgreSQL.
func New(cfg config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := newServer(database, cfg.SiteURL)
	s.closeStore = database.Close

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func newServer(store Store, siteURL string) *Server {
	return &Server{
		store:    store,
		siteURL:  siteURL,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public pages
	mux.HandleFunc("GET /resume", s.handleResume)
	mux.HandleFunc("GET /resume.pdf", s.handleResumePDF)
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /robots.txt", s.handleRobots)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Admin content API
	mux.HandleFunc("GET /admin/documents/{collection}/{id}", s.handleGetDocument)
	mux.HandleFunc("PUT /admin/documents/{collection}/{id}", s.handlePutDocument)
	mux.HandleFunc("DELETE /admin/documents/{collection}/{id}", s.handleDeleteDocument)
	mux.HandleFunc("GET /admin/projects", s.handleListProjects)
	mux.HandleFunc("POST /admin/projects", s.handleCreateProject)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

// origin resolves the canonical origin for the current request.
func (s *Server) origin(r *http.Request) string {
	return urlsafe.ResolveOrigin(s.siteURL, r.Host, r.Header.Get("X-Forwarded-Host"), r.Header.Get("X-Forwarded-Proto"))
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// internalError logs the underlying cause and answers with a generic plain
// text body. Storage details never reach the client.
func (s *Server) internalError(w http.ResponseWriter, page string, err error) {
	log.Printf("[%s] internal error: %v", page, err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintln(w, "Something went wrong. Please try again later.")
}
