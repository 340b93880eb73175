package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------
// Admin Document Handlers
// ---------------------------------------------------------------------

// allowedCollections are the collections the admin API may touch.
var allowedCollections = map[string]bool{
	"public":   true,
	"projects": true,
}

// DocumentRequest carries a document body for create and update calls.
// Data is schemaless on purpose; only its presence is validated.
type DocumentRequest struct {
	Data map[string]any `json:"data" validate:"required"`
}

// ProjectRequest optionally names the project id; a blank id gets generated.
type ProjectRequest struct {
	ID   string         `json:"id" validate:"omitempty,max=128"`
	Data map[string]any `json:"data" validate:"required"`
}

func (s *Server) documentKey(w http.ResponseWriter, r *http.Request) (collection, id string, ok bool) {
	collection = r.PathValue("collection")
	id = r.PathValue("id")
	if !allowedCollections[collection] {
		s.errorResponse(w, http.StatusBadRequest, "Unknown collection")
		return "", "", false
	}
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Document ID is required")
		return "", "", false
	}
	return collection, id, true
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	collection, id, ok := s.documentKey(w, r)
	if !ok {
		return
	}

	doc, err := s.store.GetDocument(r.Context(), collection, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	collection, id, ok := s.documentKey(w, r)
	if !ok {
		return
	}

	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Data is required")
		return
	}

	if err := s.store.PutDocument(r.Context(), collection, id, req.Data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	collection, id, ok := s.documentKey(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeleteDocument(r.Context(), collection, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Admin Project Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": docs,
		"count":    len(docs),
	})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Data is required")
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	if err := s.store.PutDocument(r.Context(), "projects", id, req.Data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}
