package server

import (
	"net/http"

	"github.com/mrz1836/warroom/internal/domain"
)

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.projects.List())
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload domain.ProjectCreate
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if err := domain.Validate(payload); err != nil {
		s.writeError(w, err)
		return
	}

	created, err := s.projects.Create(payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// A fresh project cannot have tasks yet.
	writeJSON(w, http.StatusOK, domain.ProjectWithCount{Project: created})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var payload domain.ProjectPatch
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	updated, err := s.projects.Update(r.PathValue("id"), payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.ProjectWithCount{
		Project:   updated,
		TaskCount: s.tasks.CountByProject()[updated.ID],
	})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.Delete(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleListTags(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.tasks.Tags())
}
