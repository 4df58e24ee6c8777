package server

import (
	"net/http"

	"github.com/mrz1836/warroom/internal/domain"
)

func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.skills.List())
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var payload domain.SkillCreate
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	created, err := s.skills.Create(payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleSkillContent(w http.ResponseWriter, r *http.Request) {
	content, err := s.skills.Content(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	// An explicit enabled value sets that state; an empty body flips.
	var payload struct {
		Enabled *bool `json:"enabled"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	id := r.PathValue("id")
	var (
		toggled domain.Skill
		err     error
	)
	if payload.Enabled != nil {
		toggled, err = s.skills.SetEnabled(id, *payload.Enabled)
	} else {
		toggled, err = s.skills.Toggle(id)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggled)
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.skills.Delete(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
