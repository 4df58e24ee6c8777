package server

import (
	"net/http"

	"github.com/mrz1836/warroom/internal/domain"
	"github.com/mrz1836/warroom/internal/task"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := task.ListFilter{
		Project:  q.Get("project"),
		Priority: q.Get("priority"),
		Status:   q.Get("status"),
		Tags:     task.ParseTagFilter(q.Get("tags")),
	}
	writeJSON(w, http.StatusOK, s.tasks.List(filter))
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var payload domain.TaskCreate
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if err := domain.Validate(payload); err != nil {
		s.writeError(w, err)
		return
	}

	created, err := s.tasks.Create(payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var payload domain.TaskPatch
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	updated, err := s.tasks.Update(r.PathValue("id"), payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleRunTask(w http.ResponseWriter, r *http.Request) {
	if _, err := s.tasks.Run(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true, Message: "Task queued for execution"})
}

func (s *Server) handleQueue(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.tasks.Queue())
}

func (s *Server) handlePickupTask(w http.ResponseWriter, r *http.Request) {
	picked, err := s.tasks.Pickup(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, picked)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	// The body is optional: a bare complete records no result text.
	var payload domain.TaskComplete
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	completed, err := s.tasks.Complete(r.PathValue("id"), payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completed)
}

func (s *Server) handleListReferences(w http.ResponseWriter, r *http.Request) {
	refs, err := s.tasks.References(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

func (s *Server) handleAddReference(w http.ResponseWriter, r *http.Request) {
	var payload domain.ReferenceCreate
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if err := domain.Validate(payload); err != nil {
		s.writeError(w, err)
		return
	}

	ref, err := s.tasks.AddReference(r.PathValue("id"), payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

func (s *Server) handleDeleteReference(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.DeleteReference(r.PathValue("id"), r.PathValue("refID")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
