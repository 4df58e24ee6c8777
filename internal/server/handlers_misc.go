package server

import (
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.usage.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleListModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.models.Models())
}

func (s *Server) handleSetModel(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Model string `json:"model"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if payload.Model == "" {
		s.writeError(w, warroomerrors.Wrap(warroomerrors.ErrEmptyValue, "model"))
		return
	}

	if err := s.models.SetModel(payload.Model); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "model": payload.Model})
}

func (s *Server) handleGetHeartbeat(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.heartbeats.Get())
}

func (s *Server) handleRecordHeartbeat(w http.ResponseWriter, _ *http.Request) {
	hb, err := s.heartbeats.Record()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hb)
}

// memoryNoteName matches daily memory note files (2025-06-01.md).
var memoryNoteName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)

// handleCalendar merges daily memory notes with task completion dates
// into one per-day map.
func (s *Server) handleCalendar(w http.ResponseWriter, _ *http.Request) {
	days := map[string]*domain.CalendarDay{}

	if entries, err := os.ReadDir(s.memoryDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !memoryNoteName.MatchString(entry.Name()) {
				continue
			}
			day := strings.TrimSuffix(entry.Name(), ".md")
			days[day] = &domain.CalendarDay{Memory: true, Tasks: []string{}}
		}
	}

	for day, titles := range s.tasks.CompletionsByDay() {
		if existing, ok := days[day]; ok {
			existing.Tasks = titles
			continue
		}
		days[day] = &domain.CalendarDay{Tasks: titles}
	}

	out := make(map[string]domain.CalendarDay, len(days))
	for day, v := range days {
		out[day] = *v
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	inProgress, todo := s.tasks.StatusCounts()
	writeJSON(w, http.StatusOK, domain.Stats{
		InProgressCount: inProgress,
		TodoCount:       todo,
		LastHeartbeat:   s.heartbeats.Get().LastHeartbeat,
		ActiveModel:     s.models.ActiveModel(),
	})
}
