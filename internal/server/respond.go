package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// okResponse is the generic acknowledgment body for mutations that
// return no entity.
type okResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// errorResponse matches the error shape the dashboard already parses.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps sentinel errors onto status codes: not-found 404,
// policy rejections 422, malformed input 400, duplicates 409.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, warroomerrors.ErrTaskNotFound),
		errors.Is(err, warroomerrors.ErrProjectNotFound),
		errors.Is(err, warroomerrors.ErrReferenceNotFound),
		errors.Is(err, warroomerrors.ErrSkillNotFound):
		status = http.StatusNotFound
	case errors.Is(err, warroomerrors.ErrProjectHasTasks),
		errors.Is(err, warroomerrors.ErrSkillProtected):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, warroomerrors.ErrFileNotAllowed),
		errors.Is(err, warroomerrors.ErrInvalidHistoryIndex),
		errors.Is(err, warroomerrors.ErrEmptyValue),
		errors.Is(err, warroomerrors.ErrInvalidStatus),
		errors.Is(err, warroomerrors.ErrInvalidPriority):
		status = http.StatusBadRequest
	case errors.Is(err, warroomerrors.ErrProjectExists):
		status = http.StatusConflict
	case errors.As(err, &validationErrs):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

// decodeBody decodes a JSON request body into dst. An empty body is
// not an error: endpoints with optional payloads decode into the zero
// value.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
