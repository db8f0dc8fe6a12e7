package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/contactbook/internal/domain"
)

// notFoundBody returns an ErrorResponse for a missing resource.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the command layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// commandError maps a failed command to a status and body. The message is
// the command's user-facing message; the status follows the wrapped sentinel.
func commandError(err error) (int, ErrorResponse) {
	body := func(code string) ErrorResponse {
		return ErrorResponse{Error: ErrorDetail{Code: code, Message: err.Error()}}
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, body("not_found")
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, body("validation_error")
	case errors.Is(err, domain.ErrNoChange):
		return http.StatusConflict, body("no_change")
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, body("conflict")
	case errors.Is(err, domain.ErrPermission), errors.Is(err, domain.ErrIO):
		return http.StatusInternalServerError, body("storage_error")
	default:
		return http.StatusInternalServerError, body("internal_error")
	}
}

// writeCommandError writes the response for a failed command.
func (s *Server) writeCommandError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := commandError(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "command failed", "error", err)
	}
	writeError(w, status, body)
}

// decodeBody decodes a JSON request body into dst and validates it.
// Returns the status and body to reply with when the request is unusable.
func (s *Server) decodeBody(r *http.Request, dst any) (int, *ErrorResponse) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			body := ErrorResponse{Error: ErrorDetail{Code: "too_large", Message: "request body too large"}}
			return http.StatusRequestEntityTooLarge, &body
		}
		body := requestBody("request body must be valid JSON: " + err.Error())
		return http.StatusUnprocessableEntity, &body
	}
	if err := s.validate.Struct(dst); err != nil {
		body := requestBody(validationMessage(err))
		return http.StatusUnprocessableEntity, &body
	}
	return 0, nil
}

// validationMessage renders validator failures as "field: rule" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fe.Field() + " failed " + fe.Tag()
	}
	return strings.Join(parts, "; ")
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
