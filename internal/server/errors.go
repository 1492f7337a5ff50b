package server

import (
	"errors"
	"net/http"

	"github.com/sagr12004/Spell-Checker/internal/types"
)

const msgInvalidBody = "Invalid request body"

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	// Configuration, model availability, upstream and export failures are all
	// reported as server errors.
	return http.StatusInternalServerError
}

// errorMessage returns the text placed in the error body.
func errorMessage(err error) string {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}

// writeError maps err to a status code and writes it as an error body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	s.errorResponse(w, status, errorMessage(err))
}
