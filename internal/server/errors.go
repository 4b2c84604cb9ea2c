// Package server provides the HTTP REST API for the resume gap analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/extraction"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/session"
)

// RequestError indicates a malformed or invalid request body.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// MissingArtifactError indicates a phase was requested before the phase that
// produces its input ran for the session.
type MissingArtifactError struct {
	SessionID uuid.UUID
	Artifact  string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("session %s has no %s yet", e.SessionID, e.Artifact)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Pipeline stages wrap their causes, so matching unwraps.
func HTTPStatus(err error) int {
	var (
		request      *RequestError
		missing      *MissingArtifactError
		unsupported  *extraction.UnsupportedFormatError
		insufficient *extraction.InsufficientTextError
		readFailure  *extraction.DocumentReadError
		notFound     *session.NotFoundError
		truncated    *llm.TruncatedOutputError
		malformed    *llm.MalformedOutputError
		generation   *llm.GenerationError
	)

	switch {
	case errors.As(err, &request), errors.As(err, &missing),
		errors.As(err, &unsupported), errors.As(err, &insufficient):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &truncated), errors.As(err, &malformed), errors.As(err, &generation):
		return http.StatusBadGateway
	case errors.As(err, &readFailure):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
