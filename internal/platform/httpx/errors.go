// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/agrilog/agrilog/internal/shared"
)

// RespondError maps domain errors to HTTP responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrReference):
		Error(w, http.StatusBadRequest, KindReference, err.Error(), shared.FieldsOf(err))
	case errors.Is(err, shared.ErrValidation):
		Error(w, http.StatusBadRequest, KindValidation, err.Error(), shared.FieldsOf(err))
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, KindNotFound, "record not found", nil)
	case errors.Is(err, shared.ErrDuplicate):
		Error(w, http.StatusConflict, KindDuplicate, "request already processed", nil)
	case errors.Is(err, shared.ErrUnavailable):
		w.Header().Set("Retry-After", "5")
		JSON(w, http.StatusServiceUnavailable, ErrorPayload{
			Error:     "storage backend unavailable, retry later",
			Kind:      KindUnavailable,
			Retryable: true,
		})
	default:
		Error(w, http.StatusInternalServerError, KindInternal, "internal server error", nil)
	}
}
