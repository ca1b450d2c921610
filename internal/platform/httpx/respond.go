package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/agrilog/agrilog/internal/shared"
)

// Error kinds reported to clients.
const (
	KindValidation  = "validation"
	KindReference   = "reference"
	KindNotFound    = "not_found"
	KindDuplicate   = "duplicate"
	KindUnavailable = "backend_unavailable"
	KindInternal    = "internal"
)

// ErrorPayload is the body of every failed request.
type ErrorPayload struct {
	Error     string              `json:"error"`
	Kind      string              `json:"kind"`
	Fields    []shared.FieldError `json:"fields,omitempty"`
	Retryable bool                `json:"retryable,omitempty"`
}

// Message is the acknowledgement body for deletes.
type Message struct {
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an error payload.
func Error(w http.ResponseWriter, status int, kind, message string, fields []shared.FieldError) {
	JSON(w, status, ErrorPayload{Error: message, Kind: kind, Fields: fields})
}

// DecodeJSON decodes JSON request body into the target struct, rejecting
// unknown fields so misspelled inputs are not silently dropped.
func DecodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return shared.Invalid("body", "malformed JSON: %v", err)
	}
	return nil
}
