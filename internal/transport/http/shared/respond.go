// Package shared holds the JSON response helpers used by every handler.
// WriteError is the single place internal error kinds become caller-facing
// statuses.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "registrar/pkg/domain-errors"
)

// ErrorResponse is the wire form of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// WriteJSON writes a success payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps a domain error onto the caller-facing status. Validation
// and conflict details are safe to show; everything else collapses into a
// generic message so hashing/storage internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.HTTPStatus(code)

	resp := ErrorResponse{Error: "internal error"}
	switch code {
	case dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeBadRequest:
		var derr *dErrors.Error
		if errors.As(err, &derr) {
			resp.Error = derr.Message
			resp.Field = derr.Field
		} else {
			resp.Error = "bad request"
		}
	case dErrors.CodeConflict:
		resp.Error = "Email already exists."
	case dErrors.CodeNotFound:
		resp.Error = "not found"
	}

	WriteJSON(w, status, resp)
}
