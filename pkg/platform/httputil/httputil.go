// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "amity/pkg/domain-errors"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON serializes v with the given status. Encoding failures are
// swallowed; by the time they surface the status line is already written.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError translates a domain error into an HTTP error envelope. Internal
// errors never expose their message to the client; everything else carries
// the domain message as error_description.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := dErrors.CodeInternal
	desc := ""

	var de *dErrors.DomainError
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		code = de.Code
		if de.Code != dErrors.CodeInternal {
			desc = de.Message
		}
	}

	WriteJSON(w, status, errorResponse{
		Error:            string(code),
		ErrorDescription: desc,
	})
}
