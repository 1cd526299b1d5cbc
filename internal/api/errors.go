package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError carries the backend's own message for a non-2xx response so
// callers can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unauthorized reports whether the backend denied the bearer token.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// errorBody is the shape backends use for failures; some endpoints use
// "error", others "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return &APIError{Status: status, Message: eb.Error}
		}
		if eb.Message != "" {
			return &APIError{Status: status, Message: eb.Message}
		}
	}
	return &APIError{Status: status}
}
