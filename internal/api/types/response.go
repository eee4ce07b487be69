// internal/api/types/response.go
package types

// ErrorResponse is the failure envelope: `{"error": "..."}`.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Envelope is the uniform success wrapper `{message, <data-key>: ...}`.
// The data key varies per operation (expenses, users, summary, ...), so it is
// an open map built by the handlers; list operations add a "count" entry.
type Envelope map[string]interface{}
