package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is the structured failure of a gateway call: the HTTP status (0 for a
// transport failure) and the server-provided message when one was returned.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func newError(code int, body []byte) *Error {
	return &Error{StatusCode: code, Message: extractMessage(code, body)}
}

// extractMessage pulls the human-readable message out of an error body.
// The backend answers either with a bare string or with a JSON object
// carrying a "message" or "error" field.
func extractMessage(code int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(code)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "error"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				return msg
			}
		}
		return text
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return plain
	}
	return text
}

// IsStatus reports whether err is a gateway Error with the given status code.
func IsStatus(err error, code int) bool {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.StatusCode == code
	}
	return false
}
