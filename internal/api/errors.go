package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// FieldError is one field-scoped validation failure reported by the
// backend, addressed by a dotted path such as "variants.0.price".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is a structured API error response.
type Error struct {
	StatusCode int
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

// AsError unwraps an *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(body) > 0 {
		// Body may not be JSON at all (proxies, plain 502 pages);
		// the status-only error stands in that case.
		_ = json.Unmarshal(body, apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
