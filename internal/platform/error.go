package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned by the Client for responses with a non-2xx status.
type Error struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// ID is the platform's machine readable error identifier, e.g.
	// "not_found" or "multiple_matches".
	ID string

	// Message is the platform's human readable error message.
	Message string

	// URL points to documentation on the error, if any.
	URL string

	// RequestID is the identifier the platform assigned to the request.
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("platform API returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *Error) Description() string {
	if e.URL == "" {
		return ""
	}

	return fmt.Sprintf("See %s for more information.", e.URL)
}

// Is reports whether target is an *Error of the same status code.
func (e *Error) Is(target error) bool {
	if other, ok := target.(*Error); ok {
		return e.StatusCode == other.StatusCode
	}
	return false
}

var (
	// ErrNotFound matches, via errors.Is, errors for resources which do not
	// exist under the queried scope.
	ErrNotFound = &Error{StatusCode: http.StatusNotFound}

	// ErrAmbiguous matches, via errors.Is, errors for identifiers which match
	// more than one resource.
	ErrAmbiguous = &Error{StatusCode: http.StatusUnprocessableEntity}
)

func errorFromResponse(resp *http.Response, body []byte) *Error {
	var payload struct {
		ID      string `json:"id"`
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	_ = json.Unmarshal(body, &payload)

	return &Error{
		StatusCode: resp.StatusCode,
		ID:         payload.ID,
		Message:    payload.Message,
		URL:        payload.URL,
		RequestID:  resp.Header.Get("Request-Id"),
	}
}

// StatusCode returns the status code of the *Error err wraps or 0 in case err
// wraps none.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the platform.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAmbiguous reports whether err is a 422 from the platform.
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrAmbiguous)
}
