package generation

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the service answers without any text.
var ErrEmptyResponse = errors.New("generation service returned no text")

// ServiceError is a transport, auth or model failure at the service boundary.
// It is never retried.
type ServiceError struct {
	Provider Provider
	Code     int    // HTTP status when the backend reported one
	Status   string // backend status string, e.g. PERMISSION_DENIED
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("generation service error: %v", e.Err)
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s service error (%d %s): %v", e.Provider, e.Code, e.Status, e.Err)
	}
	return fmt.Sprintf("%s service error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Temporary reports whether the failure looks transient (rate limit, server
// side, deadline). The API reports it as "retryable"; nothing retries.
func (e *ServiceError) Temporary() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	return e.Code == 429 || e.Code >= 500
}

// wrapServiceError converts any backend error into a *ServiceError, keeping
// the HTTP status from genai.APIError when present.
func wrapServiceError(provider Provider, err error) error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}

	out := &ServiceError{Provider: provider, Err: err}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		out.Code = apiErr.Code
		out.Status = apiErr.Status
	}
	return out
}
