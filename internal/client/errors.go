package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API client. Callers should match them with
// errors.Is; the concrete *APIError (when present in the chain) carries the
// HTTP status and the decoded response body.
var (
	// ErrAuthentication means the token endpoint rejected the credentials.
	ErrAuthentication = errors.New("authentication rejected")

	// ErrRequest covers any other non-2xx API response (quota exhaustion,
	// unknown upload id, validation failures, ...).
	ErrRequest = errors.New("request rejected")

	// ErrAnalysisPending means the results summary is not available yet.
	ErrAnalysisPending = errors.New("analysis not complete")

	// ErrAnalysisFailed means the server reported a failed analysis.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrPollTimeout means the polling budget was exhausted while the
	// analysis was still pending.
	ErrPollTimeout = errors.New("polling budget exhausted")
)

// APIError is a non-success response from the ImageZebra API. The body is
// kept as decoded JSON because it often contains validation errors or status
// messages callers want to inspect.
type APIError struct {
	StatusCode int
	Body       map[string]any

	kind error
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%v: status %d", e.kind, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// Message returns the "error" field of the response body, if any.
func (e *APIError) Message() string {
	if s, ok := e.Body["error"].(string); ok {
		return s
	}
	return ""
}
