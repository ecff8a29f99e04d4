package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingInput is returned when the credential or the prompt text is empty.
var ErrMissingInput = errors.New("missing api_key or text")

// UpstreamError reports any failure calling the provider or reading its reply.
// The conversation window is never modified when one is returned.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Timeout reports whether the upstream call ran out of time.
func (e *UpstreamError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}
