package summarize

import (
	"errors"
	"fmt"
)

// BackendError wraps a failure from the generative backend. Transient
// failures (rate limits, timeouts, 5xx) are retried by the engine;
// permanent ones surface immediately.
type BackendError struct {
	Transient bool
	Err       error
}

func (e *BackendError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	return fmt.Sprintf("%s backend error: %v", kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func transientErr(err error) *BackendError {
	return &BackendError{Transient: true, Err: err}
}

func permanentErr(err error) *BackendError {
	return &BackendError{Transient: false, Err: err}
}

// IsTransient reports whether err is a retryable backend failure.
func IsTransient(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Transient
}
