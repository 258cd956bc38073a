package optimizer

import "fmt"

// ValidationError indicates the resume is too incomplete to optimize. It is
// raised synchronously, before any network call is issued.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resume is not ready for optimization: %v", e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// RewriteError indicates the rewrite collaborator failed. The optimization
// aborts as a whole; no partial result is produced.
type RewriteError struct {
	Message string
	Cause   error
}

func (e *RewriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewrite failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rewrite failed: %s", e.Message)
}

func (e *RewriteError) Unwrap() error {
	return e.Cause
}
