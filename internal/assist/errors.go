// Package assist orchestrates the AI-assist operations of the CV builder.
package assist

import (
	"errors"
	"fmt"
)

// PrerequisiteError indicates a required field was blank, so the remote
// service was never contacted and the document is unchanged.
type PrerequisiteError struct {
	Message string
}

func (e *PrerequisiteError) Error() string {
	return e.Message
}

// RemoteError indicates the remote completion service failed or returned an
// unusable response; the target field is left unchanged.
type RemoteError struct {
	Op    string
	Cause error
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s failed: empty response", e.Op)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// ErrSuperseded indicates a newer assist call for the same row and field
// began while this one was in flight; the stale result was discarded.
var ErrSuperseded = errors.New("assist result superseded by a newer request")
