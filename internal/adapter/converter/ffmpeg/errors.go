package ffmpeg

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPath        = errors.New("path is empty")
	ErrInvalidPath      = errors.New("path contains a null byte")
	ErrToolNotStarted   = errors.New("tool could not be started")
	ErrUnparsableOutput = errors.New("unparsable probe output")
)

// StartError reports a tool that never ran: missing binary, permissions,
// or a context that was already done.
type StartError struct {
	Tool string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Tool, e.Err)
}

func (e *StartError) Unwrap() []error {
	return []error{ErrToolNotStarted, e.Err}
}

// ExitError reports a tool that ran and did not exit with status 0.
// Code is -1 when the process was terminated by a signal. Err is the
// context error when the invocation was cancelled or timed out.
type ExitError struct {
	Tool   string
	Code   int
	State  string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s failed (%s)", e.Tool, e.State)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	for i := 0; i < len(path); i++ {
		if path[i] == 0 {
			return ErrInvalidPath
		}
	}
	return nil
}
