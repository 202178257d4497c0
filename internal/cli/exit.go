package cli

import (
	"errors"
	"fmt"
)

// Exit codes reported by the CLI.
const (
	ExitOK           = 0
	ExitCommandError = 2
)

// ExitError carries an exit code along with the wrapped failure.
type ExitError struct {
	Code int
	Msg  string
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError wraps err with a message and an exit code.
func WrapExitError(code int, msg string, err error) error {
	return &ExitError{Code: code, Msg: msg, Err: err}
}

// ExitCode extracts the exit code from err, defaulting to ExitCommandError
// for plain errors and ExitOK for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitCommandError
}
