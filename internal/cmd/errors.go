package cmd

import (
	"errors"
	"fmt"

	"github.com/xdg/pathcalc"
)

// Process exit codes.
const (
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// ExitCodeError carries the process exit code for a failed command.
type ExitCodeError struct {
	Code int
	Err  error
}

// NewExitCodeError wraps err with an exit code. err may be nil.
func NewExitCodeError(code int, err error) *ExitCodeError {
	return &ExitCodeError{Code: code, Err: err}
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// exitError maps err to an exit code: ExitInvalidInput for inputs that can
// never succeed, ExitFailure for everything else.
func exitError(err error) *ExitCodeError {
	if errors.Is(err, pathcalc.ErrInvalidInput) {
		return NewExitCodeError(ExitInvalidInput, err)
	}
	return NewExitCodeError(ExitFailure, err)
}
