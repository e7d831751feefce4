package cli

import "fmt"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process exit code for err up to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func failure(err error) error {
	return &ExitError{Code: ExitFailure, Err: err}
}

func usage(err error) error {
	return &ExitError{Code: ExitUsage, Err: err}
}
