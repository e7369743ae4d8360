package main

import "fmt"

const (
	exitFailure  = 1
	exitInvalid  = 2
	exitCanceled = 130
)

// exitError carries a specific process exit code. A silent exitError has
// already reported itself.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}
