package errors

import (
	"errors"
	"fmt"
)

// DriverError is the base interface for all driver errors.
type DriverError interface {
	error
	IsDriverError() bool
}

// Compile-time verification that all error types implement DriverError.
var (
	_ DriverError = (*ProgramNotFoundError)(nil)
	_ DriverError = (*ShellCommandError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrDriverClosed indicates the driver has been closed and cannot be
	// reused. Create a new driver with New().
	ErrDriverClosed = errors.New("driver closed")
)

// ProgramNotFoundError indicates the external compiler binary was not found
// at spawn time. This is not retried; it is surfaced to the caller as-is.
type ProgramNotFoundError struct {
	Program       string
	SearchedPaths []string
}

func (e *ProgramNotFoundError) Error() string {
	if len(e.SearchedPaths) > 0 {
		return fmt.Sprintf("%s not found in: %v", e.Program, e.SearchedPaths)
	}

	return fmt.Sprintf("%s not found", e.Program)
}

// IsDriverError implements DriverError.
func (e *ProgramNotFoundError) IsDriverError() bool { return true }

// ShellCommandError indicates a failure touching the external compiler
// process: a spawn failure, a write failure on its stdin, an explicit "err"
// sentinel, or the output stream closing before any sentinel.
//
// Err carries the underlying OS error for spawn and write failures. It is nil
// for the sentinel and closed-stream cases: the wire protocol carries no
// structured error payload, so there is no further detail to report.
type ShellCommandError struct {
	Program string
	Err     error
}

func (e *ShellCommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Program, e.Err)
	}

	return fmt.Sprintf("%s failed", e.Program)
}

func (e *ShellCommandError) Unwrap() error {
	return e.Err
}

// IsDriverError implements DriverError.
func (e *ShellCommandError) IsDriverError() bool { return true }
