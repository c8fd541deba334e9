package beamdriver

import "github.com/riftlang/beamdriver/internal/errors"

// Re-export error types from internal package

// DriverError is the base interface for all driver errors.
type DriverError = errors.DriverError

// ProgramNotFoundError indicates the external compiler binary was not found.
type ProgramNotFoundError = errors.ProgramNotFoundError

// ShellCommandError indicates a failure touching the external compiler
// process: a spawn failure, a stdin write failure, an explicit "err"
// sentinel, or the output stream closing before any sentinel. The latter two
// carry no underlying error; the protocol has no detail to give.
type ShellCommandError = errors.ShellCommandError

// Re-export sentinel errors from internal package.
var (
	// ErrDriverClosed indicates the driver has been closed and cannot be
	// reused.
	ErrDriverClosed = errors.ErrDriverClosed
)
