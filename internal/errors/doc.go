// Package errors defines error types for the BEAM compiler driver.
//
// The taxonomy is deliberately small: every failure touching the external
// compiler process is either ProgramNotFoundError (the escript binary could
// not be located at spawn time) or ShellCommandError (everything else). All
// error types support error unwrapping and can be checked using errors.Is,
// errors.As, and errors.AsType.
package errors
