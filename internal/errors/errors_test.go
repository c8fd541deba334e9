package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgramNotFoundError(t *testing.T) {
	err := &ProgramNotFoundError{
		Program:       "escript",
		SearchedPaths: []string{"$PATH", "/usr/local/bin/escript"},
	}

	require.Equal(
		t,
		"escript not found in: [$PATH /usr/local/bin/escript]",
		err.Error(),
	)
	require.True(t, err.IsDriverError())
}

func TestProgramNotFoundError_NoSearchedPaths(t *testing.T) {
	err := &ProgramNotFoundError{Program: "escript"}

	require.Equal(t, "escript not found", err.Error())
	require.True(t, err.IsDriverError())
}

func TestShellCommandError_WithUnderlyingError(t *testing.T) {
	root := errors.New("broken pipe")
	err := &ShellCommandError{
		Program: "escript",
		Err:     root,
	}

	require.Equal(t, "escript failed: broken pipe", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsDriverError())
}

func TestShellCommandError_NoDetail(t *testing.T) {
	err := &ShellCommandError{Program: "escript"}

	require.Equal(t, "escript failed", err.Error())
	require.NoError(t, err.Unwrap())
	require.True(t, err.IsDriverError())
}
