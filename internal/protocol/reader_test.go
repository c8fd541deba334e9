package protocol

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftlang/beamdriver/internal/errors"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadUntilSentinel_Success(t *testing.T) {
	var sink strings.Builder

	err := ReadUntilSentinel(context.Background(), newReader("compiling foo\nok\n"), "escript", &sink)

	require.NoError(t, err)
	require.Equal(t, "compiling foo\n", sink.String())
}

func TestReadUntilSentinel_ErrSentinel(t *testing.T) {
	err := ReadUntilSentinel(context.Background(), newReader("err\n"), "escript", io.Discard)

	var shellErr *errors.ShellCommandError

	require.ErrorAs(t, err, &shellErr)
	require.NoError(t, shellErr.Unwrap())
}

func TestReadUntilSentinel_StreamClosedWithoutSentinel(t *testing.T) {
	var sink strings.Builder

	err := ReadUntilSentinel(context.Background(), newReader("still working\n"), "escript", &sink)

	// Indistinguishable, in error kind and detail, from an explicit "err".
	var shellErr *errors.ShellCommandError

	require.ErrorAs(t, err, &shellErr)
	require.NoError(t, shellErr.Unwrap())
	require.Equal(t, "still working\n", sink.String())
}

func TestReadUntilSentinel_EmptyStream(t *testing.T) {
	err := ReadUntilSentinel(context.Background(), newReader(""), "escript", io.Discard)

	var shellErr *errors.ShellCommandError

	require.ErrorAs(t, err, &shellErr)
}

func TestReadUntilSentinel_SentinelWithoutTrailingNewline(t *testing.T) {
	err := ReadUntilSentinel(context.Background(), newReader("ok"), "escript", io.Discard)

	require.NoError(t, err)
}

func TestReadUntilSentinel_DiscardsWhenSinkIsDiscard(t *testing.T) {
	err := ReadUntilSentinel(context.Background(), newReader("noise\nmore noise\nok\n"), "escript", io.Discard)

	require.NoError(t, err)
}

func TestReadUntilSentinel_ForwardsOutputBeforeFailure(t *testing.T) {
	var sink strings.Builder

	err := ReadUntilSentinel(context.Background(), newReader("warning: unused variable\nerr\n"), "escript", &sink)

	require.Error(t, err)
	require.Equal(t, "warning: unused variable\n", sink.String())
}

func TestReadUntilSentinel_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ReadUntilSentinel(ctx, newReader("ok\n"), "escript", io.Discard)

	require.ErrorIs(t, err, context.Canceled)

	var shellErr *errors.ShellCommandError

	require.False(t, stderrors.As(err, &shellErr))
}
