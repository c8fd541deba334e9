package protocol

import (
	"bufio"
	"context"
	"io"

	"github.com/riftlang/beamdriver/internal/errors"
)

// ReadUntilSentinel consumes lines from r until a sentinel terminates the
// exchange. Pass-through lines are copied verbatim (terminators included) to
// sink; sink write errors are ignored, matching how diagnostic output is
// best-effort everywhere else.
//
// An explicit "err" sentinel and the stream closing before any sentinel
// report the same *errors.ShellCommandError with no detail: the protocol
// cannot distinguish "worker reported failure" from "worker died
// mid-response". Callers that need the distinction would have to extend the
// wire format first.
//
// ctx is checked between lines only. A read blocked on a hung worker is not
// interruptible; there is no timeout.
func ReadUntilSentinel(ctx context.Context, r *bufio.Reader, program string, sink io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, readErr := r.ReadString('\n')

		// A final line without a terminator still counts, so classify
		// before looking at the read error.
		if len(text) > 0 {
			switch line := ClassifyLine(text); line.Kind {
			case LineOK:
				return nil
			case LineErr:
				return &errors.ShellCommandError{Program: program}
			case LinePassThrough:
				_, _ = io.WriteString(sink, line.Text)
			}
		}

		if readErr != nil {
			return &errors.ShellCommandError{Program: program}
		}
	}
}
