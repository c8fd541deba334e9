package beamdriver

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/riftlang/beamdriver/internal/errors"
	"github.com/riftlang/beamdriver/internal/escript"
	"github.com/riftlang/beamdriver/internal/protocol"
	"github.com/riftlang/beamdriver/internal/supervisor"
)

// OutputSink selects what happens to pass-through worker output for one
// Compile call. Sentinel lines are never forwarded either way.
type OutputSink int

const (
	// SinkForward copies pass-through lines to the driver's stdout writer.
	SinkForward OutputSink = iota

	// SinkDiscard drops pass-through lines.
	SinkDiscard
)

// Driver keeps one external BEAM compiler process alive across compile
// calls. The zero value is not usable; create one with New and release it
// with Close.
type Driver struct {
	log  *slog.Logger
	opts *driverOptions

	mu      sync.Mutex // serializes whole compile exchanges
	program string
	sup     *supervisor.Supervisor
	closed  bool
}

// New creates a Driver. No external process is spawned until the first
// Compile call.
func New(opts ...Option) *Driver {
	o := applyOptions(opts)

	log := o.Logger
	if log == nil {
		log = NopLogger()
	}

	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}

	if o.FS == nil {
		o.FS = supervisor.OSWriter{}
	}

	if o.ArtifactDir == "" {
		o.ArtifactDir = DefaultArtifactDir
	}

	return &Driver{
		log:  log.With("component", "driver"),
		opts: o,
	}
}

// Compile sends one compile request for the given module set and blocks
// until the worker answers. out is the build output directory, lib the
// directory holding compiled dependencies. Pass-through diagnostics are
// forwarded or discarded per sink; they are shown regardless of the eventual
// sentinel, so callers may see worker output even on failure.
//
// A dead worker is transparently replaced before the request is sent. A
// failed request is not retried.
//
// ctx is honored before the request is written and between response lines.
// A read blocked on a hung worker is not interruptible. Cancellation
// mid-exchange discards the worker, since its protocol state is unknown.
func (d *Driver) Compile(ctx context.Context, out, lib string, modules []string, sink OutputSink) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDriverClosed
	}

	log := d.log.With("request_id", ulid.Make().String())

	if err := d.ensureSupervisor(ctx); err != nil {
		return err
	}

	proc, err := d.sup.EnsureLive(out)
	if err != nil {
		return err
	}

	line := protocol.EncodeRequest(out, lib, d.opts.ArtifactDir, modules)
	log.Debug("Sending compile request", "modules", len(modules), "pid", proc.Pid())

	if err := ctx.Err(); err != nil {
		return err
	}

	// Request line and terminator go out in one write; no concurrent
	// writer exists while d.mu is held.
	if _, err := io.WriteString(proc.Stdin, line+"\n"); err != nil {
		log.Error("Failed to write compile request", "error", err)

		return &errors.ShellCommandError{Program: d.program, Err: err}
	}

	var dest io.Writer = io.Discard
	if sink == SinkForward {
		dest = d.opts.Stdout
	}

	if err := protocol.ReadUntilSentinel(ctx, proc.Stdout, d.program, dest); err != nil {
		if ctx.Err() != nil {
			// The worker may still answer the abandoned request later;
			// drop it rather than desynchronize the next exchange.
			d.sup.MarkDead()
		}

		log.Debug("Compile request failed", "error", err)

		return err
	}

	log.Debug("Compile request succeeded")

	return nil
}

// Close tears the driver down, killing and reaping any owned worker process.
// Safe to call multiple times. After Close the driver cannot be reused.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}

	d.closed = true

	if d.sup != nil {
		return d.sup.Close()
	}

	return nil
}

// ensureSupervisor resolves the escript binary on first use and builds the
// supervisor around it.
func (d *Driver) ensureSupervisor(ctx context.Context) error {
	if d.sup != nil {
		return nil
	}

	program, err := escript.Discover(ctx, &escript.Config{
		Path:             d.opts.EscriptPath,
		SkipVersionCheck: d.opts.SkipVersionCheck,
		Logger:           d.log,
	})
	if err != nil {
		return err
	}

	d.program = program
	d.sup = supervisor.New(supervisor.Config{
		Program:     program,
		ScriptName:  escript.ScriptName,
		Script:      escript.Script,
		ArtifactDir: d.opts.ArtifactDir,
		FS:          d.opts.FS,
		Logger:      d.log,
	})

	return nil
}
