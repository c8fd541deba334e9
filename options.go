package beamdriver

import (
	"io"
	"log/slog"

	"github.com/riftlang/beamdriver/internal/supervisor"
)

// DefaultArtifactDir is the artifact subdirectory name under the output
// directory: it holds the intermediate sources handed to the worker and the
// driver script itself.
const DefaultArtifactDir = "_rift_artifacts"

// FileSystemWriter materializes the driver script before each process spawn.
// The default implementation writes through the local filesystem.
type FileSystemWriter = supervisor.FileSystemWriter

// Option configures a Driver using the functional options pattern.
type Option func(*driverOptions)

type driverOptions struct {
	Logger           *slog.Logger
	EscriptPath      string
	ArtifactDir      string
	Stdout           io.Writer
	FS               FileSystemWriter
	SkipVersionCheck bool
}

// applyOptions applies functional options to a driverOptions struct.
func applyOptions(opts []Option) *driverOptions {
	options := &driverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *driverOptions) {
		o.Logger = logger
	}
}

// WithEscriptPath sets the explicit path to the escript binary.
// If not set, the binary is searched in PATH and common install locations.
func WithEscriptPath(path string) Option {
	return func(o *driverOptions) {
		o.EscriptPath = path
	}
}

// WithArtifactDir overrides the artifact subdirectory name under the output
// directory. Defaults to DefaultArtifactDir.
func WithArtifactDir(dir string) Option {
	return func(o *driverOptions) {
		o.ArtifactDir = dir
	}
}

// WithStdout sets the writer that receives forwarded pass-through output.
// Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *driverOptions) {
		o.Stdout = w
	}
}

// WithFileSystem sets the writer used to materialize the driver script
// before each spawn. Defaults to the local filesystem.
func WithFileSystem(fs FileSystemWriter) Option {
	return func(o *driverOptions) {
		o.FS = fs
	}
}

// WithSkipVersionCheck disables the OTP release probe during discovery.
func WithSkipVersionCheck() Option {
	return func(o *driverOptions) {
		o.SkipVersionCheck = true
	}
}
