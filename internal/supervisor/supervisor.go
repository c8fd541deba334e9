package supervisor

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/riftlang/beamdriver/internal/errors"
)

// FileSystemWriter materializes the driver script before each spawn. It is
// the only filesystem capability this package consumes.
type FileSystemWriter interface {
	Write(path string, content []byte) error
}

// OSWriter is the default FileSystemWriter, writing through the local
// filesystem and creating parent directories as needed.
type OSWriter struct{}

// Write implements FileSystemWriter.
func (OSWriter) Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, content, 0o644)
}

// Compile-time verification that OSWriter implements FileSystemWriter.
var _ FileSystemWriter = OSWriter{}

// Process is one live compile worker: the spawned command and its two pipes.
// It exists only while the worker is believed alive.
type Process struct {
	cmd        *exec.Cmd
	Stdin      io.WriteCloser
	Stdout     *bufio.Reader
	stdoutRead *os.File
	exited     chan struct{}
}

// Alive reports whether the worker has not yet been observed to exit. It
// never blocks: the reaper goroutine closes exited once Wait returns, so this
// only checks whether exit has already occurred.
func (p *Process) Alive() bool {
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

// Pid returns the worker's OS process ID.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Config holds everything needed to spawn a compile worker.
type Config struct {
	// Program is the external compiler binary, as resolved by discovery.
	Program string

	// ScriptName is the driver script's file name under the artifact
	// directory.
	ScriptName string

	// Script is the driver script content, written before each spawn.
	Script []byte

	// ArtifactDir is the artifact subdirectory name under the output
	// directory.
	ArtifactDir string

	// FS materializes the driver script.
	FS FileSystemWriter

	// Logger is optional; nil means silent.
	Logger *slog.Logger
}

// Supervisor owns at most one compile worker process. A new spawn always
// replaces, never coexists with, an old one. Not safe for concurrent use;
// the driver serializes access.
type Supervisor struct {
	cfg  Config
	log  *slog.Logger
	proc *Process
}

// New creates a Supervisor. No process is spawned until EnsureLive.
func New(cfg Config) *Supervisor {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Supervisor{
		cfg: cfg,
		log: log.With("component", "supervisor"),
	}
}

// EnsureLive returns the owned worker process, spawning a replacement when
// none is owned or the liveness probe says the current one has exited.
func (s *Supervisor) EnsureLive(out string) (*Process, error) {
	if s.proc != nil {
		if s.proc.Alive() {
			return s.proc, nil
		}

		s.log.Debug("Compile worker exited, respawning", "pid", s.proc.Pid())
		// Already reaped by the reaper; only the pipe ends remain.
		s.release(s.proc)
		s.proc = nil
	}

	proc, err := s.spawn(out)
	if err != nil {
		return nil, err
	}

	s.proc = proc

	return proc, nil
}

// MarkDead discards the owned process so the next EnsureLive respawns. The
// process is killed and reaped first if it had not already exited. Used when
// the protocol state of the worker is no longer trustworthy.
func (s *Supervisor) MarkDead() {
	if s.proc == nil {
		return
	}

	s.terminate(s.proc)
	s.proc = nil
}

// Close tears the supervisor down, killing and reaping any owned process.
// Cleanup is best-effort: errors from kill and wait are ignored, there is no
// caller left to report them to.
func (s *Supervisor) Close() error {
	s.MarkDead()

	return nil
}

// terminate kills the worker and waits for the reaper to collect its exit
// status, so no zombie is left behind.
func (s *Supervisor) terminate(p *Process) {
	s.log.Debug("Killing compile worker", "pid", p.Pid())

	_ = p.cmd.Process.Kill()
	<-p.exited
	s.release(p)
}

// release closes the pipe ends of a process that has already been reaped.
func (s *Supervisor) release(p *Process) {
	_ = p.Stdin.Close()
	_ = p.stdoutRead.Close()
}

// spawn materializes the driver script and launches a fresh worker with its
// stdin and stdout piped. The worker's stderr stays on the parent's stderr.
func (s *Supervisor) spawn(out string) (*Process, error) {
	scriptPath := filepath.Join(out, s.cfg.ArtifactDir, s.cfg.ScriptName)

	if err := s.cfg.FS.Write(scriptPath, s.cfg.Script); err != nil {
		return nil, fmt.Errorf("write driver script: %w", err)
	}

	s.log.Debug("Spawning compile worker", "program", s.cfg.Program, "script", scriptPath)

	//nolint:gosec // G204: launching the discovered compiler binary is the whole point
	cmd := exec.Command(s.cfg.Program, scriptPath)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &errors.ShellCommandError{Program: s.cfg.Program, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	// The stdout pipe is created by hand rather than with StdoutPipe: the
	// reaper calls Wait as soon as the worker exits, and Wait closes pipes
	// it created, which could race the response reader out of buffered
	// output. With our own pipe the read end stays open until terminate.
	stdoutRead, stdoutWrite, err := os.Pipe()
	if err != nil {
		_ = stdin.Close()

		return nil, &errors.ShellCommandError{Program: s.cfg.Program, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	cmd.Stdout = stdoutWrite

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		_ = stdoutRead.Close()
		_ = stdoutWrite.Close()

		// exec.ErrNotFound covers bare names missing from PATH,
		// fs.ErrNotExist covers explicit paths that have vanished.
		if stderrors.Is(err, exec.ErrNotFound) || stderrors.Is(err, fs.ErrNotExist) {
			return nil, &errors.ProgramNotFoundError{Program: s.cfg.Program}
		}

		return nil, &errors.ShellCommandError{Program: s.cfg.Program, Err: fmt.Errorf("start process: %w", err)}
	}

	// The parent's copy of the write end must go away so the read end sees
	// EOF once the worker exits.
	_ = stdoutWrite.Close()

	proc := &Process{
		cmd:        cmd,
		Stdin:      stdin,
		Stdout:     bufio.NewReader(stdoutRead),
		stdoutRead: stdoutRead,
		exited:     make(chan struct{}),
	}

	// Reaper: collects the exit status as soon as the worker dies, which
	// is what makes Alive a non-blocking probe.
	go func() {
		_ = cmd.Wait()
		close(proc.exited)
	}()

	s.log.Info("Compile worker started", "pid", cmd.Process.Pid)

	return proc, nil
}
