package escript

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/riftlang/beamdriver/internal/errors"
)

const (
	// Program is the external compiler binary name searched for on PATH.
	Program = "escript"

	// MinimumOTPRelease is the oldest OTP release the compile worker is
	// known to work with.
	MinimumOTPRelease = 26

	// VersionCheckTimeout bounds the OTP release probe.
	VersionCheckTimeout = 2 * time.Second
)

// Config holds configuration for escript discovery.
type Config struct {
	// Path is an explicit escript path that skips the search.
	Path string

	// SkipVersionCheck skips the OTP release probe. Can also be set via
	// the BEAMDRIVER_SKIP_VERSION_CHECK env var.
	SkipVersionCheck bool

	// Logger is optional; nil means silent.
	Logger *slog.Logger
}

// Discover locates the escript binary and probes its OTP release.
// Returns the path to the binary, or *errors.ProgramNotFoundError.
func Discover(ctx context.Context, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	path, err := find(cfg, log)
	if err != nil {
		return "", err
	}

	log.Debug("Found escript binary", "path", path)
	checkOTPRelease(ctx, cfg, log, path)

	return path, nil
}

func find(cfg *Config, log *slog.Logger) (string, error) {
	// An explicit path is used and only it
	if cfg.Path != "" {
		if _, err := os.Stat(cfg.Path); err == nil {
			return cfg.Path, nil
		}

		log.Debug("Explicit escript path not found", "path", cfg.Path)

		return "", &errors.ProgramNotFoundError{
			Program:       Program,
			SearchedPaths: []string{cfg.Path},
		}
	}

	searchedPaths := make([]string, 0, 4)

	if path, err := exec.LookPath(Program); err == nil {
		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	commonPaths := []string{
		"/usr/local/bin/escript",
		"/usr/bin/escript",
		"/opt/homebrew/bin/escript",
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)

		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	log.Warn("escript not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.ProgramNotFoundError{
		Program:       Program,
		SearchedPaths: searchedPaths,
	}
}

// checkOTPRelease probes the installed OTP release by running a one-line
// escript. Logs a warning when the release is below minimum. All probe
// errors are silently ignored.
func checkOTPRelease(ctx context.Context, cfg *Config, log *slog.Logger, path string) {
	if cfg.SkipVersionCheck {
		log.Debug("Skipping OTP release check (configured)")

		return
	}

	if os.Getenv("BEAMDRIVER_SKIP_VERSION_CHECK") != "" {
		log.Debug("Skipping OTP release check (BEAMDRIVER_SKIP_VERSION_CHECK set)")

		return
	}

	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	probe := filepath.Join(os.TempDir(), "beamdriver_otp_probe.erl")

	const probeSource = `main(_) -> io:format("~s", [erlang:system_info(otp_release)]).` + "\n"
	if err := os.WriteFile(probe, []byte(probeSource), 0o644); err != nil {
		log.Debug("OTP release probe failed", "error", err)

		return
	}

	out, err := exec.CommandContext(ctx, path, probe).Output()
	if err != nil {
		log.Debug("OTP release probe failed", "error", err)

		return
	}

	release, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		log.Debug("Could not parse OTP release", "output", string(out))

		return
	}

	if release < MinimumOTPRelease {
		log.Warn("Installed OTP release is older than supported",
			"release", release,
			"minimum_required", MinimumOTPRelease,
		)
	} else {
		log.Debug("OTP release check passed", "release", release, "minimum", MinimumOTPRelease)
	}
}
