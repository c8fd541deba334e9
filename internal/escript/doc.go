// Package escript locates the Erlang escript binary and carries the embedded
// driver script the compile worker runs.
//
// Discovery searches in the following order:
//  1. Explicit path in Config.Path (if provided)
//  2. System PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, /opt/homebrew/bin)
//
// During discovery the installed OTP release is probed and a warning is
// logged when it is below MinimumOTPRelease. The probe is best-effort; probe
// failures are ignored. It can be skipped via Config.SkipVersionCheck or the
// BEAMDRIVER_SKIP_VERSION_CHECK environment variable.
package escript
