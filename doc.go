// Package beamdriver drives a persistent external BEAM compiler process.
//
// The driver keeps one long-lived escript worker alive across many compile
// calls, speaks a minimal line-oriented protocol to it, and reports
// success or failure plus optional pass-through diagnostics back to the
// caller. It does not compile anything itself: the actual translation to
// BEAM bytecode happens in the worker, outside this module.
//
// # Basic Usage
//
//	driver := beamdriver.New(
//	    beamdriver.WithLogger(slog.Default()),
//	)
//	defer driver.Close()
//
//	err := driver.Compile(ctx, "/build/dev", "/build/packages",
//	    []string{"my_app.erl", "my_app_ffi.erl"},
//	    beamdriver.SinkForward,
//	)
//
// The first Compile locates the escript binary, writes the driver script
// under the output directory, and spawns the worker. Later calls reuse the
// worker while it is alive and transparently respawn it when it has died.
// A failed compile request is never retried; only a dead process is
// replaced, and only before the next request.
//
// Compile blocks until the worker answers with a sentinel line or its
// output stream closes. There is no timeout: a hung worker hangs the
// caller. Calls from multiple goroutines are serialized internally, one
// exchange at a time.
package beamdriver
