// Package supervisor owns the external compile worker process.
//
// A Supervisor holds at most one Process at a time: the worker's exec.Cmd
// plus its stdin and stdout pipes. It handles process lifecycle management:
// spawning the worker (materializing the driver script first), probing
// liveness without blocking, replacing a dead worker, and kill-then-reap
// teardown so no zombie is left behind.
package supervisor
