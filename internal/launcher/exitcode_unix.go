//go:build unix

package launcher

import (
	"os"
	"syscall"
)

// signalExitBase is added to the signal number for children killed by a signal
const signalExitBase = 128

// exitStatus converts the child's wait status into the launcher's exit code.
// A child killed by signal N yields 128+N, as a shell would report it.
// This differs from wrappers that exit with the negative returncode -N,
// which the OS truncates to 256-N (SIGTERM gives 241, not 143): the status
// matches what running the binary directly from a shell reports.
func exitStatus(state *os.ProcessState) int {
	if state == nil {
		return ExitFailure
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return signalExitBase + int(ws.Signal())
	}
	return state.ExitCode()
}
