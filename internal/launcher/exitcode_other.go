//go:build !unix

package launcher

import (
	"os"
)

// exitStatus returns the child's exit code
func exitStatus(state *os.ProcessState) int {
	if state == nil {
		return ExitFailure
	}
	return state.ExitCode()
}
