package launcher

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"k8s.io/klog/v2"
)

// Stdio holds the streams handed to the child process
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ProcessStdio returns the launcher's own standard streams
func ProcessStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Result is the outcome of one spawn-and-wait.
// Err is set only when the child could not be run; a child that ran and
// exited non-zero is reported through ExitCode alone.
type Result struct {
	ExitCode int
	Err      error
}

// Spawned reports whether the child actually ran
func (r Result) Spawned() bool {
	return r.Err == nil
}

// Delegate runs path with args, wiring stdio straight through, and blocks
// until it exits. *os.File streams are inherited by the child as-is.
func Delegate(path string, args []string, stdio Stdio) Result {
	cmd := exec.Command(path, args...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	// Ctrl-C reaches the whole foreground process group; let the child
	// decide what to do with it and report its status afterwards.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	klog.V(4).Infof("Launching: path=%s args=%q", path, args)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitStatus(exitErr.ProcessState)
			klog.V(4).Infof("Child exited: path=%s code=%d", path, code)
			return Result{ExitCode: code}
		}
		return Result{ExitCode: ExitFailure, Err: err}
	}

	klog.V(4).Infof("Child exited: path=%s code=0", path)
	return Result{ExitCode: exitStatus(cmd.ProcessState)}
}
