package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wharflab/tally-launcher/internal/launcher"
	"k8s.io/klog/v2"
)

// logVerbosity is the klog -v level, set via ldflags for debug builds:
//
//	go build -ldflags "-X main.logVerbosity=4" ./cmd/tally
var logVerbosity = "0"

func main() {
	// Double-clicking tally.exe must still run the binary
	cobra.MousetrapHelpText = ""

	if err := initLogging(logVerbosity); err != nil {
		klog.Warningf("Invalid log verbosity %q: %v", logVerbosity, err)
	}

	exitCode := 0
	rootCmd := newRootCmd(launcher.New(), &exitCode)
	if err := execute(rootCmd, os.Args[1:]); err != nil {
		exitCode = launcher.ExitFailure
	}
	klog.Flush()
	os.Exit(exitCode)
}
