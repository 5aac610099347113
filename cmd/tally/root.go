package main

import (
	"flag"

	"github.com/spf13/cobra"
	"github.com/wharflab/tally-launcher/internal/launcher"
	"github.com/wharflab/tally-launcher/internal/version"
	"k8s.io/klog/v2"
)

// argsTerminator is prepended to the arguments before cobra sees them, so
// that command lookup stops there and cobra's hidden __complete commands
// can never match a forwarded argument.
const argsTerminator = "--"

// newRootCmd builds the tally command. It has no flags or subcommands of its
// own: every argument is handed to the platform binary, and the binary's exit
// code is stored in exitCode.
func newRootCmd(l *launcher.Launcher, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "tally [args...]",
		Short: "Run the tally binary for this platform",
		Long: `Launcher for tally, a linter for Dockerfiles and Containerfiles.

It selects the prebuilt tally binary matching the host operating system
and architecture from the package's bin directory and runs it with all
arguments unchanged, exiting with the binary's exit code.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsTerminator {
				args = args[1:]
			}
			klog.V(2).Infof("tally launcher %s", version.String())
			*exitCode = l.Run(args)
			return nil
		},
	}
}

// execute runs cmd with args forwarded verbatim
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{argsTerminator}, args...))
	return cmd.Execute()
}

// initLogging sets the klog verbosity without exposing any flags on the CLI
func initLogging(verbosity string) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	return fs.Set("v", verbosity)
}
