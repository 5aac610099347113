// Package launcher locates the platform-specific tally binary shipped next to
// the launcher and runs it, mirroring its exit status.
package launcher

import (
	"github.com/wharflab/tally-launcher/internal/errors"
	"github.com/wharflab/tally-launcher/internal/platform"
	"github.com/wharflab/tally-launcher/internal/tui"
	"k8s.io/klog/v2"
)

const (
	// DefaultTool is the product name used in the binary layout
	DefaultTool = "tally"
	// DefaultIssueURL is where users are sent when no binary ships for their platform
	DefaultIssueURL = "https://github.com/wharflab/tally/issues/new"

	// ExitFailure is returned when the binary cannot be located or started
	ExitFailure = 1
)

// Launcher resolves and runs the bundled binary for the host platform
type Launcher struct {
	tool       string
	issueURL   string
	host       *platform.Host
	locate     platform.Locator
	installDir string
	stdio      Stdio
}

// Option configures a Launcher
type Option func(*Launcher)

// WithTool sets the product name used in the directory layout
func WithTool(tool string) Option {
	return func(l *Launcher) {
		l.tool = tool
	}
}

// WithIssueURL sets the URL shown when the binary is missing
func WithIssueURL(url string) Option {
	return func(l *Launcher) {
		l.issueURL = url
	}
}

// WithHost overrides host detection
func WithHost(h platform.Host) Option {
	return func(l *Launcher) {
		l.host = &h
	}
}

// WithLocator sets how the launcher finds its own executable
func WithLocator(locate platform.Locator) Option {
	return func(l *Launcher) {
		l.locate = locate
	}
}

// WithInstallDir fixes the install directory, bypassing self-location
func WithInstallDir(dir string) Option {
	return func(l *Launcher) {
		l.installDir = dir
	}
}

// WithStdio sets the streams handed to the child and used for diagnostics
func WithStdio(stdio Stdio) Option {
	return func(l *Launcher) {
		l.stdio = stdio
	}
}

// New creates a launcher for the running host
func New(opts ...Option) *Launcher {
	l := &Launcher{
		tool:     DefaultTool,
		issueURL: DefaultIssueURL,
		locate:   platform.ExecutableLocator,
		stdio:    ProcessStdio(),
	}

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Identifier returns the resolved platform identifier
func (l *Launcher) Identifier() platform.Identifier {
	if l.host != nil {
		return platform.Resolve(*l.host)
	}
	return platform.Current()
}

// BinaryPath returns the path of the binary for the host platform.
// It fails only if the launcher cannot locate its own executable.
func (l *Launcher) BinaryPath() (string, error) {
	dir := l.installDir
	if dir == "" {
		var err error
		dir, err = platform.InstallDir(l.locate)
		if err != nil {
			return "", errors.LocateFailed(err)
		}
	}

	id := l.Identifier()
	path := platform.BinaryPath(dir, l.tool, id)
	klog.V(2).Infof("Resolved binary: platform=%s install_dir=%s path=%s", id, dir, path)
	return path, nil
}

// Run resolves the binary, runs it with args and returns the exit code the
// launcher should exit with.
func (l *Launcher) Run(args []string) int {
	out := tui.NewOutput(l.stdio.Err)

	path, err := l.BinaryPath()
	if err != nil {
		out.Error(err.Error())
		return ExitFailure
	}

	ok, err := platform.IsRegularFile(path)
	if err != nil {
		out.Warning(err.Error())
	}
	if !ok {
		out.Error(errors.MissingBinary(path, l.issueURL).Error())
		return ExitFailure
	}

	res := Delegate(path, args, l.stdio)
	if !res.Spawned() {
		out.Error(errors.SpawnFailed(path, res.Err).Error())
		return ExitFailure
	}
	return res.ExitCode
}
