//go:build unix

package launcher

import (
	"os"
	"path/filepath"

	"github.com/wharflab/tally-launcher/internal/platform"
)

var linuxX8664 = platform.Host{OS: "Linux", Arch: "x86_64"}

// installScript writes an executable shell script where the launcher expects
// the binary for host under installDir and returns its path.
func installScript(installDir string, host platform.Host, body string) (string, error) {
	path := platform.BinaryPath(installDir, DefaultTool, platform.Resolve(host))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", err
	}
	return path, nil
}
