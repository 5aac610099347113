package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

// binDirName is the directory under the install dir holding the per-platform binaries
const binDirName = "bin"

// Locator returns the absolute path of the running executable
type Locator func() (string, error)

// ExecutableLocator locates the running executable via os.Executable and
// resolves symlinks, so a launcher linked into a PATH directory still finds
// the directory it was installed into.
func ExecutableLocator() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		klog.V(2).Infof("Failed to resolve symlinks for %s, using it as-is: %v", exe, err)
		return exe, nil
	}
	return resolved, nil
}

// InstallDir returns the directory containing the executable found by locate.
// It never consults the working directory.
func InstallDir(locate Locator) (string, error) {
	if locate == nil {
		locate = ExecutableLocator
	}
	exe, err := locate()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if !filepath.IsAbs(exe) {
		abs, err := filepath.Abs(exe)
		if err != nil {
			return "", fmt.Errorf("failed to make %s absolute: %w", exe, err)
		}
		exe = abs
	}
	return filepath.Dir(exe), nil
}

// BinaryDirName returns the per-platform directory name, e.g. "tally-linux-x86_64"
func BinaryDirName(tool string, id Identifier) string {
	return tool + "-" + id.String()
}

// BinaryName returns the executable file name for tool on id, e.g. "tally.exe"
func BinaryName(tool string, id Identifier) string {
	return tool + id.Extension()
}

// BinaryPath returns <installDir>/bin/<tool>-<os>-<arch>/<tool>[.exe].
// It is pure: it does not touch the filesystem.
func BinaryPath(installDir, tool string, id Identifier) string {
	return filepath.Join(installDir, binDirName, BinaryDirName(tool, id), BinaryName(tool, id))
}

// IsRegularFile reports whether path names a regular file, following symlinks
func IsRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
