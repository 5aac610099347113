//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package platform

// unameHost returns the compiled-in platform where uname(2) is not available.
func unameHost() (Host, error) {
	return runtimeHost(), nil
}
