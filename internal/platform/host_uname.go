//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package platform

import (
	"golang.org/x/sys/unix"
)

// unameHost reads sysname and machine from uname(2),
// e.g. Linux/x86_64, Darwin/arm64, Linux/aarch64.
func unameHost() (Host, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Host{}, err
	}
	return Host{
		OS:   unix.ByteSliceToString(u.Sysname[:]),
		Arch: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
