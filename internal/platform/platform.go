// Package platform resolves the host operating system and architecture into
// the identifier used by the bundled binary directory layout, and builds the
// path of the binary for that identifier.
package platform

import (
	"strings"
)

const (
	osWindows = "windows"
	exeSuffix = ".exe"
)

// archAliases maps raw host architecture names to the names used in the
// binary directory layout. Read-only; anything missing passes through.
var archAliases = map[string]string{
	"amd64":   "x86_64",
	"aarch64": "arm64",
}

// Host is the raw operating system and architecture as reported by the host.
type Host struct {
	OS   string
	Arch string
}

// Identifier is the canonical platform name pair used in the binary layout.
type Identifier struct {
	OS   string
	Arch string
}

// NormalizeArch lower-cases raw and maps it through the normalization table.
// Names without an entry are returned lower-cased but otherwise unchanged.
func NormalizeArch(raw string) string {
	arch := strings.ToLower(raw)
	if mapped, ok := archAliases[arch]; ok {
		return mapped
	}
	return arch
}

// Resolve derives the Identifier for h. It never fails: an unknown platform
// simply yields an identifier for which no binary is installed.
func Resolve(h Host) Identifier {
	return Identifier{
		OS:   strings.ToLower(h.OS),
		Arch: NormalizeArch(h.Arch),
	}
}

// Current resolves the identifier of the running host
func Current() Identifier {
	return Resolve(DetectHost())
}

// Extension returns the executable file extension for the identifier's OS
func (id Identifier) Extension() string {
	if id.IsWindows() {
		return exeSuffix
	}
	return ""
}

// String returns "<os>-<arch>"
func (id Identifier) String() string {
	return id.OS + "-" + id.Arch
}

// IsWindows returns true if the identifier names Windows
func (id Identifier) IsWindows() bool {
	return id.OS == osWindows
}
