// Package platform reports the operating system the app runs on, for the
// settings whose defaults differ per platform.
package platform

import "runtime"

type Platform struct {
	OS string
}

// Current returns the platform of the running binary.
func Current() Platform {
	return Platform{OS: runtime.GOOS}
}

func (p Platform) IsAndroid() bool { return p.OS == "android" }
func (p Platform) IsWindows() bool { return p.OS == "windows" }
func (p Platform) IsLinux() bool   { return p.OS == "linux" }

// DefaultCSD reports whether the app draws its own window decorations by
// default. Only Windows and Linux desktops do.
func (p Platform) DefaultCSD() bool {
	return p.IsWindows() || p.IsLinux()
}

func (p Platform) String() string {
	return p.OS
}
