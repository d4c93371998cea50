// Package platform identifies the host operating system family and
// its platform-specific installation discovery sources.
package platform

import "runtime"

// Platform enumerates the OS families that place office installations
// in different default locations.
type Platform int

const (
	Linux Platform = iota
	Darwin
	Windows
	Other
)

// Detect resolves the Platform of the running process. It is cheap and
// deterministic, so callers resolve it once at startup and pass the
// value around.
func Detect() Platform {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	default:
		return Other
	}
}

func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	default:
		return "other"
	}
}
