//go:build !windows

package platform

// RegistryInstallPaths is a Windows-only discovery source; on every
// other platform it reports nothing.
func RegistryInstallPaths() []string { return nil }
