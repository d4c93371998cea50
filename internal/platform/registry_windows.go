//go:build windows

package platform

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// installKeys are the registry locations written by the office
// installers. Each key holds one subkey per installed version whose
// "Path" value names the soffice binary.
var installKeys = []string{
	`SOFTWARE\OpenOffice\OpenOffice`,
	`SOFTWARE\OpenOffice.org\OpenOffice.org`,
	`SOFTWARE\LibreOffice\LibreOffice`,
}

// RegistryInstallPaths returns office installation roots recorded in
// the Windows registry, machine-wide installs first.
func RegistryInstallPaths() []string {
	var paths []string
	for _, root := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
		for _, key := range installKeys {
			paths = append(paths, readInstallKey(root, key)...)
		}
	}
	return paths
}

func readInstallKey(root registry.Key, path string) []string {
	key, err := registry.OpenKey(root, path, registry.READ)
	if err != nil {
		return nil
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, sub := range subkeys {
		vk, err := registry.OpenKey(key, sub, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		v, _, err := vk.GetStringValue("Path")
		vk.Close()
		if err != nil || v == "" {
			continue
		}
		// Path names <install>\program\soffice.exe.
		dirs = append(dirs, filepath.Dir(filepath.Dir(v)))
	}
	return dirs
}
