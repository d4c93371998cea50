package office

import (
	"path/filepath"

	"github.com/unotools/unogen/internal/platform"
	"github.com/unotools/unogen/pkgs/natver"
)

// Candidate install locations per platform, probed in order. Entries
// are glob patterns; within one pattern the newest existing version
// wins, so "/opt/openoffice.org*" prefers openoffice.org4 over
// openoffice.org3.
var officeCandidates = map[platform.Platform][]string{
	platform.Linux: {
		"/opt/openoffice.org3",
		"/usr/lib/openoffice",
		"/opt/openoffice.org*",
		"/usr/lib*/openoffice*",
	},
	platform.Darwin: {
		"/Applications/OpenOffice.org.app",
		"/opt/ooo/OpenOffice.org.app",
		"/Applications/OpenOffice*.app",
	},
	platform.Windows: {
		"C:/programs/OpenOffice.org3",
		"C:/Programme/OpenOffice.org3",
		"C:/Program Files*/OpenOffice*",
	},
	platform.Other: {
		"/opt/openoffice.org3",
	},
}

var sdkCandidates = map[platform.Platform][]string{
	platform.Linux: {
		"/opt/openoffice.org/basis3.2/sdk",
		"/usr/lib/openoffice/basis3.2/sdk",
		"/opt/openoffice.org/basis*/sdk",
		"/usr/lib*/openoffice/basis*/sdk",
	},
	platform.Darwin: {
		"/Applications/OpenOffice.org3.2_SDK",
		"/opt/ooo/OpenOffice.org3.2_SDK",
		"/Applications/OpenOffice*_SDK",
	},
}

// basisSubdir is the relative path from OfficeHome to the basis
// directory. Platforms not listed use defaultBasisSubdir.
var basisSubdir = map[platform.Platform]string{
	platform.Darwin:  "Contents/basis-link",
	platform.Windows: "Basis",
}

const (
	defaultBasisSubdir = "basis-link"
	ureSubdir          = "ure-link"
)

// scan returns the newest existing directory among the candidate
// patterns, honoring list order: the first pattern with any match
// wins.
func scan(patterns []string) string {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		var dirs []string
		for _, m := range matches {
			if isDir(m) {
				dirs = append(dirs, m)
			}
		}
		if len(dirs) > 0 {
			return natver.Latest(dirs)
		}
	}
	return ""
}
