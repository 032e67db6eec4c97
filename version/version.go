package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application
const ApplicationName = "XYPong"

// number is set by the linker for release builds
var number string

// the vcs revision. if the source has been modified but not committed then
// the string is suffixed with "+dirty"
var revision string

// the version string is "unreleased" if the binary was built from a checkout
// without a version number and "local" if there is no vcs information at all
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns a string that can be used in a window title
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
