// This file is part of edakit.
//
// edakit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edakit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with edakit.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the running program. The release
// number is set at link time with:
//
//	-ldflags "-X github.com/edakit/edakit/version.number=v0.1.0"
//
// Without a release number the version is taken from the VCS information
// embedded by the go tool.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "edakit"

// set at link time
var number string

// Info describes the build of the running program.
type Info struct {
	// release number, "unreleased" if built from a VCS checkout without a
	// release number, or "local" if there is no VCS information either
	Version string

	// VCS revision with "+dirty" appended if the working tree was modified
	Revision string

	// Release is true if Version is a release number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns information about the running program.
func Version() Info {
	return fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var vcs, modified bool
	inf := Info{Revision: "no revision information"}

	if bi, ok := read(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				if s.Value != "" {
					inf.Revision = s.Value
				}
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		inf.Revision += "+dirty"
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
