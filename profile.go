package nccheck

// Profile identifies the machine control a program is checked against.
// This type is shared across all packages.
type Profile string

const (
	ProfileFanucLathe Profile = "FANUC_Lathe"
	ProfileOSPMill    Profile = "OSP_Mill"
	ProfileTosnucMill Profile = "TOSNUC_Mill"
)

// Profiles lists the selectable machine profiles.
var Profiles = []Profile{ProfileFanucLathe, ProfileOSPMill, ProfileTosnucMill}

// ChecksSpindleLimit reports whether the profile requires a spindle-limit
// command (G50) before constant-surface-speed mode (G96). Only the FANUC
// lathe control enforces this; other profiles run the same scan without the
// check.
func (p Profile) ChecksSpindleLimit() bool {
	return p == ProfileFanucLathe
}

// Valid reports whether p is a known machine profile.
func (p Profile) Valid() bool {
	for _, known := range Profiles {
		if p == known {
			return true
		}
	}

	return false
}
