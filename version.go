package bufrw

// Version identifies a release of the library.
type Version struct {
	Major, Minor, Patch int
}

var version = Version{Major: 1, Minor: 0, Patch: 1}

// Ver returns the current library version.
func Ver() Version { return version }
