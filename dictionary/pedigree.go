package dictionary

// Version is an optional version tag such as "FIX.4.4" or an extension pack
// number. The zero value is NoVersion.
type Version struct {
	tag string
	set bool
}

// NoVersion is the explicit marker for an absent version tag.
var NoVersion = Version{}

// V returns a present Version holding tag.
func V(tag string) Version {
	return Version{tag: tag, set: true}
}

// Get returns the tag and whether it is present.
func (v Version) Get() (string, bool) {
	return v.tag, v.set
}

// IsSet reports whether the version tag is present.
func (v Version) IsSet() bool {
	return v.set
}

// String returns the tag, or an empty string when absent.
func (v Version) String() string {
	return v.tag
}

// Pedigree is the version lifecycle of a field or message: when it was added,
// last updated and deprecated, per base version and per extension pack.
type Pedigree struct {
	Added        Version
	AddedEP      Version
	Updated      Version
	UpdatedEP    Version
	Deprecated   Version
	DeprecatedEP Version
}

// IsDeprecated reports whether the pedigree carries a deprecation version.
func (p Pedigree) IsDeprecated() bool {
	return p.Deprecated.IsSet() || p.DeprecatedEP.IsSet()
}
