package common

import "path"

// UnknownStr is the string form of enum values outside their defined range.
const UnknownStr = "unknown"

// PkgAlias returns the default package name (last element of path) for an
// import path. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
