package common

import (
	"path"
	"unicode"
)

// UnknownStr is the fallback name for enum-like values outside their defined range.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// IsIdent reports whether s is a valid Go identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// IsExportedIdent reports whether s is a valid exported Go identifier.
func IsExportedIdent(s string) bool {
	if !IsIdent(s) {
		return false
	}

	for _, r := range s {
		return unicode.IsUpper(r)
	}

	return false
}
