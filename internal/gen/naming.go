package gen

import (
	"go/token"
	"strings"
	"unicode"
)

// reservedMethods are the VersionField methods a code accessor must not shadow.
var reservedMethods = map[string]bool{
	"Tag":         true,
	"Name":        true,
	"DataType":    true,
	"Description": true,
	"Pedigree":    true,
	"Values":      true,
	"IsValid":     true,
}

// exportedIdent turns a dictionary name into an exported Go identifier.
// Characters outside ASCII letters, digits and underscore are dropped, and a
// name that does not start with a letter gets an "X" prefix. It returns ""
// when nothing usable remains.
func exportedIdent(name string) string {
	var b strings.Builder

	for _, r := range name {
		if r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}

	id := b.String()
	if strings.Trim(id, "_") == "" {
		return ""
	}

	if !unicode.IsLetter(rune(id[0])) {
		id = "X" + id
	}

	id = upperFirst(id)
	if !token.IsIdentifier(id) {
		return ""
	}

	return id
}

// codeMethod returns the accessor method name of a code and whether the
// name was suffixed to avoid a VersionField method.
func codeMethod(codeName string) (string, bool) {
	id := exportedIdent(codeName)
	if reservedMethods[id] {
		return id + "Value", true
	}

	return id, false
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// PackageNameFor derives a Go package name from a module name such as
// "FIX_5_0SP2": lower case letters and digits only, never starting with a
// digit.
func PackageNameFor(module string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(module) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		return "dictionary"
	}

	if name[0] >= '0' && name[0] <= '9' {
		name = "fix" + name
	}

	if token.IsKeyword(name) {
		name += "dict"
	}

	return name
}
