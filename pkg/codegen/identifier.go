package codegen

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
)

// HashLength is the number of hex characters Hash returns. Generated
// identifiers embed it, so changing it invalidates every downstream cache.
const HashLength = 8

var reservedWords = map[string]struct{}{
	"Infinity": {}, "NaN": {}, "arguments": {}, "await": {}, "break": {},
	"case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {},
	"enum": {}, "eval": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "implements": {},
	"import": {}, "in": {}, "instanceof": {}, "interface": {}, "let": {},
	"new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {},
	"undefined": {}, "var": {}, "void": {}, "while": {}, "with": {},
	"yield": {},
}

// Hash returns the first HashLength hex characters of the SHA-256 digest of
// value.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:HashLength]
}

// SafeVariableName turns name into a legal identifier. Path separators, dots
// and dashes become underscores; any other illegal rune becomes `_<code>`.
func SafeVariableName(name string) string {
	if _, reserved := reservedWords[name]; reserved {
		return "_" + name
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0 && unicode.IsDigit(r):
			b.WriteByte('_')
			b.WriteRune(r)
		case r == '-' || r == '.' || r == '/':
			b.WriteByte('_')
		case isIdentRune(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
			b.WriteString(strconv.Itoa(int(r)))
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// PathIdentifier derives a variable name for the module at path. Two paths
// that sanitise to the same prefix still differ by their hash suffix.
func PathIdentifier(path string) string {
	return SafeVariableName(path) + "_" + Hash(path)
}

// FileIdentifier derives a variable name for the module at path. The readable
// prefix comes from display, usually path relative to the project root, while
// the hash covers the full path, so two distinct paths never share a name even
// when their display forms match.
func FileIdentifier(display, path string) string {
	return SafeVariableName(display) + "_" + Hash(path)
}

// IsIdentifier reports whether value can be used as a bare identifier or
// object key.
func IsIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
