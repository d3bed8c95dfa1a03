package js

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// reservedWords are the JavaScript keywords (plus the literal names) that
// a generated identifier must never collide with, even when the source
// name happens to be identifier-shaped.
var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "instanceof": {}, "new": {}, "null": {}, "return": {},
	"super": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typeof": {}, "var": {}, "void": {}, "while": {},
	"with": {}, "yield": {}, "let": {}, "static": {}, "undefined": {},
}

// ValidID reports whether s is safe to emit verbatim as a JavaScript
// identifier: an ASCII letter, underscore or dollar sign followed by
// ASCII letters, digits, underscores or dollar signs, and not a reserved
// word.
func ValidID(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b == '_' || b == '$':
		case b >= '0' && b <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	_, reserved := reservedWords[s]
	return !reserved
}

// Mangle turns an arbitrary source name into a safe output identifier.
// Identifier-shaped names keep their spelling behind a "z_" tag; anything
// else becomes an "h_" tag followed by a stable digest of the name. The
// two tags never collide with each other or with the positional parameter
// names the emitter invents.
//
// The digest is deterministic, so the same source name always mangles to
// the same output name across runs. Two distinct non-identifier names
// could in principle collide through the digest; that risk is bounded by
// the digest's collision resistance and accepted here.
//
// Examples: "map" -> "z_map", "Data.List" -> "h_" plus a decimal digest.
func Mangle(s string) string {
	if ValidID(s) {
		return "z_" + s
	}
	return "h_" + strconv.FormatUint(xxhash.Sum64String(s), 10)
}
