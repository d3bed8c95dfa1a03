package js

import "strings"

// escapes maps the characters that must not appear raw inside a quoted
// JavaScript string literal to their escape sequences. U+2028 and U+2029
// are line terminators in JavaScript, so a raw occurrence would split the
// literal across lines even though Go happily keeps it in one string.
var escapes = map[rune]string{
	'"':      `\"`,
	'\\':     `\\`,
	'\n':     `\n`,
	'\r':     `\r`,
	'\u2028': `\u2028`,
	'\u2029': `\u2029`,
}

// Escape rewrites s so it can be embedded between double quotes in
// generated source: quote, backslash, newline, carriage return and the two
// Unicode line separators are escaped, every other character passes
// through unchanged.
//
// Example: `say "hi"` -> `say \"hi\"`.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if esc, ok := escapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Quote returns s escaped and wrapped in double quotes, ready to splice
// into generated source as a string literal.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}
