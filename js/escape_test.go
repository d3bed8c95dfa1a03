package js

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// unescape is a tiny literal-string parser recognizing exactly the quote,
// backslash and newline escapes, used to verify the escape round-trip.
func unescape(t *testing.T, s string) string {
	t.Helper()

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out = append(out, s[i])
			continue
		}

		require.Less(t, i+1, len(s), "dangling backslash in %q", s)
		i++
		switch s[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		default:
			t.Fatalf("unexpected escape %q in %q", s[i], s)
		}
	}
	return string(out)
}

func TestEscape_RoundTrip(t *testing.T) {
	type tc struct {
		name  string
		input string
	}

	tests := []tc{
		{name: "quote", input: `say "hi"`},
		{name: "backslash", input: `C:\temp\file`},
		{name: "newline", input: "line one\nline two"},
		{name: "all_three", input: "a\"b\\c\nd"},
		{name: "plain_unicode_passthrough", input: "привет ✓"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			escaped := Escape(tt.input)
			require.Equal(t, tt.input, unescape(t, escaped))
		})
	}
}

func TestEscape_LineSeparators(t *testing.T) {
	require.Equal(t, `a\u2028b`, Escape("a\u2028b"))
	require.Equal(t, `a\u2029b`, Escape("a\u2029b"))
	require.Equal(t, `a\rb`, Escape("a\rb"))
}

func TestQuote_WrapsAndEscapes(t *testing.T) {
	require.Equal(t, `"say \"hi\""`, Quote(`say "hi"`))
	require.Equal(t, `""`, Quote(""))
}
