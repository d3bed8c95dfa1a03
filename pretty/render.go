package pretty

import (
	"strings"
	"unicode/utf8"
)

const (
	// CompactLimit is the Group compaction threshold: a group whose
	// flattened text totals fewer characters than this is emitted on a
	// single line.
	CompactLimit = 40

	// MinifyLineBudget is the target length of one minified output line.
	// Minified fragments are packed greedily up to this budget; a single
	// fragment longer than the budget is emitted alone, never split.
	MinifyLineBudget = 500

	// DefaultShift is the indentation step used by Indent and Punctuate.
	DefaultShift = 2
)

// Render turns a document into its final string form. It is deterministic
// and has no failure modes: the same (d, minify) pair always yields the
// same output.
//
// With minify false, every flattened line is prefixed with its indentation
// as literal spaces and the lines are joined with newlines. With minify
// true, spaces and indentation are dropped and the lines are repacked into
// chunks of at most MinifyLineBudget characters.
func Render(d Doc, minify bool) string {
	lines := flatten(0, d, minify)

	if minify {
		texts := make([]string, len(lines))
		for i, l := range lines {
			texts[i] = l.text
		}
		return strings.Join(repack(texts), "\n")
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = materialize(l)
	}
	return strings.Join(out, "\n")
}

// materialize prefixes the line's text with its indentation. A line with
// empty text stays empty so the output never carries trailing spaces.
func materialize(l line) string {
	if l.text == "" {
		return ""
	}
	return strings.Repeat(" ", l.indent) + l.text
}

// repack concatenates the ordered fragments into chunks: fragments are
// accumulated left to right while the running length stays within
// MinifyLineBudget, and a fragment that would overflow the budget closes
// the current chunk and starts the next one. The final chunk is flushed
// regardless of size.
//
// Every chunk is therefore at most MinifyLineBudget characters long,
// except when a single fragment alone exceeds the budget: it then forms
// its own oversized chunk, since fragments are never split.
func repack(texts []string) []string {
	var chunks []string
	var b strings.Builder
	width := 0

	for _, s := range texts {
		w := utf8.RuneCountInString(s)
		if width > 0 && width+w > MinifyLineBudget {
			chunks = append(chunks, b.String())
			b.Reset()
			width = 0
		}
		b.WriteString(s)
		width += w
	}

	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
