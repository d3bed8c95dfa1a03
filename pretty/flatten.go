package pretty

import (
	"strings"
	"unicode/utf8"
)

// line is one row of the flattened layout: the text fragment and the column
// it starts at. Indentation is kept symbolic until the final materialization
// in Render, so merges never have to strip space prefixes.
type line struct {
	indent int
	text   string
}

// width returns the visible length of the line's text in characters, not
// bytes. Fragments are usually plain ASCII, but string literals may carry
// arbitrary UTF-8 and column arithmetic must not drift on them.
func (l line) width() int {
	return utf8.RuneCountInString(l.text)
}

// flatten interprets d at the given starting column and returns the ordered
// list of produced lines. It is total over all eight variants and pure:
// the same document always flattens to the same lines.
func flatten(col int, d Doc, minify bool) []line {
	switch n := d.(type) {
	case empty:
		return nil
	case blank:
		if minify {
			return nil
		}
		return []line{{indent: col, text: " "}}
	case leaf:
		if n.text == "" {
			return nil
		}
		return []line{{indent: col, text: n.text}}
	case indented:
		return flatten(col+n.shift, n.body, minify)
	case beside:
		return joinBeside(flatten(col, n.left, minify), flatten(col, n.right, minify))
	case above:
		return joinAbove(flatten(col, n.top, minify), flatten(col, n.bottom, minify))
	case enclosed:
		bracketed := grouped{body: above{top: n.open, bottom: above{top: n.body, bottom: n.close}}}
		return flatten(col, bracketed, minify)
	case grouped:
		ls := flatten(col, n.body, minify)
		if totalWidth(ls) < CompactLimit {
			return compact(ls)
		}
		return ls
	}

	// the variant set is closed, see Doc
	panic("pretty: unknown Doc variant")
}

// joinBeside merges two flattened fragments horizontally: the last line of
// ls and the first line of rs become one line at the left fragment's
// column, everything else is kept verbatim. Either side being empty
// degenerates to the other side unchanged.
func joinBeside(ls, rs []line) []line {
	if len(ls) == 0 {
		return rs
	}
	if len(rs) == 0 {
		return ls
	}

	last := ls[len(ls)-1]
	seam := line{indent: last.indent, text: last.text + rs[0].text}

	out := make([]line, 0, len(ls)+len(rs)-1)
	out = append(out, ls[:len(ls)-1]...)
	out = append(out, seam)
	out = append(out, rs[1:]...)
	return out
}

// joinAbove stacks two flattened fragments vertically. The boundary pair —
// the last line of ts and the first line of bs — is first offered to the
// punctuation overlay merge; if it does not apply, the fragments are simply
// concatenated.
func joinAbove(ts, bs []line) []line {
	if len(ts) == 0 {
		return bs
	}
	if len(bs) == 0 {
		return ts
	}

	if merged, ok := overlay(ts[len(ts)-1], bs[0]); ok {
		out := make([]line, 0, len(ts)+len(bs)-1)
		out = append(out, ts[:len(ts)-1]...)
		out = append(out, merged)
		out = append(out, bs[1:]...)
		return out
	}

	out := make([]line, 0, len(ts)+len(bs))
	out = append(out, ts...)
	out = append(out, bs...)
	return out
}

// punctuation is the set of characters the overlay merge treats as
// structure-only: brackets, separators and the space.
const punctuation = "(){}[];:, "

// isPunctuation reports whether s consists entirely of characters from the
// punctuation set.
func isPunctuation(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(punctuation, r) {
			return false
		}
	}
	return true
}

// overlay tries to fuse two vertically adjacent lines into one. The merge
// applies when both lines are pure punctuation and one of them ends
// strictly before the column the other starts at; the right-hand text is
// then appended to the left-hand text, padded with spaces so it still
// begins at its original column.
//
// Both orderings are checked, so a closing bracket that starts left of
// where the opening line ended merges as well.
//
// WARNING: the gap must be strictly positive. Lines that touch exactly
// (gap zero) stay separate; widening either indent by one column is what
// makes adjacent punctuation collapse.
func overlay(a, b line) (merged line, ok bool) {
	if !isPunctuation(a.text) || !isPunctuation(b.text) {
		return line{}, false
	}

	if gap := b.indent - (a.indent + a.width()); gap > 0 {
		pad := strings.Repeat(" ", gap)
		return line{indent: a.indent, text: a.text + pad + b.text}, true
	}

	if gap := a.indent - (b.indent + b.width()); gap > 0 {
		pad := strings.Repeat(" ", gap)
		return line{indent: b.indent, text: b.text + pad + a.text}, true
	}

	return line{}, false
}

// totalWidth sums the visible text length of all lines. Indentation does
// not count towards the compaction budget.
func totalWidth(ls []line) (total int) {
	for _, l := range ls {
		total += l.width()
	}
	return total
}

// compact collapses a multi-line flattening onto a single line: the text of
// every line after the first is concatenated onto the first line's text,
// discarding their own indentation. Zero or one line is returned unchanged.
func compact(ls []line) []line {
	if len(ls) <= 1 {
		return ls
	}

	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l.text)
	}
	return []line{{indent: ls[0].indent, text: b.String()}}
}
