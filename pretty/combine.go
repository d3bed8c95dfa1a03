package pretty

// CombineH joins two documents horizontally: when both operands produce
// output, the last line of a and the first line of b are merged into one
// line.
//
// Empty is the identity on both sides, so trees never carry dead Empty
// branches.
//
// Example: CombineH(Text("foo"), Text("bar")) renders as "foobar".
func CombineH(a, b Doc) Doc {
	if isEmpty(a) {
		return b
	}
	if isEmpty(b) {
		return a
	}
	return beside{left: a, right: b}
}

// CombineV stacks two documents vertically. Empty is the identity on both
// sides, same as for CombineH.
func CombineV(a, b Doc) Doc {
	if isEmpty(a) {
		return b
	}
	if isEmpty(b) {
		return a
	}
	return above{top: a, bottom: b}
}

// HCat joins any number of documents horizontally, right-associatively,
// starting from Empty. HCat() is Empty.
func HCat(ds ...Doc) Doc {
	out := Empty
	for i := len(ds) - 1; i >= 0; i-- {
		out = CombineH(ds[i], out)
	}
	return out
}

// VCat stacks any number of documents vertically, right-associatively,
// starting from Empty. VCat() is Empty.
func VCat(ds ...Doc) Doc {
	out := Empty
	for i := len(ds) - 1; i >= 0; i-- {
		out = CombineV(ds[i], out)
	}
	return out
}

// IndentBy shifts the whole subtree d right by n columns. Shifts are
// additive: indenting an already indented document collapses into a single
// node with the summed shift instead of stacking wrappers, so
// IndentBy(a, IndentBy(b, d)) renders exactly like IndentBy(a+b, d).
//
// Indenting Empty is Empty.
func IndentBy(n int, d Doc) Doc {
	if isEmpty(d) {
		return Empty
	}
	if in, ok := d.(indented); ok {
		return indented{shift: n + in.shift, body: in.body}
	}
	return indented{shift: n, body: d}
}

// Indent shifts d right by the default step of DefaultShift columns.
func Indent(d Doc) Doc {
	return IndentBy(DefaultShift, d)
}

// Group marks d as eligible for compaction: if the flattened content of d
// is shorter than CompactLimit characters in total, it is emitted on a
// single line. Otherwise the multi-line layout is kept as is.
func Group(d Doc) Doc {
	return grouped{body: d}
}
