// Package pretty is the layout engine behind the JS code generator.
//
// A Doc is an immutable tree describing structured, not-yet-rendered text:
// raw fragments, indentation shifts, vertical stacking, horizontal joining
// and bracket wrapping. Emitters build a Doc bottom-up with the combinators
// in this package and hand it to Render exactly once.
//
// The engine makes a single layout decision: a Group whose flattened content
// is small enough collapses onto one line. There is no page-width search and
// no backtracking.
package pretty

// Doc represents a part of the layout tree. Some variants are leaf values
// (e.g. a text fragment), and some are containers that carry child documents
// (e.g. a horizontal join of two subtrees).
//
// The set of variants is closed: the renderer does a total type switch over
// them, and nothing outside this package can add a case.
type Doc interface {
	// doc marks the implementing type as a layout tree variant.
	doc()
}

// leaf is a raw text fragment. It must not contain newline characters;
// vertical structure is expressed with above nodes instead.
type leaf struct {
	text string
}

// indented applies an additive indentation shift to its subtree.
type indented struct {
	shift int
	body  Doc
}

// grouped marks its subtree as eligible for single-line compaction.
type grouped struct {
	body Doc
}

// beside joins two subtrees horizontally: the last line of the left
// operand and the first line of the right operand become one line.
type beside struct {
	left  Doc
	right Doc
}

// above stacks two subtrees vertically. The boundary lines are candidates
// for the punctuation overlay merge, see overlay in flatten.go.
type above struct {
	top    Doc
	bottom Doc
}

// enclosed wraps a body between an opening and a closing bracket document.
// It renders exactly like Group(Above(open, Above(body, close))) but keeps
// the brackets addressable so that nested wrapping can merge them, see
// Enclose.
type enclosed struct {
	open  Doc
	close Doc
	body  Doc
}

// blank is a single literal space. It disappears entirely in minified
// output.
type blank struct{}

// empty is the neutral element of the algebra. Combining any document with
// it yields the other operand unchanged.
type empty struct{}

func (leaf) doc()     {}
func (indented) doc() {}
func (grouped) doc()  {}
func (beside) doc()   {}
func (above) doc()    {}
func (enclosed) doc() {}
func (blank) doc()    {}
func (empty) doc()    {}

// Empty is the neutral element: CombineH(Empty, d) == d == CombineH(d, Empty),
// and the same holds for CombineV.
var Empty Doc = empty{}

// Space is a single literal blank. Unlike Text(" ") it is suppressed when
// rendering minified output.
var Space Doc = blank{}

// Text returns a document holding the raw fragment s.
//
// WARNING: s must not contain newline characters. Use VCat to stack lines.
func Text(s string) Doc {
	return leaf{text: s}
}

// isEmpty reports whether d is the neutral element.
func isEmpty(d Doc) bool {
	_, ok := d.(empty)
	return ok
}
