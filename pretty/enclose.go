package pretty

// Enclose wraps body between the open and close bracket documents. The
// result renders like Group(CombineV(open, CombineV(body, close))): brackets
// on their own lines around the body, compacted onto one line when small
// enough.
//
// Wrapping an already enclosed document merges the bracket pairs instead of
// stacking wrapper nodes: the new open is joined before the existing open,
// and the new close after the existing close. A single indentation wrapper
// between the two Enclose nodes is looked through first. This keeps
// Parens(Parens(x)) a single node with doubled brackets rather than a tower
// of groups.
//
// Example: Enclose(Text("("), Text(")"), Enclose(Text("["), Text("]"), x))
// behaves like Enclose(Text("(["), Text("])"), x).
func Enclose(open, close, body Doc) Doc {
	inner := body
	if in, ok := inner.(indented); ok {
		if _, nested := in.body.(enclosed); nested {
			inner = in.body
		}
	}
	if enc, ok := inner.(enclosed); ok {
		return enclosed{
			open:  CombineH(open, enc.open),
			close: CombineH(enc.close, close),
			body:  enc.body,
		}
	}
	return enclosed{open: open, close: close, body: body}
}

// Parens wraps d in round brackets.
func Parens(d Doc) Doc {
	return Enclose(Text("("), Text(")"), d)
}

// Brackets wraps d in square brackets.
func Brackets(d Doc) Doc {
	return Enclose(Text("["), Text("]"), d)
}

// Braces wraps d in curly brackets.
func Braces(d Doc) Doc {
	return Enclose(Text("{"), Text("}"), d)
}

// MParens wraps d in round brackets only when wrap is true, and returns d
// unchanged otherwise. Emitters use it for precedence-driven
// parenthesization.
func MParens(wrap bool, d Doc) Doc {
	if wrap {
		return Parens(d)
	}
	return d
}

// Punctuate attaches sep to the end of every item except the last, stacks
// the items vertically and indents the stack by the default step.
//
// Example: Punctuate(Text(","), items) lays out
//
//	  item1,
//	  item2,
//	  item3
//
// which is the usual body of a bracketed list. An empty items slice yields
// Empty.
func Punctuate(sep Doc, items []Doc) Doc {
	if len(items) == 0 {
		return Empty
	}
	rows := make([]Doc, len(items))
	for i, item := range items {
		if i < len(items)-1 {
			rows[i] = CombineH(item, sep)
			continue
		}
		rows[i] = item
	}
	return Indent(VCat(rows...))
}
