package js

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alt-romes/agda/pretty"
)

// precedence levels used for parenthesization decisions. An expression is
// wrapped in parentheses when it appears in a context tighter than its own
// level; the emission itself is otherwise identical.
type precedence int

const (
	precLowest  precedence = iota // lambdas, conditionals
	precBinary                    // binary operators
	precPrefix                    // prefix operators
	precApply                     // application and member access
)

// scope is the stack of parameter names in force at the current emission
// point, innermost binder last.
type scope []string

// name resolves a de Bruijn index against the scope.
//
// An out-of-range index means the front end produced an unbound variable
// reference. That is an internal invariant violation, not an input error,
// so it panics instead of returning an error.
func (sc scope) name(index int) string {
	if index < 0 || index >= len(sc) {
		panic(fmt.Sprintf("js: de Bruijn index %d out of range in scope of depth %d", index, len(sc)))
	}
	return sc[len(sc)-1-index]
}

// push extends the scope with n fresh positional parameter names and
// returns the extended scope together with the new names in binding order.
//
// Fresh names carry an "x" prefix, which cannot collide with the "z_" and
// "h_" tags Mangle produces.
func (sc scope) push(n int) (scope, []string) {
	fresh := make([]string, n)
	for i := range fresh {
		fresh[i] = "x" + strconv.Itoa(len(sc)+i)
	}
	return append(sc[:len(sc):len(sc)], fresh...), fresh
}

// ExpDoc lays out a closed expression (no free de Bruijn references).
func ExpDoc(e Exp) pretty.Doc {
	return emit(e, nil, precLowest)
}

// emit lays out e in the given scope. ctx is the precedence of the
// surrounding position: emit wraps its result in parentheses whenever the
// node binds looser than the context requires.
func emit(e Exp, sc scope, ctx precedence) pretty.Doc {
	switch n := e.(type) {
	case Self:
		return pretty.Text("this")

	case Local:
		return pretty.Text(sc.name(n.Index))

	case Global:
		return pretty.Text(Mangle(n.Name))

	case Undefined:
		return pretty.Text("undefined")

	case Null:
		return pretty.Text("null")

	case String:
		return pretty.Text(Quote(n.Value))

	case Char:
		return pretty.Text(Quote(string(n.Value)))

	case Integer:
		return pretty.Text(strconv.FormatInt(n.Value, 10))

	case Double:
		return pretty.Text(double(n.Value))

	case Lambda:
		inner, params := sc.push(n.Arity)
		head := pretty.Text("function (" + strings.Join(params, ", ") + ") ")
		// "return" keeps its trailing space as hard text: a Space doc
		// would vanish in minified output and glue it to the expression
		body := pretty.Braces(pretty.Indent(pretty.HCat(
			pretty.Text("return "),
			emit(n.Body, inner, precLowest),
			pretty.Text(";"),
		)))
		return pretty.MParens(ctx > precLowest, pretty.CombineH(head, body))

	case Object:
		members := make([]pretty.Doc, len(n.Fields))
		for i, f := range n.Fields {
			members[i] = pretty.HCat(
				pretty.Text(memberKey(f.Name)+":"),
				pretty.Space,
				emit(f.Body, sc, precLowest),
			)
		}
		return pretty.Braces(pretty.Punctuate(pretty.Text(","), members))

	case Array:
		elems := make([]pretty.Doc, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = emit(el, sc, precLowest)
		}
		return pretty.Brackets(pretty.Punctuate(pretty.Text(","), elems))

	case Apply:
		args := make([]pretty.Doc, len(n.Args))
		for i, a := range n.Args {
			args[i] = emit(a, sc, precLowest)
		}
		return pretty.CombineH(
			emit(n.Fn, sc, precApply),
			pretty.Parens(pretty.Punctuate(pretty.Text(","), args)),
		)

	case Lookup:
		return pretty.CombineH(emit(n.Target, sc, precApply), pretty.Text(member(n.Field)))

	case If:
		d := pretty.HCat(
			emit(n.Cond, sc, precBinary),
			pretty.Space, pretty.Text("?"), pretty.Space,
			emit(n.Then, sc, precBinary),
			pretty.Space, pretty.Text(":"), pretty.Space,
			emit(n.Else, sc, precBinary),
		)
		return pretty.MParens(ctx > precLowest, d)

	case BinOp:
		d := pretty.HCat(
			emit(n.Left, sc, precPrefix),
			pretty.Space, pretty.Text(n.Op), pretty.Space,
			emit(n.Right, sc, precPrefix),
		)
		return pretty.MParens(ctx > precBinary, d)

	case PreOp:
		d := pretty.CombineH(pretty.Text(n.Op+" "), emit(n.Operand, sc, precPrefix))
		return pretty.MParens(ctx > precPrefix, d)

	case Const:
		return pretty.Text(n.Code)

	case PlainJS:
		// user-written code has unknown precedence: any position
		// tighter than top level requires parentheses
		return pretty.MParens(ctx > precLowest, pretty.Text(n.Code))
	}

	// the variant set is closed, see Exp
	panic(fmt.Sprintf("js: unknown Exp variant %T", e))
}

// member renders a member access suffix: dot syntax for names that are
// valid identifiers, quoted bracket syntax for everything else.
//
// Examples: "foo" -> ".foo", "not ok" -> `["not ok"]`.
func member(name string) string {
	if ValidID(name) {
		return "." + name
	}
	return "[" + Quote(name) + "]"
}

// memberKey renders an object literal key: bare for valid identifiers,
// quoted otherwise.
func memberKey(name string) string {
	if ValidID(name) {
		return name
	}
	return Quote(name)
}

// double renders a float literal. The non-finite values have no literal
// syntax and fall back to their global names.
func double(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
