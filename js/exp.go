// Package js holds the output-language side of the code generator: the
// JavaScript expression tree produced by the compiler front end, the
// identifier and string-literal helpers, and the mechanical emission of
// that tree into pretty.Doc layouts.
package js

// Exp represents one node of the generated JavaScript expression tree.
//
// The set of variants is closed; the emitter does a total type switch over
// them. Trees are immutable and may share subtrees freely, emission never
// mutates them.
type Exp interface {
	// exp marks the implementing type as an expression tree variant.
	exp()
}

// Self is a reference to the enclosing module object ("this").
type Self struct{}

// Local is a de Bruijn style reference to an enclosing lambda parameter:
// index 0 is the innermost binder, 1 the next one out, and so on.
type Local struct {
	Index int
}

// Global is a reference to a required module, by source-level name. The
// name is mangled with Mangle on emission, so it matches the variable the
// module preamble binds with require.
type Global struct {
	Name string
}

// Undefined is the literal undefined value.
type Undefined struct{}

// Null is the literal null value.
type Null struct{}

// String is a string literal. The value is the raw, unescaped text.
type String struct {
	Value string
}

// Char is a single-character literal. JavaScript has no char type, so it
// emits as a one-character string literal.
type Char struct {
	Value rune
}

// Integer is an integer literal.
type Integer struct {
	Value int64
}

// Double is a floating point literal.
type Double struct {
	Value float64
}

// Lambda is a function expression with Arity parameters binding into Body.
// Parameters have no source names; the emitter invents positional ones.
type Lambda struct {
	Arity int
	Body  Exp
}

// Field is one member of an object literal. Order is significant: members
// emit in slice order.
type Field struct {
	Name string
	Body Exp
}

// Object is an object literal.
type Object struct {
	Fields []Field
}

// Array is an array literal.
type Array struct {
	Elems []Exp
}

// Apply is a function application: Fn called with Args.
type Apply struct {
	Fn   Exp
	Args []Exp
}

// Lookup is a member access: Target's Field member. Field is a raw source
// name; the emitter chooses between dot and bracket syntax depending on
// whether it is a valid identifier.
type Lookup struct {
	Target Exp
	Field  string
}

// If is a conditional (ternary) expression.
type If struct {
	Cond Exp
	Then Exp
	Else Exp
}

// BinOp is a binary operator application, e.g. "+" or "===". The operator
// string is emitted verbatim between the operands.
type BinOp struct {
	Op    string
	Left  Exp
	Right Exp
}

// PreOp is a prefix operator application, e.g. "!" or "-".
type PreOp struct {
	Op      string
	Operand Exp
}

// Const is a verbatim JavaScript fragment spliced into the output
// unchanged. It is the escape hatch for runtime primitives and is assumed
// to be atomic: it is never parenthesized.
type Const struct {
	Code string
}

// PlainJS is a raw JavaScript splice written by a user (a FOREIGN
// pragma), not by the compiler. Unlike Const it makes no atomicity
// promise, so the emitter parenthesizes it in any non-trivial position.
type PlainJS struct {
	Code string
}

func (Self) exp()      {}
func (Local) exp()     {}
func (Global) exp()    {}
func (Undefined) exp() {}
func (Null) exp()      {}
func (String) exp()    {}
func (Char) exp()      {}
func (Integer) exp()   {}
func (Double) exp()    {}
func (Lambda) exp()    {}
func (Object) exp()    {}
func (Array) exp()     {}
func (Apply) exp()     {}
func (Lookup) exp()    {}
func (If) exp()        {}
func (BinOp) exp()     {}
func (PreOp) exp()     {}
func (Const) exp()     {}
func (PlainJS) exp()   {}
