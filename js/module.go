package js

import "github.com/alt-romes/agda/pretty"

// Module is one compiled output module: the source-level module name, the
// modules it requires and the bindings it exports. Exports keep their
// source order.
type Module struct {
	Name    string
	Imports []string
	Exports []Export
}

// Export is one exported binding: the source-level name and the expression
// tree of its value.
type Export struct {
	Name string
	Body Exp
}

// Doc lays out the whole module as an IIFE evaluating to the exports
// object: a strict-mode preamble, a fresh exports object, one require
// binding per import, one exports assignment per export and the final
// return, all wrapped in an immediately invoked function so the bindings
// never leak into the enclosing scope.
//
// Import bindings use the mangled module name, which is exactly what a
// Global reference in an export body emits, so the two always agree.
func (m *Module) Doc() pretty.Doc {
	rows := make([]pretty.Doc, 0, len(m.Imports)+len(m.Exports)+3)

	rows = append(rows, pretty.Text(`"use strict";`))

	rows = append(rows, pretty.HCat(
		pretty.Text("var "),
		pretty.Text("exports"),
		pretty.Space,
		pretty.Text("="),
		pretty.Space,
		pretty.Text("{};"),
	))

	for _, imp := range m.Imports {
		// "var" keeps its trailing space as hard text so minified output
		// does not glue it to the binding name
		rows = append(rows, pretty.HCat(
			pretty.Text("var "),
			pretty.Text(Mangle(imp)),
			pretty.Space,
			pretty.Text("="),
			pretty.Space,
			pretty.Text("require("+Quote(imp)+");"),
		))
	}

	for _, ex := range m.Exports {
		rows = append(rows, pretty.HCat(
			pretty.Text("exports["+Quote(ex.Name)+"]"),
			pretty.Space,
			pretty.Text("="),
			pretty.Space,
			ExpDoc(ex.Body),
			pretty.Text(";"),
		))
	}

	rows = append(rows, pretty.Text("return exports;"))

	return pretty.Enclose(
		pretty.Text("(function () {"),
		pretty.Text("})()"),
		pretty.Indent(pretty.VCat(rows...)),
	)
}

// Render returns the module's final source text.
func (m *Module) Render(minify bool) string {
	return pretty.Render(m.Doc(), minify)
}
