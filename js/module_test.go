package js

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alt-romes/agda/pretty"
	"github.com/stretchr/testify/require"
)

func TestModule_Render(t *testing.T) {
	m := &Module{
		Name:    "Main",
		Imports: []string{"rts"},
		Exports: []Export{
			{Name: "id", Body: Lambda{Arity: 1, Body: Local{Index: 0}}},
			{Name: "zero", Body: Integer{Value: 0}},
		},
	}

	want := strings.Join([]string{
		`(function () {`,
		`  "use strict";`,
		`  var exports = {};`,
		`  var z_rts = require("rts");`,
		`  exports["id"] = function (x0) {return x0;};`,
		`  exports["zero"] = 0;`,
		`  return exports;`,
		`})()`,
	}, "\n")

	require.Equal(t, want, m.Render(false))
}

func TestModule_Render_WrapsBindingsInIIFE(t *testing.T) {
	m := &Module{
		Name:    "Main",
		Exports: []Export{{Name: "zero", Body: Integer{Value: 0}}},
	}

	for _, minify := range []bool{false, true} {
		out := m.Render(minify)

		require.True(t, strings.HasPrefix(out, "(function () {"), "missing IIFE open in %q", out)
		require.True(t, strings.HasSuffix(out, "})()"), "missing IIFE close in %q", out)
		require.Contains(t, out, "return exports;")
	}
}

func TestModule_Render_Minified(t *testing.T) {
	m := &Module{
		Name:    "Main",
		Imports: []string{"rts"},
		Exports: []Export{
			{Name: "id", Body: Lambda{Arity: 1, Body: Local{Index: 0}}},
		},
	}

	got := m.Render(true)

	// soft spaces disappear, hard keyword spaces stay
	require.Equal(t,
		`(function () {"use strict";var exports={};var z_rts=require("rts");exports["id"]=function (x0) {return x0;};return exports;})()`,
		got)
}

func TestModule_Render_Minified_HonorsLineBudget(t *testing.T) {
	exports := make([]Export, 40)
	for i := range exports {
		exports[i] = Export{
			Name: "binding_" + strings.Repeat("x", i%7),
			Body: String{Value: strings.Repeat("v", 30)},
		}
	}
	m := &Module{Name: "Big", Exports: exports}

	for _, l := range strings.Split(m.Render(true), "\n") {
		require.LessOrEqual(t, utf8.RuneCountInString(l), pretty.MinifyLineBudget)
	}
}

func TestModule_ImportBindingMatchesGlobalReference(t *testing.T) {
	m := &Module{
		Name:    "Main",
		Imports: []string{"Agda.Primitive"},
		Exports: []Export{
			{Name: "lvl", Body: Lookup{Target: Global{Name: "Agda.Primitive"}, Field: "lzero"}},
		},
	}

	out := m.Render(false)
	bound := Mangle("Agda.Primitive")

	require.Contains(t, out, "var "+bound+" = require(\"Agda.Primitive\");")
	require.Contains(t, out, "exports[\"lvl\"] = "+bound+".lzero;")
}

func TestModule_NoImportsNoExports(t *testing.T) {
	m := &Module{Name: "Empty"}

	want := strings.Join([]string{
		`(function () {`,
		`  "use strict";`,
		`  var exports = {};`,
		`  return exports;`,
		`})()`,
	}, "\n")

	require.Equal(t, want, m.Render(false))
}
