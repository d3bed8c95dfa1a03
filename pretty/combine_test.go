package pretty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineH_EmptyIsIdentity(t *testing.T) {
	d := Text("foo")

	require.Equal(t, d, CombineH(Empty, d))
	require.Equal(t, d, CombineH(d, Empty))
	require.Equal(t, Empty, CombineH(Empty, Empty))
}

func TestCombineV_EmptyIsIdentity(t *testing.T) {
	d := Text("foo")

	require.Equal(t, d, CombineV(Empty, d))
	require.Equal(t, d, CombineV(d, Empty))
	require.Equal(t, Empty, CombineV(Empty, Empty))
}

func TestHCat_JoinsFragmentsOnOneLine(t *testing.T) {
	d := HCat(Text("var"), Space, Text("x"), Text(";"))

	require.Equal(t, "var x;", Render(d, false))
}

func TestHCat_NoArguments_IsEmpty(t *testing.T) {
	require.Equal(t, Empty, HCat())
	require.Equal(t, "", Render(HCat(), false))
}

func TestVCat_StacksFragments(t *testing.T) {
	d := VCat(Text("one"), Text("two"), Text("three"))

	require.Equal(t, "one\ntwo\nthree", Render(d, false))
}

func TestVCat_NoArguments_IsEmpty(t *testing.T) {
	require.Equal(t, Empty, VCat())
}

func TestIndentBy_ShiftsEveryLine(t *testing.T) {
	d := IndentBy(3, VCat(Text("a"), Text("b")))

	require.Equal(t, "   a\n   b", Render(d, false))
}

func TestIndentBy_NestedShiftsCollapse(t *testing.T) {
	body := VCat(Text("a"), Text("b"))

	nested := IndentBy(3, IndentBy(4, body))
	flat := IndentBy(7, body)

	// collapsed into a single node, not a wrapper tower
	require.Equal(t, flat, nested)
	require.Equal(t, Render(flat, false), Render(nested, false))
}

func TestIndentBy_Empty_IsEmpty(t *testing.T) {
	require.Equal(t, Empty, IndentBy(5, Empty))
}

func TestIndent_UsesDefaultShift(t *testing.T) {
	require.Equal(t, "  x", Render(Indent(Text("x")), false))
}
