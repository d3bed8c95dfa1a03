package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnclose_SmallBody_CompactsOntoOneLine(t *testing.T) {
	d := Braces(Punctuate(Text(","), []Doc{Text("a"), Text("b")}))

	require.Equal(t, "{a,b}", Render(d, false))
}

func TestEnclose_LargeBody_KeepsBracketsOnOwnLines(t *testing.T) {
	long := strings.Repeat("x", CompactLimit)
	d := Braces(Punctuate(Text(","), []Doc{Text(long), Text("b")}))

	want := "{\n  " + long + ",\n  b\n}"
	require.Equal(t, want, Render(d, false))
}

func TestEnclose_NestedWraps_MergeBrackets(t *testing.T) {
	body := Text("x")

	nested := Parens(Parens(body))
	merged := Enclose(Text("(("), Text("))"), body)

	require.Equal(t, Render(merged, false), Render(nested, false))
	require.Equal(t, "((x))", Render(nested, false))
}

func TestEnclose_IndentBetweenWraps_IsLookedThrough(t *testing.T) {
	body := Text("x")

	nested := Brackets(Indent(Parens(body)))

	require.Equal(t, "[(x)]", Render(nested, false))
}

func TestPunctuate_EmptyItems_IsEmpty(t *testing.T) {
	require.Equal(t, Empty, Punctuate(Text(","), nil))
	require.Equal(t, Empty, Punctuate(Text(","), []Doc{}))
}

func TestPunctuate_SeparatorOnAllButLast(t *testing.T) {
	d := Punctuate(Text(";"), []Doc{Text("a"), Text("b"), Text("c")})

	require.Equal(t, "  a;\n  b;\n  c", Render(d, false))
}

func TestPunctuate_SingleItem_NoSeparator(t *testing.T) {
	d := Punctuate(Text(","), []Doc{Text("only")})

	require.Equal(t, "  only", Render(d, false))
}

func TestMParens_WrapsOnlyWhenAsked(t *testing.T) {
	d := Text("a+b")

	require.Equal(t, "(a+b)", Render(MParens(true, d), false))
	require.Equal(t, "a+b", Render(MParens(false, d), false))
}
