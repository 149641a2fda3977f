package parser

import (
	"testing"

	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *cst.File {
	t.Helper()
	file, d := Parse([]byte(src))
	if d != nil {
		t.Fatalf("unexpected parse failure: offset=%d kinds=%v", d.Offset, d.Kinds)
	}
	return file
}

func nonWhitespaceItems(file *cst.File) []cst.Item {
	var out []cst.Item
	for _, it := range file.Items {
		if _, ok := it.(*cst.WhitespaceRun); ok {
			continue
		}
		out = append(out, it)
	}
	return out
}

func TestParseEmptyInput(t *testing.T) {
	file := mustParse(t, "")
	assert.Empty(t, file.Items)
}

// E1
func TestParseUseMultiTail(t *testing.T) {
	src := `pub use foo::{Bar, Baz as Q};`
	file := mustParse(t, src)
	items := nonWhitespaceItems(file)
	require.Len(t, items, 1)
	use, ok := items[0].(*cst.Use)
	require.True(t, ok)
	assert.True(t, use.Visibility.Present)
	assert.Equal(t, 0, use.Extent().Start)
	assert.Equal(t, len(src), use.Extent().End)
	require.Len(t, use.Path, 1)
	assert.Equal(t, "foo", use.Path[0].Name)
	multi, ok := use.Tail.(*cst.UseTailMulti)
	require.True(t, ok)
	require.Len(t, multi.Items, 2)
	assert.Equal(t, "Bar", multi.Items[0].Name.Name)
	assert.Nil(t, multi.Items[0].Alias)
	assert.Equal(t, "Baz", multi.Items[1].Name.Name)
	require.NotNil(t, multi.Items[1].Alias)
	assert.Equal(t, "Q", multi.Items[1].Alias.Name)
}

// E2
func TestParseFunctionWithMacroStatement(t *testing.T) {
	src := `fn main() { let x: u8 = 1 + 2; println!("{}", x); }`
	file := mustParse(t, src)
	items := nonWhitespaceItems(file)
	require.Len(t, items, 1)
	fn, ok := items[0].(*cst.Function)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name.Name)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 2)

	_, ok = fn.Body.Statements[0].(*cst.Let)
	assert.True(t, ok, "let statement should be a *cst.Let")
	macroStmt, ok := fn.Body.Statements[1].(*cst.ExpressionStatement)
	require.True(t, ok)
	_, ok = macroStmt.Expression.(*cst.MacroCallExpr)
	assert.True(t, ok)
}

// E3
func TestParseStructWithGenericsAndWhere(t *testing.T) {
	src := `struct S<T: Copy + 'a>(pub T) where T: Default;`
	file := mustParse(t, src)
	items := nonWhitespaceItems(file)
	require.Len(t, items, 1)
	s, ok := items[0].(*cst.Struct)
	require.True(t, ok)
	assert.Equal(t, "S", s.Name.Name)
	require.NotNil(t, s.Generics)
	require.Len(t, s.Generics.Types, 1)
	assert.Equal(t, "T", s.Generics.Types[0].Name.Name)
	require.Len(t, s.Generics.Types[0].Additions, 2)
	require.Len(t, s.Where, 1)
	body, ok := s.Body.(*cst.StructDefinitionBodyTuple)
	require.True(t, ok)
	require.Len(t, body.Fields, 1)
	assert.True(t, body.Fields[0].Visibility.Present)
}

// E4
func TestParseMatchWithGuard(t *testing.T) {
	src := `fn f() { match x { Some(a) if a > 0 => a, None => 0 } }`
	file := mustParse(t, src)
	items := nonWhitespaceItems(file)
	require.Len(t, items, 1)
	fn := items[0].(*cst.Function)
	require.NotNil(t, fn.Body.Trailing)
	m, ok := fn.Body.Trailing.(*cst.Match)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	assert.NotNil(t, m.Arms[0].Guard)
	assert.Nil(t, m.Arms[1].Guard)
}

// E5
func TestParseImplWithWhereAndGenerics(t *testing.T) {
	src := `impl<T> Trait<T> for Wrap<T> where T: Send { type Item = T; fn get(&self) -> T { self.0.clone() } }`
	file := mustParse(t, src)
	items := nonWhitespaceItems(file)
	require.Len(t, items, 1)
	impl, ok := items[0].(*cst.Impl)
	require.True(t, ok)
	assert.NotNil(t, impl.OfTrait)
	require.Len(t, impl.Where, 1)
	require.NotNil(t, impl.Generics)
	require.Len(t, impl.Members, 2)
	_, isType := impl.Members[0].(*cst.AssociatedType)
	assert.True(t, isType)
	fn, isFn := impl.Members[1].(*cst.Function)
	require.True(t, isFn)
	assert.Equal(t, "get", fn.Name.Name)
}

// E6
func TestParseBareForFails(t *testing.T) {
	_, d := Parse([]byte("for"))
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Offset)
}

func TestParseSingleIdentNotAnItem(t *testing.T) {
	_, d := Parse([]byte("foo"))
	require.NotNil(t, d)
}

func TestParseParentheticalVsTuple(t *testing.T) {
	src := `fn f() { (x); (x,); (); }`
	file := mustParse(t, src)
	fn := nonWhitespaceItems(file)[0].(*cst.Function)
	require.Len(t, fn.Body.Statements, 3)

	first := fn.Body.Statements[0].(*cst.ExpressionStatement).Expression
	_, ok := first.(*cst.Parenthetical)
	assert.True(t, ok, "(x) should be Parenthetical")

	second := fn.Body.Statements[1].(*cst.ExpressionStatement).Expression
	tup, ok := second.(*cst.Tuple)
	require.True(t, ok, "(x,) should be Tuple")
	assert.Len(t, tup.Members, 1)

	third := fn.Body.Statements[2].(*cst.ExpressionStatement).Expression
	empty, ok := third.(*cst.Tuple)
	require.True(t, ok, "() should be Tuple")
	assert.Empty(t, empty.Members)
}

func TestParseIfConditionDisallowsStructLiteral(t *testing.T) {
	src := `fn f() { if foo {} if (Foo {a:1}) {} }`
	file := mustParse(t, src)
	fn := nonWhitespaceItems(file)[0].(*cst.Function)
	// The second `if` sits right before the block's `}`, so it is the
	// block's trailing expression rather than a statement.
	require.Len(t, fn.Body.Statements, 1)

	firstIf := fn.Body.Statements[0].(*cst.ExpressionStatement).Expression.(*cst.If)
	_, isValue := firstIf.Condition.(*cst.Value)
	assert.True(t, isValue, "if foo {} condition should be a bare Value, not a struct literal")

	secondIf := fn.Body.Trailing.(*cst.If)
	paren, ok := secondIf.Condition.(*cst.Parenthetical)
	require.True(t, ok)
	_, isStructLit := paren.Inner.(*cst.StructLiteral)
	assert.True(t, isStructLit, "parenthesized struct literal should parse as StructLiteral")
}

func TestParseMatchFieldAccessOnCall(t *testing.T) {
	src := `fn f() { match a { _ => 1u8 }.count_ones() }`
	file := mustParse(t, src)
	fn := nonWhitespaceItems(file)[0].(*cst.Function)
	call, ok := fn.Body.Trailing.(*cst.Call)
	require.True(t, ok)
	field, ok := call.Target.(*cst.FieldAccess)
	require.True(t, ok)
	_, isMatch := field.Target.(*cst.Match)
	assert.True(t, isMatch)
}

func TestParseInclusiveRangePattern(t *testing.T) {
	src := `fn f() { match n { 1 ... 10 => true, _ => false } }`
	file := mustParse(t, src)
	fn := nonWhitespaceItems(file)[0].(*cst.Function)
	m, ok := fn.Body.Trailing.(*cst.Match)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	binder, ok := m.Arms[0].Pattern.(*cst.Binder)
	require.True(t, ok)
	_, isRange := binder.Kind.(*cst.PatternRange)
	assert.True(t, isRange)
}

func TestParseRawStringHashCounts(t *testing.T) {
	for _, src := range []string{
		`const X: &str = r"x";`,
		`const X: &str = r#"x"#;`,
		`const X: &str = r##"x"##;`,
		`const X: &str = br#"x"#;`,
	} {
		file := mustParse(t, src)
		require.Len(t, nonWhitespaceItems(file), 1, src)
	}
}

func TestParseUnterminatedRawStringDiagnostic(t *testing.T) {
	src := `const X: &str = r#"abc`
	_, d := Parse([]byte(src))
	require.NotNil(t, d)
	require.Len(t, d.Kinds, 1)
	assert.Equal(t, diag.UnterminatedRawString, d.Kinds[0])
}

func TestParseWhitespaceRunsPreserveByteFidelity(t *testing.T) {
	src := "  // leading comment\nfn a() {}\n\nfn b() {}\n"
	file, d := Parse([]byte(src))
	require.Nil(t, d)

	var rebuilt []byte
	for _, it := range file.Items {
		e := it.Extent()
		rebuilt = append(rebuilt, src[e.Start:e.End]...)
	}
	assert.Equal(t, src, string(rebuilt))
}

func TestParseZeroProgressGuardDoesNotPanicOnValidInput(t *testing.T) {
	assert.NotPanics(t, func() {
		mustParse(t, "fn a() {}\nfn b() {}\n")
	})
}
