package parser

import (
	"testing"

	"github.com/rustcst/parser/cst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPattern(t *testing.T, src string) *cst.Binder {
	t.Helper()
	p := newTestParser(src)
	pat, okv := p.pattern()
	require.True(t, okv, "failed to parse pattern %q: %v", src, p.diagnostic())
	b, ok := pat.(*cst.Binder)
	require.True(t, ok)
	return b
}

func TestPatternPlainIdent(t *testing.T) {
	b := mustPattern(t, "x")
	assert.Nil(t, b.Name)
	ident, ok := b.Kind.(*cst.PatternIdent)
	require.True(t, ok)
	assert.False(t, ident.Ref)
	assert.False(t, ident.Mut)
	assert.Equal(t, "x", ident.Path.Components[0].Name.Name)
}

func TestPatternRefMutIdent(t *testing.T) {
	b := mustPattern(t, "ref mut x")
	ident, ok := b.Kind.(*cst.PatternIdent)
	require.True(t, ok)
	assert.True(t, ident.Ref)
	assert.True(t, ident.Mut)
}

func TestPatternBinderAt(t *testing.T) {
	b := mustPattern(t, "n @ 1...10")
	require.NotNil(t, b.Name)
	assert.Equal(t, "n", b.Name.Name)
	_, ok := b.Kind.(*cst.PatternRange)
	assert.True(t, ok)
}

func TestPatternInclusiveRangeViaDotDotEq(t *testing.T) {
	b := mustPattern(t, "'a'..='z'")
	r, ok := b.Kind.(*cst.PatternRange)
	require.True(t, ok)
	assert.True(t, r.Inclusive)
	_, loIsChar := r.Lo.(*cst.PatternCharacter)
	assert.True(t, loIsChar)
}

func TestPatternNegativeNumberRange(t *testing.T) {
	b := mustPattern(t, "-10...10")
	r, ok := b.Kind.(*cst.PatternRange)
	require.True(t, ok)
	lo, ok := r.Lo.(*cst.PatternNumber)
	require.True(t, ok)
	assert.True(t, lo.Negative)
}

func TestPatternReferenceWithMut(t *testing.T) {
	b := mustPattern(t, "&mut x")
	ref, ok := b.Kind.(*cst.PatternReference)
	require.True(t, ok)
	assert.True(t, ref.Mutable)
	_, isIdent := ref.Inner.(*cst.PatternIdent)
	assert.True(t, isIdent)
}

func TestPatternTupleStructWithRest(t *testing.T) {
	b := mustPattern(t, "Some(x, ..)")
	tup, ok := b.Kind.(*cst.PatternTuple)
	require.True(t, ok)
	require.NotNil(t, tup.Path)
	assert.Equal(t, "Some", tup.Path.Components[0].Name.Name)
	require.Len(t, tup.Members, 2)
	_, isRest := tup.Members[1].(*cst.PatternRest)
	assert.True(t, isRest)
	inner := cst.UnwrapTuplePattern(tup.Members[0])
	require.NotNil(t, inner)
}

func TestPatternBareTupleNoPath(t *testing.T) {
	b := mustPattern(t, "(a, b)")
	tup, ok := b.Kind.(*cst.PatternTuple)
	require.True(t, ok)
	assert.Nil(t, tup.Path)
	assert.Len(t, tup.Members, 2)
}

func TestPatternStructWithSubpatternAndRest(t *testing.T) {
	b := mustPattern(t, "Point { x: 0, y, .. }")
	st, ok := b.Kind.(*cst.PatternStruct)
	require.True(t, ok)
	assert.Equal(t, "Point", st.Path.Components[0].Name.Name)
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "x", st.Fields[0].Name.Name)
	require.NotNil(t, st.Fields[0].Subpattern)
	assert.Equal(t, "y", st.Fields[1].Name.Name)
	assert.Nil(t, st.Fields[1].Subpattern)
	assert.True(t, st.Rest)
}

func TestPatternStringAndByteLeaves(t *testing.T) {
	s := mustPattern(t, `"abc"`)
	_, ok := s.Kind.(*cst.PatternString)
	assert.True(t, ok)

	b := mustPattern(t, "b'x'")
	_, ok = b.Kind.(*cst.PatternByte)
	assert.True(t, ok)
}

func TestPatternFailsOnUnsupportedLeaf(t *testing.T) {
	p := newTestParser("*")
	_, okv := p.pattern()
	assert.False(t, okv)
}
