package parser

import (
	"testing"

	"github.com/rustcst/parser/cst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T, src string) cst.Type {
	t.Helper()
	p := newTestParser(src)
	ty, okv := p.typ()
	require.True(t, okv, "failed to parse type %q: %v", src, p.diagnostic())
	return ty
}

func TestTypeArray(t *testing.T) {
	ty := mustType(t, "[u8; 4]")
	arr, ok := ty.(*cst.TypeArray)
	require.True(t, ok)
	named := arr.Element.(*cst.TypeCombination).Base.(*cst.TypeNamed)
	assert.Equal(t, "u8", named.Components[0].Name.Name)
	assert.NotNil(t, arr.Count)
}

func TestTypeSlice(t *testing.T) {
	ty := mustType(t, "[u8]")
	_, ok := ty.(*cst.TypeSlice)
	assert.True(t, ok)
}

func TestTypeTupleEmptyIsUnit(t *testing.T) {
	ty := mustType(t, "()")
	tup, ok := ty.(*cst.TypeTuple)
	require.True(t, ok)
	assert.Empty(t, tup.Members)
}

func TestTypeTupleMultipleMembers(t *testing.T) {
	ty := mustType(t, "(u8, bool)")
	tup, ok := ty.(*cst.TypeTuple)
	require.True(t, ok)
	assert.Len(t, tup.Members, 2)
}

func TestTypePointerConstAndMut(t *testing.T) {
	c := mustType(t, "*const u8").(*cst.TypePointer)
	assert.Equal(t, cst.PointerConst, c.Kind)

	m := mustType(t, "*mut u8").(*cst.TypePointer)
	assert.Equal(t, cst.PointerMut, m.Kind)
}

func TestTypePointerRejectsMissingQualifier(t *testing.T) {
	p := newTestParser("*u8")
	_, okv := p.typ()
	assert.False(t, okv)
}

func TestTypeReferencePlain(t *testing.T) {
	ref := mustType(t, "&u8").(*cst.TypeReference)
	assert.False(t, ref.Kind.Mutable)
	assert.Nil(t, ref.Kind.Lifetime)
}

func TestTypeReferenceMutWithLifetime(t *testing.T) {
	ref := mustType(t, "&'a mut u8").(*cst.TypeReference)
	assert.True(t, ref.Kind.Mutable)
	require.NotNil(t, ref.Kind.Lifetime)
	assert.Equal(t, "'a", ref.Kind.Lifetime.Name)
}

func TestTypeReferenceDoubleAmpNestsTwoReferences(t *testing.T) {
	outer := mustType(t, "&&u8").(*cst.TypeReference)
	inner, ok := outer.Inner.(*cst.TypeReference)
	require.True(t, ok)
	_, isCombo := inner.Inner.(*cst.TypeCombination)
	assert.True(t, isCombo)
}

func TestTypeFunctionNoReturn(t *testing.T) {
	fn := mustType(t, "fn(u8, bool)").(*cst.TypeFunction)
	assert.Len(t, fn.Arguments, 2)
	assert.Nil(t, fn.Return)
}

func TestTypeFunctionWithReturn(t *testing.T) {
	fn := mustType(t, "fn() -> u8").(*cst.TypeFunction)
	assert.Empty(t, fn.Arguments)
	require.NotNil(t, fn.Return)
}

func TestTypeUninhabited(t *testing.T) {
	_, ok := mustType(t, "!").(*cst.TypeUninhabited)
	assert.True(t, ok)
}

func TestTypeNamedWithAngleGenerics(t *testing.T) {
	ty := mustType(t, "Vec<u8>").(*cst.TypeCombination)
	named := ty.Base.(*cst.TypeNamed)
	comp := named.Components[0]
	assert.Equal(t, "Vec", comp.Name.Name)
	angle, ok := comp.Generics.(*cst.TypeGenericsAngle)
	require.True(t, ok)
	assert.Len(t, angle.Members, 1)
}

func TestTypeNamedWithPathAndLifetimeGeneric(t *testing.T) {
	ty := mustType(t, "std::borrow::Cow<'a, str>").(*cst.TypeCombination)
	named := ty.Base.(*cst.TypeNamed)
	require.Len(t, named.Components, 3)
	angle := named.Components[2].Generics.(*cst.TypeGenericsAngle)
	require.Len(t, angle.Members, 2)
	_, isLifetime := angle.Members[0].(*cst.Lifetime)
	assert.True(t, isLifetime)
}

func TestTypeNamedFunctionTraitSugar(t *testing.T) {
	ty := mustType(t, "Fn(u8) -> bool").(*cst.TypeCombination)
	named := ty.Base.(*cst.TypeNamed)
	fnGenerics, ok := named.Components[0].Generics.(*cst.TypeGenericsFunction)
	require.True(t, ok)
	assert.Len(t, fnGenerics.Arguments, 1)
	assert.NotNil(t, fnGenerics.Return)
}

func TestTypeCombinationPlusJoinedBounds(t *testing.T) {
	ty := mustType(t, "Foo + Send + 'a").(*cst.TypeCombination)
	require.Len(t, ty.Additions, 2)
	_, isLifetime := ty.Additions[1].(*cst.Lifetime)
	assert.True(t, isLifetime)
}

func TestTypeImplTraitRecognizedByKeyword(t *testing.T) {
	ty := mustType(t, "impl Iterator<Item = u8>")
	combo, ok := ty.(*cst.TypeCombination)
	require.True(t, ok)
	implT, ok := combo.Base.(*cst.TypeImplTrait)
	require.True(t, ok)
	assert.NotEmpty(t, implT.Bounds.Bounds)
}

func TestTypeHigherRankedTraitBounds(t *testing.T) {
	ty := mustType(t, "for<'a> Fn(&'a u8)").(*cst.TypeCombination)
	hrtb, ok := ty.Base.(*cst.TypeHigherRankedTraitBounds)
	require.True(t, ok)
	require.Len(t, hrtb.Lifetimes, 1)
	assert.Equal(t, "'a", hrtb.Lifetimes[0].Name)
	assert.NotNil(t, hrtb.Child)
}

func TestTypeDisambiguationQualifiedPath(t *testing.T) {
	p := newTestParser("<Foo as Bar>::Baz")
	ty, okv := p.typeDisambiguation()
	require.True(t, okv)
	require.NotNil(t, ty.Trait)
	assert.Equal(t, "Baz", ty.Path.Components[0].Name.Name)
}

func TestTypeDisambiguationWithoutAsClause(t *testing.T) {
	p := newTestParser("<Foo>::Baz")
	ty, okv := p.typeDisambiguation()
	require.True(t, okv)
	assert.Nil(t, ty.Trait)
}

// TestTypeDisambiguationReachableFromTypDispatch exercises typ() itself,
// the real grammar entry point, rather than calling typeDisambiguation
// directly — a type in return-type position like `fn f() -> <T as
// Trait>::Item` must not fall through to typeCombination and fail on `<`.
func TestTypeDisambiguationReachableFromTypDispatch(t *testing.T) {
	ty := mustType(t, "<T as Trait>::Item")
	disamb, ok := ty.(*cst.TypeDisambiguation)
	require.True(t, ok)
	assert.Equal(t, "Item", disamb.Path.Components[0].Name.Name)
}

func TestTypeDisambiguationReachableInFunctionReturnType(t *testing.T) {
	fn := mustItem(t, `fn f() -> <T as Trait>::Item { x }`).(*cst.Function)
	_, ok := fn.ReturnType.(*cst.TypeDisambiguation)
	assert.True(t, ok)
}
