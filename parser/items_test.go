package parser

import (
	"testing"

	"github.com/rustcst/parser/cst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, src string) cst.Item {
	t.Helper()
	p := newTestParser(src)
	it, okv := p.item()
	require.True(t, okv, "failed to parse item %q: %v", src, p.diagnostic())
	return it
}

func TestItemAttributeOuterAndInner(t *testing.T) {
	outer := mustItem(t, `#[derive(Debug)]`).(*cst.Attribute)
	assert.False(t, outer.Inner)

	inner := mustItem(t, `#![allow(dead_code)]`).(*cst.Attribute)
	assert.True(t, inner.Inner)
}

func TestItemExternCrateWithAlias(t *testing.T) {
	ec := mustItem(t, `extern crate serde as ser;`).(*cst.ExternCrate)
	assert.Equal(t, "serde", ec.Name.Name)
	require.NotNil(t, ec.Alias)
	assert.Equal(t, "ser", ec.Alias.Name)
}

func TestItemExternBlockWithABI(t *testing.T) {
	eb := mustItem(t, `extern "C" { fn puts(s: *const u8); }`).(*cst.ExternBlock)
	assert.Equal(t, "C", eb.ABI)
}

func TestItemModuleInline(t *testing.T) {
	m := mustItem(t, `mod inner { fn f() {} }`).(*cst.Module)
	assert.Equal(t, "inner", m.Name.Name)
	require.Len(t, m.Items, 1)
	_, ok := m.Items[0].(*cst.Function)
	assert.True(t, ok)
}

func TestItemModuleExternalFile(t *testing.T) {
	m := mustItem(t, `mod other;`).(*cst.Module)
	assert.Equal(t, "other", m.Name.Name)
	assert.Nil(t, m.Items)
}

func TestItemEnumWithTupleAndStructVariants(t *testing.T) {
	e := mustItem(t, `enum E { A, B(u8), C { x: u8 } }`).(*cst.Enum)
	require.Len(t, e.Variants, 3)
	assert.Nil(t, e.Variants[0].Body)
	_, isTuple := e.Variants[1].Body.(*cst.StructDefinitionBodyTuple)
	assert.True(t, isTuple)
	_, isBrace := e.Variants[2].Body.(*cst.StructDefinitionBodyBrace)
	assert.True(t, isBrace)
}

func TestItemTopLevelMacroCallWithSemicolon(t *testing.T) {
	mc := mustItem(t, `my_macro!(a, b);`).(*cst.MacroCall)
	assert.Equal(t, "my_macro", mc.Name.Name)
	assert.Equal(t, byte('('), mc.Args.Delimiter)
}

func TestItemTopLevelMacroCallBracketDelimiter(t *testing.T) {
	mc := mustItem(t, `lazy_static![FOO];`).(*cst.MacroCall)
	assert.Equal(t, byte('['), mc.Args.Delimiter)
}

func TestItemTypeAlias(t *testing.T) {
	ta := mustItem(t, `type Pair<T> = (T, T);`).(*cst.TypeAlias)
	assert.Equal(t, "Pair", ta.Name.Name)
	require.NotNil(t, ta.Generics)
	_, isTuple := ta.Value.(*cst.TypeTuple)
	assert.True(t, isTuple)
}

func TestItemTraitWithSupertraitBound(t *testing.T) {
	tr := mustItem(t, `trait Shape: Clone { fn area(&self) -> f64; }`).(*cst.Trait)
	require.NotNil(t, tr.Bounds)
	assert.Len(t, tr.Bounds.Bounds, 1)
	require.Len(t, tr.Members, 1)
}

func TestItemUnsafeTrait(t *testing.T) {
	tr := mustItem(t, `unsafe trait Marker {}`).(*cst.Trait)
	assert.True(t, tr.Unsafe)
}

func TestItemVisibilityScopes(t *testing.T) {
	crate := mustItem(t, `pub(crate) fn f() {}`).(*cst.Function)
	assert.Equal(t, "crate", crate.Visibility.Scope)

	super := mustItem(t, `pub(super) fn g() {}`).(*cst.Function)
	assert.Equal(t, "super", super.Visibility.Scope)

	inPath := mustItem(t, `pub(in crate::foo) fn h() {}`).(*cst.Function)
	assert.Equal(t, "in crate::foo", inPath.Visibility.Scope)

	bare := mustItem(t, `pub fn i() {}`).(*cst.Function)
	assert.True(t, bare.Visibility.Present)
	assert.Empty(t, bare.Visibility.Scope)
}

func TestItemPubUseRetainsVisibility(t *testing.T) {
	u := mustItem(t, `pub use foo::bar;`).(*cst.Use)
	assert.True(t, u.Visibility.Present)
}

func TestItemFunctionWithSelfByRefMut(t *testing.T) {
	fn := mustItem(t, `fn f(&mut self, x: u8) {}`).(*cst.Function)
	self, ok := fn.Self.(*cst.SelfArgumentShorthand)
	require.True(t, ok)
	assert.Equal(t, cst.SelfByRefMut, self.Qualifier)
	require.Len(t, fn.Arguments, 1)
	assert.Equal(t, "x", fn.Arguments[0].Name.Name)
}

func TestItemFunctionWithTypedSelf(t *testing.T) {
	fn := mustItem(t, `fn f(self: Box<Self>) {}`).(*cst.Function)
	self, ok := fn.Self.(*cst.SelfArgumentLonghand)
	require.True(t, ok)
	assert.NotNil(t, self.Type)
}

func TestItemConstQualifiedFunction(t *testing.T) {
	fn := mustItem(t, `const unsafe extern "C" fn f() {}`).(*cst.Function)
	assert.True(t, fn.Qualifiers.Const)
	assert.True(t, fn.Qualifiers.Unsafe)
	assert.Equal(t, "C", fn.Qualifiers.ABI)
}

func TestItemStructUnitForm(t *testing.T) {
	s := mustItem(t, `struct Unit;`).(*cst.Struct)
	assert.Nil(t, s.Body)
}

func TestItemGenericDeclarationsLifetimeAndTypeMixed(t *testing.T) {
	fn := mustItem(t, `fn f<'a, T: Clone>(x: &'a T) {}`).(*cst.Function)
	require.NotNil(t, fn.Generics)
	require.Len(t, fn.Generics.Lifetimes, 1)
	require.Len(t, fn.Generics.Types, 1)
	assert.Equal(t, "T", fn.Generics.Types[0].Name.Name)
}
