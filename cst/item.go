package cst

// Item is any top-level (or module-level) declaration. The variant set is
// closed: Attribute, Const, Enum, ExternCrate, ExternBlock, Function, Impl,
// MacroCall, Module, Static, Struct, Trait, TypeAlias, Use, WhitespaceRun,
// plus AssociatedType, which appears only in trait and impl bodies.
type Item interface {
	Node
	isItem()
}

// Attribute is a `#[...]` or `#![...]` item. Its body is not interpreted —
// it is recorded as a single delimiter-balanced extent (spec §6).
type Attribute struct {
	Inner bool // true for `#![...]`, false for `#[...]`
	Body  Extent
	Ext   Extent
}

func (a *Attribute) Extent() Extent { return a.Ext }
func (*Attribute) isItem()          {}

// Const is `[pub] const NAME: Type = expr;`.
type Const struct {
	Visibility Visibility
	Name       *Ident
	Type       Type
	Value      Expression
	Ext        Extent
}

func (c *Const) Extent() Extent { return c.Ext }
func (*Const) isItem()          {}

// Static is `[pub] static [mut] NAME: Type = expr;`.
type Static struct {
	Visibility Visibility
	Mutable    bool
	Name       *Ident
	Type       Type
	Value      Expression
	Ext        Extent
}

func (s *Static) Extent() Extent { return s.Ext }
func (*Static) isItem()          {}

// ExternCrate is `extern crate name [as alias];`.
type ExternCrate struct {
	Name  *Ident
	Alias *Ident // nil if absent
	Ext   Extent
}

func (e *ExternCrate) Extent() Extent { return e.Ext }
func (*ExternCrate) isItem()          {}

// ExternBlock is `extern ["ABI"] { ... }`; its interior is recorded as an
// opaque balanced extent per spec §6 (foreign-function signatures are not
// parsed individually — the language's extern-block grammar is outside the
// spec's named Item variants and this core does not special-case it).
type ExternBlock struct {
	ABI  string // empty if no ABI string literal was given
	Body Extent
	Ext  Extent
}

func (e *ExternBlock) Extent() Extent { return e.Ext }
func (*ExternBlock) isItem()          {}

// Module is `mod name;` or `mod name { items }`.
type Module struct {
	Visibility Visibility
	Name       *Ident
	Items      []Item // nil for the `mod name;` (external-file) form
	Ext        Extent
}

func (m *Module) Extent() Extent { return m.Ext }
func (*Module) isItem()          {}

// Use is `[pub] use path[::tail];`.
type Use struct {
	Visibility Visibility
	Path       []*Ident
	Tail       UseTail // nil for a plain trailing-ident use
	Ext        Extent
}

func (u *Use) Extent() Extent { return u.Ext }
func (*Use) isItem()          {}

// UseTail is the optional suffix of a use path: ::ident, ::*, or ::{...}.
type UseTail interface {
	Node
	isUseTail()
}

type UseTailIdent struct {
	Name  *Ident
	Alias *Ident // nil if no `as` rename
	Ext   Extent
}

func (u *UseTailIdent) Extent() Extent { return u.Ext }
func (*UseTailIdent) isUseTail()       {}

type UseTailGlob struct{ Ext Extent }

func (u *UseTailGlob) Extent() Extent { return u.Ext }
func (*UseTailGlob) isUseTail()       {}

type UseTailMulti struct {
	Items []*UseTailIdent
	Ext   Extent
}

func (u *UseTailMulti) Extent() Extent { return u.Ext }
func (*UseTailMulti) isUseTail()       {}

// GenericDeclarations is the `<...>` list following a name in an item header.
// Lifetime and type parameters may interleave; see DESIGN.md Open Question 1.
type GenericDeclarations struct {
	Lifetimes []*GenericDeclarationLifetime
	Types     []*GenericDeclarationType
	Ext       Extent
}

func (g *GenericDeclarations) Extent() Extent { return g.Ext }

type GenericDeclarationLifetime struct {
	Name      *Lifetime
	Additions []*Lifetime
	Ext       Extent
}

func (g *GenericDeclarationLifetime) Extent() Extent { return g.Ext }

type GenericDeclarationType struct {
	Name      *Ident
	Additions []TraitBound
	Default   Type // nil if absent
	Ext       Extent
}

func (g *GenericDeclarationType) Extent() Extent { return g.Ext }

// Where is a `where` clause item: a lifetime bound or a type bound.
type Where interface {
	Node
	isWhere()
}

type WhereLifetime struct {
	Name *Lifetime
	Ext  Extent
}

func (w *WhereLifetime) Extent() Extent { return w.Ext }
func (*WhereLifetime) isWhere()         {}

type WhereType struct {
	Name   Type
	Bounds *TraitBounds
	Ext    Extent
}

func (w *WhereType) Extent() Extent { return w.Ext }
func (*WhereType) isWhere()         {}

// TraitBounds is a `+`-joined sequence of trait bounds.
type TraitBounds struct {
	Bounds []TraitBound
	Ext    Extent
}

func (t *TraitBounds) Extent() Extent { return t.Ext }

type TraitBound interface {
	Node
	isTraitBound()
}

type TraitBoundLifetime struct {
	Name *Lifetime
	Ext  Extent
}

func (t *TraitBoundLifetime) Extent() Extent { return t.Ext }
func (*TraitBoundLifetime) isTraitBound()    {}

// TraitBoundNormal is a plain named-type bound, e.g. `Copy`.
type TraitBoundNormal struct {
	Type Type
	Ext  Extent
}

func (t *TraitBoundNormal) Extent() Extent { return t.Ext }
func (*TraitBoundNormal) isTraitBound()    {}

// TraitBoundRelaxed is `?Sized`.
type TraitBoundRelaxed struct {
	Type Type
	Ext  Extent
}

func (t *TraitBoundRelaxed) Extent() Extent { return t.Ext }
func (*TraitBoundRelaxed) isTraitBound()    {}

// FunctionQualifiers carries `const`/`unsafe`/`extern "ABI"` prefixes on fn.
type FunctionQualifiers struct {
	Const  bool
	Unsafe bool
	ABI    string // empty if no `extern "ABI"` qualifier
	Ext    Extent
}

// Function is `[pub] [qualifiers] fn name[<generics>](args) [-> Type] [where] { body }`.
// A trailing `;` in place of a body marks a signature-only declaration (as
// used inside trait definitions and extern blocks).
type Function struct {
	Visibility Visibility
	Qualifiers FunctionQualifiers
	Name       *Ident
	Generics   *GenericDeclarations // nil if absent
	Self       SelfArgument         // nil if not a method
	Arguments  []*NamedArgument
	ReturnType Type // nil if absent (unit return)
	Where      []Where
	Body       *Block // nil for signature-only declarations
	Ext        Extent
}

func (f *Function) Extent() Extent { return f.Ext }
func (*Function) isItem()          {}

// SelfArgument is the optional receiver of a method.
type SelfArgument interface {
	Node
	isSelfArgument()
}

// SelfArgumentLonghand is `self: Type`.
type SelfArgumentLonghand struct {
	Type Type
	Ext  Extent
}

func (s *SelfArgumentLonghand) Extent() Extent { return s.Ext }
func (*SelfArgumentLonghand) isSelfArgument()  {}

// SelfArgumentShorthandQualifier distinguishes `self`, `&self`, `&mut self`.
type SelfArgumentShorthandQualifier uint8

const (
	SelfByValue SelfArgumentShorthandQualifier = iota
	SelfByRef
	SelfByRefMut
)

type SelfArgumentShorthand struct {
	Qualifier SelfArgumentShorthandQualifier
	Ext       Extent
}

func (s *SelfArgumentShorthand) Extent() Extent { return s.Ext }
func (*SelfArgumentShorthand) isSelfArgument()  {}

// NamedArgument is one `name: Type` function parameter.
type NamedArgument struct {
	Name *Ident
	Type Type
	Ext  Extent
}

func (n *NamedArgument) Extent() Extent { return n.Ext }

// Struct is `[pub] struct Name[<generics>] (body) [where];`.
type Struct struct {
	Visibility Visibility
	Name       *Ident
	Generics   *GenericDeclarations
	Where      []Where
	Body       StructDefinitionBody // nil for a unit struct
	Ext        Extent
}

func (s *Struct) Extent() Extent { return s.Ext }
func (*Struct) isItem()          {}

type StructDefinitionBody interface {
	Node
	isStructDefinitionBody()
}

type StructDefinitionFieldNamed struct {
	Visibility Visibility
	Name       *Ident
	Type       Type
	Ext        Extent
}

func (f *StructDefinitionFieldNamed) Extent() Extent { return f.Ext }

type StructDefinitionBodyBrace struct {
	Fields []*StructDefinitionFieldNamed
	Ext    Extent
}

func (b *StructDefinitionBodyBrace) Extent() Extent { return b.Ext }
func (*StructDefinitionBodyBrace) isStructDefinitionBody() {}

type StructDefinitionFieldUnnamed struct {
	Visibility Visibility
	Type       Type
	Ext        Extent
}

func (f *StructDefinitionFieldUnnamed) Extent() Extent { return f.Ext }

type StructDefinitionBodyTuple struct {
	Fields []*StructDefinitionFieldUnnamed
	Ext    Extent
}

func (b *StructDefinitionBodyTuple) Extent() Extent { return b.Ext }
func (*StructDefinitionBodyTuple) isStructDefinitionBody() {}

// Enum is `[pub] enum Name[<generics>] [where] { variants }`.
type Enum struct {
	Visibility Visibility
	Name       *Ident
	Generics   *GenericDeclarations
	Where      []Where
	Variants   []*EnumVariant
	Ext        Extent
}

func (e *Enum) Extent() Extent { return e.Ext }
func (*Enum) isItem()          {}

type EnumVariant struct {
	Name *Ident
	Body EnumVariantBody // nil for a unit variant
	Ext  Extent
}

func (e *EnumVariant) Extent() Extent { return e.Ext }

type EnumVariantBody interface {
	Node
	isEnumVariantBody()
}

func (*StructDefinitionBodyTuple) isEnumVariantBody()  {}
func (*StructDefinitionBodyBrace) isEnumVariantBody() {}

// Trait is `[pub] [unsafe] trait Name[<generics>] [: bounds] [where] { members }`.
type Trait struct {
	Visibility Visibility
	Unsafe     bool
	Name       *Ident
	Generics   *GenericDeclarations
	Bounds     *TraitBounds
	Where      []Where
	Members    []Item
	Ext        Extent
}

func (t *Trait) Extent() Extent { return t.Ext }
func (*Trait) isItem()          {}

// Impl is `impl[<generics>] [Trait for] Type [where] { members }`.
type Impl struct {
	Generics *GenericDeclarations
	OfTrait  Type // nil for an inherent impl
	Type     Type
	Where    []Where
	Members  []Item
	Ext      Extent
}

func (i *Impl) Extent() Extent { return i.Ext }
func (*Impl) isItem()          {}

// AssociatedType is the `type Item = T;` form inside a trait or impl body.
type AssociatedType struct {
	Name  *Ident
	Bound *TraitBounds // nil if absent (trait declarations may bound it)
	Value Type         // nil in a trait declaration without a default
	Ext   Extent
}

func (a *AssociatedType) Extent() Extent { return a.Ext }
func (*AssociatedType) isItem()          {}

// TypeAlias is `[pub] type Name[<generics>] = Type;`.
type TypeAlias struct {
	Visibility Visibility
	Name       *Ident
	Generics   *GenericDeclarations
	Value      Type
	Ext        Extent
}

func (t *TypeAlias) Extent() Extent { return t.Ext }
func (*TypeAlias) isItem()          {}

// MacroCallArgs records a macro invocation's argument body, delimiter-balanced
// and uninterpreted, per spec §6.
type MacroCallArgs struct {
	Delimiter byte // '(', '[', or '{'
	Body      Extent
	Ext       Extent
}

func (m *MacroCallArgs) Extent() Extent { return m.Ext }

// MacroCall is `name!args` as a top-level item (e.g. `foo!{ ... }`).
type MacroCall struct {
	Name *Ident
	Args *MacroCallArgs
	Ext  Extent
}

func (m *MacroCall) Extent() Extent { return m.Ext }
func (*MacroCall) isItem()          {}
