package cst

// Pattern is any pattern-position node: `optional(name @) kind` per spec
// §4.5. The kind alternation order (enforced by the parser, not this data
// model) matters: ranges must precede their endpoint kinds so `1...10` binds
// as a range rather than a bare number followed by `...`.
type Pattern interface {
	Node
	isPattern()
}

// Binder wraps any PatternKind with an optional `name @` prefix. Per
// invariant 5, Name is nil iff no `@` was consumed, in which case Kind's
// extent spans the whole pattern.
type Binder struct {
	Name *Ident // nil if absent
	Kind PatternKind
	Ext  Extent
}

func (b *Binder) Extent() Extent { return b.Ext }
func (*Binder) isPattern()       {}

// PatternKind is the closed set of pattern bodies a Binder may wrap: Byte,
// ByteString, Character, Ident, Number, Range, Reference, String, Struct,
// Tuple.
type PatternKind interface {
	Node
	isPatternKind()
}

type PatternByte struct {
	Ext Extent
}

func (p *PatternByte) Extent() Extent { return p.Ext }
func (*PatternByte) isPatternKind()   {}

type PatternByteString struct{ Ext Extent }

func (p *PatternByteString) Extent() Extent { return p.Ext }
func (*PatternByteString) isPatternKind()   {}

type PatternCharacter struct{ Ext Extent }

func (p *PatternCharacter) Extent() Extent { return p.Ext }
func (*PatternCharacter) isPatternKind()   {}

type PatternString struct{ Ext Extent }

func (p *PatternString) Extent() Extent { return p.Ext }
func (*PatternString) isPatternKind()   {}

// PatternIdent is a bound-name pattern: `name`, `ref name`, `mut name`, or a
// bare enum/unit-struct path.
type PatternIdent struct {
	Ref  bool
	Mut  bool
	Path *Path
	Ext  Extent
}

func (p *PatternIdent) Extent() Extent { return p.Ext }
func (*PatternIdent) isPatternKind()   {}

type PatternNumber struct {
	Negative bool
	Number   *NumberLit
	Ext      Extent
}

func (p *PatternNumber) Extent() Extent { return p.Ext }
func (*PatternNumber) isPatternKind()   {}

// PatternRangeEndpoint is a Character or Number endpoint.
type PatternRangeEndpoint interface {
	Node
	isPatternRangeEndpoint()
}

func (*PatternCharacter) isPatternRangeEndpoint() {}
func (*PatternNumber) isPatternRangeEndpoint()    {}

// PatternRange is `lo...hi` or `lo..=hi`.
type PatternRange struct {
	Lo        PatternRangeEndpoint
	Hi        PatternRangeEndpoint
	Inclusive bool
	Ext       Extent
}

func (p *PatternRange) Extent() Extent { return p.Ext }
func (*PatternRange) isPatternKind()   {}

type PatternReference struct {
	Mutable bool
	Inner   PatternKind
	Ext     Extent
}

func (p *PatternReference) Extent() Extent { return p.Ext }
func (*PatternReference) isPatternKind()   {}

// PatternStructField is `name [: subpattern]`; a bare name is shorthand.
type PatternStructField struct {
	Name      *Ident
	Subpattern Pattern // nil for the bare shorthand form
	Ext       Extent
}

func (p *PatternStructField) Extent() Extent { return p.Ext }

type PatternStruct struct {
	Path   *Path
	Fields []*PatternStructField
	Rest   bool // `..` present
	Ext    Extent
}

func (p *PatternStruct) Extent() Extent { return p.Ext }
func (*PatternStruct) isPatternKind()   {}

// PatternTupleMember is either a Pattern or the rest-marker `..`.
type PatternTupleMember interface {
	Node
	isPatternTupleMember()
}

type PatternRest struct{ Ext Extent }

func (p *PatternRest) Extent() Extent { return p.Ext }
func (*PatternRest) isPatternTupleMember() {}

type patternTupleValue struct{ Pattern Pattern }

func (p *patternTupleValue) Extent() Extent { return p.Pattern.Extent() }
func (*patternTupleValue) isPatternTupleMember() {}

// WrapTuplePattern lifts a Pattern into a PatternTupleMember for use inside a
// tuple/tuple-struct pattern's member list.
func WrapTuplePattern(p Pattern) PatternTupleMember { return &patternTupleValue{Pattern: p} }

// UnwrapTuplePattern extracts the Pattern from a member built by
// WrapTuplePattern, or nil if member is the rest marker `..`.
func UnwrapTuplePattern(m PatternTupleMember) Pattern {
	if v, ok := m.(*patternTupleValue); ok {
		return v.Pattern
	}
	return nil
}

// PatternTuple is `(p1, .., p2)`; Path is non-nil for a tuple-struct pattern
// like `Some(x)`, nil for a plain tuple pattern `(x, y)`.
type PatternTuple struct {
	Path    *Path
	Members []PatternTupleMember
	Ext     Extent
}

func (p *PatternTuple) Extent() Extent { return p.Ext }
func (*PatternTuple) isPatternKind()   {}
