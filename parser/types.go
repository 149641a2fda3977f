package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// typ parses the top-level Type production: the fallback Combination form,
// or one of Array/Slice/Tuple/Pointer/Reference/Function/Uninhabited/
// Disambiguation.
func (p *Parser) typ() (cst.Type, bool) {
	switch p.current().Kind {
	case token.LBracket:
		return p.typeArrayOrSlice()
	case token.LParen:
		return p.typeTuple()
	case token.Star:
		return p.typePointer()
	case token.Amp, token.AmpAmp:
		return p.typeReference()
	case token.KwFn:
		return p.typeFunction()
	case token.Bang:
		return p.typeUninhabited()
	case token.Lt:
		return p.typeDisambiguation()
	default:
		return p.typeCombination()
	}
}

func (p *Parser) typeArrayOrSlice() (cst.Type, bool) {
	start := p.offset()
	p.advance() // [
	elem, okv := p.typ()
	if !okv {
		return nil, false
	}
	if p.at(token.Semi) {
		p.advance()
		count, okv := p.expr()
		if !okv {
			return nil, false
		}
		if _, okv := p.literal(token.RBracket, "]"); !okv {
			return nil, false
		}
		end := p.sig[p.pos-1].Extent.End
		return &cst.TypeArray{Element: elem, Count: count, Ext: token.Extent{Start: start, End: end}}, true
	}
	if _, okv := p.literal(token.RBracket, "]"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.TypeSlice{Element: elem, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typeTuple() (cst.Type, bool) {
	start := p.offset()
	p.advance() // (
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.Type, bool) { return p.typ() })
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.TypeTuple{Members: list.Values, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typePointer() (cst.Type, bool) {
	start := p.offset()
	p.advance() // *
	kind := cst.PointerConst
	switch {
	case p.at(token.KwConst):
		p.advance()
	case p.at(token.KwMut):
		p.advance()
		kind = cst.PointerMut
	default:
		p.fail(p.offset(), diag.Literal("const"))
		return nil, false
	}
	inner, okv := p.typ()
	if !okv {
		return nil, false
	}
	return &cst.TypePointer{Kind: kind, Inner: inner, Ext: token.Extent{Start: start, End: inner.Extent().End}}, true
}

func (p *Parser) typeReference() (cst.Type, bool) {
	start := p.offset()
	if p.at(token.AmpAmp) {
		// `&&T` lexes as one token; treat as two nested references.
		t := p.advance()
		half := token.Extent{Start: t.Extent.Start + 1, End: t.Extent.End}
		inner, okv := p.typeReferenceBody(half.Start)
		if !okv {
			return nil, false
		}
		outer := &cst.TypeReference{Kind: cst.TypeReferenceKind{}, Inner: inner, Ext: token.Extent{Start: start, End: inner.Extent().End}}
		return outer, true
	}
	p.advance() // &
	return p.typeReferenceBody(start)
}

func (p *Parser) typeReferenceBody(start int) (cst.Type, bool) {
	var lt *cst.Lifetime
	if p.at(token.Lifetime) {
		l, okv := p.lifetime()
		if !okv {
			return nil, false
		}
		lt = l
	}
	mut := false
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}
	inner, okv := p.typ()
	if !okv {
		return nil, false
	}
	return &cst.TypeReference{
		Kind:  cst.TypeReferenceKind{Lifetime: lt, Mutable: mut},
		Inner: inner,
		Ext:   token.Extent{Start: start, End: inner.Extent().End},
	}, true
}

func (p *Parser) typeFunction() (cst.Type, bool) {
	start := p.offset()
	p.advance() // fn
	if _, okv := p.literal(token.LParen, "("); !okv {
		return nil, false
	}
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.Type, bool) { return p.typ() })
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	var ret cst.Type
	if p.at(token.Arrow) {
		p.advance()
		r, okv := p.typ()
		if !okv {
			return nil, false
		}
		ret = r
		end = ret.Extent().End
	}
	return &cst.TypeFunction{Arguments: list.Values, Return: ret, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typeUninhabited() (cst.Type, bool) {
	t, okv := p.literal(token.Bang, "!")
	if !okv {
		return nil, false
	}
	return &cst.TypeUninhabited{Ext: t.Extent}, true
}

// typeCombination parses the fallback production: a base (named type, HRTB,
// or impl-trait) plus zero or more `+`-joined additions.
func (p *Parser) typeCombination() (cst.Type, bool) {
	start := p.offset()
	base, okv := p.typeCombinationBase()
	if !okv {
		return nil, false
	}
	var additions []cst.TypeCombinationAdditional
	for {
		m := p.mark()
		if !plusSep(p) {
			break
		}
		add, okv := p.typeCombinationAddition()
		if !okv {
			p.reset(m)
			break
		}
		additions = append(additions, add)
	}
	end := base.Extent().End
	if len(additions) > 0 {
		end = additions[len(additions)-1].Extent().End
	}
	return &cst.TypeCombination{Base: base, Additions: additions, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typeCombinationBase() (cst.TypeCombinationBase, bool) {
	if p.at(token.KwFor) {
		return p.typeHRTB()
	}
	if p.at(token.KwImpl) {
		return p.typeImplTrait()
	}
	return p.typeNamed()
}

// typeImplTrait parses `impl Bound1 + Bound2`. "impl" is a reserved keyword,
// so it is recognized here by token.KwImpl.
func (p *Parser) typeImplTrait() (*cst.TypeImplTrait, bool) {
	start := p.offset()
	p.advance() // impl
	bounds, okv := p.traitBounds()
	if !okv {
		return nil, false
	}
	return &cst.TypeImplTrait{Bounds: bounds, Ext: token.Extent{Start: start, End: bounds.Ext.End}}, true
}

func (p *Parser) typeHRTB() (cst.TypeCombinationBase, bool) {
	start := p.offset()
	p.advance() // for
	if _, okv := p.literal(token.Lt, "<"); !okv {
		return nil, false
	}
	list, okv := oneOrMoreTailed(p, commaSep, func(p *Parser) (*cst.Lifetime, bool) { return p.lifetime() })
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Gt, ">"); !okv {
		return nil, false
	}
	child, okv := p.typ()
	if !okv {
		return nil, false
	}
	return &cst.TypeHigherRankedTraitBounds{
		Lifetimes: list.Values,
		Child:     child,
		Ext:       token.Extent{Start: start, End: child.Extent().End},
	}, true
}

func (p *Parser) typeCombinationAddition() (cst.TypeCombinationAdditional, bool) {
	if p.at(token.Lifetime) {
		return p.lifetime()
	}
	return p.typeNamed()
}

func (p *Parser) typeNamed() (*cst.TypeNamed, bool) {
	start := p.offset()
	first, okv := p.typeNamedComponent()
	if !okv {
		return nil, false
	}
	components := []*cst.TypeNamedComponent{first}
	for {
		m := p.mark()
		if !p.at(token.ColonColon) {
			break
		}
		p.advance()
		comp, okv := p.typeNamedComponent()
		if !okv {
			p.reset(m)
			break
		}
		components = append(components, comp)
	}
	end := components[len(components)-1].Extent().End
	return &cst.TypeNamed{Components: components, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typeNamedComponent() (*cst.TypeNamedComponent, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	var generics cst.TypeGenerics
	end := name.Ext.End
	m := p.mark()
	if p.at(token.LParen) {
		g, okv := p.typeGenericsFunction()
		if okv {
			generics = g
			end = g.Ext.End
		} else {
			p.reset(m)
		}
	} else if p.at(token.Lt) {
		g, okv := p.typeGenericsAngle()
		if okv {
			generics = g
			end = g.Ext.End
		} else {
			p.reset(m)
		}
	}
	return &cst.TypeNamedComponent{Name: name, Generics: generics, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typeGenericsFunction() (*cst.TypeGenericsFunction, bool) {
	start := p.offset()
	p.advance() // (
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.Type, bool) { return p.typ() })
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	var ret cst.Type
	if p.at(token.Arrow) {
		p.advance()
		r, okv := p.typ()
		if !okv {
			return nil, false
		}
		ret = r
		end = ret.Extent().End
	}
	return &cst.TypeGenericsFunction{Arguments: list.Values, Return: ret, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) typeGenericsAngle() (*cst.TypeGenericsAngle, bool) {
	start := p.offset()
	if _, okv := p.literal(token.Lt, "<"); !okv {
		return nil, false
	}
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.TypeGenericsAngleMember, bool) {
		if p.at(token.Lifetime) {
			l, okv := p.lifetime()
			if !okv {
				return nil, false
			}
			return l, true
		}
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		return cst.WrapGenericType(t), true
	})
	if _, okv := p.literal(token.Gt, ">"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.TypeGenericsAngle{Members: list.Values, Ext: token.Extent{Start: start, End: end}}, true
}

// typeDisambiguation parses `<T as Trait>::segment::...` in type position,
// where a qualified path needs to name the implementing type explicitly.
// Expression position has its own disambiguationExpr.
func (p *Parser) typeDisambiguation() (*cst.TypeDisambiguation, bool) {
	start := p.offset()
	if _, okv := p.literal(token.Lt, "<"); !okv {
		return nil, false
	}
	inner, okv := p.typ()
	if !okv {
		return nil, false
	}
	var trait cst.Type
	if p.at(token.KwAs) {
		p.advance()
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		trait = t
	}
	if _, okv := p.literal(token.Gt, ">"); !okv {
		return nil, false
	}
	if _, okv := p.literal(token.ColonColon, "::"); !okv {
		return nil, false
	}
	path, okv := p.typeNamed()
	if !okv {
		return nil, false
	}
	return &cst.TypeDisambiguation{
		Type:  inner,
		Trait: trait,
		Path:  path,
		Ext:   token.Extent{Start: start, End: path.Ext.End},
	}, true
}
