package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// pattern parses `optional(name @) kind`, wrapping the result in a Binder.
func (p *Parser) pattern() (cst.Pattern, bool) {
	start := p.offset()
	m := p.mark()
	if p.at(token.Ident) && !p.at(token.KwRef) && !p.at(token.KwMut) {
		if name, okv := p.ident(); okv {
			if p.at(token.At) {
				p.advance()
				kind, okv := p.patternKind()
				if !okv {
					return nil, false
				}
				return &cst.Binder{Name: name, Kind: kind, Ext: token.Extent{Start: start, End: kind.Extent().End}}, true
			}
			p.reset(m)
		}
	}
	kind, okv := p.patternKind()
	if !okv {
		return nil, false
	}
	return &cst.Binder{Kind: kind, Ext: kind.Extent()}, true
}

// patternKind tries range patterns before their bare endpoint kinds, so
// `1...10` and `'a'..='z'` bind as ranges rather than a lone endpoint
// followed by a dangling `...`/`..=`.
func (p *Parser) patternKind() (cst.PatternKind, bool) {
	return alternate(p,
		func(p *Parser) (cst.PatternKind, bool) { return p.patternRange() },
		func(p *Parser) (cst.PatternKind, bool) { return p.patternReference() },
		func(p *Parser) (cst.PatternKind, bool) { return p.patternTupleOrStruct() },
		func(p *Parser) (cst.PatternKind, bool) { return p.patternIdent() },
		func(p *Parser) (cst.PatternKind, bool) { return p.patternLeaf() },
	)
}

func (p *Parser) patternLeaf() (cst.PatternKind, bool) {
	switch p.current().Kind {
	case token.ByteChar:
		t := p.advance()
		return &cst.PatternByte{Ext: t.Extent}, true
	case token.ByteString, token.RawByteString:
		t := p.advance()
		return &cst.PatternByteString{Ext: t.Extent}, true
	case token.Character:
		t := p.advance()
		return &cst.PatternCharacter{Ext: t.Extent}, true
	case token.String, token.RawString:
		t := p.advance()
		return &cst.PatternString{Ext: t.Extent}, true
	case token.NumberBinary, token.NumberOctal, token.NumberDecimal, token.NumberHexadecimal:
		return p.patternNumber()
	}
	p.fail(p.offset(), diag.Literal("pattern"))
	return nil, false
}

func (p *Parser) patternNumber() (*cst.PatternNumber, bool) {
	start := p.offset()
	neg := false
	if p.at(token.Minus) {
		p.advance()
		neg = true
	}
	n, okv := p.number()
	if !okv {
		return nil, false
	}
	end := n.Whole.End
	if n.Fraction.End > end {
		end = n.Fraction.End
	}
	if n.Exponent.End > end {
		end = n.Exponent.End
	}
	return &cst.PatternNumber{Negative: neg, Number: n, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) patternRangeEndpoint() (cst.PatternRangeEndpoint, bool) {
	if p.at(token.Character) {
		t := p.advance()
		return &cst.PatternCharacter{Ext: t.Extent}, true
	}
	return p.patternNumber()
}

func (p *Parser) patternRange() (*cst.PatternRange, bool) {
	start := p.offset()
	lo, okv := p.patternRangeEndpoint()
	if !okv {
		return nil, false
	}
	inclusive := false
	switch {
	case p.at(token.DotDotDot):
		p.advance()
		inclusive = true
	case isInclusiveRangeOp(p):
		p.advance() // ..
		p.advance() // =
		inclusive = true
	default:
		p.fail(p.offset(), diag.Literal("..."))
		return nil, false
	}
	hi, okv := p.patternRangeEndpoint()
	if !okv {
		return nil, false
	}
	return &cst.PatternRange{Lo: lo, Hi: hi, Inclusive: inclusive, Ext: token.Extent{Start: start, End: hi.Extent().End}}, true
}

// isInclusiveRangeOp recognizes `..=`, which the lexer has no single
// dedicated Kind for; it lexes as DotDot followed immediately by Eq with no
// gap, so the two adjacent significant tokens are checked for adjacency.
func isInclusiveRangeOp(p *Parser) bool {
	if !p.at(token.DotDot) {
		return false
	}
	dotdot := p.current()
	if p.pos+1 >= len(p.sig) {
		return false
	}
	next := p.sig[p.pos+1]
	return next.Kind == token.Eq && next.Extent.Start == dotdot.Extent.End
}

func (p *Parser) patternReference() (*cst.PatternReference, bool) {
	start := p.offset()
	if !p.at(token.Amp) {
		p.fail(p.offset(), diag.Literal("&"))
		return nil, false
	}
	p.advance()
	mut := false
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}
	inner, okv := p.patternKind()
	if !okv {
		return nil, false
	}
	return &cst.PatternReference{Mutable: mut, Inner: inner, Ext: token.Extent{Start: start, End: inner.Extent().End}}, true
}

func (p *Parser) patternIdent() (*cst.PatternIdent, bool) {
	start := p.offset()
	ref := false
	mut := false
	if p.at(token.KwRef) {
		p.advance()
		ref = true
	}
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}
	path, okv := p.path()
	if !okv {
		return nil, false
	}
	return &cst.PatternIdent{Ref: ref, Mut: mut, Path: path, Ext: token.Extent{Start: start, End: path.Ext.End}}, true
}

func (p *Parser) patternTupleOrStruct() (cst.PatternKind, bool) {
	start := p.offset()
	if p.at(token.LParen) {
		return p.patternTuple(nil, start)
	}
	m := p.mark()
	path, okv := p.path()
	if !okv {
		return nil, false
	}
	if p.at(token.LParen) {
		return p.patternTuple(path, start)
	}
	if p.at(token.LBrace) {
		return p.patternStruct(path, start)
	}
	p.reset(m)
	return nil, false
}

func (p *Parser) patternTuple(path *cst.Path, start int) (*cst.PatternTuple, bool) {
	p.advance() // (
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.PatternTupleMember, bool) {
		if p.at(token.DotDot) {
			t := p.advance()
			return &cst.PatternRest{Ext: t.Extent}, true
		}
		sub, okv := p.pattern()
		if !okv {
			return nil, false
		}
		return cst.WrapTuplePattern(sub), true
	})
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.PatternTuple{Path: path, Members: list.Values, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) patternStruct(path *cst.Path, start int) (*cst.PatternStruct, bool) {
	p.advance() // {
	var fields []*cst.PatternStructField
	rest := false
	for !p.at(token.RBrace) {
		if p.at(token.DotDot) {
			p.advance()
			rest = true
			break
		}
		f, okv := p.patternStructField()
		if !okv {
			return nil, false
		}
		fields = append(fields, f)
		if !commaSep(p) {
			break
		}
	}
	if _, okv := p.literal(token.RBrace, "}"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.PatternStruct{Path: path, Fields: fields, Rest: rest, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) patternStructField() (*cst.PatternStructField, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	var sub cst.Pattern
	end := name.Ext.End
	if p.at(token.Colon) {
		p.advance()
		s, okv := p.pattern()
		if !okv {
			return nil, false
		}
		sub = s
		end = sub.Extent().End
	}
	return &cst.PatternStructField{Name: name, Subpattern: sub, Ext: token.Extent{Start: start, End: end}}, true
}
