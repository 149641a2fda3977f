package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// ident consumes a reserved-word-excluded identifier. The lexer has already
// classified reserved words as keyword kinds distinct from token.Ident, so
// the keyword-exclusion half of spec's ident() contract is structural; the
// empty-candidate half is simply "current token is not Ident".
func (p *Parser) ident() (*cst.Ident, bool) {
	if !p.at(token.Ident) {
		p.fail(p.offset(), diag.ExpectedIdentifier)
		return nil, false
	}
	t := p.advance()
	return &cst.Ident{Name: t.Text, Ext: t.Extent}, true
}

// lifetime consumes a 'a / 'static / 'self lifetime leaf.
func (p *Parser) lifetime() (*cst.Lifetime, bool) {
	if !p.at(token.Lifetime) {
		p.fail(p.offset(), diag.Literal("lifetime"))
		return nil, false
	}
	t := p.advance()
	return &cst.Lifetime{Name: t.Text, Ext: t.Extent}, true
}

func (p *Parser) path() (*cst.Path, bool) {
	start := p.offset()
	leading := false
	if p.at(token.ColonColon) {
		p.advance()
		leading = true
	}
	first, okv := p.pathComponent()
	if !okv {
		return nil, false
	}
	components := []*cst.PathComponent{first}
	for {
		m := p.mark()
		if !p.at(token.ColonColon) {
			break
		}
		p.advance()
		comp, okv := p.pathComponent()
		if !okv {
			p.reset(m)
			break
		}
		components = append(components, comp)
	}
	end := components[len(components)-1].Extent().End
	return &cst.Path{Leading: leading, Components: components, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) pathComponent() (*cst.PathComponent, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	var tf *cst.Turbofish
	m := p.mark()
	if p.at(token.ColonColon) {
		p.advance()
		if p.at(token.Lt) {
			if t, okv := p.turbofish(); okv {
				tf = t
			} else {
				p.reset(m)
			}
		} else {
			p.reset(m)
		}
	}
	end := name.Ext.End
	if tf != nil {
		end = tf.Ext.End
	}
	return &cst.PathComponent{Name: name, Turbofish: tf, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) turbofish() (*cst.Turbofish, bool) {
	start := p.offset()
	if _, okv := p.literal(token.Lt, "<"); !okv {
		return nil, false
	}
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.Type, bool) { return p.typ() })
	if _, okv := p.literal(token.Gt, ">"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.Turbofish{Args: list.Values, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) pathedIdent() (*cst.PathedIdent, bool) {
	path, okv := p.path()
	if !okv {
		return nil, false
	}
	return &cst.PathedIdent{Path: path, Ext: path.Ext}, true
}

func commaSep(p *Parser) bool {
	if p.at(token.Comma) {
		p.advance()
		return true
	}
	return false
}

func semiSep(p *Parser) bool {
	if p.at(token.Semi) {
		p.advance()
		return true
	}
	return false
}

func plusSep(p *Parser) bool {
	if p.at(token.Plus) {
		p.advance()
		return true
	}
	return false
}
