package parser

import (
	"strings"

	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// item parses any one top-level or module-level declaration.
func (p *Parser) item() (cst.Item, bool) {
	if p.at(token.Pound) {
		return p.attribute()
	}
	// useItem parses its own leading visibility, so it is dispatched on before
	// the generic visibility parse below would otherwise consume it.
	if p.at(token.KwUse) || (p.at(token.KwPub) && p.peekIsUse()) {
		return p.useItem()
	}
	vis, okv := p.visibility()
	if !okv {
		return nil, false
	}
	switch p.current().Kind {
	case token.KwConst:
		if next := p.sig[p.pos+1].Kind; next == token.KwFn || next == token.KwUnsafe || next == token.KwExtern {
			return p.functionItem(vis)
		}
		return p.constItem(vis)
	case token.KwStatic:
		return p.staticItem(vis)
	case token.KwExtern:
		return p.externCrateOrBlock(vis)
	case token.KwMod:
		return p.moduleItem(vis)
	case token.KwFn:
		return p.functionItem(vis)
	case token.KwUnsafe:
		if p.sig[p.pos+1].Kind == token.KwTrait {
			return p.traitItem(vis)
		}
		return p.functionItem(vis)
	case token.KwStruct:
		return p.structItem(vis)
	case token.KwEnum:
		return p.enumItem(vis)
	case token.KwTrait:
		return p.traitItem(vis)
	case token.KwImpl:
		return p.implItem()
	case token.KwType:
		return p.typeAliasItem(vis)
	case token.Ident:
		return p.macroCallItem()
	}
	p.fail(p.offset(), diag.Literal("item"))
	return nil, false
}

// peekIsUse reports whether a `pub(...)` visibility prefix at the cursor is
// immediately followed by `use`, without consuming anything.
func (p *Parser) peekIsUse() bool {
	m := p.mark()
	defer p.reset(m)
	if _, okv := p.visibility(); !okv {
		return false
	}
	return p.at(token.KwUse)
}

func (p *Parser) visibility() (cst.Visibility, bool) {
	if !p.at(token.KwPub) {
		return cst.Visibility{}, true
	}
	t := p.advance()
	scope := ""
	end := t.Extent.End
	if p.at(token.LParen) {
		m := p.mark()
		p.advance()
		switch {
		case p.at(token.KwCrate):
			p.advance()
			scope = "crate"
		case p.current().Text == "super" && p.at(token.Ident):
			p.advance()
			scope = "super"
		case p.at(token.KwIn):
			p.advance()
			prefix := ""
			if p.at(token.KwCrate) && p.sig[p.pos+1].Kind == token.ColonColon {
				p.advance() // crate
				p.advance() // ::
				prefix = "crate::"
			}
			path, okv := p.path()
			if !okv {
				p.reset(m)
				return cst.Visibility{Present: true, Ext: t.Extent}, true
			}
			scope = "in " + prefix + pathText(path)
		default:
			p.reset(m)
			return cst.Visibility{Present: true, Ext: t.Extent}, true
		}
		if rp, okv := p.literal(token.RParen, ")"); okv {
			end = rp.Extent.End
		} else {
			p.reset(m)
			return cst.Visibility{Present: true, Ext: t.Extent}, true
		}
	}
	return cst.Visibility{Present: true, Scope: scope, Ext: token.Extent{Start: t.Extent.Start, End: end}}, true
}

func pathText(path *cst.Path) string {
	out := ""
	for i, c := range path.Components {
		if i > 0 {
			out += "::"
		}
		out += c.Name.Name
	}
	return out
}

func (p *Parser) attribute() (*cst.Attribute, bool) {
	start := p.offset()
	p.advance() // #
	inner := false
	if p.at(token.Bang) {
		p.advance()
		inner = true
	}
	if _, okv := p.literal(token.LBracket, "["); !okv {
		return nil, false
	}
	body, closeTok, okv := p.balancedBody(token.RBracket)
	if !okv {
		return nil, false
	}
	return &cst.Attribute{Inner: inner, Body: body, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) constItem(vis cst.Visibility) (*cst.Const, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // const
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Colon, ":"); !okv {
		return nil, false
	}
	typ, okv := p.typ()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Eq, "="); !okv {
		return nil, false
	}
	value, okv := p.expr()
	if !okv {
		return nil, false
	}
	semi, okv := p.literal(token.Semi, ";")
	if !okv {
		return nil, false
	}
	return &cst.Const{Visibility: vis, Name: name, Type: typ, Value: value, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
}

func (p *Parser) staticItem(vis cst.Visibility) (*cst.Static, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // static
	mut := false
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Colon, ":"); !okv {
		return nil, false
	}
	typ, okv := p.typ()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Eq, "="); !okv {
		return nil, false
	}
	value, okv := p.expr()
	if !okv {
		return nil, false
	}
	semi, okv := p.literal(token.Semi, ";")
	if !okv {
		return nil, false
	}
	return &cst.Static{Visibility: vis, Mutable: mut, Name: name, Type: typ, Value: value, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
}

func (p *Parser) externCrateOrBlock(vis cst.Visibility) (cst.Item, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // extern
	if p.at(token.KwCrate) {
		p.advance()
		name, okv := p.ident()
		if !okv {
			return nil, false
		}
		var alias *cst.Ident
		if p.at(token.KwAs) {
			p.advance()
			a, okv := p.ident()
			if !okv {
				return nil, false
			}
			alias = a
		}
		semi, okv := p.literal(token.Semi, ";")
		if !okv {
			return nil, false
		}
		return &cst.ExternCrate{Name: name, Alias: alias, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
	}
	abi := ""
	if p.at(token.String) {
		t := p.advance()
		abi = strings.Trim(t.Text, `"`)
	}
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	body, closeTok, okv := p.balancedBody(token.RBrace)
	if !okv {
		return nil, false
	}
	return &cst.ExternBlock{ABI: abi, Body: body, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) moduleItem(vis cst.Visibility) (*cst.Module, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // mod
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	if p.at(token.Semi) {
		t := p.advance()
		return &cst.Module{Visibility: vis, Name: name, Ext: token.Extent{Start: start, End: t.Extent.End}}, true
	}
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	items, okv := p.itemsUntilBrace()
	if !okv {
		return nil, false
	}
	closeTok, okv := p.literal(token.RBrace, "}")
	if !okv {
		return nil, false
	}
	return &cst.Module{Visibility: vis, Name: name, Items: items, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

// itemsUntilBrace parses items until the closing `}` (not consumed).
func (p *Parser) itemsUntilBrace() ([]cst.Item, bool) {
	var items []cst.Item
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		it, okv := p.item()
		if !okv {
			return nil, false
		}
		items = append(items, it)
	}
	return items, true
}

func (p *Parser) useItem() (*cst.Use, bool) {
	start := p.offset()
	vis, okv := p.visibility()
	if !okv {
		return nil, false
	}
	if vis.Present {
		start = vis.Ext.Start
	}
	if !p.keyword(token.KwUse) {
		return nil, false
	}
	var path []*cst.Ident
	for {
		name, okv := p.ident()
		if !okv {
			return nil, false
		}
		path = append(path, name)
		if !p.at(token.ColonColon) {
			break
		}
		m := p.mark()
		p.advance()
		if p.at(token.LBrace) || p.at(token.Star) {
			p.reset(m)
			break
		}
		p.reset(m)
		p.advance()
	}
	var tail cst.UseTail
	if p.at(token.ColonColon) {
		p.advance()
		t, okv := p.useTail()
		if !okv {
			return nil, false
		}
		tail = t
	}
	semi, okv := p.literal(token.Semi, ";")
	if !okv {
		return nil, false
	}
	return &cst.Use{Visibility: vis, Path: path, Tail: tail, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
}

func (p *Parser) useTail() (cst.UseTail, bool) {
	start := p.offset()
	if p.at(token.Star) {
		t := p.advance()
		return &cst.UseTailGlob{Ext: t.Extent}, true
	}
	if p.at(token.LBrace) {
		p.advance()
		list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (*cst.UseTailIdent, bool) { return p.useTailIdent() })
		closeTok, okv := p.literal(token.RBrace, "}")
		if !okv {
			return nil, false
		}
		return &cst.UseTailMulti{Items: list.Values, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
	}
	return p.useTailIdent()
}

func (p *Parser) useTailIdent() (*cst.UseTailIdent, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	end := name.Ext.End
	var alias *cst.Ident
	if p.at(token.KwAs) {
		p.advance()
		a, okv := p.ident()
		if !okv {
			return nil, false
		}
		alias = a
		end = alias.Ext.End
	}
	return &cst.UseTailIdent{Name: name, Alias: alias, Ext: token.Extent{Start: start, End: end}}, true
}

// genericDeclarations parses the optional `<...>` following an item name.
func (p *Parser) genericDeclarations() (*cst.GenericDeclarations, bool) {
	if !p.at(token.Lt) {
		return nil, true
	}
	start := p.offset()
	p.advance()
	var lifetimes []*cst.GenericDeclarationLifetime
	var types []*cst.GenericDeclarationType
	first := true
	for !p.at(token.Gt) {
		if !first {
			if !commaSep(p) {
				break
			}
			if p.at(token.Gt) {
				break
			}
		}
		first = false
		if p.at(token.Lifetime) {
			l, okv := p.genericDeclarationLifetime()
			if !okv {
				return nil, false
			}
			lifetimes = append(lifetimes, l)
			continue
		}
		t, okv := p.genericDeclarationType()
		if !okv {
			return nil, false
		}
		types = append(types, t)
	}
	closeTok, okv := p.literal(token.Gt, ">")
	if !okv {
		return nil, false
	}
	return &cst.GenericDeclarations{Lifetimes: lifetimes, Types: types, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) genericDeclarationLifetime() (*cst.GenericDeclarationLifetime, bool) {
	start := p.offset()
	name, okv := p.lifetime()
	if !okv {
		return nil, false
	}
	end := name.Ext.End
	var additions []*cst.Lifetime
	if p.at(token.Colon) {
		p.advance()
		list, okv := oneOrMoreTailed(p, plusSep, func(p *Parser) (*cst.Lifetime, bool) { return p.lifetime() })
		if !okv {
			return nil, false
		}
		additions = list.Values
		end = additions[len(additions)-1].Ext.End
	}
	return &cst.GenericDeclarationLifetime{Name: name, Additions: additions, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) genericDeclarationType() (*cst.GenericDeclarationType, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	end := name.Ext.End
	var additions []cst.TraitBound
	if p.at(token.Colon) {
		p.advance()
		list, okv := oneOrMoreTailed(p, plusSep, func(p *Parser) (cst.TraitBound, bool) { return p.traitBound() })
		if !okv {
			return nil, false
		}
		additions = list.Values
		end = additions[len(additions)-1].Extent().End
	}
	var def cst.Type
	if p.at(token.Eq) {
		p.advance()
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		def = t
		end = def.Extent().End
	}
	return &cst.GenericDeclarationType{Name: name, Additions: additions, Default: def, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) traitBound() (cst.TraitBound, bool) {
	start := p.offset()
	// A named bound stops before `+`, which separates bounds here.
	boundType := func() (cst.Type, bool) {
		if p.at(token.Ident) {
			return p.typeNamed()
		}
		return p.typ()
	}
	if p.at(token.Lifetime) {
		l, okv := p.lifetime()
		if !okv {
			return nil, false
		}
		return &cst.TraitBoundLifetime{Name: l, Ext: l.Ext}, true
	}
	if p.at(token.Question) {
		p.advance()
		t, okv := boundType()
		if !okv {
			return nil, false
		}
		return &cst.TraitBoundRelaxed{Type: t, Ext: token.Extent{Start: start, End: t.Extent().End}}, true
	}
	t, okv := boundType()
	if !okv {
		return nil, false
	}
	return &cst.TraitBoundNormal{Type: t, Ext: t.Extent()}, true
}

// traitBounds parses a `+`-joined sequence of trait bounds, used after
// `impl` and `: bounds` clauses.
func (p *Parser) traitBounds() (*cst.TraitBounds, bool) {
	start := p.offset()
	list, okv := oneOrMoreTailed(p, plusSep, func(p *Parser) (cst.TraitBound, bool) { return p.traitBound() })
	if !okv {
		return nil, false
	}
	end := list.Values[len(list.Values)-1].Extent().End
	return &cst.TraitBounds{Bounds: list.Values, Ext: token.Extent{Start: start, End: end}}, true
}

// whereClause parses the optional `where` clause preceding a body.
func (p *Parser) whereClause() ([]cst.Where, bool) {
	if !p.at(token.KwWhere) {
		return nil, true
	}
	p.advance()
	var out []cst.Where
	for {
		w, okv := p.whereItem()
		if !okv {
			return nil, false
		}
		out = append(out, w)
		if !commaSep(p) {
			break
		}
		if p.at(token.LBrace) || p.at(token.Semi) {
			break
		}
	}
	return out, true
}

func (p *Parser) whereItem() (cst.Where, bool) {
	start := p.offset()
	if p.at(token.Lifetime) {
		l, okv := p.lifetime()
		if !okv {
			return nil, false
		}
		return &cst.WhereLifetime{Name: l, Ext: l.Ext}, true
	}
	name, okv := p.typ()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Colon, ":"); !okv {
		return nil, false
	}
	bounds, okv := p.traitBounds()
	if !okv {
		return nil, false
	}
	return &cst.WhereType{Name: name, Bounds: bounds, Ext: token.Extent{Start: start, End: bounds.Ext.End}}, true
}

func (p *Parser) functionQualifiers() cst.FunctionQualifiers {
	start := p.offset()
	var q cst.FunctionQualifiers
	q.Ext.Start = start
	if p.at(token.KwConst) {
		p.advance()
		q.Const = true
	}
	if p.at(token.KwUnsafe) {
		p.advance()
		q.Unsafe = true
	}
	if p.at(token.KwExtern) {
		p.advance()
		if p.at(token.String) {
			t := p.advance()
			q.ABI = strings.Trim(t.Text, `"`)
		}
	}
	q.Ext.End = p.offset()
	return q
}

func (p *Parser) functionItem(vis cst.Visibility) (*cst.Function, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	qualifiers := p.functionQualifiers()
	if !p.keyword(token.KwFn) {
		return nil, false
	}
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	generics, okv := p.genericDeclarations()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.LParen, "("); !okv {
		return nil, false
	}
	self, args, okv := p.functionArguments()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	var ret cst.Type
	if p.at(token.Arrow) {
		p.advance()
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		ret = t
	}
	where, okv := p.whereClause()
	if !okv {
		return nil, false
	}
	var body *cst.Block
	end := p.offset()
	if p.at(token.Semi) {
		t := p.advance()
		end = t.Extent.End
	} else {
		b, okv := p.block()
		if !okv {
			return nil, false
		}
		body = b
		end = body.Ext.End
	}
	return &cst.Function{
		Visibility: vis, Qualifiers: qualifiers, Name: name, Generics: generics,
		Self: self, Arguments: args, ReturnType: ret, Where: where, Body: body,
		Ext: token.Extent{Start: start, End: end},
	}, true
}

func (p *Parser) functionArguments() (cst.SelfArgument, []*cst.NamedArgument, bool) {
	var self cst.SelfArgument
	if s, okv := optional(p, func(p *Parser) (cst.SelfArgument, bool) { return p.selfArgument() }); okv {
		self = s
		if p.at(token.Comma) {
			p.advance()
		}
	}
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (*cst.NamedArgument, bool) { return p.namedArgument() })
	return self, list.Values, true
}

func (p *Parser) selfArgument() (cst.SelfArgument, bool) {
	start := p.offset()
	if p.at(token.Ident) && p.current().Text == "self" {
		t := p.advance()
		if p.at(token.Colon) {
			p.advance()
			typ, okv := p.typ()
			if !okv {
				return nil, false
			}
			return &cst.SelfArgumentLonghand{Type: typ, Ext: token.Extent{Start: start, End: typ.Extent().End}}, true
		}
		return &cst.SelfArgumentShorthand{Qualifier: cst.SelfByValue, Ext: t.Extent}, true
	}
	if p.at(token.Amp) {
		m := p.mark()
		p.advance()
		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}
		if p.at(token.Ident) && p.current().Text == "self" {
			t := p.advance()
			q := cst.SelfByRef
			if mut {
				q = cst.SelfByRefMut
			}
			return &cst.SelfArgumentShorthand{Qualifier: q, Ext: token.Extent{Start: start, End: t.Extent.End}}, true
		}
		p.reset(m)
	}
	p.fail(p.offset(), diag.Literal("self"))
	return nil, false
}

func (p *Parser) namedArgument() (*cst.NamedArgument, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Colon, ":"); !okv {
		return nil, false
	}
	typ, okv := p.typ()
	if !okv {
		return nil, false
	}
	return &cst.NamedArgument{Name: name, Type: typ, Ext: token.Extent{Start: start, End: typ.Extent().End}}, true
}

func (p *Parser) structItem(vis cst.Visibility) (*cst.Struct, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // struct
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	generics, okv := p.genericDeclarations()
	if !okv {
		return nil, false
	}
	if p.at(token.LParen) {
		body, okv := p.structBodyTuple()
		if !okv {
			return nil, false
		}
		where, okv := p.whereClause()
		if !okv {
			return nil, false
		}
		semi, okv := p.literal(token.Semi, ";")
		if !okv {
			return nil, false
		}
		return &cst.Struct{Visibility: vis, Name: name, Generics: generics, Where: where, Body: body, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
	}
	where, okv := p.whereClause()
	if !okv {
		return nil, false
	}
	if p.at(token.LBrace) {
		body, okv := p.structBodyBrace()
		if !okv {
			return nil, false
		}
		return &cst.Struct{Visibility: vis, Name: name, Generics: generics, Where: where, Body: body, Ext: token.Extent{Start: start, End: body.Extent().End}}, true
	}
	semi, okv := p.literal(token.Semi, ";")
	if !okv {
		return nil, false
	}
	return &cst.Struct{Visibility: vis, Name: name, Generics: generics, Where: where, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
}

func (p *Parser) structBodyTuple() (*cst.StructDefinitionBodyTuple, bool) {
	start := p.offset()
	p.advance() // (
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (*cst.StructDefinitionFieldUnnamed, bool) {
		fstart := p.offset()
		fv, okv := p.visibility()
		if !okv {
			return nil, false
		}
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		return &cst.StructDefinitionFieldUnnamed{Visibility: fv, Type: t, Ext: token.Extent{Start: fstart, End: t.Extent().End}}, true
	})
	closeTok, okv := p.literal(token.RParen, ")")
	if !okv {
		return nil, false
	}
	return &cst.StructDefinitionBodyTuple{Fields: list.Values, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) structBodyBrace() (*cst.StructDefinitionBodyBrace, bool) {
	start := p.offset()
	p.advance() // {
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (*cst.StructDefinitionFieldNamed, bool) {
		fstart := p.offset()
		fv, okv := p.visibility()
		if !okv {
			return nil, false
		}
		name, okv := p.ident()
		if !okv {
			return nil, false
		}
		if _, okv := p.literal(token.Colon, ":"); !okv {
			return nil, false
		}
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		return &cst.StructDefinitionFieldNamed{Visibility: fv, Name: name, Type: t, Ext: token.Extent{Start: fstart, End: t.Extent().End}}, true
	})
	closeTok, okv := p.literal(token.RBrace, "}")
	if !okv {
		return nil, false
	}
	return &cst.StructDefinitionBodyBrace{Fields: list.Values, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) enumItem(vis cst.Visibility) (*cst.Enum, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // enum
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	generics, okv := p.genericDeclarations()
	if !okv {
		return nil, false
	}
	where, okv := p.whereClause()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (*cst.EnumVariant, bool) { return p.enumVariant() })
	closeTok, okv := p.literal(token.RBrace, "}")
	if !okv {
		return nil, false
	}
	return &cst.Enum{Visibility: vis, Name: name, Generics: generics, Where: where, Variants: list.Values, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) enumVariant() (*cst.EnumVariant, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	end := name.Ext.End
	var body cst.EnumVariantBody
	switch {
	case p.at(token.LParen):
		b, okv := p.structBodyTuple()
		if !okv {
			return nil, false
		}
		body = b
		end = b.Ext.End
	case p.at(token.LBrace):
		b, okv := p.structBodyBrace()
		if !okv {
			return nil, false
		}
		body = b
		end = b.Ext.End
	}
	return &cst.EnumVariant{Name: name, Body: body, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) traitItem(vis cst.Visibility) (*cst.Trait, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	unsafe := false
	if p.at(token.KwUnsafe) {
		p.advance()
		unsafe = true
	}
	p.advance() // trait
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	generics, okv := p.genericDeclarations()
	if !okv {
		return nil, false
	}
	var bounds *cst.TraitBounds
	if p.at(token.Colon) {
		p.advance()
		b, okv := p.traitBounds()
		if !okv {
			return nil, false
		}
		bounds = b
	}
	where, okv := p.whereClause()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	members, okv := p.traitOrImplMembers()
	if !okv {
		return nil, false
	}
	closeTok, okv := p.literal(token.RBrace, "}")
	if !okv {
		return nil, false
	}
	return &cst.Trait{Visibility: vis, Unsafe: unsafe, Name: name, Generics: generics, Bounds: bounds, Where: where, Members: members, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

// traitOrImplMembers parses the item list inside a trait or impl body:
// functions, associated types, and consts (functions may be signature-only).
func (p *Parser) traitOrImplMembers() ([]cst.Item, bool) {
	var items []cst.Item
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.Pound) {
			a, okv := p.attribute()
			if !okv {
				return nil, false
			}
			items = append(items, a)
			continue
		}
		vis, okv := p.visibility()
		if !okv {
			return nil, false
		}
		switch p.current().Kind {
		case token.KwType:
			at, okv := p.associatedType()
			if !okv {
				return nil, false
			}
			items = append(items, at)
		case token.KwConst:
			c, okv := p.constItem(vis)
			if !okv {
				return nil, false
			}
			items = append(items, c)
		default:
			f, okv := p.functionItem(vis)
			if !okv {
				return nil, false
			}
			items = append(items, f)
		}
	}
	return items, true
}

func (p *Parser) associatedType() (*cst.AssociatedType, bool) {
	start := p.offset()
	p.advance() // type
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	end := name.Ext.End
	var bound *cst.TraitBounds
	if p.at(token.Colon) {
		p.advance()
		b, okv := p.traitBounds()
		if !okv {
			return nil, false
		}
		bound = b
		end = bound.Ext.End
	}
	var value cst.Type
	if p.at(token.Eq) {
		p.advance()
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		value = t
		end = value.Extent().End
	}
	semi, okv := p.literal(token.Semi, ";")
	if !okv {
		return nil, false
	}
	return &cst.AssociatedType{Name: name, Bound: bound, Value: value, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
}

func (p *Parser) implItem() (*cst.Impl, bool) {
	start := p.offset()
	p.advance() // impl
	generics, okv := p.genericDeclarations()
	if !okv {
		return nil, false
	}
	first, okv := p.typ()
	if !okv {
		return nil, false
	}
	var ofTrait cst.Type
	typ := first
	if p.at(token.KwFor) {
		p.advance()
		ofTrait = first
		t, okv := p.typ()
		if !okv {
			return nil, false
		}
		typ = t
	}
	where, okv := p.whereClause()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	members, okv := p.traitOrImplMembers()
	if !okv {
		return nil, false
	}
	closeTok, okv := p.literal(token.RBrace, "}")
	if !okv {
		return nil, false
	}
	return &cst.Impl{Generics: generics, OfTrait: ofTrait, Type: typ, Where: where, Members: members, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

func (p *Parser) typeAliasItem(vis cst.Visibility) (*cst.TypeAlias, bool) {
	start := p.offset()
	if vis.Present {
		start = vis.Ext.Start
	}
	p.advance() // type
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	generics, okv := p.genericDeclarations()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Eq, "="); !okv {
		return nil, false
	}
	value, okv := p.typ()
	if !okv {
		return nil, false
	}
	semi, okv := p.literal(token.Semi, ";")
	if !okv {
		return nil, false
	}
	return &cst.TypeAlias{Visibility: vis, Name: name, Generics: generics, Value: value, Ext: token.Extent{Start: start, End: semi.Extent.End}}, true
}

func (p *Parser) macroCallItem() (*cst.MacroCall, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Bang, "!"); !okv {
		return nil, false
	}
	args, okv := p.macroCallArgs()
	if !okv {
		return nil, false
	}
	end := args.Ext.End
	if p.at(token.Semi) {
		t := p.advance()
		end = t.Extent.End
	}
	return &cst.MacroCall{Name: name, Args: args, Ext: token.Extent{Start: start, End: end}}, true
}
