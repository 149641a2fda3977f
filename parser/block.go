package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/token"
)

// block parses `{ stmt* trailing_expr? }`. Per invariant 3, Trailing is set
// iff the final statement parsed was an expression not terminated by `;`;
// struct literals are re-enabled inside the body regardless of the enclosing
// context (spec §4.2).
func (p *Parser) block() (*cst.Block, bool) {
	start := p.offset()
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	var stmts []cst.Statement
	var trailing cst.Expression
	withStructLiterals(p, false, func() {
		for !p.at(token.RBrace) {
			stmt, trail, okv := p.statement()
			if !okv {
				return
			}
			if trail != nil {
				trailing = trail
				break
			}
			stmts = append(stmts, stmt)
		}
	})
	if _, okv := p.literal(token.RBrace, "}"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.Block{Statements: stmts, Trailing: trailing, Ext: token.Extent{Start: start, End: end}}, true
}

// statement parses one statement in a block body. It returns either a
// Statement (stmt != nil) or, when the final expression of the block has no
// trailing `;`, the bare trailing Expression (trail != nil) so the caller can
// promote it to Block.Trailing instead of wrapping it.
func (p *Parser) statement() (stmt cst.Statement, trail cst.Expression, ok bool) {
	switch p.current().Kind {
	case token.KwLet:
		l, okv := p.letStatement()
		if !okv {
			return nil, nil, false
		}
		return l, nil, true
	case token.KwUse:
		u, okv := p.useItem()
		if !okv {
			return nil, nil, false
		}
		return u, nil, true
	}
	e, okv := p.expr()
	if !okv {
		return nil, nil, false
	}
	return p.finishStatement(e)
}

func (p *Parser) finishStatement(e cst.Expression) (cst.Statement, cst.Expression, bool) {
	if p.at(token.Semi) {
		t := p.advance()
		return &cst.ExpressionStatement{Expression: e, Terminated: true, Ext: token.Extent{Start: e.Extent().Start, End: t.Extent.End}}, nil, true
	}
	if cst.IsImplicitSeparator(e) && !p.at(token.RBrace) {
		return &cst.ExpressionStatement{Expression: e, Terminated: false, Ext: e.Extent()}, nil, true
	}
	return nil, e, true
}

func (p *Parser) letStatement() (*cst.Let, bool) {
	start := p.offset()
	p.advance() // let
	pat, okv := p.pattern()
	if !okv {
		return nil, false
	}
	var t cst.Type
	if p.at(token.Colon) {
		p.advance()
		typ, okv := p.typ()
		if !okv {
			return nil, false
		}
		t = typ
	}
	var value cst.Expression
	end := pat.Extent().End
	if t != nil {
		end = t.Extent().End
	}
	if p.at(token.Eq) {
		p.advance()
		v, okv := p.expr()
		if !okv {
			return nil, false
		}
		value = v
		end = value.Extent().End
	}
	if semiT, okv := p.literal(token.Semi, ";"); okv {
		end = semiT.Extent.End
	}
	return &cst.Let{Pattern: pat, Type: t, Value: value, Ext: token.Extent{Start: start, End: end}}, true
}
