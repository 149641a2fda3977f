package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// binaryOps maps every punctuation token that spells a binary operator to its
// Operator tag. The lexer already tries the longest punctuation first (e.g.
// `<<=` before `<<` before `<`), so a plain Kind lookup here is sufficient.
var binaryOps = map[token.Kind]cst.Operator{
	token.Plus:      cst.OpAdd,
	token.Minus:     cst.OpSub,
	token.Star:      cst.OpMul,
	token.Slash:     cst.OpDiv,
	token.Percent:   cst.OpMod,
	token.EqEq:      cst.OpEq,
	token.Ne:        cst.OpNe,
	token.Lt:        cst.OpLt,
	token.Le:        cst.OpLe,
	token.Gt:        cst.OpGt,
	token.Ge:        cst.OpGe,
	token.AmpAmp:    cst.OpAnd,
	token.PipePipe:  cst.OpOr,
	token.Amp:       cst.OpBitAnd,
	token.Pipe:      cst.OpBitOr,
	token.Caret:     cst.OpBitXor,
	token.Shl:       cst.OpShl,
	token.Shr:       cst.OpShr,
	token.Eq:        cst.OpAssign,
	token.PlusEq:    cst.OpAddAssign,
	token.MinusEq:   cst.OpSubAssign,
	token.StarEq:    cst.OpMulAssign,
	token.SlashEq:   cst.OpDivAssign,
	token.PercentEq: cst.OpModAssign,
	token.AmpEq:     cst.OpBitAndAssign,
	token.PipeEq:    cst.OpBitOrAssign,
	token.CaretEq:   cst.OpBitXorAssign,
	token.ShlEq:     cst.OpShlAssign,
	token.ShrEq:     cst.OpShrAssign,
}

// expr is the grammar's top-level Expression entry point. It wraps exprTail
// (binary operators, left-folded) in an outer range check, since `..`/`..=`
// bind looser than everything else and either side may be absent.
func (p *Parser) expr() (cst.Expression, bool) {
	return withDepthExpr(p, func() (cst.Expression, bool) {
		if isRangeStart(p) {
			return p.rangeExpr(nil)
		}
		lhs, okv := p.exprTail()
		if !okv {
			return nil, false
		}
		if isRangeStart(p) {
			return p.rangeExpr(lhs)
		}
		return lhs, true
	})
}

func withDepthExpr(p *Parser, fn func() (cst.Expression, bool)) (cst.Expression, bool) {
	var result cst.Expression
	var resultOK bool
	ok := withDepth(p, func() bool {
		result, resultOK = fn()
		return resultOK
	})
	if !ok {
		return nil, false
	}
	return result, resultOK
}

func isRangeStart(p *Parser) bool {
	return p.at(token.DotDot) || p.at(token.DotDotDot)
}

func (p *Parser) rangeExpr(lhs cst.Expression) (cst.Expression, bool) {
	start := p.offset()
	if lhs != nil {
		start = lhs.Extent().Start
	}
	inclusive := false
	switch {
	case isInclusiveRangeOp(p):
		p.advance() // DotDot
		p.advance() // Eq
		inclusive = true
	case p.at(token.DotDotDot):
		p.advance()
		inclusive = true
	case p.at(token.DotDot):
		p.advance()
	default:
		p.fail(p.offset(), diag.Literal(".."))
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	var rhs cst.Expression
	if r, okv := optional(p, func(p *Parser) (cst.Expression, bool) { return p.exprTail() }); okv {
		rhs = r
		end = rhs.Extent().End
	}
	return &cst.Range{LHS: lhs, RHS: rhs, Inclusive: inclusive, Ext: token.Extent{Start: start, End: end}}, true
}

// exprTail folds binary operators left, per spec: no precedence or
// associativity is enforced here — see cst.Binary's doc comment.
func (p *Parser) exprTail() (cst.Expression, bool) {
	lhs, okv := p.unary()
	if !okv {
		return nil, false
	}
	for {
		op, ok := binaryOps[p.current().Kind]
		if !ok {
			return lhs, true
		}
		m := p.mark()
		p.advance()
		rhs, okv := p.unary()
		if !okv {
			p.reset(m)
			return lhs, true
		}
		lhs = &cst.Binary{Operator: op, LHS: lhs, RHS: rhs, Ext: token.Extent{Start: lhs.Extent().Start, End: rhs.Extent().End}}
	}
}

// unary handles the prefix operators, recursing on the operand so they apply
// to the whole postfix chain, e.g. `-x.field()`.
func (p *Parser) unary() (cst.Expression, bool) {
	start := p.offset()
	switch p.current().Kind {
	case token.AmpAmp:
		// `&&x` lexes as one token; treat as a doubled reference.
		p.advance()
		inner, okv := p.referenceBody(start + 1)
		if !okv {
			return nil, false
		}
		return &cst.Reference{Value: inner, Ext: token.Extent{Start: start, End: inner.Extent().End}}, true
	case token.Amp:
		p.advance()
		return p.referenceBody(start)
	case token.Star:
		p.advance()
		value, okv := p.unary()
		if !okv {
			return nil, false
		}
		return &cst.Dereference{Value: value, Ext: token.Extent{Start: start, End: value.Extent().End}}, true
	case token.Minus:
		p.advance()
		value, okv := p.unary()
		if !okv {
			return nil, false
		}
		return &cst.Unary{Operator: cst.UnaryNeg, Operand: value, Ext: token.Extent{Start: start, End: value.Extent().End}}, true
	case token.Bang:
		p.advance()
		value, okv := p.unary()
		if !okv {
			return nil, false
		}
		return &cst.Unary{Operator: cst.UnaryNot, Operand: value, Ext: token.Extent{Start: start, End: value.Extent().End}}, true
	case token.KwBox:
		p.advance()
		value, okv := p.unary()
		if !okv {
			return nil, false
		}
		return &cst.Box{Value: value, Ext: token.Extent{Start: start, End: value.Extent().End}}, true
	}
	return p.postfix()
}

func (p *Parser) referenceBody(start int) (cst.Expression, bool) {
	mut := false
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}
	value, okv := p.unary()
	if !okv {
		return nil, false
	}
	return &cst.Reference{Mutable: mut, Value: value, Ext: token.Extent{Start: start, End: value.Extent().End}}, true
}

// postfix parses a primary expression then folds call/field/slice/as/try
// tails onto it, left to right.
func (p *Parser) postfix() (cst.Expression, bool) {
	e, okv := p.primary()
	if !okv {
		return nil, false
	}
	for {
		switch p.current().Kind {
		case token.LParen:
			c, okv := p.callTail(e)
			if !okv {
				return nil, false
			}
			e = c
		case token.Dot:
			f, okv := p.fieldTail(e)
			if !okv {
				return nil, false
			}
			e = f
		case token.LBracket:
			s, okv := p.sliceTail(e)
			if !okv {
				return nil, false
			}
			e = s
		case token.KwAs:
			p.advance()
			t, okv := p.typ()
			if !okv {
				return nil, false
			}
			e = &cst.As{Value: e, Type: t, Ext: token.Extent{Start: e.Extent().Start, End: t.Extent().End}}
		case token.Question:
			tok := p.advance()
			e = &cst.TryOperator{Value: e, Ext: token.Extent{Start: e.Extent().Start, End: tok.Extent.End}}
		default:
			return e, true
		}
	}
}

func (p *Parser) callTail(target cst.Expression) (cst.Expression, bool) {
	p.advance() // (
	var args []cst.Expression
	withStructLiterals(p, false, func() {
		args = zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.Expression, bool) { return p.expr() }).Values
	})
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.Call{Target: target, Args: args, Ext: token.Extent{Start: target.Extent().Start, End: end}}, true
}

func (p *Parser) fieldTail(target cst.Expression) (cst.Expression, bool) {
	p.advance() // .
	var name cst.FieldName
	switch p.current().Kind {
	case token.Ident:
		t := p.advance()
		name = &cst.FieldNameNamed{Name: &cst.Ident{Name: t.Text, Ext: t.Extent}, Ext: t.Extent}
	case token.NumberDecimal:
		t := p.advance()
		name = &cst.FieldNameNumber{Digits: t.Text, Ext: t.Extent}
	default:
		p.fail(p.offset(), diag.ExpectedIdentifier)
		return nil, false
	}
	return &cst.FieldAccess{Target: target, Field: name, Ext: token.Extent{Start: target.Extent().Start, End: name.Extent().End}}, true
}

func (p *Parser) sliceTail(target cst.Expression) (cst.Expression, bool) {
	p.advance() // [
	var index cst.Expression
	var okv bool
	withStructLiterals(p, false, func() {
		index, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.RBracket, "]"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.Slice{Target: target, Index: index, Ext: token.Extent{Start: target.Extent().Start, End: end}}, true
}

// primary parses the prefix alternation: every leaf and bracketing form that
// is not itself a prefix operator.
func (p *Parser) primary() (cst.Expression, bool) {
	switch p.current().Kind {
	case token.LParen:
		return p.parentheticalOrTuple()
	case token.LBracket:
		return p.arrayExpr()
	case token.LBrace:
		b, okv := p.block()
		if !okv {
			return nil, false
		}
		return b, true
	case token.KwUnsafe:
		return p.unsafeBlockExpr()
	case token.KwIf:
		return p.ifExpr()
	case token.KwWhile:
		return p.whileExpr()
	case token.KwFor:
		return p.forExpr()
	case token.KwLoop:
		return p.loopExpr()
	case token.KwMatch:
		return p.matchExpr()
	case token.KwMove, token.Pipe, token.PipePipe:
		return p.closureExpr()
	case token.KwReturn:
		return p.returnExpr()
	case token.KwBreak:
		return p.breakExpr()
	case token.KwContinue:
		return p.continueExpr()
	case token.Lt:
		return p.disambiguationExpr()
	case token.NumberBinary, token.NumberOctal, token.NumberDecimal, token.NumberHexadecimal,
		token.Character, token.String, token.RawString, token.ByteChar, token.ByteString, token.RawByteString:
		return p.literalExpr()
	case token.Ident, token.ColonColon:
		return p.pathExpr()
	}
	p.fail(p.offset(), diag.Literal("expression"))
	return nil, false
}

func (p *Parser) parentheticalOrTuple() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // (
	var list tailedResult[cst.Expression]
	withStructLiterals(p, false, func() {
		list = zeroOrMoreTailed(p, commaSep, func(p *Parser) (cst.Expression, bool) { return p.expr() })
	})
	if _, okv := p.literal(token.RParen, ")"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	ext := token.Extent{Start: start, End: end}
	if len(list.Values) == 1 && !list.TrailingSep {
		return &cst.Parenthetical{Inner: list.Values[0], Ext: ext}, true
	}
	return &cst.Tuple{Members: list.Values, Ext: ext}, true
}

func (p *Parser) arrayExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // [
	var result cst.Expression
	var okv bool
	withStructLiterals(p, false, func() {
		result, okv = p.arrayExprBody(start)
	})
	return result, okv
}

func (p *Parser) arrayExprBody(start int) (cst.Expression, bool) {
	first, okv := optional(p, func(p *Parser) (cst.Expression, bool) { return p.expr() })
	if okv && p.at(token.Semi) {
		p.advance()
		count, okv := p.expr()
		if !okv {
			return nil, false
		}
		if _, okv := p.literal(token.RBracket, "]"); !okv {
			return nil, false
		}
		end := p.sig[p.pos-1].Extent.End
		return &cst.ArrayRepeated{Value: first, Count: count, Ext: token.Extent{Start: start, End: end}}, true
	}
	var items []cst.Expression
	if okv {
		list := zeroOrMoreTailedResume(p, first, commaSep, func(p *Parser) (cst.Expression, bool) { return p.expr() })
		items = list.Values
	}
	if _, okv := p.literal(token.RBracket, "]"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.ArrayExplicit{Items: items, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) unsafeBlockExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // unsafe
	body, okv := p.block()
	if !okv {
		return nil, false
	}
	return &cst.UnsafeBlock{Body: body, Ext: token.Extent{Start: start, End: body.Ext.End}}, true
}

func (p *Parser) ifExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // if
	if p.at(token.KwLet) {
		return p.ifLetExpr(start)
	}
	var cond cst.Expression
	var okv bool
	withStructLiterals(p, true, func() {
		cond, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	then, okv := p.block()
	if !okv {
		return nil, false
	}
	end := then.Ext.End
	var elseExpr cst.Expression
	if p.at(token.KwElse) {
		p.advance()
		e, okv := p.elseTail()
		if !okv {
			return nil, false
		}
		elseExpr = e
		end = elseExpr.Extent().End
	}
	return &cst.If{Condition: cond, Then: then, Else: elseExpr, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) elseTail() (cst.Expression, bool) {
	if p.at(token.KwIf) {
		return p.ifExpr()
	}
	return p.block()
}

func (p *Parser) ifLetExpr(start int) (cst.Expression, bool) {
	p.advance() // let
	pat, okv := p.pattern()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Eq, "="); !okv {
		return nil, false
	}
	var value cst.Expression
	withStructLiterals(p, true, func() {
		value, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	then, okv := p.block()
	if !okv {
		return nil, false
	}
	end := then.Ext.End
	var elseExpr cst.Expression
	if p.at(token.KwElse) {
		p.advance()
		e, okv := p.elseTail()
		if !okv {
			return nil, false
		}
		elseExpr = e
		end = elseExpr.Extent().End
	}
	return &cst.IfLet{Pattern: pat, Value: value, Then: then, Else: elseExpr, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) whileExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // while
	if p.at(token.KwLet) {
		return p.whileLetExpr(start)
	}
	var cond cst.Expression
	var okv bool
	withStructLiterals(p, true, func() {
		cond, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	body, okv := p.block()
	if !okv {
		return nil, false
	}
	return &cst.While{Condition: cond, Body: body, Ext: token.Extent{Start: start, End: body.Ext.End}}, true
}

func (p *Parser) whileLetExpr(start int) (cst.Expression, bool) {
	p.advance() // let
	pat, okv := p.pattern()
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.Eq, "="); !okv {
		return nil, false
	}
	var value cst.Expression
	withStructLiterals(p, true, func() {
		value, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	body, okv := p.block()
	if !okv {
		return nil, false
	}
	return &cst.WhileLet{Pattern: pat, Value: value, Body: body, Ext: token.Extent{Start: start, End: body.Ext.End}}, true
}

func (p *Parser) forExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // for
	pat, okv := p.pattern()
	if !okv {
		return nil, false
	}
	if !p.keyword(token.KwIn) {
		return nil, false
	}
	var source cst.Expression
	withStructLiterals(p, true, func() {
		source, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	body, okv := p.block()
	if !okv {
		return nil, false
	}
	return &cst.For{Pattern: pat, Source: source, Body: body, Ext: token.Extent{Start: start, End: body.Ext.End}}, true
}

func (p *Parser) loopExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // loop
	body, okv := p.block()
	if !okv {
		return nil, false
	}
	return &cst.Loop{Body: body, Ext: token.Extent{Start: start, End: body.Ext.End}}, true
}

func (p *Parser) matchExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // match
	var head cst.Expression
	var okv bool
	withStructLiterals(p, true, func() {
		head, okv = p.expr()
	})
	if !okv {
		return nil, false
	}
	if _, okv := p.literal(token.LBrace, "{"); !okv {
		return nil, false
	}
	var arms []*cst.MatchArm
	for !p.at(token.RBrace) {
		arm, okv := p.matchArm()
		if !okv {
			return nil, false
		}
		arms = append(arms, arm)
		if commaSep(p) {
			continue
		}
		if cst.IsImplicitSeparator(arm.Body) {
			continue
		}
		break
	}
	if _, okv := p.literal(token.RBrace, "}"); !okv {
		return nil, false
	}
	end := p.sig[p.pos-1].Extent.End
	return &cst.Match{Head: head, Arms: arms, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) matchArm() (*cst.MatchArm, bool) {
	start := p.offset()
	pat, okv := p.pattern()
	if !okv {
		return nil, false
	}
	var guard cst.Expression
	if p.at(token.KwIf) {
		p.advance()
		withStructLiterals(p, false, func() {
			guard, okv = p.expr()
		})
		if !okv {
			return nil, false
		}
	}
	if _, okv := p.literal(token.FatArrow, "=>"); !okv {
		return nil, false
	}
	body, okv := p.expr()
	if !okv {
		return nil, false
	}
	return &cst.MatchArm{Pattern: pat, Guard: guard, Body: body, Ext: token.Extent{Start: start, End: body.Extent().End}}, true
}

func (p *Parser) closureExpr() (cst.Expression, bool) {
	start := p.offset()
	move := false
	if p.at(token.KwMove) {
		p.advance()
		move = true
	}
	var args []*cst.ClosureArg
	if p.at(token.PipePipe) {
		p.advance()
	} else {
		if _, okv := p.literal(token.Pipe, "|"); !okv {
			return nil, false
		}
		list := zeroOrMoreTailed(p, commaSep, func(p *Parser) (*cst.ClosureArg, bool) { return p.closureArg() })
		args = list.Values
		if _, okv := p.literal(token.Pipe, "|"); !okv {
			return nil, false
		}
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
	var body cst.Expression
	var okv bool
	if ret != nil {
		body, okv = p.block()
	} else {
		body, okv = p.expr()
	}
	if !okv {
		return nil, false
	}
	return &cst.Closure{Move: move, Args: args, ReturnType: ret, Body: body, Ext: token.Extent{Start: start, End: body.Extent().End}}, true
}

func (p *Parser) closureArg() (*cst.ClosureArg, bool) {
	start := p.offset()
	pat, okv := p.pattern()
	if !okv {
		return nil, false
	}
	var t cst.Type
	end := pat.Extent().End
	if p.at(token.Colon) {
		p.advance()
		typ, okv := p.typ()
		if !okv {
			return nil, false
		}
		t = typ
		end = t.Extent().End
	}
	return &cst.ClosureArg{Pattern: pat, Type: t, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) returnExpr() (cst.Expression, bool) {
	t := p.advance() // return
	start := t.Extent.Start
	end := t.Extent.End
	var value cst.Expression
	if v, okv := optional(p, func(p *Parser) (cst.Expression, bool) { return p.expr() }); okv {
		value = v
		end = value.Extent().End
	}
	return &cst.Return{Value: value, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) breakExpr() (cst.Expression, bool) {
	t := p.advance() // break
	start := t.Extent.Start
	end := t.Extent.End
	var label *cst.Lifetime
	if p.at(token.Lifetime) {
		l, okv := p.lifetime()
		if !okv {
			return nil, false
		}
		label = l
		end = label.Ext.End
	}
	var value cst.Expression
	if v, okv := optional(p, func(p *Parser) (cst.Expression, bool) { return p.expr() }); okv {
		value = v
		end = value.Extent().End
	}
	return &cst.Break{Label: label, Value: value, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) continueExpr() (cst.Expression, bool) {
	t := p.advance() // continue
	start := t.Extent.Start
	end := t.Extent.End
	var label *cst.Lifetime
	if p.at(token.Lifetime) {
		l, okv := p.lifetime()
		if !okv {
			return nil, false
		}
		label = l
		end = label.Ext.End
	}
	return &cst.Continue{Label: label, Ext: token.Extent{Start: start, End: end}}, true
}

func (p *Parser) disambiguationExpr() (cst.Expression, bool) {
	start := p.offset()
	p.advance() // <
	inner, okv := p.typ()
	if !okv {
		return nil, false
	}
	var trait cst.Type
	if p.at(token.KwAs) {
		p.advance()
		tr, okv := p.typ()
		if !okv {
			return nil, false
		}
		trait = tr
	}
	if _, okv := p.literal(token.Gt, ">"); !okv {
		return nil, false
	}
	if _, okv := p.literal(token.ColonColon, "::"); !okv {
		return nil, false
	}
	path, okv := p.path()
	if !okv {
		return nil, false
	}
	return &cst.Disambiguation{Type: inner, Trait: trait, Path: path, Ext: token.Extent{Start: start, End: path.Ext.End}}, true
}

// pathExpr parses a path in expression position: a single-segment macro call
// (`name!(...)`), a struct literal (only when struct literals are not
// suppressed by the enclosing context), or a bare Value.
func (p *Parser) pathExpr() (cst.Expression, bool) {
	start := p.offset()
	path, okv := p.path()
	if !okv {
		return nil, false
	}
	if p.at(token.Bang) && len(path.Components) == 1 && path.Components[0].Turbofish == nil && !path.Leading {
		p.advance()
		args, okv := p.macroCallArgs()
		if !okv {
			return nil, false
		}
		return &cst.MacroCallExpr{Name: path.Components[0].Name, Args: args, Ext: token.Extent{Start: start, End: args.Ext.End}}, true
	}
	if !p.ignoreStructLiterals && p.at(token.LBrace) {
		if lit, okv := p.structLiteralTail(path, start); okv {
			return lit, true
		}
	}
	return &cst.Value{Path: &cst.PathedIdent{Path: path, Ext: path.Ext}, Ext: path.Ext}, true
}

func (p *Parser) structLiteralTail(path *cst.Path, start int) (*cst.StructLiteral, bool) {
	return rewindOnError(p, func(p *Parser) (*cst.StructLiteral, bool) {
		p.advance() // {
		var fields []*cst.StructLiteralField
		var splat cst.Expression
		var failed bool
		withStructLiterals(p, false, func() {
			for !p.at(token.RBrace) {
				if p.at(token.DotDot) {
					p.advance()
					s, okv := p.expr()
					if !okv {
						failed = true
						return
					}
					splat = s
					break
				}
				f, okv := p.structLiteralField()
				if !okv {
					failed = true
					return
				}
				fields = append(fields, f)
				if !commaSep(p) {
					break
				}
			}
		})
		if failed {
			return nil, false
		}
		if _, okv := p.literal(token.RBrace, "}"); !okv {
			return nil, false
		}
		end := p.sig[p.pos-1].Extent.End
		return &cst.StructLiteral{
			Path:   &cst.PathedIdent{Path: path, Ext: path.Ext},
			Fields: fields,
			Splat:  splat,
			Ext:    token.Extent{Start: start, End: end},
		}, true
	})
}

func (p *Parser) structLiteralField() (*cst.StructLiteralField, bool) {
	start := p.offset()
	name, okv := p.ident()
	if !okv {
		return nil, false
	}
	end := name.Ext.End
	var value cst.Expression
	if p.at(token.Colon) {
		p.advance()
		v, okv := p.expr()
		if !okv {
			return nil, false
		}
		value = v
		end = value.Extent().End
	} else {
		value = &cst.Value{Path: &cst.PathedIdent{
			Path: &cst.Path{Components: []*cst.PathComponent{{Name: name, Ext: name.Ext}}, Ext: name.Ext},
			Ext:  name.Ext,
		}, Ext: name.Ext}
	}
	return &cst.StructLiteralField{Name: name, Value: value, Ext: token.Extent{Start: start, End: end}}, true
}
