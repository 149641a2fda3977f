package parser

import (
	"testing"

	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(src string) *Parser {
	return newParser([]byte(src))
}

func TestOptionalNeverAdvancesOnFailure(t *testing.T) {
	p := newTestParser("fn")
	before := p.mark()
	_, okv := optional(p, func(p *Parser) (string, bool) { return "", false })
	assert.False(t, okv)
	assert.Equal(t, before, p.mark())
}

func TestOptionalReturnsValueOnSuccess(t *testing.T) {
	p := newTestParser("fn")
	v, okv := optional(p, func(p *Parser) (string, bool) {
		p.advance()
		return "fn", true
	})
	assert.True(t, okv)
	assert.Equal(t, "fn", v)
	assert.Equal(t, 1, p.mark())
}

func TestAlternateCommitsToFirstSuccess(t *testing.T) {
	p := newTestParser("42")
	v, okv := alternate(p,
		func(p *Parser) (string, bool) { return "", false },
		func(p *Parser) (string, bool) {
			p.advance()
			return "matched", true
		},
	)
	require.True(t, okv)
	assert.Equal(t, "matched", v)
}

func TestAlternateRewindsEachFailedBranch(t *testing.T) {
	p := newTestParser("42")
	_, okv := alternate(p,
		func(p *Parser) (string, bool) {
			p.advance()
			return "", false
		},
		func(p *Parser) (string, bool) { return "num", p.at(token.NumberDecimal) },
	)
	assert.True(t, okv)
}

func TestZeroOrMoreTailedTrailingSeparatorBit(t *testing.T) {
	ident := func(p *Parser) (string, bool) {
		if p.at(token.Ident) {
			tok := p.advance()
			return tok.Text, true
		}
		return "", false
	}

	withTrailing := newTestParser("a, b,")
	r1 := zeroOrMoreTailed(withTrailing, commaSep, ident)
	assert.Equal(t, []string{"a", "b"}, r1.Values)
	assert.True(t, r1.TrailingSep)

	noTrailing := newTestParser("a, b")
	r2 := zeroOrMoreTailed(noTrailing, commaSep, ident)
	assert.Equal(t, []string{"a", "b"}, r2.Values)
	assert.False(t, r2.TrailingSep)

	empty := newTestParser("")
	r3 := zeroOrMoreTailed(empty, commaSep, ident)
	assert.Empty(t, r3.Values)
	assert.False(t, r3.TrailingSep)
}

func TestOneOrMoreTailedFailsOnEmpty(t *testing.T) {
	ident := func(p *Parser) (string, bool) {
		if p.at(token.Ident) {
			tok := p.advance()
			return tok.Text, true
		}
		return "", false
	}
	p := newTestParser("")
	_, okv := oneOrMoreTailed(p, commaSep, ident)
	assert.False(t, okv)
}

func TestNotSucceedsWithoutConsumingWhenFnFails(t *testing.T) {
	p := newTestParser("x")
	okv := not(p, func(p *Parser) (token.Token, bool) {
		return token.Token{}, false
	})
	assert.True(t, okv)
	assert.Equal(t, 0, p.mark())
}

func TestNotFailsAndRewindsWhenFnSucceeds(t *testing.T) {
	p := newTestParser("x")
	okv := not(p, func(p *Parser) (token.Token, bool) {
		return p.advance(), true
	})
	assert.False(t, okv)
	assert.Equal(t, 0, p.mark())
}

func TestRewindOnErrorRestoresFurthestTracker(t *testing.T) {
	p := newTestParser("x y")
	p.fail(0, diag.Literal("outer"))

	_, okv := rewindOnError(p, func(p *Parser) (int, bool) {
		p.advance()
		p.fail(2, diag.Literal("inner"))
		return 0, false
	})
	assert.False(t, okv)
	assert.Equal(t, 0, p.furthest)
	require.Len(t, p.furthestKinds, 1)
	assert.Equal(t, diag.Literal("outer"), p.furthestKinds[0])
	assert.Equal(t, 0, p.mark())
}

func TestWithStructLiteralsNestingRestoresOnReturn(t *testing.T) {
	p := newTestParser("x")
	p.ignoreStructLiterals = false
	withStructLiterals(p, true, func() {
		assert.True(t, p.ignoreStructLiterals)
		withStructLiterals(p, false, func() {
			assert.False(t, p.ignoreStructLiterals)
		})
		assert.True(t, p.ignoreStructLiterals)
	})
	assert.False(t, p.ignoreStructLiterals)
}

func TestWithDepthReportsFailureWhenExceeded(t *testing.T) {
	p := newTestParser("x")
	SetMaxDepth(1)
	defer SetMaxDepth(512)

	p.depth = 1
	called := false
	okv := withDepth(p, func() bool { called = true; return true })
	assert.False(t, okv)
	assert.False(t, called)
	d := p.diagnostic()
	assert.Equal(t, p.offset(), d.Offset)
}

func TestWithDepthDecrementsAfterSuccess(t *testing.T) {
	p := newTestParser("x")
	okv := withDepth(p, func() bool {
		assert.Equal(t, 1, p.depth)
		return true
	})
	assert.True(t, okv)
	assert.Equal(t, 0, p.depth)
}
