// Package parser implements the hand-written recursive-descent parser: the
// combinator kernel, the context-sensitive grammar (items, expressions,
// types, patterns), and the top-level driver. See DESIGN.md for the
// grounding of each file.
package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/lexer"
	"github.com/rustcst/parser/token"
)

// maxDepth bounds expression recursion (each nested expr() call counts one
// level; types and patterns are not counted) so deeply nested expressions
// cannot overflow the host stack (spec §5: "bounded nesting is the caller's
// responsibility ... can be implemented with an explicit depth counter").
// It is a var, not a const, so a host CLI/config can tune it per invocation.
var maxDepth = 512

// SetMaxDepth overrides the recursion-depth bound used by every subsequent
// call to Parse. It is not safe to call while a Parse is in flight.
func SetMaxDepth(n int) {
	if n > 0 {
		maxDepth = n
	}
}

// Parser holds all mutable state for a single parse. It is owned exclusively
// by the active call to Parse and never shared across parses (spec §5).
type Parser struct {
	all []token.Token // full token stream, including trivia, for reconstruction
	sig []token.Token // significant (non-trivia) tokens the grammar consumes
	idx []int         // idx[i] is sig[i]'s index into all

	pos int // cursor into sig

	ignoreStructLiterals bool
	depth                int

	furthest      int
	furthestKinds []diag.ErrorKind
}

func newParser(src []byte) *Parser {
	all := lexer.Lex(src)
	p := &Parser{all: all}
	for i, t := range all {
		if t.Kind.IsTrivia() {
			continue
		}
		p.sig = append(p.sig, t)
		p.idx = append(p.idx, i)
	}
	if len(p.sig) == 0 || p.sig[len(p.sig)-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Extent: token.Extent{Start: len(src), End: len(src)}}
		p.sig = append(p.sig, eof)
		p.idx = append(p.idx, len(all))
	}
	return p
}

// current returns the token under the cursor without consuming it.
func (p *Parser) current() token.Token { return p.sig[p.pos] }

// at reports whether the cursor sits on a token of kind k.
func (p *Parser) at(k token.Kind) bool { return p.sig[p.pos].Kind == k }

// offset returns the byte offset of the cursor, for error reporting and
// extent construction.
func (p *Parser) offset() int { return p.current().Extent.Start }

// mark returns a resumable snapshot of the cursor.
func (p *Parser) mark() int { return p.pos }

// reset rewinds the cursor to a previously marked position.
func (p *Parser) reset(m int) { p.pos = m }

// fail records a recoverable failure at offset for kind, maintaining the
// furthest-cursor/union-of-kinds invariant the combinator kernel promises
// (spec §4.1/§9): only kinds reported at the single furthest offset survive.
func (p *Parser) fail(offset int, kind diag.ErrorKind) {
	if offset > p.furthest {
		p.furthest = offset
		p.furthestKinds = nil
	}
	if offset == p.furthest {
		for _, k := range p.furthestKinds {
			if k == kind {
				return
			}
		}
		p.furthestKinds = append(p.furthestKinds, kind)
	}
}

// diagnostic returns the accumulated failure as a Diagnostic record, its kinds
// sorted deterministically; rendering it is diag.Render's job.
func (p *Parser) diagnostic() diag.Diagnostic {
	d := diag.Diagnostic{Offset: p.furthest}
	for _, k := range p.furthestKinds {
		d.Add(k)
	}
	return d
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	t := p.sig[p.pos]
	if p.pos < len(p.sig)-1 {
		p.pos++
	}
	return t
}

// literal consumes the current token if it is k, reporting Literal(text) on
// failure. text is used only for diagnostics.
func (p *Parser) literal(k token.Kind, text string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.fail(p.offset(), diag.Literal(text))
	return token.Token{}, false
}

// keyword consumes a reserved word, matching spec's keyword() contract:
// lexically it is just literal(k) since the lexer already disambiguates
// keywords from identifier-continue runs (e.g. "form" never lexes as KwFor
// followed by "m" — the scanner consumes the whole XID run first). ok=false
// reports ExpectedKeyword so the diagnostic distinguishes a missing keyword
// from a missing arbitrary literal.
func (p *Parser) keyword(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.fail(p.offset(), diag.ExpectedKeyword)
	return false
}

// leadingTrivia returns the Whitespace leaves lexically preceding sig[i].
func (p *Parser) leadingTrivia(i int) []*cst.Whitespace {
	end := p.idx[i]
	start := 0
	if i > 0 {
		start = p.idx[i-1] + 1
	}
	var out []*cst.Whitespace
	for _, t := range p.all[start:end] {
		kind := cst.BlankRun
		if t.Kind == token.LineComment || t.Kind == token.BlockComment {
			kind = cst.Comment
		}
		out = append(out, &cst.Whitespace{Kind: kind, Ext: t.Extent})
	}
	return out
}
