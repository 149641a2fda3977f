package parser

import (
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// balancedBody consumes a delimiter-balanced, uninterpreted region: the
// opening delimiter has already been consumed by the caller, and this scans
// forward — tracking nested opens of any delimiter kind — until the matching
// close is found, recording its interior as an extent without parsing it
// (spec §6: attribute bodies, extern-block interiors, and macro arguments are
// all opaque balanced extents).
func (p *Parser) balancedBody(closeKind token.Kind) (body token.Extent, closeTok token.Token, ok bool) {
	bodyStart := p.offset()
	depth := 1
	for {
		if p.at(token.EOF) {
			p.fail(p.offset(), diag.Literal(closeKind.String()))
			return token.Extent{}, token.Token{}, false
		}
		if p.current().Kind.IsOpenDelim() {
			depth++
			p.advance()
			continue
		}
		if p.current().Kind.IsCloseDelim() {
			depth--
			if depth == 0 {
				break
			}
			p.advance()
			continue
		}
		p.advance()
	}
	bodyEnd := p.offset()
	t, okv := p.literal(closeKind, closeKind.String())
	if !okv {
		return token.Extent{}, token.Token{}, false
	}
	return token.Extent{Start: bodyStart, End: bodyEnd}, t, true
}
