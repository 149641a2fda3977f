package parser

import (
	"strings"

	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// literalExpr parses any of the Literal forms: a number (4 bases), a char, a
// string (plain or raw), a byte, or a byte-string.
func (p *Parser) literalExpr() (*cst.Literal, bool) {
	switch p.current().Kind {
	case token.NumberBinary, token.NumberOctal, token.NumberDecimal, token.NumberHexadecimal:
		start := p.offset()
		n, okv := p.number()
		if !okv {
			return nil, false
		}
		end := n.Whole.End
		if n.Exponent.End > end {
			end = n.Exponent.End
		}
		if n.Fraction.End > end {
			end = n.Fraction.End
		}
		return &cst.Literal{Kind: n.Kind, Number: n, Ext: token.Extent{Start: start, End: end}}, true
	case token.Character:
		t := p.advance()
		return &cst.Literal{Kind: cst.LitCharacter, Ext: t.Extent}, true
	case token.String:
		t := p.advance()
		return &cst.Literal{Kind: cst.LitString, Ext: t.Extent}, true
	case token.ByteChar:
		t := p.advance()
		return &cst.Literal{Kind: cst.LitByteChar, Ext: t.Extent}, true
	case token.ByteString:
		t := p.advance()
		return &cst.Literal{Kind: cst.LitByteString, Ext: t.Extent}, true
	case token.RawString, token.RawByteString:
		t := p.advance()
		if !rawStringTerminated(t.Text) {
			p.fail(t.Extent.Start, diag.UnterminatedRawString)
			return nil, false
		}
		kind := cst.LitRawString
		if t.Kind == token.RawByteString {
			kind = cst.LitRawByteString
		}
		return &cst.Literal{Kind: kind, Ext: t.Extent}, true
	}
	p.fail(p.offset(), diag.Literal("literal"))
	return nil, false
}

// macroCallArgs parses a macro invocation's delimiter-balanced, uninterpreted
// argument body: `(...)`, `[...]`, or `{...}`.
func (p *Parser) macroCallArgs() (*cst.MacroCallArgs, bool) {
	start := p.offset()
	var delim byte
	var closeKind token.Kind
	switch p.current().Kind {
	case token.LParen:
		delim, closeKind = '(', token.RParen
	case token.LBracket:
		delim, closeKind = '[', token.RBracket
	case token.LBrace:
		delim, closeKind = '{', token.RBrace
	default:
		p.fail(p.offset(), diag.Literal("("))
		return nil, false
	}
	p.advance()
	body, closeTok, okv := p.balancedBody(closeKind)
	if !okv {
		return nil, false
	}
	return &cst.MacroCallArgs{Delimiter: delim, Body: body, Ext: token.Extent{Start: start, End: closeTok.Extent.End}}, true
}

// rawStringTerminated reports whether text (the full lexed raw-string token,
// e.g. `r##"x"##` or `br#"x"#`) closes with exactly as many `#` as it opened
// with. The lexer always emits a token even on EOF, so this is how an
// UnterminatedRawString is actually detected.
func rawStringTerminated(text string) bool {
	rest := strings.TrimPrefix(text, "b")
	rest = strings.TrimPrefix(rest, "r")
	hashes := 0
	for hashes < len(rest) && rest[hashes] == '#' {
		hashes++
	}
	if hashes >= len(rest) || rest[hashes] != '"' {
		return false
	}
	closer := "\"" + strings.Repeat("#", hashes)
	return len(rest) >= hashes+1+len(closer) && strings.HasSuffix(rest, closer)
}
