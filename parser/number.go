package parser

import (
	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

var numberSuffixes = map[string]bool{
	"f32": true, "f64": true, "u8": true, "u16": true, "u32": true, "u64": true,
	"usize": true, "i8": true, "i16": true, "i32": true, "i64": true, "isize": true,
}

// number consumes a 4-base number token and decomposes it into the
// sub-extents spec invariant 4 requires: the decimal/digit sub-extent never
// begins with `_` (underscores are only valid after the first digit, or
// after the base prefix for non-decimal bases).
func (p *Parser) number() (*cst.NumberLit, bool) {
	var kind cst.LiteralKind
	switch p.current().Kind {
	case token.NumberBinary:
		kind = cst.LitNumberBinary
	case token.NumberOctal:
		kind = cst.LitNumberOctal
	case token.NumberDecimal:
		kind = cst.LitNumberDecimal
	case token.NumberHexadecimal:
		kind = cst.LitNumberHexadecimal
	default:
		p.fail(p.offset(), diag.ExpectedNumber)
		return nil, false
	}
	t := p.advance()
	text := t.Text
	start := t.Extent.Start

	prefixLen := 0
	if kind != cst.LitNumberDecimal {
		prefixLen = 2 // "0b"/"0o"/"0x"
	}

	rest := text[prefixLen:]
	// digitsEnd marks the end of the integer-digit run (before '.'/'e'/suffix).
	digitsEnd := 0
	for digitsEnd < len(rest) && (isNumDigit(rest[digitsEnd], kind) || rest[digitsEnd] == '_') {
		digitsEnd++
	}
	if digitsEnd == 0 || (prefixLen == 0 && rest[0] == '_') {
		p.fail(start, diag.ExpectedNumber)
		return nil, false
	}

	whole := token.Extent{Start: start, End: start + prefixLen + digitsEnd}
	cursor := prefixLen + digitsEnd

	var fraction, exponent token.Extent
	suffix := ""

	if kind == cst.LitNumberDecimal {
		if cursor < len(text) && text[cursor] == '.' {
			fracStart := cursor
			cursor++
			for cursor < len(text) && (isDigitByte(text[cursor]) || text[cursor] == '_') {
				cursor++
			}
			fraction = token.Extent{Start: start + fracStart, End: start + cursor}
		}
		if cursor < len(text) && (text[cursor] == 'e' || text[cursor] == 'E') {
			expStart := cursor
			save := cursor
			cursor++
			if cursor < len(text) && (text[cursor] == '+' || text[cursor] == '-') {
				cursor++
			}
			digits := 0
			for cursor < len(text) && (isDigitByte(text[cursor]) || text[cursor] == '_') {
				cursor++
				digits++
			}
			if digits > 0 {
				exponent = token.Extent{Start: start + expStart, End: start + cursor}
			} else {
				cursor = save
			}
		}
	}

	if cursor < len(text) {
		candidate := text[cursor:]
		if numberSuffixes[candidate] {
			suffix = candidate
		}
	}

	return &cst.NumberLit{
		Kind:     kind,
		Whole:    whole,
		Fraction: fraction,
		Exponent: exponent,
		Suffix:   suffix,
	}, true
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isNumDigit(b byte, kind cst.LiteralKind) bool {
	switch kind {
	case cst.LitNumberBinary:
		return b == '0' || b == '1'
	case cst.LitNumberOctal:
		return b >= '0' && b <= '7'
	case cst.LitNumberHexadecimal:
		return isDigitByte(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	default:
		return isDigitByte(b)
	}
}
