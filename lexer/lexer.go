// Package lexer turns raw source bytes into a classified token slice. It is
// the parser's sole external collaborator on the input side: an eager,
// context-free classification of lexemes, with byte extents, that performs no
// grammar-level disambiguation of its own.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rustcst/parser/token"
)

// Lexer is a byte-position scanning tokenizer over a complete input.
type Lexer struct {
	src    []byte
	pos    int
	line   int
	column int
}

// New creates a Lexer over src. The input must be complete; there is no
// streaming or incremental mode (see spec Non-goals).
func New(src []byte) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, column: 1}
}

// Lex tokenizes src in full and returns the token slice, terminated by a
// single EOF token whose extent is the empty range at len(src).
func Lex(src []byte) []token.Token {
	l := New(src)
	var toks []token.Token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekByte() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advanceByte() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b
}

func (l *Lexer) decodeRune() (rune, int) {
	if l.eof() {
		return 0, 0
	}
	r, size := utf8.DecodeRune(l.src[l.pos:])
	return r, size
}

func (l *Lexer) advanceRune() rune {
	r, size := l.decodeRune()
	for i := 0; i < size; i++ {
		l.advanceByte()
	}
	return r
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *Lexer) make(kind token.Kind, start int, pos token.Position) token.Token {
	return token.Token{
		Kind:     kind,
		Extent:   token.Extent{Start: start, End: l.pos},
		Text:     string(l.src[start:l.pos]),
		Position: pos,
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_ID_Start)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// next scans and returns the single next token, advancing the cursor.
func (l *Lexer) next() token.Token {
	if l.eof() {
		pos := l.position()
		return token.Token{Kind: token.EOF, Extent: token.Extent{Start: l.pos, End: l.pos}, Position: pos}
	}

	start := l.pos
	pos := l.position()
	b := l.peekByte()

	switch {
	case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		return l.scanWhitespace(start, pos)
	case b == '/' && l.peekByteAt(1) == '/':
		return l.scanLineComment(start, pos)
	case b == '/' && l.peekByteAt(1) == '*':
		return l.scanBlockComment(start, pos)
	case b == '\'':
		return l.scanLifetimeOrChar(start, pos)
	case b == 'r' && (l.peekByteAt(1) == '"' || l.peekByteAt(1) == '#'):
		if tok, ok := l.tryScanRawString(start, pos, false); ok {
			return tok
		}
	case b == 'b' && l.peekByteAt(1) == '\'':
		return l.scanByteChar(start, pos)
	case b == 'b' && l.peekByteAt(1) == '"':
		return l.scanByteString(start, pos)
	case b == 'b' && l.peekByteAt(1) == 'r' && (l.peekByteAt(2) == '"' || l.peekByteAt(2) == '#'):
		l.advanceByte() // consume 'b', reuse raw-string scan from "r"
		if tok, ok := l.tryScanRawString(start, pos, true); ok {
			return tok
		}
		l.pos = start // not actually a raw string; rewind and fall through
	case b == '"':
		return l.scanString(start, pos)
	case isDigit(b):
		return l.scanNumber(start, pos)
	}

	r, size := l.decodeRune()
	if isIdentStart(r) {
		return l.scanIdentOrKeyword(start, pos)
	}
	if size == 0 {
		l.advanceByte()
		return l.make(token.Illegal, start, pos)
	}

	return l.scanPunct(start, pos)
}

func (l *Lexer) scanWhitespace(start int, pos token.Position) token.Token {
	for !l.eof() {
		b := l.peekByte()
		if b != ' ' && b != '\t' && b != '\r' && b != '\n' {
			break
		}
		l.advanceByte()
	}
	return l.make(token.Whitespace, start, pos)
}

func (l *Lexer) scanLineComment(start int, pos token.Position) token.Token {
	l.advanceByte()
	l.advanceByte()
	for !l.eof() && l.peekByte() != '\n' {
		l.advanceByte()
	}
	return l.make(token.LineComment, start, pos)
}

func (l *Lexer) scanBlockComment(start int, pos token.Position) token.Token {
	l.advanceByte()
	l.advanceByte()
	depth := 1
	for !l.eof() && depth > 0 {
		if l.peekByte() == '/' && l.peekByteAt(1) == '*' {
			l.advanceByte()
			l.advanceByte()
			depth++
			continue
		}
		if l.peekByte() == '*' && l.peekByteAt(1) == '/' {
			l.advanceByte()
			l.advanceByte()
			depth--
			continue
		}
		l.advanceByte()
	}
	return l.make(token.BlockComment, start, pos)
}

func (l *Lexer) scanLifetimeOrChar(start int, pos token.Position) token.Token {
	// '<ident> or 'static is a lifetime only when not closed by a second
	// quote immediately after a single char — disambiguate by lookahead.
	save := l.pos
	l.advanceByte() // consume opening '

	r, size := l.decodeRune()
	if isIdentStart(r) {
		identStart := l.pos
		for {
			r, size := l.decodeRune()
			if size == 0 || !isIdentContinue(r) {
				break
			}
			l.advanceRune()
		}
		_ = identStart
		if l.peekByte() == '\'' {
			// It was a single-character char literal after all, e.g. 'a'.
			l.advanceByte()
			return l.make(token.Character, start, pos)
		}
		return l.make(token.Lifetime, start, pos)
	}
	_ = size
	l.pos = save
	return l.scanChar(start, pos)
}

func (l *Lexer) scanChar(start int, pos token.Position) token.Token {
	l.advanceByte() // opening '
	if l.peekByte() == '\\' {
		l.advanceByte()
		if !l.eof() {
			l.advanceByte()
		}
	} else if !l.eof() {
		l.advanceRune()
	}
	if l.peekByte() == '\'' {
		l.advanceByte()
	}
	return l.make(token.Character, start, pos)
}

func (l *Lexer) scanByteChar(start int, pos token.Position) token.Token {
	l.advanceByte() // 'b'
	l.advanceByte() // '
	if l.peekByte() == '\\' {
		l.advanceByte()
		if !l.eof() {
			l.advanceByte()
		}
	} else if !l.eof() {
		l.advanceByte()
	}
	if l.peekByte() == '\'' {
		l.advanceByte()
	}
	return l.make(token.ByteChar, start, pos)
}

func (l *Lexer) scanString(start int, pos token.Position) token.Token {
	l.advanceByte() // opening "
	for !l.eof() {
		b := l.peekByte()
		if b == '\\' {
			l.advanceByte()
			if !l.eof() {
				l.advanceByte()
			}
			continue
		}
		if b == '"' {
			l.advanceByte()
			break
		}
		l.advanceByte()
	}
	return l.make(token.String, start, pos)
}

func (l *Lexer) scanByteString(start int, pos token.Position) token.Token {
	l.advanceByte() // 'b'
	tok := l.scanString(start, pos)
	tok.Kind = token.ByteString
	return tok
}

// tryScanRawString scans r#"..."#  (or  br#"..."#  when isByte) with a
// balanced hash count. Returns ok=false (and leaves the cursor where the
// caller can decide to rewind) if the prefix doesn't actually form a raw
// string, e.g. a bare identifier "r".
func (l *Lexer) tryScanRawString(start int, pos token.Position, isByte bool) (token.Token, bool) {
	save := l.pos
	l.advanceByte() // 'r'
	hashes := 0
	for l.peekByte() == '#' {
		l.advanceByte()
		hashes++
	}
	if l.peekByte() != '"' {
		l.pos = save
		return token.Token{}, false
	}
	l.advanceByte() // opening "

	for {
		if l.eof() {
			kind := token.RawString
			if isByte {
				kind = token.RawByteString
			}
			return l.make(kind, start, pos), true
		}
		if l.peekByte() == '"' {
			closeStart := l.pos
			l.advanceByte()
			closedHashes := 0
			for closedHashes < hashes && l.peekByte() == '#' {
				l.advanceByte()
				closedHashes++
			}
			if closedHashes == hashes {
				kind := token.RawString
				if isByte {
					kind = token.RawByteString
				}
				return l.make(kind, start, pos), true
			}
			l.pos = closeStart + 1
			continue
		}
		l.advanceByte()
	}
}

func (l *Lexer) scanNumber(start int, pos token.Position) token.Token {
	kind := token.NumberDecimal
	if l.peekByte() == '0' {
		switch l.peekByteAt(1) {
		case 'b':
			kind = token.NumberBinary
			l.advanceByte()
			l.advanceByte()
		case 'o':
			kind = token.NumberOctal
			l.advanceByte()
			l.advanceByte()
		case 'x':
			kind = token.NumberHexadecimal
			l.advanceByte()
			l.advanceByte()
		}
	}

	scanDigits := func() {
		for !l.eof() {
			b := l.peekByte()
			if isDigit(b) || b == '_' || (kind == token.NumberHexadecimal && isHexDigit(b)) {
				l.advanceByte()
				continue
			}
			break
		}
	}
	scanDigits()

	if kind == token.NumberDecimal {
		if l.peekByte() == '.' && isDigit(l.peekByteAt(1)) {
			l.advanceByte()
			scanDigits()
		}
		if l.peekByte() == 'e' || l.peekByte() == 'E' {
			la := 1
			if l.peekByteAt(1) == '+' || l.peekByteAt(1) == '-' {
				la = 2
			}
			if isDigit(l.peekByteAt(la)) {
				l.advanceByte()
				if l.peekByte() == '+' || l.peekByte() == '-' {
					l.advanceByte()
				}
				scanDigits()
			}
		}
	}

	// Optional suffix: a run of identifier characters directly following.
	if r, size := l.decodeRune(); size > 0 && isIdentStart(r) {
		for {
			r, size := l.decodeRune()
			if size == 0 || !isIdentContinue(r) {
				break
			}
			l.advanceRune()
		}
	}

	return l.make(kind, start, pos)
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (l *Lexer) scanIdentOrKeyword(start int, pos token.Position) token.Token {
	l.advanceRune()
	for {
		r, size := l.decodeRune()
		if size == 0 || !isIdentContinue(r) {
			break
		}
		l.advanceRune()
	}
	text := string(l.src[start:l.pos])
	if kw, ok := token.LookupKeyword(text); ok {
		return l.make(kw, start, pos)
	}
	return l.make(token.Ident, start, pos)
}

// punctTable is tried longest-first so e.g. "<<=" matches before "<<" before "<".
var punctTable = []struct {
	text string
	kind token.Kind
}{
	{"<<=", token.ShlEq}, {">>=", token.ShrEq}, {"...", token.DotDotDot},
	{"::", token.ColonColon}, {"->", token.Arrow}, {"=>", token.FatArrow},
	{"..", token.DotDot}, {"==", token.EqEq}, {"!=", token.Ne},
	{"<=", token.Le}, {">=", token.Ge}, {"&&", token.AmpAmp}, {"||", token.PipePipe},
	{"<<", token.Shl}, {">>", token.Shr}, {"+=", token.PlusEq}, {"-=", token.MinusEq},
	{"*=", token.StarEq}, {"/=", token.SlashEq}, {"%=", token.PercentEq},
	{"&=", token.AmpEq}, {"|=", token.PipeEq}, {"^=", token.CaretEq},
	{":", token.Colon}, {";", token.Semi}, {",", token.Comma}, {".", token.Dot},
	{"=", token.Eq}, {"?", token.Question}, {"@", token.At}, {"!", token.Bang},
	{"#", token.Pound}, {"&", token.Amp}, {"*", token.Star}, {"+", token.Plus},
	{"-", token.Minus}, {"/", token.Slash}, {"%", token.Percent},
	{"<", token.Lt}, {">", token.Gt}, {"|", token.Pipe}, {"^", token.Caret},
	{"(", token.LParen}, {")", token.RParen}, {"[", token.LBracket},
	{"]", token.RBracket}, {"{", token.LBrace}, {"}", token.RBrace},
}

func (l *Lexer) scanPunct(start int, pos token.Position) token.Token {
	remaining := l.src[l.pos:]
	for _, p := range punctTable {
		if len(remaining) >= len(p.text) && string(remaining[:len(p.text)]) == p.text {
			for range p.text {
				l.advanceByte()
			}
			return l.make(p.kind, start, pos)
		}
	}
	l.advanceByte()
	return l.make(token.Illegal, start, pos)
}
