// Package token defines the lexical vocabulary the parser consumes: the
// classified token kinds, their source extents, and line/column positions.
package token

// Extent is a closed-open byte-offset interval [Start, End) into the source.
type Extent struct {
	Start int
	End   int
}

// Union returns the smallest extent containing both e and other.
func (e Extent) Union(other Extent) Extent {
	u := e
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	return u
}

// Position is a 1-based line/column plus 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Kind classifies a token. The set is closed and matches spec §6 exactly.
type Kind uint8

const (
	EOF Kind = iota
	Illegal

	// Keywords (reserved; never valid identifiers).
	KwAs
	KwBox
	KwBreak
	KwConst
	KwContinue
	KwCrate
	KwElse
	KwEnum
	KwExtern
	KwFn
	KwFor
	KwIf
	KwImpl
	KwIn
	KwLet
	KwLoop
	KwMatch
	KwMod
	KwMove
	KwMut
	KwPub
	KwRef
	KwReturn
	KwStatic
	KwStruct
	KwTrait
	KwType
	KwUse
	KwUnsafe
	KwWhere
	KwWhile

	Ident
	Lifetime

	// Numbers (one kind per base).
	NumberBinary
	NumberOctal
	NumberDecimal
	NumberHexadecimal

	Character
	String
	RawString
	ByteChar
	ByteString
	RawByteString

	// Punctuation.
	ColonColon
	Colon
	Semi
	Comma
	Dot
	DotDot
	DotDotDot
	Eq
	FatArrow
	Arrow
	Question
	At
	Bang
	Amp
	Star
	Plus
	Minus
	Slash
	Percent
	Lt
	Gt
	Shl
	Shr
	Le
	Ge
	EqEq
	Ne
	AmpAmp
	PipePipe
	Pipe
	Caret
	PlusEq
	MinusEq
	StarEq
	SlashEq
	PercentEq
	AmpEq
	PipeEq
	CaretEq
	ShlEq
	ShrEq
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Pound

	Whitespace
	LineComment
	BlockComment
)

// Token is one lexical unit: its kind, its extent in the source, and its
// literal text (a slice of the source, kept as a string for convenience).
type Token struct {
	Kind     Kind
	Extent   Extent
	Text     string
	Position Position
}

// IsOpenDelim reports whether k opens a balanced-delimiter region.
func (k Kind) IsOpenDelim() bool {
	switch k {
	case LParen, LBracket, LBrace:
		return true
	}
	return false
}

// IsCloseDelim reports whether k closes a balanced-delimiter region.
func (k Kind) IsCloseDelim() bool {
	switch k {
	case RParen, RBracket, RBrace:
		return true
	}
	return false
}

// IsTrivia reports whether k is whitespace or a comment — not meaningful to
// the grammar itself; trivia between top-level items is preserved in the
// tree as first-class nodes.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment:
		return true
	}
	return false
}

var keywords = map[string]Kind{
	"as": KwAs, "box": KwBox, "break": KwBreak, "const": KwConst,
	"continue": KwContinue, "crate": KwCrate, "else": KwElse, "enum": KwEnum,
	"extern": KwExtern, "fn": KwFn, "for": KwFor, "if": KwIf, "impl": KwImpl,
	"in": KwIn, "let": KwLet, "loop": KwLoop, "match": KwMatch, "mod": KwMod,
	"move": KwMove, "mut": KwMut, "pub": KwPub, "ref": KwRef, "return": KwReturn,
	"static": KwStatic, "struct": KwStruct, "trait": KwTrait, "type": KwType,
	"use": KwUse, "unsafe": KwUnsafe, "where": KwWhere, "while": KwWhile,
}

// LookupKeyword returns the keyword kind for word, and ok=true if word is a
// reserved word. "self" is deliberately absent: it is an ordinary identifier.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// IsKeyword reports whether word is in the closed reserved-word set.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// String renders a human-readable name for diagnostics, e.g. "')'" or "identifier".
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Illegal:
		return "illegal token"
	case Ident:
		return "identifier"
	case Lifetime:
		return "lifetime"
	case NumberBinary, NumberOctal, NumberDecimal, NumberHexadecimal:
		return "number"
	case Character:
		return "character literal"
	case String:
		return "string literal"
	case RawString:
		return "raw string literal"
	case ByteChar:
		return "byte literal"
	case ByteString:
		return "byte string literal"
	case RawByteString:
		return "raw byte string literal"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case ColonColon:
		return "'::'"
	case Colon:
		return "':'"
	case Semi:
		return "';'"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	case DotDot:
		return "'..'"
	case DotDotDot:
		return "'...'"
	case Eq:
		return "'='"
	case FatArrow:
		return "'=>'"
	case Arrow:
		return "'->'"
	case Question:
		return "'?'"
	case At:
		return "'@'"
	case Bang:
		return "'!'"
	case Pound:
		return "'#'"
	case Whitespace:
		return "whitespace"
	case LineComment, BlockComment:
		return "comment"
	default:
		for word, kw := range keywords {
			if kw == k {
				return "'" + word + "'"
			}
		}
		return "token"
	}
}
