package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rustcst/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	var out []token.Kind
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexEmptyEndsInEOF(t *testing.T) {
	toks := Lex(nil)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.Equal(t, token.Extent{Start: 0, End: 0}, toks[0].Extent)
}

func TestLexRawStringHashCounts(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{`r"x"`, token.RawString},
		{`r#"x"#`, token.RawString},
		{`r##"x"##`, token.RawString},
		{`br#"x"#`, token.RawByteString},
	}
	for _, tt := range tests {
		toks := Lex([]byte(tt.src))
		require.Len(t, toks, 2, tt.src)
		assert.Equal(t, tt.kind, toks[0].Kind, tt.src)
		assert.Equal(t, tt.src, toks[0].Text, tt.src)
	}
}

func TestLexRawStringWithNestedQuoteRequiresMatchingHashes(t *testing.T) {
	src := `r#"a "# b"#`
	toks := Lex([]byte(src))
	require.Len(t, toks, 2)
	assert.Equal(t, token.RawString, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text)
}

func TestLexLifetimeVsCharLiteral(t *testing.T) {
	toks := Lex([]byte(`'a 'static 'x'`))
	require.Len(t, toks, 6)
	assert.Equal(t, token.Lifetime, toks[0].Kind)
	assert.Equal(t, token.Whitespace, toks[1].Kind)
	assert.Equal(t, token.Lifetime, toks[2].Kind)
	assert.Equal(t, token.Whitespace, toks[3].Kind)
	assert.Equal(t, token.Character, toks[4].Kind)
}

func TestLexNumberBases(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"0b1010", token.NumberBinary},
		{"0o17", token.NumberOctal},
		{"0xFF", token.NumberHexadecimal},
		{"1_000", token.NumberDecimal},
		{"1.5e10", token.NumberDecimal},
	}
	for _, tt := range tests {
		toks := Lex([]byte(tt.src))
		require.Len(t, toks, 2, tt.src)
		assert.Equal(t, tt.kind, toks[0].Kind, tt.src)
		assert.Equal(t, tt.src, toks[0].Text, tt.src)
	}
}

func TestLexNestedBlockComment(t *testing.T) {
	src := "/* outer /* inner */ still outer */"
	toks := Lex([]byte(src))
	require.Len(t, toks, 2)
	assert.Equal(t, token.BlockComment, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text)
}

func TestLexPunctuationLongestMatchFirst(t *testing.T) {
	toks := Lex([]byte("<<= << <"))
	got := kinds(toks)
	want := []token.Kind{
		token.ShlEq, token.Whitespace, token.Shl, token.Whitespace, token.Lt, token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexKeywordVsIdentifierBoundary(t *testing.T) {
	toks := Lex([]byte("for form"))
	require.Len(t, toks, 4)
	assert.Equal(t, token.KwFor, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[2].Kind)
	assert.Equal(t, "form", toks[2].Text)
}
