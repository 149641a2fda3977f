package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticAddDeduplicatesAndSorts(t *testing.T) {
	var d Diagnostic
	d.Add(Literal(")"))
	d.Add(ExpectedIdentifier)
	d.Add(Literal(")"))
	d.Add(ExpectedKeyword)

	assert.Len(t, d.Kinds, 3)
	for i := 1; i < len(d.Kinds); i++ {
		assert.True(t, Less(d.Kinds[i-1], d.Kinds[i]) || d.Kinds[i-1] == d.Kinds[i])
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, `Literal(")")`, Literal(")").String())
	assert.Equal(t, "ExpectedIdentifier", ExpectedIdentifier.String())
	assert.Equal(t, "ExpectedKeyword", ExpectedKeyword.String())
	assert.Equal(t, "UnterminatedRawString", UnterminatedRawString.String())
}

func TestRenderPointsAtOffset(t *testing.T) {
	src := []byte("fn main() {\n  for\n}\n")
	d := Diagnostic{Offset: 15, Kinds: []ErrorKind{ExpectedIdentifier}}
	out := Render(src, d)
	assert.Contains(t, out, "line 2")
	assert.Contains(t, out, "ExpectedIdentifier")
	assert.True(t, strings.Contains(out, "^"))
}

func TestSuggestFindsCloseKeyword(t *testing.T) {
	assert.Equal(t, "fn", Suggest("fnc"))
	assert.Equal(t, "", Suggest("zzzzzzzzzzzzzz"))
}
