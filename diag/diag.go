// Package diag defines the parser's error taxonomy and the structured
// failure record it emits, plus the (explicitly cosmetic, per spec §7)
// line/column rendering of that record.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrorKind is the closed set of parse-failure reasons.
type ErrorKind struct {
	tag     errorTag
	literal string // populated only when tag == literalTag
}

type errorTag uint8

const (
	literalTag errorTag = iota
	expectedIdentifierTag
	expectedNumberTag
	expectedKeywordTag
	unterminatedRawStringTag
)

// Literal builds the `Literal(s)` error: expected the literal string s.
func Literal(s string) ErrorKind { return ErrorKind{tag: literalTag, literal: s} }

// ExpectedIdentifier is reported when the identifier candidate was empty or
// a reserved keyword.
var ExpectedIdentifier = ErrorKind{tag: expectedIdentifierTag}

// ExpectedNumber is reported when a digit sequence was empty or began with `_`.
var ExpectedNumber = ErrorKind{tag: expectedNumberTag}

// ExpectedKeyword is reported when a keyword matched lexically but was
// immediately followed by an identifier-continue character.
var ExpectedKeyword = ErrorKind{tag: expectedKeywordTag}

// UnterminatedRawString is reported on EOF before a raw string's closing
// hash-quote run.
var UnterminatedRawString = ErrorKind{tag: unterminatedRawStringTag}

func (e ErrorKind) String() string {
	switch e.tag {
	case literalTag:
		return fmt.Sprintf("Literal(%q)", e.literal)
	case expectedIdentifierTag:
		return "ExpectedIdentifier"
	case expectedNumberTag:
		return "ExpectedNumber"
	case expectedKeywordTag:
		return "ExpectedKeyword"
	case unterminatedRawStringTag:
		return "UnterminatedRawString"
	default:
		return "Unknown"
	}
}

// rank maps an ErrorKind to an integer key: its tag times 1000, plus the byte
// sum of the text for literal kinds. Distinct literals can share a key; the
// sorted order of a Diagnostic's kinds comes from Less, not from rank.
func (e ErrorKind) rank() int {
	r := int(e.tag) * 1000
	if e.tag == literalTag {
		for _, b := range []byte(e.literal) {
			r += int(b)
		}
	}
	return r
}

// Less orders two kinds for deterministic, sorted diagnostic output.
func Less(a, b ErrorKind) bool {
	if a.tag != b.tag {
		return a.tag < b.tag
	}
	return a.literal < b.literal
}

// Diagnostic is the single user-visible failure record: the furthest byte
// offset any alternative reached, and the deduplicated, sorted set of error
// kinds reported exactly at that offset.
type Diagnostic struct {
	Offset int
	Kinds  []ErrorKind
}

// Add merges kind into the diagnostic's kind set (deduplicated).
func (d *Diagnostic) Add(kind ErrorKind) {
	for _, k := range d.Kinds {
		if k == kind {
			return
		}
	}
	d.Kinds = append(d.Kinds, kind)
	sort.Slice(d.Kinds, func(i, j int) bool { return Less(d.Kinds[i], d.Kinds[j]) })
}

// candidateKeywords is consulted for "did you mean" suggestions; kept small
// and deliberately limited to the closed reserved-word set (spec §6) rather
// than every identifier ever seen, since that is the one place a misspelling
// has an unambiguous, useful correction.
var candidateKeywords = []string{
	"as", "box", "break", "const", "continue", "crate", "else", "enum",
	"extern", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
	"move", "mut", "pub", "ref", "return", "static", "struct", "trait",
	"type", "use", "unsafe", "where", "while",
}

// Suggest returns the closest keyword to word by fuzzy match, or "" if none
// is close enough to be a plausible typo.
func Suggest(word string) string {
	if word == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, kw := range candidateKeywords {
		if !fuzzy.MatchFold(word, kw) && fuzzy.LevenshteinDistance(word, kw) > 2 {
			continue
		}
		d := fuzzy.LevenshteinDistance(word, kw)
		if bestDist == -1 || d < bestDist {
			best, bestDist = kw, d
		}
	}
	if bestDist >= 0 && bestDist <= 2 {
		return best
	}
	return ""
}

// Render renders a Diagnostic against the original source as a
// line/column/caret report, followed by an "expected one of:" list of the
// diagnostic's kinds in their sorted order. It does not call Suggest and
// appends no suggestion. This is the cosmetic, non-core
// collaborator spec §1/§7 name separately from the parser itself.
func Render(source []byte, d Diagnostic) string {
	text := string(source)
	head, tail := text[:d.Offset], text[d.Offset:]

	startOfLine := strings.LastIndexByte(head, '\n') + 1
	endOfLine := strings.IndexByte(tail, '\n')
	if endOfLine == -1 {
		endOfLine = len(tail)
	}
	line := strings.Count(head, "\n") + 1
	col := len(head) - startOfLine

	var b strings.Builder
	fmt.Fprintf(&b, "parse error at line %d, column %d\n", line, col+1)
	fmt.Fprintf(&b, "%s%s\n", head[startOfLine:], tail[:endOfLine])
	fmt.Fprintf(&b, "%*s^\n", col, "")
	b.WriteString("expected one of:\n")
	for _, k := range d.Kinds {
		fmt.Fprintf(&b, "  %s\n", k)
	}
	return b.String()
}
