package parser

import (
	"fmt"

	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/token"
)

// Parse runs the parser over a full source file, producing a File whose Items
// interleave every top-level declaration with a WhitespaceRun for the trivia
// between them, so the tree reproduces the source byte-for-byte at the top
// level (spec testable property 2; see DESIGN.md "Scope trade-off").
//
// On failure the returned File is nil and the Diagnostic names the furthest
// offset reached and the set of things that would have made progress there.
func Parse(source []byte) (*cst.File, *diag.Diagnostic) {
	p := newParser(source)

	var items []cst.Item
	for {
		if ws := p.leadingTrivia(p.pos); len(ws) > 0 {
			items = append(items, &cst.WhitespaceRun{Whitespace: ws})
		}
		if p.at(token.EOF) {
			break
		}
		before := p.pos
		it, okv := p.item()
		if !okv {
			d := p.diagnostic()
			return nil, &d
		}
		if p.pos == before {
			panic(fmt.Sprintf("parser: item() made no progress at offset %d", p.offset()))
		}
		items = append(items, it)
	}
	return &cst.File{Items: items}, nil
}
