package parser

import "github.com/rustcst/parser/diag"

// withStructLiterals scopes ignoreStructLiterals to enabled for the duration
// of fn, restoring the prior value afterward on every exit path — including
// panics, which Go's defer guarantees and the teacher's manual save/restore
// discipline (spec §4.2/§9) does not automatically get for free.
//
// ignoreStructLiterals defaults to false (struct literals allowed). Condition
// positions (if/while/for/match heads) call this with ignore=true to suppress
// them while parsing the head. Any enclosing construct — parens, brackets,
// braces, call arguments, array and struct-literal interiors — re-enables
// literals for its own body by calling this with ignore=false.
func withStructLiterals(p *Parser, ignore bool, fn func()) {
	saved := p.ignoreStructLiterals
	p.ignoreStructLiterals = ignore
	defer func() { p.ignoreStructLiterals = saved }()
	fn()
}

// withDepth scopes a recursion-depth increment for the duration of fn,
// reporting false (and not calling fn) if maxDepth would be exceeded — the
// explicit depth counter spec §5 offers as the bounded-nesting mechanism.
func withDepth(p *Parser, fn func() bool) bool {
	if p.depth >= maxDepth {
		p.fail(p.offset(), diag.Literal("expression nested too deeply"))
		return false
	}
	p.depth++
	defer func() { p.depth-- }()
	return fn()
}
