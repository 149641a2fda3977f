package parser

import "github.com/rustcst/parser/diag"

// Progress is a combinator's result: success carries the value produced;
// failure carries nothing (the furthest cursor and the expected-kind set it
// contributed are already folded into the Parser's own failure tracker by
// whichever primitive reported them — see Parser.fail).
type Progress[T any] struct {
	OK    bool
	Value T
}

func ok[T any](v T) Progress[T]  { return Progress[T]{OK: true, Value: v} }
func fail[T any]() Progress[T]   { var zero T; return Progress[T]{OK: false, Value: zero} }

// optional always succeeds: it returns Some(v) if fn succeeds, or None
// (ok=false, cursor untouched) otherwise. It never leaves the cursor
// advanced on a None result.
func optional[T any](p *Parser, fn func(*Parser) (T, bool)) (T, bool) {
	m := p.mark()
	if v, okv := fn(p); okv {
		return v, true
	}
	p.reset(m)
	var zero T
	return zero, false
}

// alternate tries each parser in order and commits to the first success. All
// failures simply return false; the furthest-cursor/expected-set pair that
// ends up recorded on p is whichever sub-attempt reported the deepest
// failure, because every primitive reports through the shared p.fail sink.
func alternate[T any](p *Parser, fns ...func(*Parser) (T, bool)) (T, bool) {
	for _, fn := range fns {
		m := p.mark()
		if v, okv := fn(p); okv {
			return v, true
		}
		p.reset(m)
	}
	var zero T
	return zero, false
}

// zeroOrMore greedily collects zero or more successful results of fn.
func zeroOrMore[T any](p *Parser, fn func(*Parser) (T, bool)) []T {
	var out []T
	for {
		m := p.mark()
		v, okv := fn(p)
		if !okv {
			p.reset(m)
			return out
		}
		if p.pos == m {
			// A zero-width match would loop forever; treat as exhausted.
			return out
		}
		out = append(out, v)
	}
}

// oneOrMore requires at least one match, else fails.
func oneOrMore[T any](p *Parser, fn func(*Parser) (T, bool)) ([]T, bool) {
	first, okv := fn(p)
	if !okv {
		return nil, false
	}
	rest := zeroOrMore(p, fn)
	return append([]T{first}, rest...), true
}

// tailedResult is what the tailed-list family returns: the collected values,
// and whether the final value was itself followed by a separator — callers
// use this bit to distinguish e.g. `(x)` from `(x,)`.
type tailedResult[T any] struct {
	Values          []T
	TrailingSep     bool
}

// zeroOrMoreTailed parses `(v (sep v)* sep?)?`: zero or more values of fn,
// separated by sep, with an optional trailing separator.
func zeroOrMoreTailed[T any](p *Parser, sep func(*Parser) bool, item func(*Parser) (T, bool)) tailedResult[T] {
	first, okv := optional(p, item)
	if !okv {
		return tailedResult[T]{}
	}
	return oneOrMoreTailedFrom(p, first, sep, item)
}

// oneOrMoreTailed requires at least one value, else ok=false.
func oneOrMoreTailed[T any](p *Parser, sep func(*Parser) bool, item func(*Parser) (T, bool)) (tailedResult[T], bool) {
	first, okv := item(p)
	if !okv {
		return tailedResult[T]{}, false
	}
	return oneOrMoreTailedFrom(p, first, sep, item), true
}

// oneOrMoreTailedFrom consumes `(sep item)*` after first has already been
// parsed. A separator consumed with no following item is left consumed and
// marks TrailingSep — this is how `(x,)` is told apart from `(x)`.
func oneOrMoreTailedFrom[T any](p *Parser, first T, sep func(*Parser) bool, item func(*Parser) (T, bool)) tailedResult[T] {
	values := []T{first}
	trailingSep := false
	for {
		if !sep(p) {
			trailingSep = false
			break
		}
		v, okv := item(p)
		if !okv {
			trailingSep = true
			break
		}
		values = append(values, v)
		trailingSep = false
	}
	return tailedResult[T]{Values: values, TrailingSep: trailingSep}
}

// zeroOrMoreImplicitlyTailed parses a list where certain values act as their
// own separator: after a value, if no explicit separator is present but the
// value satisfies isImplicitSeparator, parsing continues anyway.
func zeroOrMoreImplicitlyTailed[T any](
	p *Parser,
	sep func(*Parser) bool,
	item func(*Parser) (T, bool),
	isImplicitSeparator func(T) bool,
) tailedResult[T] {
	var values []T
	trailingSep := false
	for {
		m := p.mark()
		v, okv := item(p)
		if !okv {
			p.reset(m)
			break
		}
		values = append(values, v)
		if sep(p) {
			trailingSep = true
			continue
		}
		trailingSep = false
		if isImplicitSeparator(v) {
			continue
		}
		break
	}
	return tailedResult[T]{Values: values, TrailingSep: trailingSep}
}

// zeroOrMoreTailedResume continues a tailed list after a first value has
// already been consumed by the caller: `(sep v)*` with an optional trailing
// sep.
func zeroOrMoreTailedResume[T any](p *Parser, first T, sep func(*Parser) bool, item func(*Parser) (T, bool)) tailedResult[T] {
	return oneOrMoreTailedFrom(p, first, sep, item)
}

// rewindOnError runs fn as a speculative sub-parse; on failure, it discards
// whatever furthest-cursor/expected-set contribution fn made (restoring the
// tracker to its pre-call state) and rewinds the cursor, so the caller can
// report its own, more meaningful failure at its own anchor instead of
// fn's sticky furthest point. Used for sub-parses that must be transparent,
// e.g. probing whether the `{` after a path opens a struct literal.
func rewindOnError[T any](p *Parser, fn func(*Parser) (T, bool)) (T, bool) {
	savedFurthest := p.furthest
	savedKinds := append([]diag.ErrorKind(nil), p.furthestKinds...)
	m := p.mark()
	v, okv := fn(p)
	if okv {
		return v, true
	}
	p.reset(m)
	p.furthest, p.furthestKinds = savedFurthest, savedKinds
	return v, false
}

// not succeeds without consuming iff fn fails; otherwise it fails.
func not[T any](p *Parser, fn func(*Parser) (T, bool)) bool {
	m := p.mark()
	_, okv := fn(p)
	p.reset(m)
	return !okv
}
