// Package cst defines the concrete syntax tree: a byte-extent tagged tree
// that preserves whitespace and comments between top-level items as
// first-class nodes; trivia inside an item is not stored in the tree.
// Trees are owned bottom-up by the parser; there is no shared ownership and
// no cyclic reference — back-references to source text are by extent only.
package cst

import "github.com/rustcst/parser/token"

// Extent is a closed-open byte-offset interval [Start, End) into the source.
// It is the canonical identity of a node: every composite node's extent is
// the union of its children's extents.
type Extent = token.Extent

// Node is implemented by every tree node. Most nodes return the extent the
// parser stored for them; File and WhitespaceRun compute theirs as the union
// of their children's.
type Node interface {
	Extent() Extent
}

// File is the root of every parsed tree: an ordered sequence of items.
type File struct {
	Items []Item
}

func (f *File) Extent() Extent {
	if len(f.Items) == 0 {
		return Extent{}
	}
	e := f.Items[0].Extent()
	for _, it := range f.Items[1:] {
		e = e.Union(it.Extent())
	}
	return e
}

// Visibility is an optional `pub`/`pub(crate)`/`pub(in path)` prefix carried
// by every item. A zero-value Visibility (Present == false) means private.
type Visibility struct {
	Present bool
	Scope   string // "", "crate", "super", or an `in path` spelling
	Ext     Extent
}

// Ident is an identifier leaf: a Unicode XID token that is not a keyword.
type Ident struct {
	Name string
	Ext  Extent
}

func (i *Ident) Extent() Extent { return i.Ext }

// Lifetime is a leaf of the form 'a or 'static or 'self.
type Lifetime struct {
	Name string
	Ext  Extent
}

func (l *Lifetime) Extent() Extent { return l.Ext }

// WhitespaceKind distinguishes a blank run from a comment.
type WhitespaceKind uint8

const (
	BlankRun WhitespaceKind = iota
	Comment
)

// Whitespace is a preserved leaf for text between top-level items: blank runs
// and comments there are retained as first-class tree nodes so the source can
// be reproduced byte-for-byte from the top-level extents (spec testable
// property 2).
type Whitespace struct {
	Kind WhitespaceKind
	Ext  Extent
}

func (w *Whitespace) Extent() Extent { return w.Ext }

// WhitespaceRun is the Item-family wrapper for whitespace appearing between
// top-level items.
type WhitespaceRun struct {
	Whitespace []*Whitespace
}

func (w *WhitespaceRun) Extent() Extent {
	e := Extent{}
	for i, ws := range w.Whitespace {
		if i == 0 {
			e = ws.Extent()
		} else {
			e = e.Union(ws.Extent())
		}
	}
	return e
}

func (*WhitespaceRun) isItem() {}

// Path is a `::`-separated sequence of path components, optionally leading
// with `::` (absolute) and each component optionally carrying a turbofish.
type Path struct {
	Leading    bool // true if the path started with a leading `::`
	Components []*PathComponent
	Ext        Extent
}

func (p *Path) Extent() Extent { return p.Ext }

// PathComponent is one `name` or `name::<...>` segment of a Path.
type PathComponent struct {
	Name      *Ident
	Turbofish *Turbofish // nil if absent
	Ext       Extent
}

func (c *PathComponent) Extent() Extent { return c.Ext }

// Turbofish is the `::<T, U>` generic-argument attachment to a path
// component in expression position.
type Turbofish struct {
	Args []Type
	Ext  Extent
}

func (t *Turbofish) Extent() Extent { return t.Ext }

// PathedIdent is a Path used in a position expecting a possibly-qualified
// name (struct literal heads, call targets, use-paths).
type PathedIdent struct {
	Path *Path
	Ext  Extent
}

func (p *PathedIdent) Extent() Extent { return p.Ext }
