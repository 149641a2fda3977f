package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingVisitor records the order of Visit/Exit calls by node kind, embedding
// BaseVisitor so it only needs to override the hooks under test.
type recordingVisitor struct {
	BaseVisitor
	order []string
}

func (r *recordingVisitor) VisitFile(*File)         { r.order = append(r.order, "+File") }
func (r *recordingVisitor) ExitFile(*File)          { r.order = append(r.order, "-File") }
func (r *recordingVisitor) VisitFunction(*Function) { r.order = append(r.order, "+Function") }
func (r *recordingVisitor) ExitFunction(*Function)  { r.order = append(r.order, "-Function") }
func (r *recordingVisitor) VisitConst(*Const)       { r.order = append(r.order, "+Const") }
func (r *recordingVisitor) ExitConst(*Const)        { r.order = append(r.order, "-Const") }

func TestWalkVisitsInPreOrderPostOrder(t *testing.T) {
	file := &File{
		Items: []Item{
			&Function{Name: &Ident{Name: "a"}},
			&Const{Name: &Ident{Name: "X"}, Type: &TypeNamed{}, Value: &Value{}},
		},
	}
	rv := &recordingVisitor{}
	Walk(file, rv)

	require.Equal(t, []string{
		"+File", "+Function", "-Function", "+Const", "-Const", "-File",
	}, rv.order)
}

func TestWalkNilNodeIsNoOp(t *testing.T) {
	rv := &recordingVisitor{}
	assert.NotPanics(t, func() { Walk(nil, rv) })
	assert.Empty(t, rv.order)
}

func TestBaseVisitorDefaultsAreNoOp(t *testing.T) {
	file := &File{Items: []Item{&Function{Name: &Ident{Name: "a"}}}}
	assert.NotPanics(t, func() { Walk(file, BaseVisitor{}) })
}
