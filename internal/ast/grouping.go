package ast

import (
	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
)

// Grouping wraps a single parenthesized expression; Inner is nil for an
// empty group "()".
type Grouping struct {
	Inner Node
}

func (g *Grouping) Prec() int        { return 0 }
func (g *Grouping) RightAssoc() bool { return false }

// Evaluate returns the inner expression's value, or nil for an empty
// group.
func (g *Grouping) Evaluate(sc *scope.Scope) (eval.Value, error) {
	if g.Inner == nil {
		return eval.Nil, nil
	}
	return g.Inner.Evaluate(sc)
}

// Render returns "(group INNER)", or "(group )" when empty.
func (g *Grouping) Render() string {
	if g.Inner == nil {
		return "(group )"
	}
	return "(group " + g.Inner.Render() + ")"
}
