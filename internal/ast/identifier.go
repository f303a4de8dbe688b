package ast

import (
	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

// Identifier looks up a name in the scope chain; it also serves as an
// assignment target via LeftValue.
type Identifier struct {
	Name token.Token
}

func (i *Identifier) Prec() int        { return 0 }
func (i *Identifier) RightAssoc() bool { return false }

// Evaluate returns the bound variable's current value, failing with an
// UndefinedVariable runtime error if Name has no binding.
func (i *Identifier) Evaluate(sc *scope.Scope) (eval.Value, error) {
	v, err := sc.Lookup(i.Name.Lexeme, i.Name.Line)
	if err != nil {
		return eval.Value{}, err
	}
	return v.Value, nil
}

// LeftValue resolves the existing variable this identifier names,
// failing if undefined.
func (i *Identifier) LeftValue(sc *scope.Scope) (*scope.Variable, error) {
	return sc.Lookup(i.Name.Lexeme, i.Name.Line)
}

// Render returns "(Identifier NAME)".
func (i *Identifier) Render() string {
	return "(Identifier " + i.Name.Lexeme + ")"
}
