package ast

import (
	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

// UnaryOp identifies which of the two arithmetic/logical unary operators
// a Unary node applies.
type UnaryOp int

const (
	Negative UnaryOp = iota // "-"
	Not                     // "!"
)

// unaryPrecedence is level 5 in spec.md's table — the tightest-binding
// operators.
const unaryPrecedence = 5

// Unary is "-" (arithmetic negation) or "!" (logical not) applied to a
// single right-hand operand.
type Unary struct {
	Op       UnaryOp
	Operator token.Token
	Right    Node
}

func (u *Unary) Prec() int        { return unaryPrecedence }
func (u *Unary) RightAssoc() bool { return false }

// GetRight and SetRight let internal/parser's rotation algorithm treat
// Unary uniformly with Binary and Stmt (spec §4.3).
func (u *Unary) GetRight() Node  { return u.Right }
func (u *Unary) SetRight(n Node) { u.Right = n }

// Evaluate implements unary negation and logical not (spec §4.4).
func (u *Unary) Evaluate(sc *scope.Scope) (eval.Value, error) {
	rv, err := u.Right.Evaluate(sc)
	if err != nil {
		return eval.Value{}, err
	}
	switch u.Op {
	case Negative:
		return eval.Negate(rv, u.Operator.Line)
	case Not:
		return eval.Bool(!rv.Truthy()), nil
	default:
		return eval.Value{}, eval.Generic(u.Operator.Line)
	}
}

// Render returns "(OP RIGHT)".
func (u *Unary) Render() string {
	return "(" + u.Operator.Lexeme + " " + u.Right.Render() + ")"
}
