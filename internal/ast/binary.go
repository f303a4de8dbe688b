package ast

import (
	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

// BinaryOp identifies a Binary node's operator.
type BinaryOp int

const (
	Plus BinaryOp = iota
	Minus
	Star
	Slash
	And
	Or
	EqualEqual
	BangEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Assign
)

// precedence is spec.md's table: higher binds tighter. Assign, And, Or
// all sit at level 0 alongside literals/identifiers/groups.
var precedence = map[BinaryOp]int{
	Star:         4,
	Slash:        4,
	Plus:         3,
	Minus:        3,
	Less:         2,
	LessEqual:    2,
	Greater:      2,
	GreaterEqual: 2,
	EqualEqual:   1,
	BangEqual:    1,
	And:          0,
	Or:           0,
	Assign:       0,
}

// Binary is a two-operand expression: arithmetic, comparison, equality,
// logical, or assignment.
type Binary struct {
	Op       BinaryOp
	Operator token.Token
	Left     Node
	Right    Node
}

func (b *Binary) Prec() int { return precedence[b.Op] }

// RightAssoc is true only for assignment; every arithmetic/comparison
// operator is left-associative (spec §4.3).
func (b *Binary) RightAssoc() bool { return b.Op == Assign }

// GetRight and SetRight let internal/parser's rotation algorithm walk and
// rewrite the tree generically across Binary/Unary/Stmt without a type
// switch at every step (spec §4.3).
func (b *Binary) GetRight() Node   { return b.Right }
func (b *Binary) SetRight(n Node) { b.Right = n }

// BinaryPrecedence exposes the precedence table to internal/parser
// before a Binary node has been constructed, to decide how a new
// operator should be inserted into the existing tree.
func BinaryPrecedence(op BinaryOp) int { return precedence[op] }

// Evaluate implements every binary operator's semantics (spec §4.4).
func (b *Binary) Evaluate(sc *scope.Scope) (eval.Value, error) {
	line := b.Operator.Line

	switch b.Op {
	case Assign:
		return b.evaluateAssign(sc)
	case And:
		lv, err := b.Left.Evaluate(sc)
		if err != nil {
			return eval.Value{}, err
		}
		if !lv.Truthy() {
			return lv, nil
		}
		return b.Right.Evaluate(sc)
	case Or:
		lv, err := b.Left.Evaluate(sc)
		if err != nil {
			return eval.Value{}, err
		}
		if lv.Truthy() {
			return lv, nil
		}
		return b.Right.Evaluate(sc)
	}

	lv, err := b.Left.Evaluate(sc)
	if err != nil {
		return eval.Value{}, err
	}
	rv, err := b.Right.Evaluate(sc)
	if err != nil {
		return eval.Value{}, err
	}

	switch b.Op {
	case Plus:
		return eval.Add(lv, rv, line)
	case Minus:
		return eval.Sub(lv, rv, line)
	case Star:
		return eval.Mul(lv, rv, line)
	case Slash:
		return eval.Div(lv, rv, line)
	case EqualEqual:
		return eval.Bool(lv.Equal(rv)), nil
	case BangEqual:
		return eval.Bool(!lv.Equal(rv)), nil
	case Less:
		return eval.Compare("<", lv, rv, line)
	case LessEqual:
		return eval.Compare("<=", lv, rv, line)
	case Greater:
		return eval.Compare(">", lv, rv, line)
	case GreaterEqual:
		return eval.Compare(">=", lv, rv, line)
	default:
		return eval.Value{}, eval.Generic(line)
	}
}

// evaluateAssign implements "=": the left operand must be an identifier
// or a `var` declaration (spec §4.4). A `var` nested on the right of an
// assignment is rejected outright (spec §9 Design notes): chained
// assignment only reaches through identifiers, never through a second
// declaration.
func (b *Binary) evaluateAssign(sc *scope.Scope) (eval.Value, error) {
	lval, ok := b.Left.(LValue)
	if !ok {
		return eval.Value{}, eval.Generic(b.Operator.Line)
	}
	if st, ok := b.Right.(*Stmt); ok && st.Kind == VarStmt {
		return eval.Value{}, eval.Generic(b.Operator.Line)
	}
	// The rotation parses "x = var y = 1" as (= x (= (var y) 1)).
	if inner, ok := b.Right.(*Binary); ok && inner.Op == Assign {
		if st, ok := inner.Left.(*Stmt); ok && st.Kind == VarStmt {
			return eval.Value{}, eval.Generic(b.Operator.Line)
		}
	}
	rv, err := b.Right.Evaluate(sc)
	if err != nil {
		return eval.Value{}, err
	}
	v, err := lval.LeftValue(sc)
	if err != nil {
		return eval.Value{}, err
	}
	v.Value = rv
	return rv, nil
}

// Render returns "(OP LEFT RIGHT)".
func (b *Binary) Render() string {
	return "(" + b.Operator.Lexeme + " " + b.Left.Render() + " " + b.Right.Render() + ")"
}
