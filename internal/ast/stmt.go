package ast

import (
	"fmt"

	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

// StmtKind distinguishes the two statement-carrying unary nodes.
type StmtKind int

const (
	PrintStmt StmtKind = iota
	VarStmt
)

// statementPrecedence is level 0: statement heads never bind tighter
// than the expression they carry.
const statementPrecedence = 0

// Stmt is "print E" or "var X" / "var X = E" — a unary node whose
// operator performs a side effect rather than returning a computed
// value for further composition (spec §3, §4.4).
type Stmt struct {
	Kind     StmtKind
	Operator token.Token
	Right    Node
}

func (s *Stmt) Prec() int        { return statementPrecedence }
func (s *Stmt) RightAssoc() bool { return false }

// GetRight and SetRight let internal/parser's rotation algorithm treat
// Stmt uniformly with Binary and Unary (spec §4.3).
func (s *Stmt) GetRight() Node  { return s.Right }
func (s *Stmt) SetRight(n Node) { s.Right = n }

// Evaluate implements "print" and "var" (spec §4.4).
func (s *Stmt) Evaluate(sc *scope.Scope) (eval.Value, error) {
	switch s.Kind {
	case PrintStmt:
		v, err := s.Right.Evaluate(sc)
		if err != nil {
			return eval.Value{}, err
		}
		fmt.Println(v.Display())
		return eval.Nil, nil
	case VarStmt:
		return s.evaluateVar(sc)
	default:
		return eval.Value{}, eval.Generic(s.Operator.Line)
	}
}

// evaluateVar implements declaration, with or without an initializer.
// A bare "var x" declares x as nil in the current scope and returns nil
// as the statement's own value (spec §4.4). "var x = e" is represented
// as Right being an Assign node whose left is an Identifier; anything
// else on the right of a `var` is a runtime error, matching the
// original's fallthrough (original_source
// app/expressions/expressions.py VarExpression.evaluate). A `var`
// nested inside e is rejected outright (spec §9 Design notes).
func (s *Stmt) evaluateVar(sc *scope.Scope) (eval.Value, error) {
	if id, ok := s.Right.(*Identifier); ok {
		v := sc.Create(id.Name.Lexeme)
		return v.Value, nil
	}
	if asg, ok := s.Right.(*Binary); ok && asg.Op == Assign {
		if id, ok := asg.Left.(*Identifier); ok {
			if st, ok := asg.Right.(*Stmt); ok && st.Kind == VarStmt {
				return eval.Value{}, eval.Generic(s.Operator.Line)
			}
			// "var x = var y = 1" arrives as (= x (= (var y) 1)).
			if inner, ok := asg.Right.(*Binary); ok && inner.Op == Assign {
				if st, ok := inner.Left.(*Stmt); ok && st.Kind == VarStmt {
					return eval.Value{}, eval.Generic(s.Operator.Line)
				}
			}
			rv, err := asg.Right.Evaluate(sc)
			if err != nil {
				return eval.Value{}, err
			}
			v := sc.Create(id.Name.Lexeme)
			v.Value = rv
			return rv, nil
		}
	}
	return eval.Value{}, eval.Generic(s.Operator.Line)
}

// LeftValue makes a `var` node usable as an assignment target itself,
// which is how the rotation shapes "print var y = 1" or "(var y = 1)":
// it declares its identifier per evaluateVar, then hands back the
// now-bound Variable. A `var` reached through a chained assignment is
// rejected by evaluateAssign/evaluateVar before this is called.
func (s *Stmt) LeftValue(sc *scope.Scope) (*scope.Variable, error) {
	if _, err := s.Evaluate(sc); err != nil {
		return nil, err
	}
	id, ok := s.Right.(*Identifier)
	if !ok {
		return nil, eval.Generic(s.Operator.Line)
	}
	return id.LeftValue(sc)
}

// Render returns "(OP RIGHT)", same shape as Unary.
func (s *Stmt) Render() string {
	return "(" + s.Operator.Lexeme + " " + s.Right.Render() + ")"
}
