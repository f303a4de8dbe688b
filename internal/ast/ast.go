// Package ast defines the expression-tree node types the parser
// assembles and the evaluator walks (spec §3 Expression node).
//
// Every node satisfies the capability set {Evaluate, Render}; Binary,
// Unary, and Stmt additionally carry the design-time precedence and
// right-associativity constants the parser's rotation algorithm (spec
// §4.3) needs while the tree is still being assembled. Those two
// attributes are never read after parsing completes — they are constants
// of the variant, not runtime state, per spec §3.
package ast

import (
	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
)

// Node is the uniform evaluation contract every expression-tree variant
// implements.
type Node interface {
	// Evaluate computes the node's value against sc, or returns a
	// runtime error (*eval.RuntimeError).
	Evaluate(sc *scope.Scope) (eval.Value, error)
	// Render produces the canonical prefix-form text used by the
	// "parse" subcommand.
	Render() string
	// Prec is this node's design-time precedence; higher binds tighter.
	Prec() int
	// RightAssoc reports whether this node's operator is
	// right-associative.
	RightAssoc() bool
}

// LValue is implemented by nodes that can serve as an assignment target:
// Identifier and Stmt (for `var`).
type LValue interface {
	Node
	// LeftValue resolves (declaring if necessary) the Variable this
	// node names, for assignment.
	LeftValue(sc *scope.Scope) (*scope.Variable, error)
}
