package eval

import "fmt"

// RuntimeError is the one runtime error type, distinguished by Msg, with
// the line number of the top-level expression whose evaluation failed.
// Modeled on the teacher's pkg/vm/errors.go RuntimeError, simplified to a
// flat line number since this evaluator has no call stack to unwind.
type RuntimeError struct {
	SourceLine int
	Msg        string
}

// Error formats the diagnostic exactly as spec.md §6 requires: the
// message, then "[line N] " on the next line.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d] ", e.Msg, e.SourceLine)
}

// OperandMustBeNumber reports a unary/binary arithmetic or comparison
// operator applied to a non-numeric operand.
func OperandMustBeNumber(line int) *RuntimeError {
	return &RuntimeError{SourceLine: line, Msg: "Operands must be numbers."}
}

// OperandsMustMatch reports "+" applied to one string and one number.
func OperandsMustMatch(line int) *RuntimeError {
	return &RuntimeError{SourceLine: line, Msg: "Operands must be two numbers or two strings."}
}

// UndefinedVariable reports a lookup of a name with no binding in the
// current scope chain.
func UndefinedVariable(line int, name string) *RuntimeError {
	return &RuntimeError{SourceLine: line, Msg: fmt.Sprintf("Undefined variable '%s'.", name)}
}

// Generic covers the remaining runtime-error cases spec.md §7 lumps
// together: popping past the root scope, and an ill-formed `var`
// right-hand side (anything but a bare identifier or `identifier =
// expr`).
func Generic(line int) *RuntimeError {
	return &RuntimeError{SourceLine: line, Msg: "Runtime error."}
}
