// Package eval defines the runtime value model and the runtime error
// family produced while evaluating an expression tree (spec §3 Value,
// §4.4 Evaluator, §7 Runtime errors).
package eval

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags a Value's runtime type.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// Value is a dynamically-typed runtime value: nil, boolean, integer,
// floating-point, or string. Only one of the typed fields is meaningful,
// selected by Kind.
type Value struct {
	Kind Kind
	B    bool
	I    int64
	F    float64
	S    string
}

// Nil is the singleton nil value.
var Nil = Value{Kind: KindNil}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: KindBool, B: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{Kind: KindInt, I: i} }

// Float wraps a floating-point number.
func Float(f float64) Value { return Value{Kind: KindFloat, F: f} }

// String wraps a string.
func String(s string) Value { return Value{Kind: KindString, S: s} }

// IsNumber reports whether v holds an int or a float.
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// IsString reports whether v holds a string.
func (v Value) IsString() bool {
	return v.Kind == KindString
}

// AsFloat returns v's numeric value as a float64. Callers must check
// IsNumber first; AsFloat on a non-numeric Value returns 0.
func (v Value) AsFloat() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.I)
	case KindFloat:
		return v.F
	default:
		return 0
	}
}

// Truthy implements the language's truthiness rule: nil and false are
// falsey, everything else — including 0 and "" — is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.B
	default:
		return true
	}
}

// Equal implements structural equality: cross-kind comparisons are
// unequal except that int and float compare by natural numeric value (no
// other coercion is performed).
func (v Value) Equal(other Value) bool {
	if v.IsNumber() && other.IsNumber() {
		return v.AsFloat() == other.AsFloat()
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.B == other.B
	case KindString:
		return v.S == other.S
	default:
		return false
	}
}

// formatFloat renders f with at least one fractional digit, so integral
// values display as "N.0" — the same canonical form used for a scanned
// number token's literal field (spec §4.2).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Display renders v the way "print" does: booleans as lowercase
// true/false, nil as "nil", integers without a fractional part, floats in
// their natural (decimal-point-bearing) form, and strings unquoted.
func (v Value) Display() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindFloat:
		return formatFloat(v.F)
	case KindString:
		return v.S
	default:
		return ""
	}
}

// Add implements "+": numeric + numeric is a sum, string + string is
// concatenation; mixed string/number is an OperandsMustMatch error and
// anything else is an OperandMustBeNumber error.
func Add(left, right Value, line int) (Value, error) {
	if left.IsString() && right.IsString() {
		return String(left.S + right.S), nil
	}
	if left.IsNumber() && right.IsNumber() {
		return numericBinary(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	}
	if (left.IsString() || left.IsNumber()) && (right.IsString() || right.IsNumber()) {
		return Value{}, OperandsMustMatch(line)
	}
	return Value{}, OperandMustBeNumber(line)
}

// Sub implements binary "-".
func Sub(left, right Value, line int) (Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, OperandMustBeNumber(line)
	}
	return numericBinary(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
}

// Mul implements "*".
func Mul(left, right Value, line int) (Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, OperandMustBeNumber(line)
	}
	return numericBinary(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
}

// Div implements "/": exact (remainder-zero) division returns the
// integer quotient, otherwise the floating-point quotient (spec §4.4).
func Div(left, right Value, line int) (Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, OperandMustBeNumber(line)
	}
	lf, rf := left.AsFloat(), right.AsFloat()
	if math.Mod(lf, rf) == 0 {
		return Int(int64(lf / rf)), nil
	}
	return Float(lf / rf), nil
}

// Negate implements unary "-".
func Negate(v Value, line int) (Value, error) {
	switch v.Kind {
	case KindInt:
		return Int(-v.I), nil
	case KindFloat:
		return Float(-v.F), nil
	default:
		return Value{}, OperandMustBeNumber(line)
	}
}

// Compare implements <, <=, >, >=, returning the boolean result.
func Compare(op string, left, right Value, line int) (Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, OperandMustBeNumber(line)
	}
	lf, rf := left.AsFloat(), right.AsFloat()
	switch op {
	case "<":
		return Bool(lf < rf), nil
	case "<=":
		return Bool(lf <= rf), nil
	case ">":
		return Bool(lf > rf), nil
	case ">=":
		return Bool(lf >= rf), nil
	}
	return Value{}, OperandMustBeNumber(line)
}

func numericBinary(left, right Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) Value {
	if left.Kind == KindInt && right.Kind == KindInt {
		return Int(intOp(left.I, right.I))
	}
	return Float(floatOp(left.AsFloat(), right.AsFloat()))
}
