package ast

import (
	"strconv"
	"strings"

	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

// LitKind distinguishes the four literal forms the scanner can produce.
type LitKind int

const (
	LitString LitKind = iota
	LitNumber
	LitBoolean
	LitNil
)

// Literal is a leaf node wrapping a scanned literal token: string,
// number, boolean, or nil.
type Literal struct {
	Kind  LitKind
	Token token.Token
}

func (l *Literal) Prec() int        { return 0 }
func (l *Literal) RightAssoc() bool { return false }

// Evaluate returns the literal's runtime value. A number literal's
// lexeme preserves its original form: no "." means it's an integer,
// otherwise a float (spec §4.4).
func (l *Literal) Evaluate(sc *scope.Scope) (eval.Value, error) {
	switch l.Kind {
	case LitString:
		return eval.String(l.Token.Literal), nil
	case LitNumber:
		return parseNumber(l.Token.Lexeme), nil
	case LitBoolean:
		return eval.Bool(l.Token.Lexeme == "true"), nil
	default:
		return eval.Nil, nil
	}
}

func parseNumber(lexeme string) eval.Value {
	if strings.Contains(lexeme, ".") {
		f, _ := strconv.ParseFloat(lexeme, 64)
		return eval.Float(f)
	}
	n, _ := strconv.ParseInt(lexeme, 10, 64)
	return eval.Int(n)
}

// Render returns the literal's canonical textual form: a number always
// with at least one fractional digit, a string unquoted, and
// boolean/nil as the bare word.
func (l *Literal) Render() string {
	switch l.Kind {
	case LitString:
		return l.Token.Literal
	case LitNumber:
		return token.NumberLiteral(l.Token.Lexeme)
	default:
		return l.Token.Lexeme
	}
}
