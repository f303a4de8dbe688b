package ast

import (
	"testing"

	"github.com/kristofer/loxgo/internal/eval"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

func numberTok(lexeme string) token.Token {
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Literal: token.NumberLiteral(lexeme)}
}

func identTok(name string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Lexeme: name}
}

func TestLiteral_EvaluateAndRender(t *testing.T) {
	ctx := scope.NewContext()

	num := &Literal{Kind: LitNumber, Token: numberTok("3")}
	if v, err := num.Evaluate(ctx.Current()); err != nil || v.Kind != eval.KindInt || v.I != 3 {
		t.Fatalf("integral literal: got %+v, %v", v, err)
	}
	if got, want := num.Render(), "3.0"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	str := &Literal{Kind: LitString, Token: token.Token{Kind: token.STRING, Lexeme: `"hi"`, Literal: "hi"}}
	if v, err := str.Evaluate(ctx.Current()); err != nil || v.S != "hi" {
		t.Fatalf("string literal: got %+v, %v", v, err)
	}

	nilLit := &Literal{Kind: LitNil, Token: token.Token{Lexeme: "nil"}}
	if got, want := nilLit.Render(), "nil"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestGrouping_EmptyAndNonEmpty(t *testing.T) {
	ctx := scope.NewContext()

	empty := &Grouping{}
	if got, want := empty.Render(), "(group )"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if v, err := empty.Evaluate(ctx.Current()); err != nil || v.Kind != eval.KindNil {
		t.Fatalf("empty group: got %+v, %v", v, err)
	}

	inner := &Literal{Kind: LitNumber, Token: numberTok("1")}
	g := &Grouping{Inner: inner}
	if got, want := g.Render(), "(group 1.0)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestIdentifier_LookupAndAssign(t *testing.T) {
	ctx := scope.NewContext()
	v := ctx.Current().Create("x")
	v.Value = eval.Int(5)

	id := &Identifier{Name: identTok("x")}
	got, err := id.Evaluate(ctx.Current())
	if err != nil || got.I != 5 {
		t.Fatalf("got %+v, %v", got, err)
	}
	if got, want := id.Render(), "(Identifier x)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestIdentifier_UndefinedIsRuntimeError(t *testing.T) {
	ctx := scope.NewContext()
	id := &Identifier{Name: identTok("missing")}
	_, err := id.Evaluate(ctx.Current())
	if _, ok := err.(*eval.RuntimeError); !ok {
		t.Fatalf("expected *eval.RuntimeError, got %T", err)
	}
}

func TestUnary_NegateAndNot(t *testing.T) {
	ctx := scope.NewContext()

	neg := &Unary{Op: Negative, Operator: token.Token{Lexeme: "-"}, Right: &Literal{Kind: LitNumber, Token: numberTok("3")}}
	v, err := neg.Evaluate(ctx.Current())
	if err != nil || v.I != -3 {
		t.Fatalf("got %+v, %v", v, err)
	}
	if got, want := neg.Render(), "(- 3.0)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	not := &Unary{Op: Not, Operator: token.Token{Lexeme: "!"}, Right: &Literal{Kind: LitNil, Token: token.Token{Lexeme: "nil"}}}
	v, err = not.Evaluate(ctx.Current())
	if err != nil || !v.B {
		t.Fatalf("!nil should be true, got %+v, %v", v, err)
	}
}

func TestBinary_ArithmeticAndDivisionContract(t *testing.T) {
	ctx := scope.NewContext()
	plus := &Binary{
		Op:       Plus,
		Operator: token.Token{Lexeme: "+"},
		Left:     &Literal{Kind: LitNumber, Token: numberTok("1")},
		Right:    &Literal{Kind: LitNumber, Token: numberTok("2")},
	}
	v, err := plus.Evaluate(ctx.Current())
	if err != nil || v.I != 3 {
		t.Fatalf("got %+v, %v", v, err)
	}
	if got, want := plus.Render(), "(+ 1.0 2.0)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	div := &Binary{
		Op:       Slash,
		Operator: token.Token{Lexeme: "/"},
		Left:     &Literal{Kind: LitNumber, Token: numberTok("1")},
		Right:    &Literal{Kind: LitNumber, Token: numberTok("2")},
	}
	v, err = div.Evaluate(ctx.Current())
	if err != nil || v.Kind != eval.KindFloat || v.F != 0.5 {
		t.Fatalf("1/2 should be a float 0.5, got %+v, %v", v, err)
	}
}

func TestBinary_AndOrShortCircuit(t *testing.T) {
	ctx := scope.NewContext()

	poison := &Unary{Op: Negative, Operator: token.Token{Lexeme: "-"}, Right: &Literal{Kind: LitString, Token: token.Token{Lexeme: `"x"`, Literal: "x"}}}

	and := &Binary{Op: And, Operator: token.Token{Lexeme: "and"}, Left: &Literal{Kind: LitBoolean, Token: token.Token{Lexeme: "false"}}, Right: poison}
	v, err := and.Evaluate(ctx.Current())
	if err != nil || v.B {
		t.Fatalf("false and <error> should short-circuit to false without evaluating Right, got %+v, %v", v, err)
	}

	or := &Binary{Op: Or, Operator: token.Token{Lexeme: "or"}, Left: &Literal{Kind: LitBoolean, Token: token.Token{Lexeme: "true"}}, Right: poison}
	v, err = or.Evaluate(ctx.Current())
	if err != nil || !v.B {
		t.Fatalf("true or <error> should short-circuit to true without evaluating Right, got %+v, %v", v, err)
	}
}

func TestBinary_AssignToUndeclaredIdentifierIsRuntimeError(t *testing.T) {
	ctx := scope.NewContext()
	assign := &Binary{
		Op:       Assign,
		Operator: token.Token{Lexeme: "="},
		Left:     &Identifier{Name: identTok("x")},
		Right:    &Literal{Kind: LitNumber, Token: numberTok("1")},
	}
	_, err := assign.Evaluate(ctx.Current())
	if _, ok := err.(*eval.RuntimeError); !ok {
		t.Fatalf("expected *eval.RuntimeError for assigning to an undeclared name, got %T", err)
	}
}

func TestBinary_NestedVarOnAssignRightIsRejected(t *testing.T) {
	ctx := scope.NewContext()
	ctx.Current().Create("x")

	nestedVar := &Stmt{
		Kind:     VarStmt,
		Operator: token.Token{Lexeme: "var"},
		Right:    &Identifier{Name: identTok("y")},
	}
	assign := &Binary{
		Op:       Assign,
		Operator: token.Token{Lexeme: "="},
		Left:     &Identifier{Name: identTok("x")},
		Right:    nestedVar,
	}
	_, err := assign.Evaluate(ctx.Current())
	if _, ok := err.(*eval.RuntimeError); !ok {
		t.Fatalf("var nested on the right of an assignment must be rejected, got %T", err)
	}
}

func TestStmt_VarDeclarationWithAndWithoutInitializer(t *testing.T) {
	ctx := scope.NewContext()

	bare := &Stmt{Kind: VarStmt, Operator: token.Token{Lexeme: "var"}, Right: &Identifier{Name: identTok("x")}}
	if _, err := bare.Evaluate(ctx.Current()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := ctx.Current().Lookup("x", 1)
	if err != nil || v.Value.Kind != eval.KindNil {
		t.Fatalf("bare var should declare a nil-valued x, got %+v, %v", v, err)
	}

	withInit := &Stmt{
		Kind:     VarStmt,
		Operator: token.Token{Lexeme: "var"},
		Right: &Binary{
			Op:       Assign,
			Operator: token.Token{Lexeme: "="},
			Left:     &Identifier{Name: identTok("y")},
			Right:    &Literal{Kind: LitNumber, Token: numberTok("2")},
		},
	}
	if _, err := withInit.Evaluate(ctx.Current()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err = ctx.Current().Lookup("y", 1)
	if err != nil || v.Value.I != 2 {
		t.Fatalf("var with initializer should declare y=2, got %+v, %v", v, err)
	}
}

func TestStmt_Render(t *testing.T) {
	s := &Stmt{Kind: PrintStmt, Operator: token.Token{Lexeme: "print"}, Right: &Literal{Kind: LitNumber, Token: numberTok("1")}}
	if got, want := s.Render(), "(print 1.0)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
