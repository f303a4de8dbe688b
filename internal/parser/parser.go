// Package parser assembles the token stream into expression-tree nodes
// and yields them paired with the scope active at each statement
// boundary (spec §4.3). It is grounded on two sources: smog's
// pkg/parser/parser.go for the overall stateful-parser shape (a struct
// wrapping the lexer, with an accumulated error list), and
// original_source's app/expressions/expressions.py +
// app/parse/parser.py for the actual algorithm — smog is a classic
// precedence-loop Pratt parser and does not build trees by rotation, so
// §4.3's in-place rotation is ported directly from the Python source
// rather than adapted from smog.
package parser

import (
	"github.com/kristofer/loxgo/internal/ast"
	"github.com/kristofer/loxgo/internal/scanner"
	"github.com/kristofer/loxgo/internal/scope"
	"github.com/kristofer/loxgo/internal/token"
)

// Result pairs a top-level expression with the scope it was parsed
// against, matching spec §3's "(scope, expression)" yield.
type Result struct {
	Scope *scope.Scope
	Expr  ast.Node
}

// hasRight is satisfied by every node that carries a rewritable Right
// child during tree assembly: Binary, Unary, Stmt. Leaf nodes (Literal,
// Grouping, Identifier) do not implement it, which is exactly the
// "hasattr(current, 'right')" test the rotation algorithm needs.
type hasRight interface {
	ast.Node
	GetRight() ast.Node
	SetRight(ast.Node)
}

// Parser is stateful and single-use: build one per source file.
type Parser struct {
	sc         *scanner.Scanner
	ctx        *scope.Context
	scanErrors []error
}

// New returns a Parser reading from input, with a fresh execution
// context rooted at a single root scope.
func New(input string) *Parser {
	return &Parser{sc: scanner.New(input), ctx: scope.NewContext()}
}

// ScanErrors returns every lexical error encountered while pulling
// tokens, in order. The caller (cmd/lox) decides how to surface them.
func (p *Parser) ScanErrors() []error {
	return p.scanErrors
}

// HadScanError reports whether any lexical error occurred.
func (p *Parser) HadScanError() bool {
	return p.sc.HadError()
}

func (p *Parser) next() token.Token {
	return p.sc.Next(func(err error) { p.scanErrors = append(p.scanErrors, err) })
}

// Parse drains the whole token stream, returning every top-level
// expression paired with its scope, in source order. It stops at the
// first parse error (the partial results gathered so far are still
// returned, matching spec §7's "aborts parsing" without discarding
// already-yielded statements).
func (p *Parser) Parse() ([]Result, error) {
	var results []Result
	var current ast.Node

	for {
		tok := p.next()

		switch tok.Kind {
		case token.EOF:
			if current != nil {
				results = append(results, Result{Scope: p.ctx.Current(), Expr: current})
			}
			if !p.ctx.AtRoot() {
				return results, missingScope(p.sc.Line())
			}
			return results, nil

		case token.SEMICOLON:
			if current != nil {
				results = append(results, Result{Scope: p.ctx.Current(), Expr: current})
			}
			current = nil
			continue

		case token.LEFT_BRACE:
			p.ctx.Push()
			continue

		case token.RIGHT_BRACE:
			if err := p.ctx.Pop(tok.Line); err != nil {
				return results, err
			}
			continue
		}

		next, err := p.insertTopLevel(tok, current)
		if err != nil {
			return results, err
		}
		current = next
	}
}

// insertTopLevel is the main-loop's token dispatch: once a statement
// head (print/var) is the current expression, subsequent tokens extend
// its Right sub-expression directly rather than replacing current (spec
// §4.3).
func (p *Parser) insertTopLevel(tok token.Token, current ast.Node) (ast.Node, error) {
	if stmt, ok := current.(*ast.Stmt); ok {
		newRight, err := p.fromToken(tok, stmt.Right)
		if err != nil {
			return nil, err
		}
		stmt.Right = newRight
		return stmt, nil
	}
	return p.fromToken(tok, current)
}

// fromToken is the type-directed factory dispatch every token kind goes
// through, whether reached from the top level, from inside a group, or
// while reading a unary/binary operand.
func (p *Parser) fromToken(tok token.Token, prev ast.Node) (ast.Node, error) {
	switch tok.Kind {
	case token.NUMBER:
		return &ast.Literal{Kind: ast.LitNumber, Token: tok}, nil
	case token.STRING:
		return &ast.Literal{Kind: ast.LitString, Token: tok}, nil
	case token.TRUE, token.FALSE:
		return &ast.Literal{Kind: ast.LitBoolean, Token: tok}, nil
	case token.NIL:
		return &ast.Literal{Kind: ast.LitNil, Token: tok}, nil
	case token.IDENTIFIER:
		return &ast.Identifier{Name: tok}, nil
	case token.LEFT_PAREN:
		return p.parseGroup()

	case token.BANG:
		return p.fromPrefixToken(tok, prev, func(right ast.Node) ast.Node {
			return &ast.Unary{Op: ast.Not, Operator: tok, Right: right}
		})
	case token.MINUS:
		if prev == nil {
			return p.fromPrefixToken(tok, nil, func(right ast.Node) ast.Node {
				return &ast.Unary{Op: ast.Negative, Operator: tok, Right: right}
			})
		}
		return p.insertBinary(tok, prev, ast.Minus)
	case token.PRINT:
		return p.fromPrefixToken(tok, prev, func(right ast.Node) ast.Node {
			return &ast.Stmt{Kind: ast.PrintStmt, Operator: tok, Right: right}
		})
	case token.VAR:
		return p.fromPrefixToken(tok, prev, func(right ast.Node) ast.Node {
			return &ast.Stmt{Kind: ast.VarStmt, Operator: tok, Right: right}
		})

	case token.PLUS:
		return p.insertBinary(tok, prev, ast.Plus)
	case token.STAR:
		return p.insertBinary(tok, prev, ast.Star)
	case token.SLASH:
		return p.insertBinary(tok, prev, ast.Slash)
	case token.EQUAL_EQUAL:
		return p.insertBinary(tok, prev, ast.EqualEqual)
	case token.BANG_EQUAL:
		return p.insertBinary(tok, prev, ast.BangEqual)
	case token.LESS:
		return p.insertBinary(tok, prev, ast.Less)
	case token.LESS_EQUAL:
		return p.insertBinary(tok, prev, ast.LessEqual)
	case token.GREATER:
		return p.insertBinary(tok, prev, ast.Greater)
	case token.GREATER_EQUAL:
		return p.insertBinary(tok, prev, ast.GreaterEqual)
	case token.AND:
		return p.insertBinary(tok, prev, ast.And)
	case token.OR:
		return p.insertBinary(tok, prev, ast.Or)
	case token.EQUAL:
		return p.insertBinary(tok, prev, ast.Assign)

	default:
		return nil, missingExpression(p.sc.Line(), tok)
	}
}

// readOperand reads exactly one token and feeds it through fromToken
// with no prior expression — the "right operand" read every
// unary/binary/statement node performs for its Right child (spec §4.3).
func (p *Parser) readOperand() (ast.Node, error) {
	return p.fromToken(p.next(), nil)
}

// parseGroup recursively assembles the contents of "(...)" up to the
// matching ")". It deliberately does not apply insertTopLevel's
// statement-head extension — a print/var appearing inside a group is
// rebuilt by the same generic dispatch as everything else, matching the
// original source's group-parsing loop.
func (p *Parser) parseGroup() (ast.Node, error) {
	var inner ast.Node
	for {
		tok := p.next()
		if tok.Kind == token.RIGHT_PAREN {
			return &ast.Grouping{Inner: inner}, nil
		}
		next, err := p.fromToken(tok, inner)
		if err != nil {
			return nil, err
		}
		inner = next
	}
}

// fromPrefixToken builds a prefix-operator node (Unary or statement
// head). If prev already exists and its right-most chain ends in a node
// with the very same operator token, the new node nests inside that
// chain instead of replacing prev — this is what makes "!!x" parse as
// "(!(!x))" rather than discarding the outer "!" (spec §4.3).
func (p *Parser) fromPrefixToken(tok token.Token, prev ast.Node, build func(right ast.Node) ast.Node) (ast.Node, error) {
	if prev != nil {
		if chainEnd := deepestWithRight(prev); chainEnd != nil {
			if opTok, ok := operatorTokenOf(chainEnd); ok && opTok.Equal(tok) {
				operand, err := p.readOperand()
				if err != nil {
					return nil, err
				}
				chainEnd.(hasRight).SetRight(build(operand))
				return prev, nil
			}
		}
	}
	operand, err := p.readOperand()
	if err != nil {
		return nil, err
	}
	return build(operand), nil
}

// deepestWithRight walks n's Right chain and returns the last node that
// still carries a Right child — the node hasattr(_, "right") would find
// just before hitting a leaf. Returns nil if n itself is a leaf.
func deepestWithRight(n ast.Node) ast.Node {
	hr, ok := n.(hasRight)
	if !ok {
		return nil
	}
	last := n
	cur := hr.GetRight()
	for {
		next, ok := cur.(hasRight)
		if !ok {
			return last
		}
		last = cur
		cur = next.GetRight()
	}
}

// operatorTokenOf returns the operator token of a Unary or Stmt node —
// the two prefix-operator-carrying variants — for the chained-operator
// merge check. Binary is deliberately excluded: it is not a prefix
// operator, so it never participates in this merge.
func operatorTokenOf(n ast.Node) (token.Token, bool) {
	switch v := n.(type) {
	case *ast.Unary:
		return v.Operator, true
	case *ast.Stmt:
		return v.Operator, true
	default:
		return token.Token{}, false
	}
}

// insertBinary requires a non-nil prev (spec §4.3's "missing expression"
// rule for binary operators) and otherwise inserts a new Binary node
// into the existing tree via rotation.
func (p *Parser) insertBinary(tok token.Token, prev ast.Node, op ast.BinaryOp) (ast.Node, error) {
	if prev == nil {
		return nil, missingExpression(p.sc.Line(), tok)
	}
	return p.insertSelf(tok, op, prev)
}

// insertSelf is spec §4.3's binary insertion/rotation algorithm.
func (p *Parser) insertSelf(tok token.Token, op ast.BinaryOp, current ast.Node) (ast.Node, error) {
	newPrec := ast.BinaryPrecedence(op)

	hr, ok := current.(hasRight)
	if !ok || current.Prec() > newPrec {
		operand, err := p.readOperand()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: op, Operator: tok, Left: current, Right: operand}, nil
	}

	rightNode, err := p.insertSelf(tok, op, hr.GetRight())
	if err != nil {
		return nil, err
	}

	sameClassRightAssoc := current.RightAssoc() && sameNodeClass(current, rightNode)
	if sameClassRightAssoc || rightNode.Prec() > current.Prec() {
		hr.SetRight(rightNode)
		return current, nil
	}

	rotated, ok := rightNode.(*ast.Binary)
	if !ok {
		return nil, missingExpression(p.sc.Line(), tok)
	}
	hr.SetRight(rotated.Left)
	rotated.Left = current
	return rotated, nil
}

// sameNodeClass reports whether a and b are the same concrete node
// variant carrying the same operator/kind — the Go equivalent of the
// Python source's per-operator subclasses, where each operator (Plus,
// Assign, ...) is its own class and `__class__` equality means "the same
// operator", not merely "both Binary".
func sameNodeClass(a, b ast.Node) bool {
	switch av := a.(type) {
	case *ast.Binary:
		bv, ok := b.(*ast.Binary)
		return ok && av.Op == bv.Op
	case *ast.Unary:
		bv, ok := b.(*ast.Unary)
		return ok && av.Op == bv.Op
	case *ast.Stmt:
		bv, ok := b.(*ast.Stmt)
		return ok && av.Kind == bv.Kind
	default:
		return false
	}
}
