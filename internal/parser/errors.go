package parser

import (
	"fmt"

	"github.com/kristofer/loxgo/internal/token"
)

// ParseError is a parser-abort error: the parser reports it and stops
// (spec §4.3, §7), unlike a scanner error, which lets scanning continue.
type ParseError struct {
	Line int
	Msg  string
}

// Error formats the diagnostic exactly as spec.md §6/§7 require:
// "[line N] Error: MESSAGE".
func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
}

func missingExpression(line int, tok token.Token) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf("Error at '%s': Expect expression.", tok.Lexeme)}
}

func missingScope(line int) *ParseError {
	return &ParseError{Line: line, Msg: "Error at end: Expect '{' ."}
}
