// Package scanner turns raw source text into the token.Token stream
// internal/parser consumes. Modeled on smog's pkg/lexer (switch-driven
// dispatch, one token per call) but rebuilt around internal/source's
// cursor and on original_source's tokens.py for the reserved-word table,
// the longest-prefix-match symbol rule, and error-message text.
package scanner

import (
	"github.com/kristofer/loxgo/internal/source"
	"github.com/kristofer/loxgo/internal/token"
)

// Scanner produces tokens lazily: Next advances exactly one token (or
// the terminal EOF) per call, skipping whitespace and comments and
// recording lexical errors without stopping the scan (spec §4.2, §7).
type Scanner struct {
	src      *source.Source
	hadError bool
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{src: source.New(input)}
}

// HadError reports whether any lexical error has been encountered so far.
func (s *Scanner) HadError() bool {
	return s.hadError
}

// Line reports the source line the scanner's cursor currently sits on.
func (s *Scanner) Line() int {
	return s.src.Line()
}

// Tokens drains the whole stream, including the trailing EOF, reporting
// each lexical error to report as it is found.
func (s *Scanner) Tokens(report func(error)) []token.Token {
	var toks []token.Token
	for {
		t := s.Next(report)
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next token, skipping whitespace, comments, and any
// run of lexically invalid characters (each reported via report).
func (s *Scanner) Next(report func(error)) token.Token {
	for {
		s.skipIgnorable()
		if s.src.AtEnd() {
			return token.EOFToken(s.src.Line())
		}

		line := s.src.Line()
		t, err := s.scanOne(line)
		if err != nil {
			s.hadError = true
			if report != nil {
				report(err)
			}
			if _, ok := err.(*LexError); ok {
				continue
			}
		}
		return t
	}
}

// skipIgnorable consumes whitespace and "//" line comments. A comment
// runs to, but does not consume, the next newline — the newline itself
// is ordinary whitespace handled on the next loop iteration.
func (s *Scanner) skipIgnorable() {
	for {
		if s.src.Peek(2) == "//" {
			for !s.src.AtEnd() && s.src.Peek(1) != "\n" {
				s.src.Advance(1)
			}
			continue
		}
		switch s.src.Peek(1) {
		case " ", "\t", "\r", "\n":
			s.src.Advance(1)
			continue
		}
		return
	}
}

// scanOne dispatches on the next character: string, number, identifier
// (or reserved word), or punctuation/operator symbol.
func (s *Scanner) scanOne(line int) (token.Token, error) {
	ch := s.src.Peek(1)

	switch {
	case ch == `"`:
		return s.scanString(line)
	case isDigit(ch):
		return s.scanNumber(line), nil
	case isAlpha(ch):
		return s.scanIdentifier(line), nil
	}

	for _, sym := range token.Symbols {
		if s.src.Peek(len(sym.Lexeme)) == sym.Lexeme {
			s.src.Advance(len(sym.Lexeme))
			return token.Token{Kind: sym.Kind, Lexeme: sym.Lexeme, Literal: "null", Line: line}, nil
		}
	}

	s.src.Advance(1)
	return token.Token{}, unexpectedCharacter(line, ch)
}

func (s *Scanner) scanString(line int) (token.Token, error) {
	s.src.Advance(1) // opening quote
	chunk := s.src.AdvanceUntil('"')
	if chunk == "" || chunk[len(chunk)-1] != '"' {
		return token.Token{}, unterminatedString(line)
	}
	contents := chunk[:len(chunk)-1]
	return token.Token{Kind: token.STRING, Lexeme: `"` + contents + `"`, Literal: contents, Line: line}, nil
}

func (s *Scanner) scanNumber(line int) token.Token {
	lexeme := s.consumeDigits()
	if s.src.Peek(1) == "." {
		two := s.src.Peek(2)
		if len(two) == 2 && isDigit(string(two[1])) {
			dot, _ := s.src.Advance(1)
			lexeme += dot + s.consumeDigits()
		}
	}
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Literal: token.NumberLiteral(lexeme), Line: line}
}

func (s *Scanner) consumeDigits() string {
	digits := ""
	for !s.src.AtEnd() && isDigit(s.src.Peek(1)) {
		c, _ := s.src.Advance(1)
		digits += c
	}
	return digits
}

func (s *Scanner) scanIdentifier(line int) token.Token {
	name := ""
	for !s.src.AtEnd() && isAlnum(s.src.Peek(1)) {
		c, _ := s.src.Advance(1)
		name += c
	}
	if kind, ok := token.Reserved[name]; ok {
		return token.Token{Kind: kind, Lexeme: name, Literal: "null", Line: line}
	}
	return token.Token{Kind: token.IDENTIFIER, Lexeme: name, Literal: "null", Line: line}
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func isAlpha(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(s string) bool {
	return isAlpha(s) || isDigit(s)
}
