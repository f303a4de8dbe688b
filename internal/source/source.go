// Package source wraps raw input text for internal/scanner: single- and
// fixed-width lookahead, line tracking, and consuming advance/retreat.
//
// It serves the scanner only — nothing else in this module reads a
// Source directly — so its contract stays narrow on purpose (no seeking
// by absolute offset, no rune-by-rune iterator).
package source

import (
	"errors"
	"strings"
)

// ErrEndOfInput is returned by Advance when fewer than the requested
// number of characters remain.
var ErrEndOfInput = errors.New("source: end of input")

// Source is a cursor over a fixed input string.
type Source struct {
	input string
	pos   int
	line  int
}

// New returns a Source positioned at the start of input, line 1.
func New(input string) *Source {
	return &Source{input: input, line: 1}
}

// Line returns the 1-based line of the character at the current position.
func (s *Source) Line() int {
	return s.line
}

// AtEnd reports whether the cursor has consumed the entire input.
func (s *Source) AtEnd() bool {
	return s.pos >= len(s.input)
}

// Peek returns the next n characters without consuming them. If fewer
// than n remain, it returns however many are left.
func (s *Source) Peek(n int) string {
	end := s.pos + n
	if end > len(s.input) {
		end = len(s.input)
	}
	return s.input[s.pos:end]
}

// Advance consumes and returns the next n characters, updating
// the line count for any newlines in the consumed range. It returns
// ErrEndOfInput, consuming nothing, if fewer than n characters remain.
func (s *Source) Advance(n int) (string, error) {
	if s.pos+n > len(s.input) {
		return "", ErrEndOfInput
	}
	chunk := s.input[s.pos : s.pos+n]
	s.line += strings.Count(chunk, "\n")
	s.pos += n
	return chunk, nil
}

// Retreat rolls back n characters previously consumed by Advance. The
// caller must never retreat past position 0.
func (s *Source) Retreat(n int) {
	chunk := s.input[s.pos-n : s.pos]
	s.line -= strings.Count(chunk, "\n")
	s.pos -= n
}

// AdvanceUntil consumes through and including the first occurrence of c,
// or to the end of input if c never appears, returning the consumed span.
// The terminator is included in the returned slice so the caller can
// detect unterminated input by checking whether it ends with c.
func (s *Source) AdvanceUntil(c byte) string {
	rest := s.input[s.pos:]
	if idx := strings.IndexByte(rest, c); idx != -1 {
		chunk, _ := s.Advance(idx + 1)
		return chunk
	}
	chunk, _ := s.Advance(len(rest))
	return chunk
}
