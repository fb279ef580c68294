// Package scanner implements the character cursor used by the markup
// parser. A Scanner tracks a byte offset into its input and always moves
// over whole characters: consuming a multi-byte character advances the
// offset by its encoded width.
package scanner

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lestrrat-go/strcursor"
)

var (
	ErrEOF             = errors.New("end of input")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// Predicate decides whether ConsumeWhile should take a character.
type Predicate func(rune) bool

type Scanner struct {
	cursor *strcursor.RuneCursor
	input  string
	pos    int
}

func New(input string) *Scanner {
	return &Scanner{
		cursor: strcursor.NewRuneCursor(strings.NewReader(input)),
		input:  input,
	}
}

// EOF returns true when there are no more characters to read.
func (s *Scanner) EOF() bool {
	return s.cursor.Done()
}

// Err reports ErrInvalidEncoding if the cursor stopped before the end
// of the input because it could not decode the next character.
func (s *Scanner) Err() error {
	if s.pos < len(s.input) && s.cursor.Done() {
		return ErrInvalidEncoding
	}
	return nil
}

// Pos returns the byte offset of the next character.
func (s *Scanner) Pos() int {
	return s.pos
}

// Peek returns the next character without consuming it. It returns
// ErrEOF if the input is exhausted.
func (s *Scanner) Peek() (rune, error) {
	if s.EOF() {
		return 0, ErrEOF
	}
	return s.cursor.Peek(), nil
}

// Advance consumes the next character and returns it.
func (s *Scanner) Advance() (rune, error) {
	c, err := s.Peek()
	if err != nil {
		return 0, err
	}
	s.advance(c)
	return c, nil
}

func (s *Scanner) advance(c rune) {
	_ = s.cursor.Advance(1)
	s.pos += utf8.RuneLen(c)
}

// StartsWith returns true if the unread input begins with prefix.
func (s *Scanner) StartsWith(prefix string) bool {
	return s.cursor.HasPrefixString(prefix)
}

// ConsumePrefix consumes prefix if the unread input begins with it.
func (s *Scanner) ConsumePrefix(prefix string) bool {
	if !s.cursor.ConsumeString(prefix) {
		return false
	}
	s.pos += len(prefix)
	return true
}

// ConsumeWhile consumes characters for as long as pred holds and
// returns them. The result is empty if the first character fails pred
// or the input is exhausted.
func (s *Scanner) ConsumeWhile(pred Predicate) string {
	start := s.pos
	for !s.cursor.Done() {
		c := s.cursor.Peek()
		if !pred(c) {
			break
		}
		s.advance(c)
	}
	return s.input[start:s.pos]
}

// ConsumeWhitespace skips over Unicode white space.
func (s *Scanner) ConsumeWhitespace() string {
	return s.ConsumeWhile(unicode.IsSpace)
}

func (s *Scanner) LineNumber() int {
	return s.cursor.LineNumber()
}

func (s *Scanner) Column() int {
	return s.cursor.Column()
}

// CurrentLine returns the part of the current line consumed so far,
// for diagnostics.
func (s *Scanner) CurrentLine() string {
	return strings.TrimPrefix(s.cursor.Line(), "\n")
}
