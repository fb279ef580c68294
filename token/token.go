// Package token implements a flat tokenizer for HTML-like markup. It
// does not build a tree; it only reports angle brackets, numbers and
// words, skipping everything else.
package token

import (
	"errors"
	"iter"
	"strconv"

	"github.com/lestrrat-go/minihtml/scanner"
)

type Kind int

const (
	LAngle Kind = iota + 1
	RAngle
	LAngleSlash
	Number
	Word
)

func (k Kind) String() string {
	switch k {
	case LAngle:
		return "LANGLE"
	case RAngle:
		return "RANGLE"
	case LAngleSlash:
		return "LANGLESLASH"
	case Number:
		return "NUMBER"
	case Word:
		return "WORD"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical item. Num is only meaningful for Number
// tokens, and Text only for Word tokens.
type Token struct {
	Kind Kind
	Num  float64
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return t.Kind.String() + "(" + strconv.FormatFloat(t.Num, 'g', -1, 64) + ")"
	case Word:
		return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
	default:
		return t.Kind.String()
	}
}

// Tokenizer produces tokens one at a time. It cannot be rewound.
type Tokenizer struct {
	scanner *scanner.Scanner
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		scanner: scanner.New(input),
	}
}

// Tokenize returns the tokens of input as a lazy sequence. The sequence
// shares a single Tokenizer, so ranging over it a second time resumes
// where the first loop stopped.
func Tokenize(input string) iter.Seq[Token] {
	return NewTokenizer(input).All()
}

func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func isRunChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '.' || c == '-'
}

// Next returns the next token. The second return value is false once
// the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	s := t.scanner
	for !s.EOF() {
		if run := s.ConsumeWhile(isRunChar); run != "" {
			if f, ok := parseNumber(run); ok {
				return Token{Kind: Number, Num: f}, true
			}
			return Token{Kind: Word, Text: run}, true
		}

		c, _ := s.Advance()
		switch c {
		case '<':
			if s.ConsumePrefix("/") {
				return Token{Kind: LAngleSlash}, true
			}
			return Token{Kind: LAngle}, true
		case '>':
			return Token{Kind: RAngle}, true
		}
	}
	return Token{}, false
}

// parseNumber accepts decimal literals only: an optional sign,
// digits with an optional fraction, and an optional exponent.
// Hexadecimal forms and words such as "inf" or "nan" are rejected.
func parseNumber(s string) (float64, bool) {
	if !isDecimalLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range values still parse, as +/-Inf or 0
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}

	var digits int
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			i++
		}
		var exp int
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
