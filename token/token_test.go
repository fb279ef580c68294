package token_test

import (
	"math"
	"slices"
	"testing"

	"github.com/lestrrat-go/minihtml/token"
	"github.com/stretchr/testify/require"
)

func word(s string) token.Token {
	return token.Token{Kind: token.Word, Text: s}
}

func number(f float64) token.Token {
	return token.Token{Kind: token.Number, Num: f}
}

var (
	langle      = token.Token{Kind: token.LAngle}
	rangle      = token.Token{Kind: token.RAngle}
	langleslash = token.Token{Kind: token.LAngleSlash}
)

func TestTokenize(t *testing.T) {
	const input = `<html><head> </head><body>-5.98</body></html>`
	expected := []token.Token{
		langle, word("html"), rangle,
		langle, word("head"), rangle,
		langleslash, word("head"), rangle,
		langle, word("body"), rangle,
		number(-5.98),
		langleslash, word("body"), rangle,
		langleslash, word("html"), rangle,
	}
	require.Equal(t, expected, slices.Collect(token.Tokenize(input)))
}

func TestTokenizeRuns(t *testing.T) {
	testcases := []struct {
		input    string
		expected []token.Token
	}{
		{input: "", expected: nil},
		{input: "   \n\t", expected: nil},
		{input: "ft-expand", expected: []token.Token{word("ft-expand")}},
		{input: "42", expected: []token.Token{number(42)}},
		{input: "1e3", expected: []token.Token{number(1000)}},
		{input: "3.", expected: []token.Token{number(3)}},
		{input: ".5", expected: []token.Token{number(0.5)}},
		{input: "5-3", expected: []token.Token{word("5-3")}},
		{input: "-", expected: []token.Token{word("-")}},
		{input: "...", expected: []token.Token{word("...")}},
		{input: "inf nan", expected: []token.Token{word("inf"), word("nan")}},
		{input: "0x1p4", expected: []token.Token{word("0x1p4")}},
		{input: "img.png", expected: []token.Token{word("img.png")}},
		{input: `src='x'`, expected: []token.Token{word("src"), word("x")}},
		{input: "<!-- c -->", expected: []token.Token{langle, word("--"), word("c"), word("--"), rangle}},
		{input: "a/b", expected: []token.Token{word("a"), word("b")}},
		{input: "</", expected: []token.Token{langleslash}},
		{input: "<", expected: []token.Token{langle}},
		{input: "héllo", expected: []token.Token{word("h"), word("llo")}},
	}

	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, slices.Collect(token.Tokenize(tc.input)))
		})
	}
}

func TestTokenizeOutOfRange(t *testing.T) {
	toks := slices.Collect(token.Tokenize("1e999"))
	require.Len(t, toks, 1)
	require.Equal(t, token.Number, toks[0].Kind)
	require.True(t, math.IsInf(toks[0].Num, 1))
}

func TestTokenizeLazy(t *testing.T) {
	tz := token.NewTokenizer("<a>b</a>")
	seq := tz.All()

	var first []token.Token
	for tok := range seq {
		first = append(first, tok)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []token.Token{langle, word("a")}, first)

	// the sequence is not restartable: it resumes where it stopped
	rest := slices.Collect(seq)
	require.Equal(t, []token.Token{rangle, word("b"), langleslash, word("a"), rangle}, rest)

	require.Empty(t, slices.Collect(seq), "exhausted sequence yields nothing")
	_, ok := tz.Next()
	require.False(t, ok)
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "LANGLE", langle.String())
	require.Equal(t, "LANGLESLASH", langleslash.String())
	require.Equal(t, "RANGLE", rangle.String())
	require.Equal(t, "NUMBER(-5.98)", number(-5.98).String())
	require.Equal(t, `WORD("html")`, word("html").String())
}
