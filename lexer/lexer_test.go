/*
File    : nimbus/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tokenCase is a single ConsumeTokens scenario: source text in, expected
// token stream out (type and literal only; positions aren't asserted).
type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `1 + 2 * 3`,
			Expected: []Token{
				New(INT, "1"),
				New(PLUS, "+"),
				New(INT, "2"),
				New(ASTERISK, "*"),
				New(INT, "3"),
			},
		},
		{
			Input: `{ } + [] abc - a12`,
			Expected: []Token{
				New(LBRACE, "{"),
				New(RBRACE, "}"),
				New(PLUS, "+"),
				New(LBRACKET, "["),
				New(RBRACKET, "]"),
				New(IDENT, "abc"),
				New(MINUS, "-"),
				New(IDENT, "a12"),
			},
		},
		{
			Input: `== != >= <= = ! > < @ $`,
			Expected: []Token{
				New(EQ, "=="),
				New(NOT_EQ, "!="),
				New(GT_EQ, ">="),
				New(LT_EQ, "<="),
				New(ASSIGN, "="),
				New(BANG, "!"),
				New(GT, ">"),
				New(LT, "<"),
				New(AT, "@"),
				New(DOLLAR, "$"),
			},
		},
		{
			Input: `, ; : . | ( ) { } [ ]`,
			Expected: []Token{
				New(COMMA, ","),
				New(SEMICOLON, ";"),
				New(COLON, ":"),
				New(DOT, "."),
				New(PIPE, "|"),
				New(LPAREN, "("),
				New(RPAREN, ")"),
				New(LBRACE, "{"),
				New(RBRACE, "}"),
				New(LBRACKET, "["),
				New(RBRACKET, "]"),
			},
		},
		{
			Input: `return if then else true false`,
			Expected: []Token{
				New(RETURN, "return"),
				New(IF, "if"),
				New(THEN, "then"),
				New(ELSE, "else"),
				New(TRUE, "true"),
				New(FALSE, "false"),
			},
		},
		{
			// No word-boundary check: "returnx" lexes as the keyword
			// "return" followed by the identifier "x".
			Input: `returnx`,
			Expected: []Token{
				New(RETURN, "return"),
				New(IDENT, "x"),
			},
		},
		{
			Input: `ifz thenz elsez truex falsey`,
			Expected: []Token{
				New(IF, "if"),
				New(IDENT, "z"),
				New(THEN, "then"),
				New(IDENT, "z"),
				New(ELSE, "else"),
				New(IDENT, "z"),
				New(TRUE, "true"),
				New(IDENT, "x"),
				New(FALSE, "false"),
				New(IDENT, "y"),
			},
		},
		{
			Input: `1 2`,
			Expected: []Token{
				New(INT, "1"),
				New(INT, "2"),
			},
		},
		{
			Input: `0x1_F 0o17 0b1010 1_000`,
			Expected: []Token{
				New(INT, "0x1_F"),
				New(INT, "0o17"),
				New(INT, "0b1010"),
				New(INT, "1_000"),
			},
		},
		{
			Input: `.5 5. 5.25 1e9 1.4e9 12E-2 3e+4`,
			Expected: []Token{
				// Punctuation is tried before float in the recognition
				// order, so a leading dot is always DOT, never the start
				// of a float: ".5" lexes as DOT then INT("5"), not FLOAT.
				New(DOT, "."),
				New(INT, "5"),
				New(FLOAT, "5."),
				New(FLOAT, "5.25"),
				New(FLOAT, "1e9"),
				New(FLOAT, "1.4e9"),
				New(FLOAT, "12E-2"),
				New(FLOAT, "3e+4"),
			},
		},
		{
			Input: `"hello\nworld" "tab\there" "escaped\\slash" "quote\"d" "\u{48}\u{69}"`,
			Expected: []Token{
				New(STRING, "hello\nworld"),
				New(STRING, "tab\there"),
				New(STRING, "escaped\\slash"),
				New(STRING, `quote"d`),
				New(STRING, "Hi"),
			},
		},
		{
			Input: `add = |a, b| a + b`,
			Expected: []Token{
				New(IDENT, "add"),
				New(ASSIGN, "="),
				New(PIPE, "|"),
				New(IDENT, "a"),
				New(COMMA, ","),
				New(IDENT, "b"),
				New(PIPE, "|"),
				New(IDENT, "a"),
				New(PLUS, "+"),
				New(IDENT, "b"),
			},
		},
	}

	for _, test := range tests {
		lex := New(test.Input)
		got := lex.ConsumeTokens()

		assert.Equal(t, len(test.Expected), len(got), "token count for input %q", test.Input)
		for i, want := range test.Expected {
			if i >= len(got) {
				break
			}
			assert.Equal(t, want.Type, got[i].Type, "type mismatch at %d for input %q", i, test.Input)
			assert.Equal(t, want.Literal, got[i].Literal, "literal mismatch at %d for input %q", i, test.Input)
		}
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	lex := New("1 ? 2")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, ILLEGAL, tokens[1].Type)
	assert.Equal(t, "?", tokens[1].Literal)
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	lex := New("1\n  2")
	first := lex.NextToken()
	second := lex.NextToken()

	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 3, second.Column)
}
