/*
File    : nimbus/ast/ast_test.go
Package : ast
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimbus-lang/nimbus/lexer"
)

func tok(typ lexer.TokenType, literal string) lexer.Token {
	return lexer.New(typ, literal)
}

func TestIdentifier_String(t *testing.T) {
	id := &Identifier{Token: tok(lexer.IDENT, "x"), Name: "x"}
	assert.Equal(t, "x", id.String())
	assert.Equal(t, "x", id.TokenLiteral())
}

func TestIntegerLiteral_String(t *testing.T) {
	il := &IntegerLiteral{Token: tok(lexer.INT, "42"), Value: 42}
	assert.Equal(t, "42", il.String())
}

func TestFloatLiteral_String(t *testing.T) {
	fl := &FloatLiteral{Token: tok(lexer.FLOAT, "3.14"), Value: 3.14}
	assert.Equal(t, "3.14", fl.String())
}

func TestBooleanLiteral_String(t *testing.T) {
	bl := &BooleanLiteral{Token: tok(lexer.TRUE, "true"), Value: true}
	assert.Equal(t, "true", bl.String())
}

func TestStringLiteral_StringIsQuoted(t *testing.T) {
	sl := &StringLiteral{Token: tok(lexer.STRING, "hi"), Value: "hi"}
	assert.Equal(t, `"hi"`, sl.String())
}

func TestAssignExpression_String(t *testing.T) {
	ae := &AssignExpression{
		Token: tok(lexer.ASSIGN, "="),
		Name:  "x",
		Value: &IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
	}
	assert.Equal(t, "x = 1", ae.String())
}

func TestReturnExpression_String(t *testing.T) {
	re := &ReturnExpression{
		Token: tok(lexer.RETURN, "return"),
		Value: &IntegerLiteral{Token: tok(lexer.INT, "5"), Value: 5},
	}
	assert.Equal(t, "return 5", re.String())
}

func TestPrefixExpression_String(t *testing.T) {
	pe := &PrefixExpression{
		Token:    tok(lexer.MINUS, "-"),
		Operator: "-",
		Right:    &IntegerLiteral{Token: tok(lexer.INT, "5"), Value: 5},
	}
	assert.Equal(t, "(-5)", pe.String())
}

func TestInfixExpression_String(t *testing.T) {
	ie := &InfixExpression{
		Token:    tok(lexer.PLUS, "+"),
		Left:     &IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
		Operator: "+",
		Right:    &IntegerLiteral{Token: tok(lexer.INT, "2"), Value: 2},
	}
	assert.Equal(t, "(1 + 2)", ie.String())
}

func TestIfExpression_StringWithAndWithoutAlternative(t *testing.T) {
	cond := &BooleanLiteral{Token: tok(lexer.TRUE, "true"), Value: true}
	consequence := &IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1}
	alternative := &IntegerLiteral{Token: tok(lexer.INT, "2"), Value: 2}

	withoutElse := &IfExpression{Token: tok(lexer.IF, "if"), Condition: cond, Consequence: consequence}
	assert.Equal(t, "if true 1", withoutElse.String())

	withElse := &IfExpression{Token: tok(lexer.IF, "if"), Condition: cond, Consequence: consequence, Alternative: alternative}
	assert.Equal(t, "if true 1 else 2", withElse.String())
}

func TestFunctionLiteral_StringNullaryAndUnary(t *testing.T) {
	nullary := &FunctionLiteral{
		Token: tok(lexer.PIPE, "|"),
		Body:  &IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
	}
	assert.Equal(t, "|| 1", nullary.String())

	unary := &FunctionLiteral{
		Token: tok(lexer.PIPE, "|"),
		Param: &Identifier{Token: tok(lexer.IDENT, "x"), Name: "x"},
		Body:  &Identifier{Token: tok(lexer.IDENT, "x"), Name: "x"},
	}
	assert.Equal(t, "|x| x", unary.String())
}

func TestCallExpression_StringWithAndWithoutArgument(t *testing.T) {
	fn := &Identifier{Token: tok(lexer.IDENT, "f"), Name: "f"}

	noArg := &CallExpression{Token: tok(lexer.LPAREN, "("), Function: fn}
	assert.Equal(t, "f()", noArg.String())

	withArg := &CallExpression{
		Token:    tok(lexer.LPAREN, "("),
		Function: fn,
		Argument: &IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
	}
	assert.Equal(t, "f(1)", withArg.String())
}

func TestIndexExpression_String(t *testing.T) {
	ix := &IndexExpression{
		Token: tok(lexer.LBRACKET, "["),
		Left:  &Identifier{Token: tok(lexer.IDENT, "arr"), Name: "arr"},
		Index: &IntegerLiteral{Token: tok(lexer.INT, "0"), Value: 0},
	}
	assert.Equal(t, "(arr[0])", ix.String())
}

func TestArrayLiteral_String(t *testing.T) {
	al := &ArrayLiteral{
		Token: tok(lexer.LBRACKET, "["),
		Elements: []Expression{
			&IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
			&IntegerLiteral{Token: tok(lexer.INT, "2"), Value: 2},
		},
	}
	assert.Equal(t, "[1, 2]", al.String())
}

func TestHashLiteral_String(t *testing.T) {
	hl := &HashLiteral{
		Token: tok(lexer.LBRACE, "{"),
		Pairs: []HashPair{
			{Key: &StringLiteral{Token: tok(lexer.STRING, "a"), Value: "a"}, Value: &IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1}},
		},
	}
	assert.Equal(t, `{"a" : 1}`, hl.String())
}

func TestBlockExpression_String(t *testing.T) {
	be := &BlockExpression{
		Token: tok(lexer.LBRACE, "{"),
		Expressions: []Expression{
			&IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
			&IntegerLiteral{Token: tok(lexer.INT, "2"), Value: 2},
		},
	}
	assert.Equal(t, "{ 1; 2 }", be.String())
}

func TestProgram_StringJoinsExpressionsWithSpace(t *testing.T) {
	p := &Program{
		Expressions: []Expression{
			&IntegerLiteral{Token: tok(lexer.INT, "1"), Value: 1},
			&IntegerLiteral{Token: tok(lexer.INT, "2"), Value: 2},
		},
	}
	assert.Equal(t, "1 2", p.String())
}
