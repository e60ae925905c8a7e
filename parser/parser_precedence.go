/*
File    : nimbus/parser/parser_precedence.go
Package : parser
*/
package parser

import "github.com/nimbus-lang/nimbus/lexer"

// Operator precedence constants (low to high), following the grammar's
// ladder: Equals and LessGreater compare, Sum and Product do arithmetic,
// Prefix binds any unary operator, and Call/Index are the postfix
// forms -- the tightest-binding level of all.
const (
	LOWEST      = iota
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x +x
	CALL        // f(x)
	INDEX       // arr[x]
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.LT_EQ:    LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.GT_EQ:    LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

// precedenceOf returns the binding power of tok, or LOWEST for anything
// that is not an infix/postfix operator.
func precedenceOf(tok lexer.TokenType) int {
	if p, ok := precedences[tok]; ok {
		return p
	}
	return LOWEST
}
