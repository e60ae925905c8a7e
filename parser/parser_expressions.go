/*
File    : nimbus/parser/parser_expressions.go
Package : parser
*/
package parser

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

// parsePrefixExpression implements atom alternative 5: a prefix operator
// (`+`, `-`, `!`) followed by an atom. Prefix binds tighter than any
// infix operator, so the operand is parsed at PREFIX precedence.
func (par *Parser) parsePrefixExpression() ast.Expression {
	tok := par.CurrToken
	par.advance()

	right := par.parseExpression(PREFIX)
	if right == nil {
		return nil
	}

	return &ast.PrefixExpression{Token: tok, Operator: tok.Literal, Right: right}
}

// parseInfixExpression builds a left-associative binary node. Passing
// the operator's own precedence (rather than precedence+1) to the
// recursive call is what makes same-precedence chains like `a - b - c`
// associate left: the inner call refuses to swallow a sibling operator
// of equal precedence, leaving it for the outer Pratt loop instead.
func (par *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := par.CurrToken
	precedence := precedenceOf(tok.Type)
	par.advance()

	right := par.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return &ast.InfixExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
}

// parseGroupedExpression implements atom alternative 6: `( expression )`.
func (par *Parser) parseGroupedExpression() ast.Expression {
	par.advance()

	expr := par.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.RPAREN) {
		return nil
	}

	return expr
}
