/*
File    : nimbus/parser/parser_conditionals.go
Package : parser
*/
package parser

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

// parseIfExpression implements atom alternative 9: `if cond-expr
// consequence-expr [else alternative-expr]`. There is no required
// separator between condition and consequence -- the THEN token exists
// in the lexer but this parser never consumes it; see readIdentifierOrKeyword
// in the lexer and the THEN entry in the token table. A THEN appearing
// here falls through to the unary-function lookup and is reported as a
// parse error like any other unexpected token.
func (par *Parser) parseIfExpression() ast.Expression {
	tok := par.CurrToken

	par.advance()
	condition := par.parseExpression(LOWEST)
	if condition == nil {
		return nil
	}

	par.advance()
	consequence := par.parseExpression(LOWEST)
	if consequence == nil {
		return nil
	}

	expr := &ast.IfExpression{Token: tok, Condition: condition, Consequence: consequence}

	if par.nextIs(lexer.ELSE) {
		par.advance() // onto 'else'
		par.advance() // onto the alternative expression
		alternative := par.parseExpression(LOWEST)
		if alternative == nil {
			return nil
		}
		expr.Alternative = alternative
	}

	return expr
}
