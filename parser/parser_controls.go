/*
File    : nimbus/parser/parser_controls.go
Package : parser
*/
package parser

import "github.com/nimbus-lang/nimbus/ast"

// parseReturnExpression implements atom alternative 2: `return
// expression`. The wrapped value is evaluated and propagated by the
// evaluator, not by the parser; here we only build the node.
func (par *Parser) parseReturnExpression() ast.Expression {
	tok := par.CurrToken
	par.advance()

	value := par.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	return &ast.ReturnExpression{Token: tok, Value: value}
}
