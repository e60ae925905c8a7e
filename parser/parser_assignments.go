/*
File    : nimbus/parser/parser_assignments.go
Package : parser
*/
package parser

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

// parseIdentifierOrAssign implements atom alternative 1: `identifier =
// expression` is an Assign only when the identifier is immediately
// followed by `=`; otherwise it is a plain identifier reference.
func (par *Parser) parseIdentifierOrAssign() ast.Expression {
	ident := &ast.Identifier{Token: par.CurrToken, Name: par.CurrToken.Literal}

	if !par.nextIs(lexer.ASSIGN) {
		return ident
	}

	tok := par.CurrToken
	par.advance() // consume '='
	par.advance() // move onto the value expression

	value := par.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	return &ast.AssignExpression{Token: tok, Name: ident.Name, Value: value}
}
