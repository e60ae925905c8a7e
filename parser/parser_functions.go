/*
File    : nimbus/parser/parser_functions.go
Package : parser
*/
package parser

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

// parseFunctionLiteral implements atom alternative 10: `| ident (, ident)*
// | body-expression`, with the parameterless form `|| body` permitted.
// Multi-parameter surface syntax is desugared here, at parse time, into
// nested single-parameter ast.FunctionLiteral nodes: `|a, b, c| body`
// becomes `|a| |b| |c| body` by folding the parameter list tail-first.
func (par *Parser) parseFunctionLiteral() ast.Expression {
	tok := par.CurrToken // the opening '|'

	params := make([]*ast.Identifier, 0)
	par.advance()

	if !par.currIs(lexer.PIPE) {
		for {
			if !par.currIs(lexer.IDENT) {
				par.addError(Unrecoverable, "expected parameter name, got "+string(par.CurrToken.Type))
				return nil
			}
			params = append(params, &ast.Identifier{Token: par.CurrToken, Name: par.CurrToken.Literal})

			if par.nextIs(lexer.COMMA) {
				par.advance()
				par.advance()
				continue
			}
			break
		}
		if !par.expectNext(lexer.PIPE) {
			return nil
		}
	}

	par.advance() // move past the closing '|' onto the body
	body := par.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	if len(params) == 0 {
		return &ast.FunctionLiteral{Token: tok, Body: body}
	}

	var node ast.Expression = body
	for i := len(params) - 1; i >= 0; i-- {
		node = &ast.FunctionLiteral{Token: tok, Param: params[i], Body: node}
	}
	return node
}

// parseCallExpression implements the Call postfix form. Multi-argument
// surface syntax is desugared here into nested single-argument
// ast.CallExpression nodes: `f(a, b, c)` becomes `f(a)(b)(c)`.
func (par *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	tok := par.CurrToken // the '('

	args := par.parseCallArguments()
	if args == nil && par.HasErrors() {
		return nil
	}

	if len(args) == 0 {
		return &ast.CallExpression{Token: tok, Function: function}
	}

	node := function
	for _, arg := range args {
		node = &ast.CallExpression{Token: tok, Function: node, Argument: arg}
	}
	return node
}

// parseCallArguments reads a parenthesized, comma-separated argument list
// with no trailing comma, leaving CurrToken on the closing ')'.
func (par *Parser) parseCallArguments() []ast.Expression {
	args := make([]ast.Expression, 0)

	if par.nextIs(lexer.RPAREN) {
		par.advance()
		return args
	}

	par.advance()
	first := par.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	args = append(args, first)

	for par.nextIs(lexer.COMMA) {
		par.advance()
		par.advance()
		next := par.parseExpression(LOWEST)
		if next == nil {
			return nil
		}
		args = append(args, next)
	}

	if !par.expectNext(lexer.RPAREN) {
		return nil
	}

	return args
}
