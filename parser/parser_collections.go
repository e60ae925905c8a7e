/*
File    : nimbus/parser/parser_collections.go
Package : parser
*/
package parser

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

// parseArrayLiteral implements atom alternative 7: `[ expressions ]`,
// comma-separated, trailing comma disallowed.
func (par *Parser) parseArrayLiteral() ast.Expression {
	tok := par.CurrToken // the '['
	elements := par.parseExpressionList(lexer.RBRACKET)
	if elements == nil {
		return nil
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

// parseIndexExpression implements the Index postfix form: `left[index]`.
func (par *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := par.CurrToken // the '['
	par.advance()

	index := par.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if !par.expectNext(lexer.RBRACKET) {
		return nil
	}

	return &ast.IndexExpression{Token: tok, Left: left, Index: index}
}

// parseExpressionList reads a comma-separated expression sequence up to
// (and consuming) the end token, rejecting a trailing comma before it.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := make([]ast.Expression, 0)

	if par.nextIs(end) {
		par.advance()
		return list
	}

	par.advance()
	first := par.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	list = append(list, first)

	for par.nextIs(lexer.COMMA) {
		par.advance()
		par.advance()
		if par.currIs(end) {
			par.addError(Unrecoverable, "trailing comma not allowed")
			return nil
		}
		next := par.parseExpression(LOWEST)
		if next == nil {
			return nil
		}
		list = append(list, next)
	}

	if !par.expectNext(end) {
		return nil
	}
	return list
}

// parseHashOrBlock resolves the `{` ambiguity between a block and a hash
// literal. Hash content begins with a restricted literal key followed by
// `:`; block content begins with an arbitrary expression. A second token
// of lookahead (beyond the parser's own CurrToken/NextToken window)
// settles it, obtained by running the lexer's scan from a snapshot of its
// position rather than mutating the parser's own lookahead.
func (par *Parser) parseHashOrBlock() ast.Expression {
	tok := par.CurrToken // the '{'
	if par.looksLikeHash() {
		return par.parseHashLiteral(tok)
	}
	return par.parseBlockExpression(tok)
}

func (par *Parser) looksLikeHash() bool {
	switch par.NextToken.Type {
	case lexer.STRING, lexer.INT, lexer.TRUE, lexer.FALSE:
		return par.peekAfterNext().Type == lexer.COLON
	default:
		return false
	}
}

// peekAfterNext reports the token that follows NextToken without
// consuming it, by running the lexer forward from a copy of its current
// position. Lexer is a plain value (no pointers into mutable state beyond
// the immutable source string), so copying it is a cheap, safe snapshot.
func (par *Parser) peekAfterNext() lexer.Token {
	snapshot := *par.lex
	return snapshot.NextToken()
}

// parseHashLiteral implements atom alternative 8: `{ hash-entries }`,
// each entry `HashKey : expression`, entries comma-separated. HashKey is
// restricted to a string, integer, or boolean literal token.
func (par *Parser) parseHashLiteral(tok lexer.Token) ast.Expression {
	pairs := make([]ast.HashPair, 0)
	par.advance() // onto the first key, or '}' if empty

	for !par.currIs(lexer.RBRACE) {
		key := par.parseHashKey()
		if key == nil {
			return nil
		}
		if !par.expectNext(lexer.COLON) {
			return nil
		}
		par.advance() // onto the value
		value := par.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		pairs = append(pairs, ast.HashPair{Key: key, Value: value})

		if par.nextIs(lexer.COMMA) {
			par.advance()
			par.advance()
			continue
		}
		break
	}

	if !par.expectNext(lexer.RBRACE) {
		return nil
	}

	return &ast.HashLiteral{Token: tok, Pairs: pairs}
}

func (par *Parser) parseHashKey() ast.Expression {
	switch par.CurrToken.Type {
	case lexer.STRING:
		return par.parseStringLiteral()
	case lexer.INT:
		return par.parseIntegerLiteral()
	case lexer.TRUE, lexer.FALSE:
		return par.parseBooleanLiteral()
	default:
		par.addError(Unrecoverable, "invalid hash key: "+string(par.CurrToken.Type))
		return nil
	}
}

// parseBlockExpression implements atom alternative 11: `{ expr ; expr ;
// ... ; expr }`. A semicolon is required between expressions, not after
// the last one; an empty block `{}` is valid and evaluates to null.
func (par *Parser) parseBlockExpression(tok lexer.Token) ast.Expression {
	block := &ast.BlockExpression{Token: tok, Expressions: make([]ast.Expression, 0)}
	par.advance() // consume '{'

	for !par.currIs(lexer.RBRACE) && !par.currIs(lexer.EOF) {
		expr := par.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		block.Expressions = append(block.Expressions, expr)

		switch {
		case par.nextIs(lexer.RBRACE):
			par.advance()
		case par.nextIs(lexer.SEMICOLON):
			par.advance() // onto ';'
			par.advance() // onto the next expression
		default:
			par.addError(Unrecoverable, "expected ';' or '}' in block, got "+string(par.NextToken.Type))
			return nil
		}
	}

	if !par.currIs(lexer.RBRACE) {
		par.addError(Incomplete, "unterminated block, expected '}'")
		return nil
	}

	return block
}
