/*
File    : nimbus/parser/parser_literals.go
Package : parser
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

// parseIntegerLiteral converts the current token's literal text to an
// int64, stripping underscores and resolving the 0x/0o/0b base prefixes
// the lexer preserves verbatim in the token text.
func (par *Parser) parseIntegerLiteral() ast.Expression {
	tok := par.CurrToken
	text := strings.ReplaceAll(tok.Literal, "_", "")

	base := 10
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base, text = 16, text[2:]
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		base, text = 8, text[2:]
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base, text = 2, text[2:]
	}

	value, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		par.addError(Unrecoverable, "could not parse integer literal: "+tok.Literal)
		return nil
	}

	return &ast.IntegerLiteral{Token: tok, Value: value}
}

// parseFloatLiteral converts the current token's literal text to a
// float64, stripping underscores. strconv.ParseFloat natively accepts
// both the trailing-dot form (`5.`) and the leading-dot form (`.5`).
func (par *Parser) parseFloatLiteral() ast.Expression {
	tok := par.CurrToken
	text := strings.ReplaceAll(tok.Literal, "_", "")

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		par.addError(Unrecoverable, "could not parse float literal: "+tok.Literal)
		return nil
	}

	return &ast.FloatLiteral{Token: tok, Value: value}
}

func (par *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

func (par *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: par.CurrToken, Value: par.currIs(lexer.TRUE)}
}
