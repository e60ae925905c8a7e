/*
File    : nimbus/parser/parser.go
Package : parser
*/

// Package parser implements a Pratt (precedence-climbing) parser that
// turns a Nimbus token stream into an ordered sequence of ast.Expression
// values.
//
// Like the lexer beneath it, the parser does not buffer tokens up front:
// it keeps a two-token lookahead (CurrToken/NextToken) and pulls the next
// token from the lexer on demand. Unary and binary parsing functions are
// registered per token type in two maps, following the classic Pratt
// design: unaryFuncs handle everything that can begin an expression
// (literals, identifiers, prefix operators, grouping, if/function/array/
// hash/block), binaryFuncs handle everything that continues one (infix
// operators, call, index).
package parser

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/lexer"
)

type unaryParseFunc func() ast.Expression
type binaryParseFunc func(ast.Expression) ast.Expression

// Parser holds all state needed to turn a token stream into an AST.
type Parser struct {
	lex *lexer.Lexer

	CurrToken lexer.Token
	NextToken lexer.Token

	unaryFuncs  map[lexer.TokenType]unaryParseFunc
	binaryFuncs map[lexer.TokenType]binaryParseFunc

	Errors []ParseError
}

// NewParser builds a Parser over src and primes the two-token lookahead.
func NewParser(src string) *Parser {
	par := &Parser{lex: lexer.New(src)}
	par.init()
	return par
}

func (par *Parser) init() {
	par.unaryFuncs = make(map[lexer.TokenType]unaryParseFunc)
	par.binaryFuncs = make(map[lexer.TokenType]binaryParseFunc)
	par.Errors = make([]ParseError, 0)

	par.registerUnary(lexer.INT, par.parseIntegerLiteral)
	par.registerUnary(lexer.FLOAT, par.parseFloatLiteral)
	par.registerUnary(lexer.STRING, par.parseStringLiteral)
	par.registerUnary(lexer.TRUE, par.parseBooleanLiteral)
	par.registerUnary(lexer.FALSE, par.parseBooleanLiteral)
	par.registerUnary(lexer.IDENT, par.parseIdentifierOrAssign)
	par.registerUnary(lexer.RETURN, par.parseReturnExpression)
	par.registerUnary(lexer.PLUS, par.parsePrefixExpression)
	par.registerUnary(lexer.MINUS, par.parsePrefixExpression)
	par.registerUnary(lexer.BANG, par.parsePrefixExpression)
	par.registerUnary(lexer.LPAREN, par.parseGroupedExpression)
	par.registerUnary(lexer.LBRACKET, par.parseArrayLiteral)
	par.registerUnary(lexer.LBRACE, par.parseHashOrBlock)
	par.registerUnary(lexer.IF, par.parseIfExpression)
	par.registerUnary(lexer.PIPE, par.parseFunctionLiteral)

	par.registerBinary(lexer.PLUS, par.parseInfixExpression)
	par.registerBinary(lexer.MINUS, par.parseInfixExpression)
	par.registerBinary(lexer.ASTERISK, par.parseInfixExpression)
	par.registerBinary(lexer.SLASH, par.parseInfixExpression)
	par.registerBinary(lexer.PERCENT, par.parseInfixExpression)
	par.registerBinary(lexer.EQ, par.parseInfixExpression)
	par.registerBinary(lexer.NOT_EQ, par.parseInfixExpression)
	par.registerBinary(lexer.LT, par.parseInfixExpression)
	par.registerBinary(lexer.LT_EQ, par.parseInfixExpression)
	par.registerBinary(lexer.GT, par.parseInfixExpression)
	par.registerBinary(lexer.GT_EQ, par.parseInfixExpression)
	par.registerBinary(lexer.LPAREN, par.parseCallExpression)
	par.registerBinary(lexer.LBRACKET, par.parseIndexExpression)

	par.advance()
	par.advance()
}

func (par *Parser) registerUnary(tok lexer.TokenType, fn unaryParseFunc) {
	par.unaryFuncs[tok] = fn
}

func (par *Parser) registerBinary(tok lexer.TokenType, fn binaryParseFunc) {
	par.binaryFuncs[tok] = fn
}

// advance shifts the lookahead window one token forward.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.lex.NextToken()
}

func (par *Parser) currIs(tok lexer.TokenType) bool { return par.CurrToken.Type == tok }
func (par *Parser) nextIs(tok lexer.TokenType) bool { return par.NextToken.Type == tok }

// expectNext advances past NextToken if it matches tok, otherwise records
// an Unrecoverable error (a production was committed to and failed) or an
// Incomplete one if input ran out first.
func (par *Parser) expectNext(tok lexer.TokenType) bool {
	if par.nextIs(tok) {
		par.advance()
		return true
	}
	if par.NextToken.Type == lexer.EOF {
		par.addError(Incomplete, "unexpected end of input, expected "+string(tok))
		return false
	}
	par.addError(Unrecoverable, "expected next token to be "+string(tok)+", got "+string(par.NextToken.Type)+" instead")
	return false
}

func (par *Parser) addError(kind ErrorKind, msg string) {
	par.Errors = append(par.Errors, ParseError{
		Kind:    kind,
		Message: msg,
		Line:    par.CurrToken.Line,
		Column:  par.CurrToken.Column,
	})
}

// noUnaryFuncError records that no unary parse function exists for the
// current token. Running out of input mid-production is Incomplete;
// encountering a token that the grammar simply doesn't start an
// expression with is Recoverable.
func (par *Parser) noUnaryFuncError(tok lexer.Token) {
	kind := Recoverable
	msg := "no parse function for " + string(tok.Type)
	if tok.Type == lexer.EOF {
		kind = Incomplete
		msg = "unexpected end of input"
	}
	par.Errors = append(par.Errors, ParseError{
		Kind:    kind,
		Message: msg,
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

func (par *Parser) HasErrors() bool        { return len(par.Errors) > 0 }
func (par *Parser) GetErrors() []ParseError { return par.Errors }

// Parse consumes the entire input and returns the ordered top-level
// expressions. Top-level expressions need no separator between them --
// `1 2` is two expressions -- so the loop advances once per completed
// expression and relies on each parse function to stop at its own
// natural end.
func (par *Parser) Parse() []ast.Expression {
	program := make([]ast.Expression, 0)

	for !par.currIs(lexer.EOF) {
		expr := par.parseExpression(LOWEST)
		if expr != nil {
			program = append(program, expr)
		}
		par.advance()
	}

	return program
}

// parseExpression is the Pratt core: read one atom via the unary table,
// then keep extending it leftward with infix/postfix operators for as
// long as the next operator binds tighter than precedence.
func (par *Parser) parseExpression(precedence int) ast.Expression {
	unary, ok := par.unaryFuncs[par.CurrToken.Type]
	if !ok {
		par.noUnaryFuncError(par.CurrToken)
		return nil
	}
	left := unary()

	for !par.nextIs(lexer.EOF) && precedence < precedenceOf(par.NextToken.Type) {
		binary, ok := par.binaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}
