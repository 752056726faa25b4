// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser with Pratt-style precedence climbing. Converts a token.Token
//          stream (from lexer.Lexer) into an ast.Expression, implementing the twelve-level
//          precedence table of spec §4.3 and the LocalVarNames local/call disambiguation.
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"

	"github.com/brightonlang/slimexpr/ast"
	"github.com/brightonlang/slimexpr/lexer"
	"github.com/brightonlang/slimexpr/token"
)

// Precedence levels, tightest-binding last.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // =
	TERNARY     // ?:
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	EQUALITY    // == != <=>
	COMPARISON  // < <= > >=
	BITOR       // | ^
	BITAND      // &
	SHIFT       // << >>
	SUM         // + -
	PRODUCT     // * / %
	POWER       // ** (right-assoc)
	PREFIX      // unary - ! ~
	POSTFIX     // . []
)

var precedences = map[token.Type]int{
	token.ASSIGN:      ASSIGNMENT,
	token.QUESTION:    TERNARY,
	token.LOGICAL_OR:  LOGICAL_OR,
	token.LOGICAL_AND: LOGICAL_AND,
	token.CMP_EQ:      EQUALITY,
	token.CMP_NE:      EQUALITY,
	token.CMP:         EQUALITY,
	token.CMP_LT:      COMPARISON,
	token.CMP_LE:      COMPARISON,
	token.CMP_GT:      COMPARISON,
	token.CMP_GE:      COMPARISON,
	token.BAR:         BITOR,
	token.CARET:       BITOR,
	token.AMP:         BITAND,
	token.SHIFT_L:     SHIFT,
	token.SHIFT_R:     SHIFT,
	token.PLUS:        SUM,
	token.MINUS:       SUM,
	token.MUL:         PRODUCT,
	token.DIV:         PRODUCT,
	token.MOD:         PRODUCT,
	token.STAR_STAR:   POWER,
	token.DOT:         POSTFIX,
	token.LBRACKET:    POSTFIX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// LocalVarNames is threaded through parsing so a bare SYMBOL resolves to a
// local-variable read when known, else a zero-arg method call on the
// implicit receiver, per §4.3/§4.5.
type LocalVarNames struct {
	names map[string]bool
}

// NewLocalVarNames returns an empty set, optionally seeded with names
// (e.g. from scope.Scope.Iter at template-parse time, per §4.5).
func NewLocalVarNames(seed ...string) *LocalVarNames {
	lv := &LocalVarNames{names: make(map[string]bool)}
	for _, n := range seed {
		lv.names[n] = true
	}
	return lv
}

func (lv *LocalVarNames) Add(name string)      { lv.names[name] = true }
func (lv *LocalVarNames) Has(name string) bool { return lv.names[name] }

// SyntaxError reports a parse failure, per spec §7.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parser parses an expression out of a token stream. It never partially
// commits an AST on failure: New followed by ParseExpr either returns a
// complete tree or leaves Err() set, with no partial result to inspect.
type Parser struct {
	l      *lexer.Lexer
	locals *LocalVarNames

	curToken  token.Token
	peekToken token.Token
	err       error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l. locals may be nil, in which case an empty
// set is used (every bare name parses as a method call).
func New(l *lexer.Lexer, locals *LocalVarNames) *Parser {
	if locals == nil {
		locals = NewLocalVarNames()
	}
	p := &Parser{l: l, locals: locals}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.SYMBOL:      p.parseSymbolOrLiteral,
		token.NUMBER:      p.parseNumberLiteral,
		token.STRING:      p.parseStringLiteral,
		token.MINUS:       p.parsePrefixExpression,
		token.LOGICAL_NOT: p.parsePrefixExpression,
		token.TILDE:       p.parsePrefixExpression,
		token.LPAREN:      p.parseGroupedExpression,
		token.LBRACKET:    p.parseArrayLiteral,
		token.LBRACE:      p.parseHashLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:        p.parseInfixExpression,
		token.MINUS:       p.parseInfixExpression,
		token.MUL:         p.parseInfixExpression,
		token.DIV:         p.parseInfixExpression,
		token.MOD:         p.parseInfixExpression,
		token.STAR_STAR:   p.parseRightAssocInfix,
		token.SHIFT_L:     p.parseInfixExpression,
		token.SHIFT_R:     p.parseInfixExpression,
		token.AMP:         p.parseInfixExpression,
		token.BAR:         p.parseInfixExpression,
		token.CARET:       p.parseInfixExpression,
		token.CMP_LT:      p.parseInfixExpression,
		token.CMP_LE:      p.parseInfixExpression,
		token.CMP_GT:      p.parseInfixExpression,
		token.CMP_GE:      p.parseInfixExpression,
		token.CMP_EQ:      p.parseInfixExpression,
		token.CMP_NE:      p.parseInfixExpression,
		token.CMP:         p.parseInfixExpression,
		token.LOGICAL_AND: p.parseInfixExpression,
		token.LOGICAL_OR:  p.parseInfixExpression,
		token.QUESTION:    p.parseTernary,
		token.ASSIGN:      p.parseAssignment,
		token.DOT:         p.parseMethodCall,
		token.LBRACKET:    p.parseIndexExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	if p.curToken.Type == token.ILLEGAL {
		p.fail("%s", p.curToken.Literal)
	}
}

func (p *Parser) fail(format string, a ...interface{}) {
	if p.err == nil {
		p.err = &SyntaxError{Msg: fmt.Sprintf(format, a...), Line: p.curToken.Line, Column: p.curToken.Column}
	}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.fail("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// Err reports the first error encountered while parsing, if any.
func (p *Parser) Err() error { return p.err }

// AtEnd reports whether the parser's cursor sits on the END token.
func (p *Parser) AtEnd() bool { return p.curTokenIs(token.END) }

// ParseExpr parses a single expression starting at the parser's current
// cursor position. Callers embedding expression parsing inside a larger
// grammar (the template line parser) use this directly; top-level callers
// should prefer ParseExpression/ParseExpressionWithLocals.
func (p *Parser) ParseExpr() ast.Expression {
	expr := p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	return expr
}

// ParseExpression parses one full expression and reports a non-nil error
// if the input was malformed or left unconsumed tokens behind.
func ParseExpression(source string) (ast.Expression, error) {
	return ParseExpressionWithLocals(source, nil)
}

// ParseExpressionWithLocals parses one full expression using locals to
// disambiguate bare names, per §4.5's scope.Iter-fed LocalVarNames.
func ParseExpressionWithLocals(source string, locals *LocalVarNames) (ast.Expression, error) {
	p := New(lexer.New(source), locals)
	expr := p.ParseExpr()
	if p.err != nil {
		return nil, p.err
	}
	if !p.peekTokenIs(token.END) {
		return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected trailing token %s", p.peekToken.Type), Line: p.peekToken.Line, Column: p.peekToken.Column}
	}
	return expr, nil
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.fail("no prefix parse function for %s", p.curToken.Type)
		return nil
	}
	left := prefix()

	for p.err == nil && !p.peekTokenIs(token.END) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// ---------------------------------------------------------------------------
// Prefix parsers
// ---------------------------------------------------------------------------

// parseSymbolOrLiteral resolves a bare SYMBOL token per §4.3: the literal
// keywords true/false/nil, a known local (Identifier, IsLocal=true), or a
// zero-arg (optionally parenthesized-args) method call on the implicit
// receiver.
func (p *Parser) parseSymbolOrLiteral() ast.Expression {
	tok := p.curToken
	switch tok.Literal {
	case "true":
		return &ast.BooleanLiteral{Token: tok, Value: true}
	case "false":
		return &ast.BooleanLiteral{Token: tok, Value: false}
	case "nil":
		return &ast.NilLiteral{Token: tok}
	}
	if p.locals.Has(tok.Literal) && !p.peekTokenIs(token.LPAREN) {
		return &ast.Identifier{Token: tok, Value: tok.Literal, IsLocal: true}
	}
	var args []ast.Expression
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args = p.parseCallArguments()
	}
	block := p.parseOptionalBlock()
	return &ast.MethodCall{Token: tok, Name: tok.Literal, Arguments: args, Block: block}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.fail("could not parse %q as a number", tok.Literal)
		return nil
	}
	return &ast.NumberLiteral{Token: tok, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	op := string(tok.Type)
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.PrefixExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.Grouped{Token: tok, Expression: expr}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseHashLiteral() ast.Expression {
	tok := p.curToken
	pairs := []ast.HashPair{}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return &ast.HashLiteral{Token: tok, Pairs: pairs}
	}
	for {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.HASHROCKET) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		pairs = append(pairs, ast.HashPair{Key: key, Value: val})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.HashLiteral{Token: tok, Pairs: pairs}
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	list := []ast.Expression{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// ---------------------------------------------------------------------------
// Infix parsers
// ---------------------------------------------------------------------------

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := string(tok.Type)
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.InfixExpression{Token: tok, Left: left, Operator: op, Right: right}
}

// parseRightAssocInfix handles `**`, which associates right-to-left:
// `2 ** 3 ** 2` parses as `2 ** (3 ** 2)`.
func (p *Parser) parseRightAssocInfix(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(POWER - 1)
	return &ast.InfixExpression{Token: tok, Left: left, Operator: "**", Right: right}
}

// parseTernary handles `cond ? a : b`, right-associative.
func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	ifTrue := p.parseExpression(ASSIGNMENT)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	ifFalse := p.parseExpression(ASSIGNMENT)
	return &ast.Ternary{Token: tok, Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}
}

func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	tok := p.curToken
	ident, ok := left.(*ast.Identifier)
	if call, isCall := left.(*ast.MethodCall); isCall && call.Receiver == nil && call.Arguments == nil && call.Block == nil {
		// A name not yet known as a local parses as a bare call; assigning
		// to it introduces the local.
		ident, ok = &ast.Identifier{Token: call.Token, Value: call.Name}, true
	}
	if !ok {
		p.fail("left side of assignment must be a local name")
		return nil
	}
	ident.IsLocal = true
	p.locals.Add(ident.Value)
	p.nextToken()
	value := p.parseExpression(ASSIGNMENT)
	return &ast.Assignment{Token: tok, Name: ident, Value: value}
}

func (p *Parser) parseMethodCall(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.SYMBOL) {
		return nil
	}
	name := p.curToken.Literal
	var args []ast.Expression
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args = p.parseCallArguments()
	}
	block := p.parseOptionalBlock()
	return &ast.MethodCall{Token: tok, Receiver: left, Name: name, Arguments: args, Block: block}
}

func (p *Parser) parseCallArguments() []ast.Expression {
	return p.parseExpressionList(token.RPAREN)
}

// parseOptionalBlock looks for a trailing `{|params| body}` or
// `do |params| body end` attached to the call just parsed, per §4.3.
func (p *Parser) parseOptionalBlock() *ast.Block {
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		return p.parseBlockBody(token.RBRACE)
	}
	if p.peekTokenIs(token.SYMBOL) && p.peekToken.Literal == "do" {
		p.nextToken()
		return p.parseBlockBody(token.SYMBOL) // closed by "end"
	}
	return nil
}

func (p *Parser) parseBlockBody(closing token.Type) *ast.Block {
	tok := p.curToken
	blk := &ast.Block{Token: tok}
	if p.peekTokenIs(token.BAR) {
		p.nextToken()
		if !p.peekTokenIs(token.BAR) {
			for {
				if !p.expectPeek(token.SYMBOL) {
					return nil
				}
				param := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal, IsLocal: true}
				blk.Parameters = append(blk.Parameters, param)
				p.locals.Add(param.Value)
				if p.peekTokenIs(token.COMMA) {
					p.nextToken()
					continue
				}
				break
			}
		}
		if !p.expectPeek(token.BAR) {
			return nil
		}
	}
	p.nextToken()
	blk.Body = p.parseExpression(LOWEST)
	if closing == token.RBRACE {
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
	} else {
		if !p.peekTokenIs(token.SYMBOL) || p.peekToken.Literal != "end" {
			p.fail("expected 'end' to close do-block")
			return nil
		}
		p.nextToken()
	}
	return blk
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(token.RBRACKET)
	return &ast.IndexExpression{Token: tok, Left: left, Arguments: args}
}
