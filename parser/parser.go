// Package parser turns a command line into candidate parse trees.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/memsim/ast"
)

// errIncomplete signals that the input ended before the statement did.
var errIncomplete = errors.New("incomplete")

type parser struct {
	source string
	tokens []Token
	pos    int
}

// Parse returns the parse trees for a command.
// An empty result without error means the command is incomplete.
func Parse(source string) ([]ast.Node, error) {
	source = strings.TrimSpace(source)
	p := &parser{
		source: source,
		tokens: NewTokenizer(source).Tokens(),
	}

	node, err := p.parseStatement()
	if errors.Is(err, errIncomplete) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if p.isSymbol(";") {
		p.consume()
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		if tok.Kind == TokenUnterminated {
			return nil, nil
		}
		return nil, p.unexpected(tok)
	}

	return []ast.Node{node}, nil
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) peek(n int) Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) consume() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) isSymbol(text string) bool {
	tok := p.current()
	return tok.Kind == TokenSymbol && tok.Text == text
}

func (p *parser) isTypeKeyword(tok Token) bool {
	return tok.Kind == TokenIdentifier && typeKeywords[tok.Text]
}

func (p *parser) unexpected(tok Token) error {
	switch tok.Kind {
	case TokenEOF, TokenUnterminated:
		return errIncomplete
	}
	return PosError{
		Err:    fmt.Errorf("%w: unexpected %s %q", ErrSyntax, tok.Kind, tok.Text),
		Source: p.source,
		Column: tok.Column,
	}
}

func (p *parser) expectSymbol(text string) error {
	if !p.isSymbol(text) {
		return p.unexpected(p.current())
	}
	p.consume()
	return nil
}

func (p *parser) parseStatement() (ast.Node, error) {
	tok := p.current()

	switch {

	case p.isTypeKeyword(tok):
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != TokenIdentifier {
			return typ, nil
		}
		decl, err := p.parseDeclaration(typ)
		if err != nil {
			return nil, err
		}
		return p.parseAssignmentTail(decl)

	case tok.Kind == TokenIdentifier:
		switch next := p.peek(1); {
		case next.Kind == TokenSymbol && next.Text == "[":
			index, err := p.parseArrayIndex()
			if err != nil {
				return nil, err
			}
			if p.isSymbol("=") {
				return p.parseAssignmentTail(index)
			}
			return index, nil
		case next.Kind == TokenSymbol && next.Text == "=":
			ident := &ast.Identifier{Name: tok.Text}
			p.consume()
			return p.parseAssignmentTail(ident)
		}
		return p.parseOperatorTail()

	case tok.Kind == TokenSymbol && tok.Text == "(" && p.isTypeKeyword(p.peek(1)):
		return p.parseCast()

	}

	return p.parseOperatorTail()
}

// parseOperatorTail parses an operand optionally followed by one binary operator.
func (p *parser) parseOperatorTail() (ast.Node, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	tok := p.current()
	if tok.Kind != TokenSymbol || !strings.Contains("+-*/", tok.Text) {
		return left, nil
	}
	p.consume()
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return &ast.Operator{
		Left:  left,
		Op:    tok.Text[0],
		Right: right,
	}, nil
}

func (p *parser) parseOperand() (ast.Node, error) {
	tok := p.current()
	switch tok.Kind {

	case TokenInt, TokenDouble, TokenString, TokenChar:
		p.consume()
		return &ast.Literal{
			Kind: literalKinds[tok.Kind],
			Raw:  tok.Text,
		}, nil

	case TokenIdentifier:
		if p.isTypeKeyword(tok) {
			return nil, p.unexpected(tok)
		}
		p.consume()
		ident := &ast.Identifier{Name: tok.Text}
		if p.isSymbol("(") {
			return p.parseCallTail(ident)
		}
		return ident, nil

	case TokenSymbol:
		if tok.Text == "(" {
			p.consume()
			inner, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return &ast.Parenthesis{Inner: inner}, nil
		}

	}
	return nil, p.unexpected(tok)
}

var literalKinds = map[TokenKind]ast.LiteralKind{
	TokenInt:    ast.LiteralInt,
	TokenDouble: ast.LiteralDouble,
	TokenString: ast.LiteralString,
	TokenChar:   ast.LiteralChar,
}

func (p *parser) parseCallTail(name *ast.Identifier) (ast.Node, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	call := &ast.FunctionCall{
		Name: name,
	}
	if p.isSymbol(")") {
		p.consume()
		return call, nil
	}
	arg, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	call.Argument = arg
	return call, nil
}

func (p *parser) parseAssignmentTail(left ast.Node) (ast.Node, error) {
	if !p.isSymbol("=") {
		return left, nil
	}
	p.consume()
	right, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Left:  left,
		Right: right,
	}, nil
}

func (p *parser) parseType() (*ast.Type, error) {
	tok := p.current()
	if !p.isTypeKeyword(tok) {
		return nil, p.unexpected(tok)
	}
	p.consume()
	name := tok.Text
	if p.isSymbol("*") && pointerTypes[name] {
		p.consume()
		name += "*"
	}
	return &ast.Type{Name: name}, nil
}

func (p *parser) parseDeclaration(typ *ast.Type) (*ast.Declaration, error) {
	tok := p.current()
	if tok.Kind != TokenIdentifier || typeKeywords[tok.Text] {
		return nil, p.unexpected(tok)
	}
	p.consume()
	decl := &ast.Declaration{
		Type:       typ,
		Identifier: &ast.Identifier{Name: tok.Text},
	}
	if !p.isSymbol("[") {
		return decl, nil
	}
	p.consume()
	size := p.current()
	if size.Kind != TokenInt {
		return nil, p.unexpected(size)
	}
	p.consume()
	if err := p.expectSymbol("]"); err != nil {
		return nil, err
	}
	decl.ArraySize = &ast.Literal{
		Kind: ast.LiteralInt,
		Raw:  size.Text,
	}
	return decl, nil
}

func (p *parser) parseArrayIndex() (*ast.ArrayIndex, error) {
	tok := p.current()
	p.consume()
	if err := p.expectSymbol("["); err != nil {
		return nil, err
	}
	index, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("]"); err != nil {
		return nil, err
	}
	return &ast.ArrayIndex{
		Identifier: &ast.Identifier{Name: tok.Text},
		Index:      index,
	}, nil
}

func (p *parser) parseCast() (ast.Node, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	// the operand may be empty
	var operand ast.Node
	if tok := p.current(); tok.Kind != TokenEOF && !p.isSymbol(";") {
		operand, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Cast{
		Type:    typ,
		Operand: operand,
	}, nil
}
