package parser

import (
	"bytes"
	"io"

	"github.com/xiam/binspec/ast"
	"github.com/xiam/binspec/lexer"
)

var tokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser builds an AST out of the tokens of a bin specification
type Parser struct {
	lx   *lexer.Lexer
	root *ast.Node

	tokens []lexer.Token
	pos    int

	lastTok *lexer.Token
	lastErr error
}

// New creates a Parser that reads a specification from r
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.root = ast.NewList(nil)
	p.lx = lexer.New(r)
	return p
}

// Parse tokenizes the whole input and builds the tree
func (p *Parser) Parse() error {
	tokens, err := p.lx.Scan()
	if err != nil {
		return err
	}
	p.tokens = tokens

	for state := parserDefaultState(p); state != nil; {
		state = state(p)
	}

	return p.lastErr
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) next() *lexer.Token {
	if p.pos >= len(p.tokens) {
		p.lastTok = tokenEOF
		return tokenEOF
	}

	tok := &p.tokens[p.pos]
	p.pos++
	p.lastTok = tok
	return tok
}

func parserDefaultState(p *Parser) parserState {
	root := p.root
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil

	default:
		if state := parserStateData(root)(p); state != nil {
			return state
		}
	}

	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func parserStateData(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.curr()

		switch tok.Type() {
		case lexer.TokenWhitespace, lexer.TokenNewLine:
			// continue

		case lexer.TokenAtom:
			if _, err := root.PushSymbol(tok, tok.Text()); err != nil {
				return parserErrorState(err)
			}

		case lexer.TokenOpenGroup:
			node, err := root.PushList(tok)
			if err != nil {
				return parserErrorState(err)
			}
			if state := parserStateOpenGroup(node)(p); state != nil {
				return state
			}

		default:
			return parserErrorState(errUnexpectedToken(tok))
		}

		return nil
	}
}

func parserStateOpenGroup(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.next()

		switch tok.Type() {
		case lexer.TokenEOF:
			return parserErrorState(ErrUnexpectedEOF)

		case lexer.TokenCloseGroup:
			return nil

		default:
			if state := parserStateData(root)(p); state != nil {
				return state
			}
		}

		return parserStateOpenGroup(root)(p)
	}
}

// Parse reads a specification and returns its AST: an implicit top-level
// list whose children are the parsed elements.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return p.root, nil
}
