package lexer

import (
	"bytes"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenGroup  = isTokenType(TokenOpenGroup)
	isCloseGroup = isTokenType(TokenCloseGroup)

	isNewLine    = isTokenType(TokenNewLine)
	isWhitespace = isTokenType(TokenWhitespace)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:  s.Init(r),
		buf: []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens  []Token
	lastErr error

	buf []rune

	start  int
	offset int
	lines  int
}

// Scan consumes the whole reader and returns all the tokens within it, ending
// with a token of type EOF.
func (lx *Lexer) Scan() ([]Token, error) {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}

	lx.emit(TokenEOF)
	return lx.tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:   tt,
		text: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	})

	lx.start = lx.offset
	lx.buf = lx.buf[:0]

	if tt == TokenNewLine {
		lx.lines++
		lx.start = 0
		lx.offset = 0
	}
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	lx.offset++

	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenGroup(r):
		return lexEmit(TokenOpenGroup)
	case isCloseGroup(r):
		return lexEmit(TokenCloseGroup)

	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)

	default:
		return lexAtom

	}
}

func lexAtom(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isAtomBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenAtom)
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(bytes.NewReader(in))
	return lx.Scan()
}
