package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/binspec/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)

func errUnexpectedToken(tok *lexer.Token) error {
	line, col := tok.Pos()
	return fmt.Errorf("%w %q at %d:%d", ErrUnexpectedToken, tok.Text(), line, col)
}
