package ast

import (
	"errors"
	"fmt"

	"github.com/gorefa/refa/lexer"
)

// ErrUnexpectedToken indicates the parser encountered a token that no
// production in the grammar accepts at that position.
var ErrUnexpectedToken = errors.New("unexpected token")

// ParseError wraps a grammar violation with the offending token and
// source span.
type ParseError struct {
	Token *lexer.Token
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s (%v)", e.Token.Span.Begin, e.Token.Span.End, e.Msg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
