// Package lexer implements the context-sensitive, mode-switching
// tokenizer for the regex surface syntax.
package lexer

import (
	"fmt"

	"github.com/gorefa/refa/symbol"
)

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	BasicSymbol TokenKind = iota
	EscapedSymbol
	ClassSymbol
	Number
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Asterisk
	Plus
	Question
	Comma
	Union
	Minus
)

// End is the end-of-input token kind. Its integer value is -1, outside
// the range of the other kinds.
const End TokenKind = -1

// String renders a token kind for debug output.
func (k TokenKind) String() string {
	switch k {
	case End:
		return "END"
	case BasicSymbol:
		return "BASIC_SYMBOL"
	case EscapedSymbol:
		return "ESCAPED_SYMBOL"
	case ClassSymbol:
		return "CLASS_SYMBOL"
	case Number:
		return "NUMBER"
	case LParen:
		return "LPAREN"
	case RParen:
		return "RPAREN"
	case LBracket:
		return "LBRACKET"
	case RBracket:
		return "RBRACKET"
	case LBrace:
		return "LBRACE"
	case RBrace:
		return "RBRACE"
	case Asterisk:
		return "ASTERISK"
	case Plus:
		return "PLUS"
	case Question:
		return "QUESTION"
	case Comma:
		return "COMMA"
	case Union:
		return "UNION"
	case Minus:
		return "MINUS"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Span is a half-open byte range [Begin, End) into the source text.
type Span struct {
	Begin, End int
}

// Token is a single lexical unit: a kind, an optional payload (the
// literal byte for Basic/EscapedSymbol, the decoded value for Number,
// the class tag for ClassSymbol), and a source span.
//
// Tokens with identical kind and payload are canonicalised by the
// Lexer: repeated lookups of the "same" logical token return the same
// *Token handle (see Lexer.intern). The Span field is therefore
// mutated in place on each occurrence rather than being part of the
// token's permanent identity — only (Kind, Byte, Number, Class)
// participate in canonicalisation.
type Token struct {
	Kind   TokenKind
	Byte   byte         // BasicSymbol, EscapedSymbol
	Number int          // Number
	Class  symbol.Class // ClassSymbol
	Span   Span
}

// String renders a token for debug output.
func (t *Token) String() string {
	switch t.Kind {
	case BasicSymbol, EscapedSymbol:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Byte)
	case ClassSymbol:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Class)
	case Number:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Number)
	default:
		return t.Kind.String()
	}
}

// tokenKey is the canonicalisation key: kind plus whichever payload
// field that kind actually uses.
type tokenKey struct {
	kind TokenKind
	b    byte
	n    int
	c    symbol.Class
}

func keyOf(kind TokenKind, b byte, n int, c symbol.Class) tokenKey {
	return tokenKey{kind: kind, b: b, n: n, c: c}
}
