package ast

import (
	"github.com/gorefa/refa/lexer"
)

// Parser is a recursive-descent parser over the grammar:
//
//	Pattern  := Union
//	Union    := Concat ('|' Concat)*
//	Concat   := Repeat*
//	Repeat   := Atom (('*' | '+' | '?') | '{' Bounds '}')?
//	Bounds   := Number (',' Number?)? | ',' Number?
//	Atom     := BasicSymbol | EscapedSymbol | ClassSymbol
//	          | '(' Union ')' | '[' ClassItem+ ']'
//	ClassItem:= (BasicSymbol|EscapedSymbol) '-' (BasicSymbol|EscapedSymbol)
//	          | ClassSymbol | BasicSymbol | EscapedSymbol
type Parser struct {
	lx *lexer.Lexer
}

// NewParser returns a parser consuming tokens from lx.
func NewParser(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// Parse consumes the entire lexer input and returns the root AST node.
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if tok := p.lx.Peek(); tok.Kind != lexer.End {
		return nil, &ParseError{Token: tok, Msg: "trailing input after a complete pattern", Err: ErrUnexpectedToken}
	}
	return node, nil
}

func (p *Parser) parseUnion() (Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	parts := []Node{first}
	for p.lx.Peek().Kind == lexer.Union {
		p.lx.Consume()
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return &Union{Parts: parts}, nil
}

func (p *Parser) parseConcat() (Node, error) {
	var parts []Node
	for {
		k := p.lx.Peek().Kind
		if k == lexer.End || k == lexer.Union || k == lexer.RParen {
			break
		}
		part, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	switch len(parts) {
	case 0:
		return &Concat{}, nil
	case 1:
		return parts[0], nil
	default:
		return &Concat{Parts: parts}, nil
	}
}

func (p *Parser) parseRepeat() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.lx.Peek().Kind {
	case lexer.Asterisk:
		p.lx.Consume()
		return &Repeat{Child: atom, Min: 0, Max: -1}, nil
	case lexer.Plus:
		p.lx.Consume()
		return &Repeat{Child: atom, Min: 1, Max: -1}, nil
	case lexer.Question:
		p.lx.Consume()
		return &Repeat{Child: atom, Min: 0, Max: 1}, nil
	case lexer.LBrace:
		return p.parseBoundedRepeat(atom)
	default:
		return atom, nil
	}
}

func (p *Parser) parseBoundedRepeat(atom Node) (Node, error) {
	p.lx.Consume() // '{'

	var min, max int
	if p.lx.Peek().Kind == lexer.Comma {
		// "{,m}": min defaults to 0, no leading number to consume.
		min = 0
	} else {
		lo := p.lx.Consume()
		if lo.Kind != lexer.Number {
			return nil, &ParseError{Token: lo, Msg: "expected a number after '{'", Err: ErrUnexpectedToken}
		}
		min = lo.Number
		max = min
	}

	if p.lx.Peek().Kind == lexer.Comma {
		p.lx.Consume()
		if p.lx.Peek().Kind == lexer.Number {
			hi := p.lx.Consume()
			max = hi.Number
		} else {
			max = -1
		}
	}

	closing := p.lx.Consume()
	if closing.Kind != lexer.RBrace {
		return nil, &ParseError{Token: closing, Msg: "expected '}' to close a bounded repetition", Err: ErrUnexpectedToken}
	}
	if max != -1 && min > max {
		return nil, &ParseError{Token: closing, Msg: "repetition lower bound exceeds upper bound", Err: ErrUnexpectedToken}
	}
	return &Repeat{Child: atom, Min: min, Max: max}, nil
}

func (p *Parser) parseAtom() (Node, error) {
	tok := p.lx.Consume()
	switch tok.Kind {
	case lexer.BasicSymbol, lexer.EscapedSymbol:
		return &Symbol{Byte: tok.Byte}, nil
	case lexer.ClassSymbol:
		return &ClassSymbol{Class: tok.Class}, nil
	case lexer.LParen:
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		closing := p.lx.Consume()
		if closing.Kind != lexer.RParen {
			return nil, &ParseError{Token: closing, Msg: "expected ')' to close a group", Err: ErrUnexpectedToken}
		}
		return &Group{Child: inner}, nil
	case lexer.LBracket:
		return p.parseClass()
	default:
		return nil, &ParseError{Token: tok, Msg: "expected the start of a pattern atom", Err: ErrUnexpectedToken}
	}
}

func (p *Parser) parseClass() (Node, error) {
	var items []Node
	for {
		k := p.lx.Peek().Kind
		if k == lexer.RBracket || k == lexer.End {
			break
		}
		tok := p.lx.Consume()
		switch tok.Kind {
		case lexer.BasicSymbol, lexer.EscapedSymbol:
			if p.lx.Peek().Kind == lexer.Minus {
				p.lx.Consume()
				hi := p.lx.Consume()
				if hi.Kind != lexer.BasicSymbol && hi.Kind != lexer.EscapedSymbol {
					return nil, &ParseError{Token: hi, Msg: "expected a character to end a class range", Err: ErrUnexpectedToken}
				}
				if hi.Byte < tok.Byte {
					return nil, &ParseError{Token: hi, Msg: "class range is reversed", Err: ErrUnexpectedToken}
				}
				items = append(items, &CharRange{Lo: tok.Byte, Hi: hi.Byte})
			} else {
				items = append(items, &Symbol{Byte: tok.Byte})
			}
		case lexer.ClassSymbol:
			items = append(items, &ClassSymbol{Class: tok.Class})
		default:
			return nil, &ParseError{Token: tok, Msg: "unexpected token inside a character class", Err: ErrUnexpectedToken}
		}
	}
	closing := p.lx.Consume()
	if closing.Kind != lexer.RBracket {
		return nil, &ParseError{Token: closing, Msg: "unterminated character class", Err: ErrUnexpectedToken}
	}
	if len(items) == 0 {
		return nil, &ParseError{Token: closing, Msg: "empty character class", Err: ErrUnexpectedToken}
	}
	return &CharClass{Items: items}, nil
}
