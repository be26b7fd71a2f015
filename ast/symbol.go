package ast

import (
	"fmt"

	"github.com/gorefa/refa/nfa"
	"github.com/gorefa/refa/symbol"
)

// Symbol is a leaf node matching a single literal byte, whether it
// reached the parser as a BasicSymbol or an EscapedSymbol token — the
// two collapse to the same AST shape once lexed.
type Symbol struct {
	Byte byte
}

func (n *Symbol) Emit(b *nfa.Builder) nfa.Component {
	return b.Sym(symbol.Symbol(n.Byte))
}

func (n *Symbol) Pretty(indent int) string {
	return fmt.Sprintf("%sSymbol(%q)", pad(indent), n.Byte)
}

// ClassSymbol is a leaf node matching any byte in a named character
// class (\s, \d, \w), expanded to an alternation of literal symbols at
// emit time.
type ClassSymbol struct {
	Class symbol.Class
}

func (n *ClassSymbol) Emit(b *nfa.Builder) nfa.Component {
	syms := symbol.Expand(n.Class)
	parts := make([]nfa.Component, len(syms))
	for i, s := range syms {
		parts[i] = b.Sym(s)
	}
	return b.Union(parts...)
}

func (n *ClassSymbol) Pretty(indent int) string {
	return fmt.Sprintf("%sClassSymbol(%s)", pad(indent), n.Class)
}

// CharRange is a bracket-expression member matching any byte in
// [Lo, Hi] inclusive.
type CharRange struct {
	Lo, Hi byte
}

func (n *CharRange) Emit(b *nfa.Builder) nfa.Component {
	count := int(n.Hi) - int(n.Lo) + 1
	parts := make([]nfa.Component, 0, count)
	for c := int(n.Lo); c <= int(n.Hi); c++ {
		parts = append(parts, b.Sym(symbol.Symbol(byte(c))))
	}
	return b.Union(parts...)
}

func (n *CharRange) Pretty(indent int) string {
	return fmt.Sprintf("%sCharRange(%q-%q)", pad(indent), n.Lo, n.Hi)
}
