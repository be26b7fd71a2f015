// Package ast defines the regex abstract syntax tree produced by
// Parser and its translation to Thompson NFA fragments.
package ast

import (
	"fmt"

	"github.com/gorefa/refa/nfa"
)

// Node is a regex AST node: it knows how to emit itself as an
// nfa.Component via a shared nfa.Builder, and how to render itself for
// debugging.
type Node interface {
	// Emit translates the node into an nfa.Component using b. Each
	// call to Emit on the same node produces a fresh, independently
	// owned subgraph.
	Emit(b *nfa.Builder) nfa.Component

	// Pretty renders the node as an indented multi-line tree, starting
	// at the given indent depth.
	Pretty(indent int) string
}

func pad(indent int) string {
	return fmt.Sprintf("%*s", indent*2, "")
}
