package ast

import (
	"fmt"
	"strings"

	"github.com/gorefa/refa/nfa"
)

// Concat is a sequence of sub-patterns, each matched in order.
type Concat struct {
	Parts []Node
}

func (n *Concat) Emit(b *nfa.Builder) nfa.Component {
	parts := make([]nfa.Component, len(n.Parts))
	for i, p := range n.Parts {
		parts[i] = p.Emit(b)
	}
	return b.Concat(parts...)
}

func (n *Concat) Pretty(indent int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sConcat\n", pad(indent))
	for i, p := range n.Parts {
		sb.WriteString(p.Pretty(indent + 1))
		if i < len(n.Parts)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Union is an alternation between sub-patterns.
type Union struct {
	Parts []Node
}

func (n *Union) Emit(b *nfa.Builder) nfa.Component {
	parts := make([]nfa.Component, len(n.Parts))
	for i, p := range n.Parts {
		parts[i] = p.Emit(b)
	}
	return b.Union(parts...)
}

func (n *Union) Pretty(indent int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sUnion\n", pad(indent))
	for i, p := range n.Parts {
		sb.WriteString(p.Pretty(indent + 1))
		if i < len(n.Parts)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
