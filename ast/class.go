package ast

import (
	"fmt"
	"strings"

	"github.com/gorefa/refa/nfa"
)

// CharClass is a bracket expression "[...]": an alternation over its
// member items, each a Symbol, CharRange, or ClassSymbol.
type CharClass struct {
	Items []Node
}

func (n *CharClass) Emit(b *nfa.Builder) nfa.Component {
	parts := make([]nfa.Component, len(n.Items))
	for i, item := range n.Items {
		parts[i] = item.Emit(b)
	}
	return b.Union(parts...)
}

func (n *CharClass) Pretty(indent int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sCharClass\n", pad(indent))
	for i, item := range n.Items {
		sb.WriteString(item.Pretty(indent + 1))
		if i < len(n.Items)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
