package ast

import (
	"fmt"

	"github.com/gorefa/refa/nfa"
)

// Group is a parenthesized sub-pattern. Since this grammar has no
// capturing groups, Group exists purely to record that a "(...)" was
// written — it is a transparent pass-through at emit time.
type Group struct {
	Child Node
}

func (n *Group) Emit(b *nfa.Builder) nfa.Component {
	return n.Child.Emit(b)
}

func (n *Group) Pretty(indent int) string {
	return fmt.Sprintf("%sGroup\n%s", pad(indent), n.Child.Pretty(indent+1))
}

// Repeat applies a {Min,Max} bound to Child. Max of -1 means unbounded
// ("Min or more"). Min == Max == 0 is the empty-string-only repetition
// produced by e.g. "a{0}" or "a{0,0}".
type Repeat struct {
	Child Node
	Min   int
	Max   int // -1 for unbounded
}

func (n *Repeat) Emit(b *nfa.Builder) nfa.Component {
	child := n.Child.Emit(b)
	switch {
	case n.Min == 0 && n.Max == -1:
		return b.Star(child)
	case n.Min == 1 && n.Max == -1:
		return b.Plus(child)
	case n.Min == 0 && n.Max == 1:
		return b.Question(child)
	case n.Max == -1:
		return b.RepeatMin(n.Min, child)
	case n.Min == n.Max:
		return b.RepeatExact(n.Min, child)
	default:
		return b.RepeatMinMax(n.Min, n.Max, child)
	}
}

func (n *Repeat) Pretty(indent int) string {
	bound := fmt.Sprintf("%d,%d", n.Min, n.Max)
	if n.Max == -1 {
		bound = fmt.Sprintf("%d,", n.Min)
	}
	return fmt.Sprintf("%sRepeat{%s}\n%s", pad(indent), bound, n.Child.Pretty(indent+1))
}
