package nfa

import "github.com/gorefa/refa/symbol"

// Component is an unconstructed fragment of an NFA: a pair of dangling
// states (Entry, Exit) produced by one of the Builder combinators.
// Components are assembled into larger components and finally handed
// to Construct to produce a locked, simulation-ready NFA.
type Component struct {
	Entry *State
	Exit  *State
}

// Builder accumulates the states created by its combinator methods.
// A Builder is single-use: once its root Component has been passed to
// Construct, its states are locked and the Builder should be
// discarded.
type Builder struct {
	states []*State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newState() *State {
	s := newState()
	b.states = append(b.states, s)
	return s
}

// Empty returns a component that matches the empty string: an entry
// state connected to a distinct exit state by a single epsilon edge.
func (b *Builder) Empty() Component {
	entry := b.newState()
	exit := b.newState()
	_ = entry.AddTransition(symbol.Epsilon, exit)
	return Component{Entry: entry, Exit: exit}
}

// Sym returns a single-transition component: entry --sym--> exit.
func (b *Builder) Sym(sym symbol.Symbol) Component {
	entry := b.newState()
	exit := b.newState()
	_ = entry.AddTransition(sym, exit)
	return Component{Entry: entry, Exit: exit}
}

// Concat chains components in sequence, splicing exit[i] to entry[i+1]
// with an epsilon edge. Concat() with no arguments returns Empty().
func (b *Builder) Concat(parts ...Component) Component {
	if len(parts) == 0 {
		return b.Empty()
	}
	for i := 0; i+1 < len(parts); i++ {
		_ = parts[i].Exit.AddTransition(symbol.Epsilon, parts[i+1].Entry)
	}
	return Component{Entry: parts[0].Entry, Exit: parts[len(parts)-1].Exit}
}

// Union branches to each of parts from a shared entry state and joins
// each part's exit to a shared exit state.
func (b *Builder) Union(parts ...Component) Component {
	if len(parts) == 0 {
		return b.Empty()
	}
	if len(parts) == 1 {
		return parts[0]
	}
	entry := b.newState()
	exit := b.newState()
	for _, p := range parts {
		_ = entry.AddTransition(symbol.Epsilon, p.Entry)
		_ = p.Exit.AddTransition(symbol.Epsilon, exit)
	}
	return Component{Entry: entry, Exit: exit}
}

// Star builds the Kleene closure of c: zero or more repetitions.
func (b *Builder) Star(c Component) Component {
	entry := b.newState()
	exit := b.newState()
	_ = entry.AddTransition(symbol.Epsilon, c.Entry)
	_ = entry.AddTransition(symbol.Epsilon, exit)
	_ = c.Exit.AddTransition(symbol.Epsilon, c.Entry)
	_ = c.Exit.AddTransition(symbol.Epsilon, exit)
	return Component{Entry: entry, Exit: exit}
}

// Plus builds one or more repetitions of c: c followed by Star of a
// fresh clone (c itself is consumed exactly once, the loop body is a
// separate subgraph so the two don't alias the same states).
func (b *Builder) Plus(c Component) Component {
	return b.Concat(c, b.Star(b.Clone(c)))
}

// Question builds zero or one repetitions of c.
func (b *Builder) Question(c Component) Component {
	return b.Union(c, b.Empty())
}

// RepeatExact builds exactly n repetitions of c, each a fresh clone
// except the first. RepeatExact(0, c) matches only the empty string.
func (b *Builder) RepeatExact(n int, c Component) Component {
	if n == 0 {
		return b.Empty()
	}
	parts := make([]Component, n)
	parts[0] = c
	for i := 1; i < n; i++ {
		parts[i] = b.Clone(c)
	}
	return b.Concat(parts...)
}

// RepeatMin builds n or more repetitions of c ("c{n,}").
func (b *Builder) RepeatMin(n int, c Component) Component {
	if n == 0 {
		return b.Star(c)
	}
	head := b.RepeatExact(n-1, c)
	tail := b.Plus(b.Clone(c))
	return b.Concat(head, tail)
}

// RepeatMinMax builds between n and m (inclusive) repetitions of c
// ("c{n,m}"). It requires 0 <= n <= m.
func (b *Builder) RepeatMinMax(n, m int, c Component) Component {
	if m == 0 {
		return b.Empty()
	}
	head := b.RepeatExact(n, c)
	optional := m - n
	if optional == 0 {
		return head
	}
	// Nest the optional tail so each layer's skip-edge bypasses
	// everything after it: c{0,k} = (c (c (c)?)?)?
	var tail Component
	for i := 0; i < optional; i++ {
		clone := b.Clone(c)
		if i == 0 {
			tail = b.Question(clone)
		} else {
			tail = b.Question(b.Concat(clone, tail))
		}
	}
	if n == 0 {
		return tail
	}
	return b.Concat(head, tail)
}

// Clone deep-copies the subgraph reachable from c.Entry, returning a
// component over entirely fresh states. It is used whenever a
// component must be embedded more than once (bounded repetition,
// Plus's loop body), since a Component's states are single-owner
// fragments, not sharable subtrees.
func (b *Builder) Clone(c Component) Component {
	seen := make(map[*State]*State)
	var walk func(*State) *State
	walk = func(s *State) *State {
		if ns, ok := seen[s]; ok {
			return ns
		}
		ns := b.newState()
		seen[s] = ns
		for sym, succs := range s.trans {
			for _, succ := range succs {
				_ = ns.AddTransition(sym, walk(succ))
			}
		}
		return ns
	}
	entry := walk(c.Entry)
	exit, ok := seen[c.Exit]
	if !ok {
		// c.Exit is not reachable from c.Entry, so walk never
		// visited it; copy it on its own.
		exit = walk(c.Exit)
	}
	return Component{Entry: entry, Exit: exit}
}
