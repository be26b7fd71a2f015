package dfa

import (
	"github.com/gorefa/refa/container"
	"github.com/gorefa/refa/nfa"
	"github.com/gorefa/refa/symbol"
)

// DFA is a constructed, locked deterministic automaton produced by
// subset construction over an nfa.NFA.
type DFA struct {
	states []*State
	start  *State
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.states) }

// Start returns the automaton's unique start state.
func (d *DFA) Start() *State { return d.start }

// State looks up a state by id, returning nil if id is out of range.
func (d *DFA) State(id StateID) *State {
	if id < 0 || int(id) >= len(d.states) {
		return nil
	}
	return d.states[id]
}

// alphabet collects every non-epsilon symbol labelling at least one
// transition in n.
func alphabet(n *nfa.NFA) []symbol.Symbol {
	seen := make(map[symbol.Symbol]bool)
	for i := 0; i < n.NumStates(); i++ {
		st := n.State(nfa.StateID(i))
		for _, sym := range st.Symbols() {
			if sym == symbol.Epsilon {
				continue
			}
			seen[sym] = true
		}
	}
	out := make([]symbol.Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	return out
}

// epsilonClosure extends set (a container.Set of nfa states) with the
// full epsilon-closure of every state already in it.
func epsilonClosure(set *container.Set[nfa.State], stack []*nfa.State) {
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, succ := range st.Successors(symbol.Epsilon) {
			if !set.Contains(succ) {
				set.Add(succ)
				stack = append(stack, succ)
			}
		}
	}
}

// move returns the container.Set of nfa states reachable from any
// member of set via sym (no epsilon-closure applied yet).
func move(set *container.Set[nfa.State], sym symbol.Symbol) *container.Set[nfa.State] {
	out := container.NewSet[nfa.State]()
	for _, st := range set.Elements() {
		for _, succ := range st.Successors(sym) {
			out.Add(succ)
		}
	}
	return out
}

func containsAccept(set *container.Set[nfa.State]) bool {
	for _, st := range set.Elements() {
		if st.Accept() {
			return true
		}
	}
	return false
}

// Construct builds a DFA equivalent to n via subset construction: each
// DFA state corresponds to a set of NFA states (their shared
// epsilon-closure under a sequence of moves), memoized by a
// container.SetMap so that two moves landing on the same NFA-state set
// collapse to the same DFA state.
func Construct(n *nfa.NFA) (*DFA, error) {
	memo := container.NewSetMap[nfa.State, *State]()
	var states []*State
	syms := alphabet(n)

	startSet := container.NewSet[nfa.State]()
	startSet.Add(n.Start())
	epsilonClosure(startSet, []*nfa.State{n.Start()})

	start := newState()
	start.accept = containsAccept(startSet)
	states = append(states, start)
	memo.Put(startSet, start)

	pending := []*container.Set[nfa.State]{startSet}
	dfaOf := map[*container.Set[nfa.State]]*State{startSet: start}

	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		curState := dfaOf[cur]

		for _, sym := range syms {
			reached := move(cur, sym)
			if reached.Len() == 0 {
				continue
			}
			stack := append([]*nfa.State(nil), reached.Elements()...)
			epsilonClosure(reached, stack)

			target, ok := memo.Get(reached)
			if !ok {
				target = newState()
				target.accept = containsAccept(reached)
				states = append(states, target)
				memo.Put(reached, target)
				dfaOf[reached] = target
				pending = append(pending, reached)
			}
			if err := curState.AddTransition(sym, target); err != nil {
				return nil, err
			}
		}
	}

	for i, s := range states {
		s.id = StateID(i)
		s.locked = true
	}

	return &DFA{states: states, start: start}, nil
}
