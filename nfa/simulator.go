package nfa

import "github.com/gorefa/refa/symbol"

// Simulator runs an online, dual-frontier simulation of an NFA: at any
// point it holds the exact set of states the automaton could be in
// after the bytes consumed so far, without ever materializing a DFA.
//
// old/new alternate roles each Step: new becomes old for the next
// step, and the previous old is reused (cleared) as the next new, so
// steady-state stepping allocates nothing.
type Simulator struct {
	n *NFA

	old, new  []*State
	alreadyOn *alreadyOn
}

// NewSimulator returns a simulator bound to n, not yet initialized.
// Call Init before the first Step.
func NewSimulator(n *NFA) *Simulator {
	return &Simulator{
		n:         n,
		alreadyOn: newAlreadyOn(n.NumStates()),
	}
}

// Init resets the simulator to the epsilon-closure of the start state.
func (s *Simulator) Init() {
	s.old = s.old[:0]
	s.new = s.new[:0]
	s.alreadyOn.Clear()
	s.addClosure(&s.old, s.n.start)
}

// Step advances the simulation by one input byte mapped to sym,
// replacing the current frontier with the epsilon-closure of every
// state reachable from it via sym.
func (s *Simulator) Step(sym symbol.Symbol) {
	s.new = s.new[:0]
	s.alreadyOn.Clear()
	for _, st := range s.old {
		for _, succ := range st.Successors(sym) {
			s.addClosure(&s.new, succ)
		}
	}
	s.old, s.new = s.new, s.old
}

// addClosure adds st and its full epsilon-closure to *frontier,
// skipping states already present (tracked via alreadyOn, cleared by
// the caller at the start of each Init/Step).
func (s *Simulator) addClosure(frontier *[]*State, st *State) {
	if s.alreadyOn.Contains(st.id) {
		return
	}
	s.alreadyOn.Insert(st.id)
	*frontier = append(*frontier, st)
	for _, succ := range st.Successors(symbol.Epsilon) {
		s.addClosure(frontier, succ)
	}
}

// Fini reports whether the current frontier contains the accepting
// state, i.e. whether the bytes consumed so far form a complete match.
func (s *Simulator) Fini() bool {
	for _, st := range s.old {
		if st.accept {
			return true
		}
	}
	return false
}

// Dead reports whether the frontier is empty: no further Step can
// ever lead to acceptance, so the caller may stop feeding input.
func (s *Simulator) Dead() bool {
	return len(s.old) == 0
}

// AcceptBytes runs Init, feeds every byte of input through Step via
// the given byte-to-symbol mapping, and returns Fini's verdict. It is
// a convenience wrapper for one-shot whole-input matching.
func (s *Simulator) AcceptBytes(input []byte, mapSymbol func(byte) symbol.Symbol) bool {
	s.Init()
	for _, b := range input {
		if s.Dead() {
			return false
		}
		s.Step(mapSymbol(b))
	}
	return s.Fini()
}
