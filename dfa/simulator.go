package dfa

import "github.com/gorefa/refa/symbol"

// Simulator runs a linear-time simulation of a DFA: each Step performs
// exactly one map lookup, unlike nfa.Simulator's frontier expansion.
// Init, Step and Fini mirror nfa.Simulator's shape so callers can
// switch between the two engines without changing their driving loop.
type Simulator struct {
	d       *DFA
	current *State // nil means the dead-state sink (FailState)
}

// NewSimulator returns a simulator bound to d, not yet initialized.
func NewSimulator(d *DFA) *Simulator {
	return &Simulator{d: d}
}

// Init resets the simulator to the DFA's start state.
func (s *Simulator) Init() {
	s.current = s.d.start
}

// Step advances the simulation by one symbol. Once the simulator has
// entered the dead-state sink, Step is a no-op.
func (s *Simulator) Step(sym symbol.Symbol) {
	if s.current == nil {
		return
	}
	s.current = s.current.Step(sym)
}

// Fini reports whether the current state accepts.
func (s *Simulator) Fini() bool {
	return s.current != nil && s.current.accept
}

// Dead reports whether the simulator has entered the sink state, from
// which no input can ever lead to acceptance.
func (s *Simulator) Dead() bool {
	return s.current == nil
}

// AcceptBytes runs Init, feeds every byte of input through Step via
// the given byte-to-symbol mapping, and returns Fini's verdict.
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
