// Package dfa implements subset construction of a deterministic finite
// automaton from an nfa.NFA, plus a linear-time simulator.
package dfa

import "github.com/gorefa/refa/symbol"

// StateID identifies a state within a constructed DFA.
type StateID int32

const (
	// InvalidState marks a StateID not yet assigned by Construct.
	InvalidState StateID = -1
	// FailState is the dead-state sink: every symbol not explicitly
	// handled by a state transitions here, and FailState has no
	// outgoing transitions of its own, so once entered the simulator
	// can never leave it.
	FailState StateID = -2
)

// State is a single DFA vertex: at most one successor per symbol,
// unlike an nfa.State's multi-successor transition table. Before
// Construct locks it, a state is mutable via AddTransition.
type State struct {
	id     StateID
	locked bool
	accept bool
	trans  map[symbol.Symbol]*State
}

func newState() *State {
	return &State{id: InvalidState, trans: make(map[symbol.Symbol]*State)}
}

// ID returns the state's identity, or InvalidState before Construct.
func (s *State) ID() StateID { return s.id }

// Accept reports whether this is an accepting state.
func (s *State) Accept() bool { return s.accept }

// Locked reports whether Construct has claimed this state.
func (s *State) Locked() bool { return s.locked }

// AddTransition adds the transition s --sym--> to. It fails if s is
// locked, or if s already has a transition for sym: a DFA state may
// have at most one successor per symbol, and symbol.Epsilon is never a
// valid label here.
func (s *State) AddTransition(sym symbol.Symbol, to *State) error {
	if s.locked {
		return &BuildError{Message: "cannot mutate a locked state", StateID: s.id}
	}
	if sym == symbol.Epsilon {
		return &BuildError{Message: "dfa states cannot have epsilon transitions", StateID: s.id}
	}
	if _, exists := s.trans[sym]; exists {
		return &BuildError{Message: "duplicate transition for the same symbol", StateID: s.id}
	}
	s.trans[sym] = to
	return nil
}

// Step returns the successor of s on sym, or nil if s has none (the
// caller should treat a nil successor as FailState).
func (s *State) Step(sym symbol.Symbol) *State {
	return s.trans[sym]
}
