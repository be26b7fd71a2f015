package nfa

// alreadyOn is the dense/sparse membership bitmap the Simulator uses
// to avoid adding the same StateID to a frontier twice while computing
// an epsilon-closure. It is sized once to the automaton's state count
// at NewSimulator time and cleared (not reallocated) at the start of
// every Init/Step, so steady-state stepping never allocates.
//
// This is the dense/sparse dual-array trick (sparse[id] -> index in
// dense, validated by dense[index] == id) adapted from the teacher's
// generic sparse-set to StateID directly, rather than going through a
// byte/uint32 indirection a generic set would need.
type alreadyOn struct {
	sparse []int32 // StateID -> index into dense, meaningful only when validated by dense
	dense  []StateID
}

func newAlreadyOn(numStates int) *alreadyOn {
	return &alreadyOn{
		sparse: make([]int32, numStates),
		dense:  make([]StateID, 0, numStates),
	}
}

func (a *alreadyOn) Contains(id StateID) bool {
	idx := a.sparse[id]
	return int(idx) < len(a.dense) && a.dense[idx] == id
}

func (a *alreadyOn) Insert(id StateID) {
	if a.Contains(id) {
		return
	}
	a.sparse[id] = int32(len(a.dense))
	a.dense = append(a.dense, id)
}

func (a *alreadyOn) Clear() {
	a.dense = a.dense[:0]
}
