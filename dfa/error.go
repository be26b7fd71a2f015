package dfa

import "fmt"

// BuildError represents an error raised while mutating a State, or
// while Construct is assembling a DFA from an NFA.
type BuildError struct {
	Message string
	StateID StateID
}

func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("dfa build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("dfa build error: %s", e.Message)
}
