// SPDX-License-Identifier: MIT

package reduce

// State is a step of the reduction state machine.
type State int

const (
	// StateBuilt is the freshly constructed lattice.
	StateBuilt State = iota
	// StateFolded follows both symmetry folds.
	StateFolded
	// StatePhaseAIterating runs (prune; series) to a fixpoint.
	StatePhaseAIterating
	// StatePhaseADone is the phase A fixpoint.
	StatePhaseADone
	// StatePhaseBIterating runs (Y-Δ; series) to a fixpoint.
	StatePhaseBIterating
	// StatePhaseBDone is the phase B fixpoint.
	StatePhaseBDone
	// StateSolved means one edge is left; its weight is the answer.
	StateSolved
	// StateStuck means no solution was found.
	StateStuck
)

var stateNames = [...]string{
	StateBuilt:           "BUILT",
	StateFolded:          "FOLDED",
	StatePhaseAIterating: "PHASE_A_ITERATING",
	StatePhaseADone:      "PHASE_A_DONE",
	StatePhaseBIterating: "PHASE_B_ITERATING",
	StatePhaseBDone:      "PHASE_B_DONE",
	StateSolved:          "SOLVED",
	StateStuck:           "STUCK",
}

// String returns the upper-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}

	return stateNames[s]
}

// Terminal reports whether s is SOLVED or STUCK.
func (s State) Terminal() bool {
	return s == StateSolved || s == StateStuck
}
