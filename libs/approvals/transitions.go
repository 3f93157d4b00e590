package approvals

// State is a string representing where an entity is in its approval lifecycle.
type State string

const (
	// Unapproved represents an entity with no counted approvals.
	Unapproved State = "unapproved"
	// PartiallyApproved represents an entity with at least one approval but below the threshold.
	PartiallyApproved State = "partially_approved"
	// FullyApproved represents an entity whose distinct-approver threshold has been met.
	FullyApproved State = "fully_approved"
	// Executed represents an entity whose approved action has been performed.
	Executed State = "executed"
	// Voided represents an entity whose approvals were invalidated by a critical-field mutation.
	Voided State = "voided"
)

// Transitions represents the valid forward-transitions for each given state.
var Transitions = map[State][]State{
	Unapproved:        {PartiallyApproved, FullyApproved, Voided},
	PartiallyApproved: {FullyApproved, Voided},
	FullyApproved:     {Executed, Voided},
	Executed:          {Voided},
	Voided:            {Unapproved},
}

// GetValidTransitions returns valid transitions.
func (s State) GetValidTransitions() []State {
	return Transitions[s]
}

// NextStateValid returns true if nextState is a valid transition from the current one
func (s State) NextStateValid(nextState State) bool {
	if s == nextState {
		return true
	}
	return stateListContainsState(s.GetValidTransitions(), nextState)
}

// stateListContainsState returns true if the state list contains the passed state
func stateListContainsState(l []State, e State) bool {
	for _, a := range l {
		if a == e {
			return true
		}
	}
	return false
}
