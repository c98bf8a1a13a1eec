package domain

type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

func (s State) Valid() bool {
	switch s {
	case StatePending, StateRunning, StateCompleted, StateFailed:
		return true
	default:
		return false
	}
}

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// CanTransitionTo reports whether the state machine may move from s to next.
// Writing the same non-terminal state again is allowed so that a writer can
// refresh the status message.
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StatePending:
		return next.Valid()
	case StateRunning:
		return next == StateRunning || next.Terminal()
	default:
		return false
	}
}
