package component

type OutcomeState int

const (
	OutcomeRunning OutcomeState = iota
	OutcomeWon
	OutcomeLost
)

func (s OutcomeState) String() string {
	switch s {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (s OutcomeState) Terminal() bool {
	return s == OutcomeWon || s == OutcomeLost
}

const (
	ReasonReachedGoal         = "reached goal"
	ReasonTimeExpired         = "time expired"
	ReasonInsufficientPickups = "insufficient pickups"
)

// Outcome is the run's win/loss state. Once terminal it only changes through
// an explicit restart.
type Outcome struct {
	State  OutcomeState
	Reason string
}

var OutcomeComponent = NewComponent[Outcome]()
