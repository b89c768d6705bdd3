package component

// Event payloads pushed onto the world event queue. The ecs event type for
// each is the matching Event* constant.

const (
	EventChoiceRequested = "choice_requested"
	EventPickupCollected = "pickup_collected"
	EventLevelReset      = "level_reset"
	EventPowerUpApplied  = "powerup_applied"
	EventPowerUpExpired  = "powerup_expired"
	EventOutcomeReached  = "outcome_reached"
)

type ChoiceRequested struct {
	Context  string
	TriggerX float64
}

type PickupCollected struct {
	X, Y      float64
	Collected int
}

type LevelReset struct {
	Reason string
}

type PowerUpApplied struct {
	Chosen Choice
	Effect Effect
}

type PowerUpExpired struct {
	Effect Effect
}

type OutcomeReached struct {
	State  OutcomeState
	Reason string
}

// Reasons carried by LevelReset.
const (
	ResetReasonHazard  = "hazard"
	ResetReasonRestart = "restart"
)
