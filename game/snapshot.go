package game

import "github.com/milk9111/platformer/ecs/component"

// Snapshot is a copy of everything a renderer needs for one frame. It
// shares no memory with the simulation.
type Snapshot struct {
	Tick uint64

	Actor component.Actor

	LevelWidth    float64
	LevelHeight   float64
	ViewportWidth float64
	GroundY       float64
	GoalX         float64
	CameraX       float64

	Platforms []component.Platform
	Pickups   []PickupView
	Hazards   []component.Hazard
	Triggers  []component.Trigger

	TimeRemaining float64
	Collected     int
	Quota         int
	Gravity       float64

	PowerUp      component.Effect
	PowerUpLabel string
	PowerUpLeft  float64

	Outcome       component.OutcomeState
	OutcomeReason string

	Prompt Prompt
}

// PickupView is a pickup with its box size filled in.
type PickupView struct {
	X, Y      float64
	Size      float64
	Collected bool
}

// Prompt describes an open choice prompt. Text is the level's narrative
// line for the context, empty when the level has none.
type Prompt struct {
	Pending  bool
	Context  string
	Text     string
	TriggerX float64
	Choices  []component.Choice
}
