package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// NewGameState creates the singleton that carries the run-wide state:
// tuning, gravity, clock, outcome, progress, power-up, prompt and camera.
func NewGameState(w *ecs.World, lvl *levels.Level, player *prefabs.PlayerSpec, powerUps *prefabs.PowerUpSpec) (ecs.Entity, error) {
	if lvl == nil || player == nil || powerUps == nil {
		return 0, fmt.Errorf("game state: missing level or tuning")
	}

	e := ecs.CreateEntity(w)
	add := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("game state: add %s: %w", name, err)
		}
		return nil
	}

	if err := add("tag", ecs.Add(w, e, component.GameStateTagComponent.Kind(), &component.GameStateTag{})); err != nil {
		return 0, err
	}
	if err := add("physics", ecs.Add(w, e, component.PhysicsComponent.Kind(), &component.Physics{
		JumpVelocity:     player.JumpVelocity,
		MaxJumps:         player.MaxJumps,
		SprintMultiplier: player.SprintMultiplier,
		GroundY:          lvl.GroundY,
		LandingTolerance: player.LandingTolerance,
		PickupSize:       player.PickupSize,
	})); err != nil {
		return 0, err
	}
	if err := add("power-up tuning", ecs.Add(w, e, component.PowerUpTuningComponent.Kind(), &component.PowerUpTuning{
		Duration:        powerUps.Duration,
		HighJumpImpulse: powerUps.HighJumpImpulse,
		LowGravity:      powerUps.LowGravity,
	})); err != nil {
		return 0, err
	}
	if err := add("gravity", ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Base: player.Gravity, Current: player.Gravity})); err != nil {
		return 0, err
	}
	if err := add("clock", ecs.Add(w, e, component.WorldClockComponent.Kind(), &component.WorldClock{Budget: lvl.TimeBudget, Remaining: lvl.TimeBudget})); err != nil {
		return 0, err
	}
	if err := add("outcome", ecs.Add(w, e, component.OutcomeComponent.Kind(), &component.Outcome{State: component.OutcomeRunning})); err != nil {
		return 0, err
	}
	if err := add("progress", ecs.Add(w, e, component.ProgressComponent.Kind(), &component.Progress{Quota: lvl.PickupQuota, GoalX: lvl.GoalX})); err != nil {
		return 0, err
	}
	if err := add("power-up", ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{})); err != nil {
		return 0, err
	}
	if err := add("prompt", ecs.Add(w, e, component.ChoicePromptComponent.Kind(), &component.ChoicePrompt{})); err != nil {
		return 0, err
	}
	if err := add("camera", ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{ViewportWidth: lvl.ViewportWidth})); err != nil {
		return 0, err
	}
	if err := add("bounds", ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: lvl.Width, Height: lvl.Height})); err != nil {
		return 0, err
	}
	return e, nil
}
