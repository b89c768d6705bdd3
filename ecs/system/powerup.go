package system

import (
	"errors"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

var (
	ErrNoRandomSource = errors.New("powerup: random choice needs a random source")
	ErrNoPlayer       = errors.New("powerup: world has no player state")
)

// RandomSource picks the effect a random choice resolves to. *rand.Rand from
// math/rand/v2 satisfies it; tests pass a fixed sequence.
type RandomSource interface {
	IntN(n int) int
}

// ApplyChoice replaces the active power-up with the one choice selects. The
// previous effect's overrides are cleared first, so effects never stack.
func ApplyChoice(w *ecs.World, choice component.Choice, rng RandomSource) (component.Effect, error) {
	choice, err := component.ParseChoice(string(choice))
	if err != nil {
		return component.EffectNone, err
	}

	effect, fixed := choice.Effect()
	if !fixed {
		if rng == nil {
			return component.EffectNone, ErrNoRandomSource
		}
		effect = component.ResolvableEffects[rng.IntN(len(component.ResolvableEffects))]
	}

	_, actor, ok := playerActor(w)
	if !ok {
		return component.EffectNone, ErrNoPlayer
	}
	gravity, _ := ecs.FirstValue(w, component.GravityComponent.Kind())
	tuning, _ := ecs.FirstValue(w, component.PowerUpTuningComponent.Kind())
	powerUp, _ := ecs.FirstValue(w, component.PowerUpComponent.Kind())
	if gravity == nil || tuning == nil || powerUp == nil {
		return component.EffectNone, ErrNoPlayer
	}

	clearEffect(actor, gravity)

	switch effect {
	case component.EffectSpeedBoost:
		actor.SprintBoost = true
	case component.EffectHighJump:
		actor.VY = tuning.HighJumpImpulse
	case component.EffectLowGravity:
		gravity.Current = tuning.LowGravity
	}

	*powerUp = component.PowerUp{Effect: effect, Chosen: choice, Remaining: tuning.Duration}
	pushEvent(w, component.EventPowerUpApplied, component.PowerUpApplied{Chosen: choice, Effect: effect})
	return effect, nil
}

func clearEffect(actor *component.Actor, gravity *component.Gravity) {
	actor.SprintBoost = false
	gravity.Current = gravity.Base
}

// PowerUpSystem counts the active power-up down and reverts its overrides
// when it runs out.
type PowerUpSystem struct{}

func NewPowerUpSystem() *PowerUpSystem { return &PowerUpSystem{} }

func (s *PowerUpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	powerUp, ok := ecs.FirstValue(w, component.PowerUpComponent.Kind())
	if !ok || !powerUp.Active() {
		return
	}

	powerUp.Remaining -= w.DeltaTime()
	if powerUp.Remaining > 0 {
		return
	}

	expired := powerUp.Effect
	*powerUp = component.PowerUp{}
	if _, actor, ok := playerActor(w); ok {
		actor.SprintBoost = false
	}
	if gravity, ok := ecs.FirstValue(w, component.GravityComponent.Kind()); ok {
		gravity.Current = gravity.Base
	}
	pushEvent(w, component.EventPowerUpExpired, component.PowerUpExpired{Effect: expired})
}
