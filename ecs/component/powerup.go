package component

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownChoice = errors.New("powerup: unknown choice")

// Effect is a resolved power-up. Exactly one is active at a time.
type Effect int

const (
	EffectNone Effect = iota
	EffectSpeedBoost
	EffectHighJump
	EffectLowGravity
)

// ResolvableEffects are the effects a random choice can resolve to, in the
// order a random index selects them.
var ResolvableEffects = [...]Effect{EffectSpeedBoost, EffectHighJump, EffectLowGravity}

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectSpeedBoost:
		return "SpeedBoost"
	case EffectHighJump:
		return "HighJump"
	case EffectLowGravity:
		return "LowGravity"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Choice is what the player picks at a prompt. ChoiceRandom only exists at
// selection time; it is resolved to a concrete Effect before being stored.
type Choice string

const (
	ChoiceSpeedBoost Choice = "speed_boost"
	ChoiceHighJump   Choice = "high_jump"
	ChoiceLowGravity Choice = "low_gravity"
	ChoiceRandom     Choice = "random"
)

// Choices lists every selectable choice in prompt order.
var Choices = [...]Choice{ChoiceSpeedBoost, ChoiceHighJump, ChoiceLowGravity, ChoiceRandom}

// ParseChoice maps a selection id to a Choice. Unrecognized ids are an
// error rather than a silent no-op.
func ParseChoice(id string) (Choice, error) {
	c := Choice(strings.TrimSpace(strings.ToLower(id)))
	for _, known := range Choices {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChoice, id)
}

// Effect returns the fixed effect of a non-random choice.
func (c Choice) Effect() (Effect, bool) {
	switch c {
	case ChoiceSpeedBoost:
		return EffectSpeedBoost, true
	case ChoiceHighJump:
		return EffectHighJump, true
	case ChoiceLowGravity:
		return EffectLowGravity, true
	default:
		return EffectNone, false
	}
}

// PowerUp is the active effect and how long it has left. Chosen keeps the
// id the player picked so a resolved random choice can still be labelled.
type PowerUp struct {
	Effect    Effect
	Chosen    Choice
	Remaining float64
}

// Active reports whether an effect is applied.
func (p PowerUp) Active() bool {
	return p.Effect != EffectNone
}

// Label is the display text for the active effect.
func (p PowerUp) Label() string {
	if p.Chosen == ChoiceRandom && p.Effect != EffectNone {
		return "Random: " + p.Effect.String()
	}
	return p.Effect.String()
}

var PowerUpComponent = NewComponent[PowerUp]()

// PowerUpTuning holds the constants every effect uses.
type PowerUpTuning struct {
	Duration        float64
	HighJumpImpulse float64
	LowGravity      float64
}

var PowerUpTuningComponent = NewComponent[PowerUpTuning]()
