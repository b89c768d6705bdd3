package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// TriggerSystem fires the first unfired trigger the actor has passed and
// raises a choice prompt for it. Only one prompt can be open, so at most one
// trigger fires per tick; any other passed trigger fires on the first tick
// after the prompt is answered.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem { return &TriggerSystem{} }

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, actor, ok := playerActor(w)
	if !ok {
		return
	}
	prompt, ok := ecs.FirstValue(w, component.ChoicePromptComponent.Kind())
	if !ok || prompt.Pending {
		return
	}

	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, t *component.Trigger) {
		if prompt.Pending || t.Fired || actor.X <= t.X {
			return
		}
		t.Fired = true
		*prompt = component.ChoicePrompt{Pending: true, Context: t.Context, TriggerX: t.X}
		pushEvent(w, component.EventChoiceRequested, component.ChoiceRequested{Context: t.Context, TriggerX: t.X})
	})
}

// Context tags for triggers that don't name one, by threshold position.
const (
	ContextTreasureBox     = "treasure_box"
	ContextAnotherTreasure = "another_treasure"
	ContextLastGift        = "last_gift"
)

// ContextForThreshold buckets a trigger threshold into its default prompt
// context.
func ContextForThreshold(x float64) string {
	switch {
	case x < 1000:
		return ContextTreasureBox
	case x < 2000:
		return ContextAnotherTreasure
	default:
		return ContextLastGift
	}
}
