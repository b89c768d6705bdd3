package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ResetLevel restores every piece of mutable level state to its initial
// value: actor, pickups, triggers, hazards, power-up, gravity, clock and any
// open prompt. The outcome is left alone; a hazard reset keeps the run going.
func ResetLevel(w *ecs.World, reason string) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.SpawnComponent.Kind(), func(_ ecs.Entity, a *component.Actor, spawn *component.Spawn) {
		*a = spawn.Initial
	})
	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		p.Collected = false
	})
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, t *component.Trigger) {
		t.Fired = false
	})
	ecs.ForEach(w, component.HazardComponent.Kind(), func(e ecs.Entity, h *component.Hazard) {
		h.X, h.Y = h.BaseX, h.BaseY
		if p, ok := ecs.Get(w, e, component.PatrolComponent.Kind()); ok {
			p.Elapsed = 0
		}
	})

	if powerUp, ok := ecs.FirstValue(w, component.PowerUpComponent.Kind()); ok {
		*powerUp = component.PowerUp{}
	}
	if gravity, ok := ecs.FirstValue(w, component.GravityComponent.Kind()); ok {
		gravity.Current = gravity.Base
	}
	if clock, ok := ecs.FirstValue(w, component.WorldClockComponent.Kind()); ok {
		clock.Remaining = clock.Budget
	}
	if progress, ok := ecs.FirstValue(w, component.ProgressComponent.Kind()); ok {
		progress.Collected = 0
	}
	if prompt, ok := ecs.FirstValue(w, component.ChoicePromptComponent.Kind()); ok {
		*prompt = component.ChoicePrompt{}
	}

	updateCamera(w)
	pushEvent(w, component.EventLevelReset, component.LevelReset{Reason: reason})
}
