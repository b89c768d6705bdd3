package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
)

// LoadLevelToWorld creates one entity per platform, pickup, hazard and
// trigger, in level order. Iteration order matters: platforms resolve
// last-wins and triggers fire in the order they are listed.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}

	for i, p := range lvl.Platforms {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{X: p.X, Y: p.Y, W: p.W, H: p.H}); err != nil {
			return fmt.Errorf("level: platform %d: %w", i, err)
		}
	}

	for i, p := range lvl.Pickups {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{X: p.X, Y: p.Y}); err != nil {
			return fmt.Errorf("level: pickup %d: %w", i, err)
		}
	}

	for i, h := range lvl.Hazards {
		if _, err := NewHazard(w, h); err != nil {
			return fmt.Errorf("level: hazard %d: %w", i, err)
		}
	}

	for i, t := range lvl.Triggers {
		ctx := t.Context
		if ctx == "" {
			ctx = system.ContextForThreshold(t.X)
		}
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{X: t.X, Context: ctx}); err != nil {
			return fmt.Errorf("level: trigger %d: %w", i, err)
		}
	}

	return nil
}

// NewHazard creates a hazard, compiling its patrol script if it has one.
func NewHazard(w *ecs.World, spec levels.Hazard) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	hazard := &component.Hazard{
		X: spec.X, Y: spec.Y,
		W: spec.W, H: spec.H,
		BaseX: spec.X, BaseY: spec.Y,
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), hazard); err != nil {
		return 0, err
	}
	if spec.Patrol == "" {
		return e, nil
	}

	script, err := system.LoadPatrolScript(spec.Patrol)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{Script: spec.Patrol, Runner: script}); err != nil {
		return 0, err
	}
	return e, nil
}
