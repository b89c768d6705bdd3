package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayer creates the actor at the spec's start position.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	initial := component.Actor{
		X:     spec.Start.X,
		Y:     spec.Start.Y,
		W:     spec.Size.W,
		H:     spec.Size.H,
		Speed: spec.MoveSpeed,
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	actor := initial
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &actor); err != nil {
		return 0, fmt.Errorf("player: add actor: %w", err)
	}
	if err := ecs.Add(w, e, component.SpawnComponent.Kind(), &component.Spawn{Initial: initial}); err != nil {
		return 0, fmt.Errorf("player: add spawn: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}
