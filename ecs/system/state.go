package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// playerActor returns the actor and input of the tagged player entity.
func playerActor(w *ecs.World) (ecs.Entity, *component.Actor, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	actor, ok := ecs.Get(w, player, component.ActorComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return player, actor, true
}

// overlaps is strict: boxes that only share an edge do not touch, unlike
// cp.BB.Intersects.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

func pushEvent(w *ecs.World, typ string, data any) {
	w.Emit(ecs.EventType(typ), data)
}
