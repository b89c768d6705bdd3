package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// HazardSystem resets the level when the actor overlaps any hazard. The
// reset aborts the rest of the tick so nothing after it sees the
// pre-reset world.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, actor, ok := playerActor(w)
	if !ok {
		return
	}

	hit := false
	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if hit {
			return
		}
		hit = overlaps(actor.Box(), h.Box())
	})
	if !hit {
		return
	}

	ResetLevel(w, component.ResetReasonHazard)
	w.AbortTick()
}
