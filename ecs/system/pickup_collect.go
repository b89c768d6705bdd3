package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupCollectSystem marks pickups the actor overlaps as collected and
// counts each one exactly once.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, actor, ok := playerActor(w)
	if !ok {
		return
	}
	phys, ok := ecs.FirstValue(w, component.PhysicsComponent.Kind())
	if !ok {
		return
	}
	progress, ok := ecs.FirstValue(w, component.ProgressComponent.Kind())
	if !ok {
		return
	}

	size := phys.PickupSize
	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		if p.Collected {
			return
		}
		if !overlaps(actor.Box(), p.Box(size)) {
			return
		}
		p.Collected = true
		progress.Collected++
		pushEvent(w, component.EventPickupCollected, component.PickupCollected{X: p.X, Y: p.Y, Collected: progress.Collected})
	})
}
