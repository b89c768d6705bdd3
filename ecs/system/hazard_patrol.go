package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// HazardPatrolSystem advances scripted hazards. A script that fails at run
// time is logged once and the hazard stays at its base position.
type HazardPatrolSystem struct {
	logger *log.Logger
}

func NewHazardPatrolSystem(logger *log.Logger) *HazardPatrolSystem {
	return &HazardPatrolSystem{logger: logger}
}

func (s *HazardPatrolSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	dt := w.DeltaTime()
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.PatrolComponent.Kind(), func(e ecs.Entity, h *component.Hazard, p *component.Patrol) {
		if p.Runner == nil {
			return
		}
		p.Elapsed += dt

		dx, dy, err := p.Runner.Offset(p.Elapsed, h.BaseX, h.BaseY)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("patrol: hazard=%s script=%s: %v; patrol disabled", e, p.Script, err)
			}
			p.Runner = nil
			h.X, h.Y = h.BaseX, h.BaseY
			return
		}
		h.X = h.BaseX + dx
		h.Y = h.BaseY + dy
	})
}
