package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// PhysicsSystem moves the actor from input, applies gravity and lands it on
// the ground plane or on top of a platform. Platforms only stop an actor
// falling onto them from above; there is no side or head collision.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	phys, ok := ecs.FirstValue(w, component.PhysicsComponent.Kind())
	if !ok {
		return
	}
	gravity, ok := ecs.FirstValue(w, component.GravityComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, a *component.Actor, in *component.Input) {
		speed := a.Speed
		if in.IsHeld(input.Sprint) || a.SprintBoost {
			speed *= phys.SprintMultiplier
		}
		if in.IsHeld(input.MoveLeft) {
			a.X -= speed
		}
		if in.IsHeld(input.MoveRight) {
			a.X += speed
		}

		if in.Pressed[input.Jump] && a.JumpsUsed < phys.MaxJumps {
			in.Consume(input.Jump)
			a.VY = phys.JumpVelocity
			a.JumpsUsed++
		}

		a.VY += gravity.Current
		a.Y += a.VY

		if a.X < 0 {
			a.X = 0
		}

		a.Grounded = false
		if a.Bottom() >= phys.GroundY {
			land(a, phys.GroundY)
		}

		// Later platforms win when more than one qualifies.
		ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
			if a.VY < 0 {
				return
			}
			if a.X+a.W <= p.X || a.X >= p.X+p.W {
				return
			}
			bottom := a.Bottom()
			if bottom >= p.Y && bottom <= p.Y+phys.LandingTolerance {
				land(a, p.Y)
			}
		})
	})
}

// land rests the actor's feet on surfaceY and restores its jumps.
func land(a *component.Actor, surfaceY float64) {
	a.Y = surfaceY - a.H
	a.VY = 0
	a.JumpsUsed = 0
	a.Grounded = true
}
