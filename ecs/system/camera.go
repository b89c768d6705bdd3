package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem centres the viewport on the actor, clamped to the level.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	updateCamera(w)
}

func updateCamera(w *ecs.World) {
	if w == nil {
		return
	}
	_, actor, ok := playerActor(w)
	if !ok {
		return
	}
	cam, ok := ecs.FirstValue(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.FirstValue(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	cam.X = CameraX(actor.X, actor.W, cam.ViewportWidth, bounds.Width)
}

// CameraX is the viewport offset that centres an actor at actorX of width
// actorW, kept inside [0, levelWidth-viewportWidth].
func CameraX(actorX, actorW, viewportWidth, levelWidth float64) float64 {
	return cp.Clamp(actorX-viewportWidth/2+actorW/2, 0, levelWidth-viewportWidth)
}
