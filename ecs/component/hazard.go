package component

import "github.com/jakecoffman/cp"

// Hazard marks a rectangle that resets the level on overlap with the actor.
// BaseX and BaseY are the level-data position; X and Y are where the hazard
// is this tick.
type Hazard struct {
	X, Y         float64
	W, H         float64
	BaseX, BaseY float64
}

func (h Hazard) Box() cp.BB {
	return cp.NewBB(h.X, h.Y, h.X+h.W, h.Y+h.H)
}

var HazardComponent = NewComponent[Hazard]()
