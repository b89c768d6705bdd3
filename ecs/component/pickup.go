package component

import "github.com/jakecoffman/cp"

// Pickup is a collectible anchored at its top-left corner. The collision box
// size comes from the Physics tuning.
type Pickup struct {
	X, Y      float64
	Collected bool
}

// Box is the size x size square anchored at the pickup.
func (p Pickup) Box(size float64) cp.BB {
	return cp.NewBB(p.X, p.Y, p.X+size, p.Y+size)
}

var PickupComponent = NewComponent[Pickup]()
