package component

import "github.com/jakecoffman/cp"

// Actor is the player character. X and Y are the top-left corner in level
// space; y grows downward.
type Actor struct {
	X, Y        float64
	W, H        float64
	VY          float64
	Grounded    bool
	JumpsUsed   int
	Speed       float64
	SprintBoost bool
}

// Box is the actor's collision rectangle. cp.BB is y-up, so B holds the
// top edge and T the feet.
func (a Actor) Box() cp.BB {
	return cp.NewBB(a.X, a.Y, a.X+a.W, a.Y+a.H)
}

// Bottom returns the y coordinate of the actor's feet.
func (a Actor) Bottom() float64 {
	return a.Y + a.H
}

var ActorComponent = NewComponent[Actor]()

// Spawn holds the actor record a level reset restores.
type Spawn struct {
	Initial Actor
}

var SpawnComponent = NewComponent[Spawn]()
