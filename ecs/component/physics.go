package component

// Physics holds the movement tuning shared by the physics systems. All
// velocities are per tick.
type Physics struct {
	JumpVelocity     float64
	MaxJumps         int
	SprintMultiplier float64
	// GroundY is the ground plane; a grounded actor's bottom edge sits on it.
	GroundY          float64
	LandingTolerance float64
	PickupSize       float64
}

var PhysicsComponent = NewComponent[Physics]()
