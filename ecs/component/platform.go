package component

// Platform is a static rectangle the actor can land on from above.
type Platform struct {
	X, Y, W, H float64
}

var PlatformComponent = NewComponent[Platform]()
