package component

// Camera is the horizontal viewport offset. There is no vertical scrolling.
type Camera struct {
	X             float64
	ViewportWidth float64
}

var CameraComponent = NewComponent[Camera]()

// LevelBounds is the size of the level in world units. The camera never
// shows anything right of Width.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
