package component

// Gravity is the per-tick downward acceleration. Current differs from Base
// only while a power-up overrides it.
type Gravity struct {
	Base    float64
	Current float64
}

var GravityComponent = NewComponent[Gravity]()
