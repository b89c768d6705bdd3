package component

// Patrol moves a hazard along a scripted path. Runner is evaluated with the
// seconds elapsed since the last level reset and returns an offset from the
// hazard's base position.
type Patrol struct {
	Script  string
	Runner  PatrolRunner
	Elapsed float64
}

// PatrolRunner computes a hazard offset for a point in time.
type PatrolRunner interface {
	Offset(t, baseX, baseY float64) (dx, dy float64, err error)
}

var PatrolComponent = NewComponent[Patrol]()
