package component

// Progress tracks collected pickups against the quota needed at GoalX.
type Progress struct {
	Collected int
	Quota     int
	GoalX     float64
}

var ProgressComponent = NewComponent[Progress]()
