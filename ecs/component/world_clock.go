package component

// WorldClock counts down from Budget seconds.
type WorldClock struct {
	Budget    float64
	Remaining float64
}

var WorldClockComponent = NewComponent[WorldClock]()
