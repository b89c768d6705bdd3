package component

// Trigger fires once when the actor passes X and stays inert until the
// level is reset.
type Trigger struct {
	X       float64
	Context string
	Fired   bool
}

var TriggerComponent = NewComponent[Trigger]()
