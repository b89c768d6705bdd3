package component

import "github.com/milk9111/platformer/input"

// Input stores the per-tick state of every logical control. Pressed is an
// edge: it is only set on the tick a control goes from released to held and
// is cleared as soon as a system consumes it.
type Input struct {
	Held    [input.ControlCount]bool
	Pressed [input.ControlCount]bool
}

// IsHeld reports whether c is currently down.
func (in *Input) IsHeld(c input.Control) bool {
	if in == nil || !c.Valid() {
		return false
	}
	return in.Held[c]
}

// Consume returns the press edge for c and clears it.
func (in *Input) Consume(c input.Control) bool {
	if in == nil || !c.Valid() || !in.Pressed[c] {
		return false
	}
	in.Pressed[c] = false
	return true
}

var InputComponent = NewComponent[Input]()
