package levels

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every problem with the level at once. A level that
// fails validation would otherwise give undefined collision behaviour at
// run time.
func (l *Level) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLevel}, args...)...))
	}
	finite := func(what string, vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad("%s has non-finite value %g", what, v)
				return false
			}
		}
		return true
	}

	// Range checks below are only meaningful on finite values; NaN fails
	// every comparison.
	if finite("bounds", l.Width, l.Height, l.ViewportWidth, l.GroundY, l.GoalX, l.TimeBudget) {
		if l.Width <= 0 || l.Height <= 0 {
			bad("size must be positive, got %gx%g", l.Width, l.Height)
		}
		if l.ViewportWidth <= 0 || l.ViewportWidth > l.Width {
			bad("viewport_width %g must be in (0, width %g]", l.ViewportWidth, l.Width)
		}
		if l.GroundY <= 0 || l.GroundY > l.Height {
			bad("ground_y %g must be in (0, height %g]", l.GroundY, l.Height)
		}
		if l.GoalX <= 0 || l.GoalX >= l.Width {
			bad("goal_x %g outside level (0, %g)", l.GoalX, l.Width)
		}
		if l.TimeBudget <= 0 {
			bad("time_budget must be positive, got %g", l.TimeBudget)
		}
	}
	if l.PickupQuota < 0 || l.PickupQuota > len(l.Pickups) {
		bad("pickup_quota %d must be in [0, %d pickups]", l.PickupQuota, len(l.Pickups))
	}

	// Platforms may run past the right edge: the actor is only clamped on
	// the left, and the camera stops at the edge anyway.
	for i, p := range l.Platforms {
		if !finite(fmt.Sprintf("platform %d", i), p.X, p.Y, p.W, p.H) {
			continue
		}
		if p.W <= 0 || p.H <= 0 {
			bad("platform %d has non-positive size %gx%g", i, p.W, p.H)
		}
		if p.X < 0 {
			bad("platform %d x %g left of the level", i, p.X)
		}
	}
	for i, p := range l.Pickups {
		if !finite(fmt.Sprintf("pickup %d", i), p.X, p.Y) {
			continue
		}
		if p.X < 0 || p.X >= l.Width {
			bad("pickup %d x %g outside level", i, p.X)
		}
	}
	for i, h := range l.Hazards {
		if !finite(fmt.Sprintf("hazard %d", i), h.X, h.Y, h.W, h.H) {
			continue
		}
		if h.W <= 0 || h.H <= 0 {
			bad("hazard %d has non-positive size %gx%g", i, h.W, h.H)
		}
		if h.X < 0 || h.X >= l.Width {
			bad("hazard %d x %g outside level", i, h.X)
		}
	}
	seen := make(map[float64]int, len(l.Triggers))
	for i, t := range l.Triggers {
		if !finite(fmt.Sprintf("trigger %d", i), t.X) {
			continue
		}
		if t.X < 0 || t.X >= l.Width {
			bad("trigger %d threshold %g outside level", i, t.X)
		}
		if j, dup := seen[t.X]; dup {
			bad("trigger %d threshold %g duplicates trigger %d", i, t.X, j)
			continue
		}
		seen[t.X] = i
	}

	return errors.Join(errs...)
}
