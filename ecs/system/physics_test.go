package system

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

func TestPhysicsLanding(t *testing.T) {
	tests := []struct {
		name     string
		x, y, vy float64
		want     float64
		grounded bool
	}{
		{name: "inside band", x: 200, y: 141, vy: 0, want: 140, grounded: true},
		{name: "bottom of band", x: 200, y: 154, vy: 0, want: 140, grounded: true},
		{name: "below band", x: 200, y: 160, vy: 0, want: 160.6},
		{name: "above band", x: 200, y: 100, vy: 0, want: 100.6},
		{name: "rising", x: 200, y: 140, vy: -5, want: 135.6},
		{name: "touching left edge only", x: 140, y: 141, vy: 0, want: 141.6},
		{name: "ground plane", x: 600, y: 389, vy: 3, want: 390, grounded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, a, _ := testWorld(t)
			addPlatform(t, w, component.Platform{X: 200, Y: 200, W: 120, H: 20})
			a.X, a.Y, a.VY = tt.x, tt.y, tt.vy

			NewPhysicsSystem().Update(w)

			if !approx(a.Y, tt.want) {
				t.Fatalf("expected y %v, got %v", tt.want, a.Y)
			}
			if a.Grounded != tt.grounded {
				t.Fatalf("expected grounded=%v, got %+v", tt.grounded, *a)
			}
			if tt.grounded && (a.VY != 0 || a.JumpsUsed != 0) {
				t.Fatalf("expected landing to zero vy and jumps, got %+v", *a)
			}
		})
	}
}

func TestPhysicsJumpUsesEdge(t *testing.T) {
	w, a, in := testWorld(t)
	a.Grounded = true
	ps := NewPhysicsSystem()

	in.Held[input.Jump] = true
	in.Pressed[input.Jump] = true
	ps.Update(w)
	if a.JumpsUsed != 1 || !approx(a.VY, -11.4) {
		t.Fatalf("expected a jump, got %+v", *a)
	}
	if in.Pressed[input.Jump] {
		t.Fatalf("expected the edge to be consumed")
	}

	ps.Update(w)
	if a.JumpsUsed != 1 {
		t.Fatalf("expected held jump without edge to do nothing, got %d", a.JumpsUsed)
	}
}

func TestInputSystemEdges(t *testing.T) {
	w, _, in := testWorld(t)
	keys := input.KeyState{}
	is := NewInputSystem(keys, nil)

	steps := []struct {
		down    bool
		held    bool
		pressed bool
	}{
		{down: true, held: true, pressed: true},
		{down: true, held: true, pressed: false},
		{down: false, held: false, pressed: false},
		{down: true, held: true, pressed: true},
	}

	for i, step := range steps {
		if step.down {
			keys.Press("Space")
		} else {
			keys.Release("Space")
		}
		is.Update(w)
		if in.Held[input.Jump] != step.held || in.Pressed[input.Jump] != step.pressed {
			t.Fatalf("step %d: expected held=%v pressed=%v, got %v/%v", i, step.held, step.pressed, in.Held[input.Jump], in.Pressed[input.Jump])
		}
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
