package prefabs

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/milk9111/platformer/input"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if player.Size.W != 60 || player.Size.H != 60 {
		t.Fatalf("player size = %gx%g, want 60x60", player.Size.W, player.Size.H)
	}
	if player.MaxJumps != 2 || player.JumpVelocity != -12 {
		t.Fatalf("jump tuning = %d/%g, want 2/-12", player.MaxJumps, player.JumpVelocity)
	}

	powerUps, err := LoadPowerUpSpec()
	if err != nil {
		t.Fatalf("LoadPowerUpSpec: %v", err)
	}
	if powerUps.Duration != 5 || powerUps.LowGravity != 0.3 || powerUps.HighJumpImpulse != -18 {
		t.Fatalf("unexpected power-up tuning %+v", *powerUps)
	}
}

func TestPlayerSpecValidate(t *testing.T) {
	valid := func() PlayerSpec {
		return PlayerSpec{
			Size:             SizeSpec{W: 60, H: 60},
			MoveSpeed:        4,
			SprintMultiplier: 1.8,
			JumpVelocity:     -12,
			MaxJumps:         2,
			Gravity:          0.6,
			LandingTolerance: 15,
			PickupSize:       40,
		}
	}

	cases := []struct {
		name   string
		mutate func(*PlayerSpec)
		ok     bool
	}{
		{"valid", func(*PlayerSpec) {}, true},
		{"zero_width", func(s *PlayerSpec) { s.Size.W = 0 }, false},
		{"negative_speed", func(s *PlayerSpec) { s.MoveSpeed = -1 }, false},
		{"downward_jump", func(s *PlayerSpec) { s.JumpVelocity = 12 }, false},
		{"no_jumps", func(s *PlayerSpec) { s.MaxJumps = 0 }, false},
		{"unknown_control", func(s *PlayerSpec) { s.Controls = map[string][]string{"dash": {"X"}} }, false},
		{"nan_gravity", func(s *PlayerSpec) { s.Gravity = math.NaN() }, false},
		{"infinite_gravity", func(s *PlayerSpec) { s.Gravity = math.Inf(1) }, false},
		{"nan_start_y", func(s *PlayerSpec) { s.Start.Y = math.NaN() }, false},
		{"infinite_speed", func(s *PlayerSpec) { s.MoveSpeed = math.Inf(1) }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := valid()
			c.mutate(&spec)
			err := spec.Validate()
			if c.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("Validate error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestPowerUpSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec PowerUpSpec
		ok   bool
	}{
		{"valid", PowerUpSpec{Duration: 5, HighJumpImpulse: -18, LowGravity: 0.3}, true},
		{"no_duration", PowerUpSpec{Duration: 0, HighJumpImpulse: -18, LowGravity: 0.3}, false},
		{"nan_low_gravity", PowerUpSpec{Duration: 5, HighJumpImpulse: -18, LowGravity: math.NaN()}, false},
		{"infinite_duration", PowerUpSpec{Duration: math.Inf(1), HighJumpImpulse: -18, LowGravity: 0.3}, false},
		{"infinite_impulse", PowerUpSpec{Duration: 5, HighJumpImpulse: math.Inf(-1), LowGravity: 0.3}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if c.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("Validate error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestPlayerSpecBindingsOverrideDefaults(t *testing.T) {
	spec := PlayerSpec{Controls: map[string][]string{"jump": {"K", "Space"}}}
	b, err := spec.Bindings()
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	if got := b[input.Jump]; len(got) != 2 || got[0] != "K" {
		t.Fatalf("jump = %v, want [K Space]", got)
	}
	if got := b[input.MoveLeft]; len(got) == 0 {
		t.Fatalf("move_left lost its default bindings")
	}
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		name, dir, want string
	}{
		{"pace.tengo", scriptDir, "scripts/pace.tengo"},
		{"scripts/pace.tengo", scriptDir, "scripts/pace.tengo"},
		{"prefabs/scripts/pace.tengo", scriptDir, "scripts/pace.tengo"},
		{" player.yaml ", "", "player.yaml"},
		{"prefabs/player.yaml", "", "player.yaml"},
		{"", scriptDir, ""},
		{"../../etc/x.tengo", scriptDir, "../etc/x.tengo"},
	}
	for _, tt := range tests {
		if got := cleanPath(tt.name, tt.dir); got != tt.want {
			t.Fatalf("cleanPath(%q, %q) = %q, want %q", tt.name, tt.dir, got, tt.want)
		}
	}
}

func TestLoadRejectsEscapingNames(t *testing.T) {
	for _, name := range []string{"../../etc/passwd.tengo", "scripts/../../../x.tengo", "../go.mod"} {
		t.Run(name, func(t *testing.T) {
			load := LoadScript
			if !strings.HasSuffix(name, ".tengo") {
				load = Load
			}
			if _, err := load(name); !errors.Is(err, ErrBadPath) {
				t.Fatalf("load(%q) = %v, want ErrBadPath", name, err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := LoadScript("nope.tengo"); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
