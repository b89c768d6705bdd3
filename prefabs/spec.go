package prefabs

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/platformer/input"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayerSpec tunes the actor and the movement rules. Velocities and
// gravity are per tick.
type PlayerSpec struct {
	Name             string              `yaml:"name"`
	Start            PointSpec           `yaml:"start"`
	Size             SizeSpec            `yaml:"size"`
	MoveSpeed        float64             `yaml:"move_speed"`
	SprintMultiplier float64             `yaml:"sprint_multiplier"`
	JumpVelocity     float64             `yaml:"jump_velocity"`
	MaxJumps         int                 `yaml:"max_jumps"`
	Gravity          float64             `yaml:"gravity"`
	LandingTolerance float64             `yaml:"landing_tolerance"`
	PickupSize       float64             `yaml:"pickup_size"`
	Controls         map[string][]string `yaml:"controls"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate() error {
	var errs []error
	if !finite(s.Start.X, s.Start.Y, s.Size.W, s.Size.H, s.MoveSpeed, s.SprintMultiplier,
		s.JumpVelocity, s.Gravity, s.LandingTolerance, s.PickupSize) {
		errs = append(errs, fmt.Errorf("%w: player numbers must be finite", ErrInvalidSpec))
	}
	if s.Size.W <= 0 || s.Size.H <= 0 {
		errs = append(errs, fmt.Errorf("%w: size must be positive, got %gx%g", ErrInvalidSpec, s.Size.W, s.Size.H))
	}
	if s.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: move_speed must not be negative", ErrInvalidSpec))
	}
	if s.SprintMultiplier < 1 {
		errs = append(errs, fmt.Errorf("%w: sprint_multiplier must be at least 1", ErrInvalidSpec))
	}
	if s.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("%w: jump_velocity must be negative (up)", ErrInvalidSpec))
	}
	if s.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("%w: max_jumps must be at least 1", ErrInvalidSpec))
	}
	if s.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("%w: gravity must be positive", ErrInvalidSpec))
	}
	if s.LandingTolerance < 0 || s.PickupSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: landing_tolerance and pickup_size must be positive", ErrInvalidSpec))
	}
	if s.Start.X < 0 {
		errs = append(errs, fmt.Errorf("%w: start.x must not be negative", ErrInvalidSpec))
	}
	if _, err := s.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Bindings returns the default bindings with any controls the spec lists
// replaced.
func (s *PlayerSpec) Bindings() (input.Bindings, error) {
	override := input.Bindings{}
	for name, keys := range s.Controls {
		c, err := input.ParseControl(name)
		if err != nil {
			return nil, fmt.Errorf("%w: controls: %w", ErrInvalidSpec, err)
		}
		override[c] = keys
	}
	return input.DefaultBindings().Merge(override), nil
}

// PowerUpSpec holds the constants shared by every power-up.
type PowerUpSpec struct {
	Duration        float64 `yaml:"duration"`
	HighJumpImpulse float64 `yaml:"high_jump_impulse"`
	LowGravity      float64 `yaml:"low_gravity"`
}

func LoadPowerUpSpec() (*PowerUpSpec, error) {
	spec, err := LoadSpec[PowerUpSpec]("powerups.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: powerups.yaml: %w", err)
	}
	return &spec, nil
}

func (s *PowerUpSpec) Validate() error {
	var errs []error
	if !finite(s.Duration, s.HighJumpImpulse, s.LowGravity) {
		errs = append(errs, fmt.Errorf("%w: power-up numbers must be finite", ErrInvalidSpec))
	}
	if s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: duration must be positive", ErrInvalidSpec))
	}
	if s.HighJumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("%w: high_jump_impulse must be negative (up)", ErrInvalidSpec))
	}
	if s.LowGravity <= 0 {
		errs = append(errs, fmt.Errorf("%w: low_gravity must be positive", ErrInvalidSpec))
	}
	return errors.Join(errs...)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
