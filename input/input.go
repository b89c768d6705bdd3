// Package input maps physical keys onto the logical controls the simulation
// reads. It knows nothing about any windowing library; hosts adapt their key
// state to Source.
package input

import (
	"fmt"
	"strings"
)

// Control is a logical game control.
type Control int

const (
	MoveLeft Control = iota
	MoveRight
	Jump
	Sprint

	ControlCount // must stay last
)

var controlNames = [ControlCount]string{
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	Jump:      "jump",
	Sprint:    "sprint",
}

func (c Control) Valid() bool {
	return c >= 0 && c < ControlCount
}

func (c Control) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Control(%d)", int(c))
	}
	return controlNames[c]
}

// ParseControl maps a config name such as "jump" to its Control.
func ParseControl(name string) (Control, error) {
	n := strings.TrimSpace(strings.ToLower(name))
	for c, cn := range controlNames {
		if cn == n {
			return Control(c), nil
		}
	}
	return 0, fmt.Errorf("input: unknown control %q", name)
}

// Source reports whether a physical key is down. Key names follow the
// host's naming, e.g. "A", "ArrowLeft", "Space", "Shift".
type Source interface {
	IsDown(key string) bool
}

// Bindings maps every control to the physical keys that drive it. A control
// is held while any of its keys is held.
type Bindings map[Control][]string

// DefaultBindings returns WASD/arrow-key bindings with space as an extra
// jump key and shift for sprint.
func DefaultBindings() Bindings {
	return Bindings{
		MoveLeft:  {"A", "ArrowLeft"},
		MoveRight: {"D", "ArrowRight"},
		Jump:      {"W", "ArrowUp", "Space"},
		Sprint:    {"Shift"},
	}
}

// Held reports whether any key bound to c is down in src.
func (b Bindings) Held(src Source, c Control) bool {
	if src == nil {
		return false
	}
	for _, key := range b[c] {
		if src.IsDown(key) {
			return true
		}
	}
	return false
}

// Keys returns the distinct keys bound to any control.
func (b Bindings) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for c := Control(0); c < ControlCount; c++ {
		for _, k := range b[c] {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// Merge returns b with every control present in override replaced.
func (b Bindings) Merge(override Bindings) Bindings {
	out := make(Bindings, len(b))
	for c, keys := range b {
		out[c] = append([]string(nil), keys...)
	}
	for c, keys := range override {
		if len(keys) == 0 {
			continue
		}
		out[c] = append([]string(nil), keys...)
	}
	return out
}

// KeyState is an in-memory Source. Headless runs and tests drive it
// directly.
type KeyState map[string]bool

func (k KeyState) IsDown(key string) bool {
	return k[key]
}

func (k KeyState) Press(keys ...string) {
	for _, key := range keys {
		k[key] = true
	}
}

func (k KeyState) Release(keys ...string) {
	for _, key := range keys {
		delete(k, key)
	}
}
