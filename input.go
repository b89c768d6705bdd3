package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/input"
)

const stickDeadzone = 0.2

type padControl int

const (
	padNone padControl = iota
	padLeft
	padRight
	padSouth
	padWest
)

var padNames = map[string]padControl{
	"PadLeft":  padLeft,
	"PadRight": padRight,
	"PadSouth": padSouth,
	"PadWest":  padWest,
}

// deviceSource reads the keyboard and the first standard gamepad. It
// resolves binding names once so IsDown stays a map lookup per key.
type deviceSource struct {
	keys map[string]ebiten.Key
	pads map[string]padControl
}

func newDeviceSource(bindings input.Bindings) *deviceSource {
	s := &deviceSource{
		keys: make(map[string]ebiten.Key),
		pads: make(map[string]padControl),
	}
	for _, name := range bindings.Keys() {
		if pc, ok := padNames[name]; ok {
			s.pads[name] = pc
			continue
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			log.Printf("input: ignoring unknown key %q: %v", name, err)
			continue
		}
		s.keys[name] = k
	}
	return s
}

func (s *deviceSource) IsDown(name string) bool {
	if k, ok := s.keys[name]; ok {
		return ebiten.IsKeyPressed(k)
	}
	if pc, ok := s.pads[name]; ok {
		return padDown(pc)
	}
	return false
}

func padDown(pc padControl) bool {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return false
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}

	leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	switch pc {
	case padLeft:
		return leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
	case padRight:
		return leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	case padSouth:
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	case padWest:
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}
	return false
}
