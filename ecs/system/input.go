package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem samples the key source and turns it into held and
// newly-pressed state for every logical control.
type InputSystem struct {
	source   input.Source
	bindings input.Bindings
}

func NewInputSystem(source input.Source, bindings input.Bindings) *InputSystem {
	if bindings == nil {
		bindings = input.DefaultBindings()
	}
	return &InputSystem{source: source, bindings: bindings}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var held [input.ControlCount]bool
	for c := input.Control(0); c < input.ControlCount; c++ {
		held[c] = i.bindings.Held(i.source, c)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		for c := range held {
			in.Pressed[c] = held[c] && !in.Held[c]
			in.Held[c] = held[c]
		}
	})
}
