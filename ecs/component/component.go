// Package component holds the plain data attached to entities. Each file
// declares one data type and the handle systems use to look it up.
package component

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// Errors returned by the ecs helpers when a component cannot be stored.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component store inside a world. IDs are process
// wide, so every world agrees on them.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind is a typed key for one component store. Two kinds of the
// same Go type are distinct stores; the zero kind is never valid.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String names the kind by its Go type, e.g. "component.Actor#3".
func (k ComponentKind[T]) String() string {
	return fmt.Sprintf("%s#%d", reflect.TypeFor[T](), k.id)
}

// ComponentHandle is what each component file exports, e.g. ActorComponent.
type ComponentHandle[T any] struct{ kind ComponentKind[T] }

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
