package component

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys one component store in a World. Zero is never issued.
type ComponentID uint32

var (
	lastID    atomic.Uint32
	kindNames sync.Map // ComponentID -> string
)

// AnyKind lets untyped queries mix kinds of different component types.
type AnyKind interface {
	ID() ComponentID
}

// ComponentKind is the typed key for values of T.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	id := ComponentID(lastID.Add(1))
	var zero T
	kindNames.Store(id, fmt.Sprintf("%T", zero))
	return ComponentKind[T]{id: id}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// KindName returns the Go type name registered for id, for log output.
func KindName(id ComponentID) string {
	if v, ok := kindNames.Load(id); ok {
		return v.(string)
	}
	return fmt.Sprintf("kind#%d", id)
}

// ComponentHandle is declared once per component type, as a package var.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
