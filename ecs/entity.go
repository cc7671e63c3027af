package ecs

import "fmt"

// Entity is a generational handle: slot in the low half, generation in the
// high half. A handle outlives its entity but stops resolving once the slot
// is reused. The zero Entity is never handed out.
type Entity uint64

type slot uint32

func newEntity(s slot, gen uint32) Entity {
	return Entity(uint64(gen)<<32 | uint64(s))
}

func (e Entity) slot() slot { return slot(e) }

func (e Entity) gen() uint32 { return uint32(e >> 32) }

func (e Entity) Valid() bool { return e.slot() != 0 }

func (e Entity) String() string {
	return fmt.Sprintf("#%d.%d", e.slot(), e.gen())
}
