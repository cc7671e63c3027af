package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
)

// BoundsProvider measures the world-space box around an entity's subtree.
type BoundsProvider interface {
	Bounds(w *ecs.World, e ecs.Entity) (placement.Box, bool)
}

// SubtreeBounds unions every Mesh in the subtree after world transforms.
type SubtreeBounds struct{}

func (SubtreeBounds) Bounds(w *ecs.World, e ecs.Entity) (placement.Box, bool) {
	box := placement.EmptyBox()
	for _, n := range ecs.Subtree(w, e) {
		mesh, ok := ecs.Get(w, n, component.MeshComponent.Kind())
		if !ok {
			continue
		}
		local := placement.Box{Min: mesh.Min, Max: mesh.Max}
		box = box.Union(local.Transform(WorldMatrix(w, n)))
	}
	return box, !box.Empty()
}

// BoundsCache remembers the last measurement per entity. Measurements are
// only taken on demand.
type BoundsCache struct {
	provider BoundsProvider
	boxes    map[ecs.Entity]placement.Box
}

func NewBoundsCache(provider BoundsProvider) *BoundsCache {
	if provider == nil {
		provider = SubtreeBounds{}
	}
	return &BoundsCache{provider: provider, boxes: make(map[ecs.Entity]placement.Box)}
}

// Measure recomputes e's box. With neutralizeRotation the entity's own
// rotation is cleared for the measurement and restored afterwards, so the box
// reflects the unrotated object.
func (c *BoundsCache) Measure(w *ecs.World, e ecs.Entity, neutralizeRotation bool) (placement.Box, bool) {
	if neutralizeRotation {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			saved := t.Rotation
			t.Rotation = mgl64.QuatIdent()
			defer func() { t.Rotation = saved }()
		}
	}
	box, ok := c.provider.Bounds(w, e)
	if !ok {
		delete(c.boxes, e)
		return placement.Box{}, false
	}
	c.boxes[e] = box
	return box, true
}

func (c *BoundsCache) Get(e ecs.Entity) (placement.Box, bool) {
	box, ok := c.boxes[e]
	return box, ok
}

func (c *BoundsCache) Invalidate(e ecs.Entity) {
	delete(c.boxes, e)
}

// Clear forgets every measurement, e.g. after the world is rebuilt.
func (c *BoundsCache) Clear() {
	clear(c.boxes)
}
