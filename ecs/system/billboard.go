package system

import (
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
)

// BillboardSystem turns every Billboard entity to face the active camera. It
// owns the rotation of those entities.
type BillboardSystem struct{}

func NewBillboardSystem() *BillboardSystem { return &BillboardSystem{} }

func (s *BillboardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cam, camEntity, ok := ActiveCamera(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.BillboardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Billboard, t *component.Transform) {
		if e == camEntity || t == nil {
			return
		}
		rot, ok := placement.FaceTowards(WorldPosition(w, e), cam.Position)
		if !ok {
			return
		}
		if parent, ok := ecs.ParentOf(w, e); ok {
			rot = placement.ToLocalRotation(rot, WorldRotation(w, parent))
		}
		t.Rotation = rot
	})
}
