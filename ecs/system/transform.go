package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
)

// WorldMatrix composes the local transforms from the root down to e.
func WorldMatrix(w *ecs.World, e ecs.Entity) mgl64.Mat4 {
	local := mgl64.Ident4()
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		local = t.Matrix()
	}
	if parent, ok := ecs.ParentOf(w, e); ok {
		return WorldMatrix(w, parent).Mul4(local)
	}
	return local
}

// WorldPosition returns e's origin in world space.
func WorldPosition(w *ecs.World, e ecs.Entity) mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, WorldMatrix(w, e))
}

// WorldRotation composes the local rotations from the root down to e.
func WorldRotation(w *ecs.World, e ecs.Entity) mgl64.Quat {
	local := mgl64.QuatIdent()
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		local = t.Rotation.Normalize()
	}
	if parent, ok := ecs.ParentOf(w, e); ok {
		return WorldRotation(w, parent).Mul(local)
	}
	return local
}

// ToParentSpace converts a world point into the local space of e's parent.
func ToParentSpace(w *ecs.World, e ecs.Entity, p mgl64.Vec3) mgl64.Vec3 {
	parent, ok := ecs.ParentOf(w, e)
	if !ok {
		return p
	}
	return mgl64.TransformCoordinate(p, WorldMatrix(w, parent).Inv())
}
