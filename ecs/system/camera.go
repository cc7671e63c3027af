package system

import (
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
)

// ActiveCamera snapshots the first camera entity for this tick.
func ActiveCamera(w *ecs.World) (placement.Camera, ecs.Entity, bool) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return placement.Camera{}, 0, false
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return placement.Camera{}, 0, false
	}
	snap := placement.NewCamera(WorldPosition(w, camEntity), WorldRotation(w, camEntity), cam.FOV, cam.Aspect)
	return snap, camEntity, true
}
