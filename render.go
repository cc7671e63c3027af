package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/ecs/system"
	"github.com/milk9111/camrig/rig"
)

// viewport maps world points onto the screen through the active camera.
type viewport struct {
	viewProj      mgl64.Mat4
	width, height float64
}

func newViewport(r *rig.Rig, width, height float64) (viewport, bool) {
	cam, ok := ecs.Get(r.World, r.Scene.Camera, component.CameraComponent.Kind())
	if !ok {
		return viewport{}, false
	}
	near, far := cam.Near, cam.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 1000
	}
	proj := mgl64.Perspective(mgl64.DegToRad(cam.FOV), width/height, near, far)
	view := system.WorldMatrix(r.World, r.Scene.Camera).Inv()
	return viewport{viewProj: proj.Mul4(view), width: width, height: height}, true
}

// project returns screen coordinates for p, or false when p is behind the camera.
func (v viewport) project(p mgl64.Vec3) (float64, float64, bool) {
	clip := v.viewProj.Mul4x1(p.Vec4(1))
	if clip[3] <= 1e-6 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	x := (ndc[0] + 1) * 0.5 * v.width
	y := (1 - ndc[1]) * 0.5 * v.height
	return x, y, true
}

func worldMatrix(r *rig.Rig, e ecs.Entity) mgl64.Mat4 {
	return system.WorldMatrix(r.World, e)
}
