package placement

import "github.com/go-gl/mathgl/mgl64"

// Camera is the per-tick camera snapshot every evaluation works from. It is
// rebuilt each tick and never cached across frames.
type Camera struct {
	Position  mgl64.Vec3
	Direction mgl64.Vec3 // unit length
	FOV       float64    // vertical, degrees
	Aspect    float64    // width / height
}

// Forward is the local view axis of a camera. Cameras look down -Z.
var Forward = mgl64.Vec3{0, 0, -1}

// NewCamera derives the view direction from a world rotation.
func NewCamera(position mgl64.Vec3, rotation mgl64.Quat, fov, aspect float64) Camera {
	return Camera{
		Position:  position,
		Direction: rotation.Rotate(Forward).Normalize(),
		FOV:       fov,
		Aspect:    aspect,
	}
}
