package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an entity's local TRS relative to its parent.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

func NewTransform(position mgl64.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Matrix returns translate * rotate * scale.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.Elem()).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl64.Scale3D(t.Scale.Elem()))
}

var TransformComponent = NewComponent[Transform]()
