package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// FaceTowards returns the world rotation that points an object's local +Z axis
// from position at target, keeping +Y as close to world up as possible. It
// reports false when the two points coincide.
func FaceTowards(position, target mgl64.Vec3) (mgl64.Quat, bool) {
	z := target.Sub(position)
	if z.LenSqr() == 0 || !finite(z.LenSqr()) {
		return mgl64.QuatIdent(), false
	}
	z = z.Normalize()

	x := worldUp.Cross(z)
	if x.LenSqr() == 0 {
		// straight above or below: tilt off the up axis
		z[2] += 0.0001
		z = z.Normalize()
		x = worldUp.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize(), true
}

// ToLocalRotation expresses a world rotation in the frame of a parent whose
// world rotation is parent.
func ToLocalRotation(world, parent mgl64.Quat) mgl64.Quat {
	if math.Abs(parent.Len()-1) > 1e-9 {
		parent = parent.Normalize()
	}
	return parent.Inverse().Mul(world).Normalize()
}
