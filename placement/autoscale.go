package placement

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrZeroDistance = errors.New("placement: camera distance is zero")

// ScaleAnchor is the reference a distance-normalized scale is computed from.
// ReferenceDistance is always positive.
type ScaleAnchor struct {
	ReferenceScale    mgl64.Vec3
	ReferenceDistance float64
}

// CaptureAnchor records the object's scale and its distance to the camera.
func CaptureAnchor(originalScale, cameraPos, anchorPos mgl64.Vec3) (ScaleAnchor, error) {
	d := cameraPos.Sub(anchorPos).Len()
	if !finite(d) || d <= 0 {
		return ScaleAnchor{}, ErrZeroDistance
	}
	return ScaleAnchor{ReferenceScale: originalScale, ReferenceDistance: d}, nil
}

// ScaleAt returns the reference scale grown by the ratio of the current camera
// distance to the reference distance, times factor.
func ScaleAt(anchor ScaleAnchor, cameraPos, currentPos mgl64.Vec3, factor float64) (mgl64.Vec3, error) {
	if !finite(anchor.ReferenceDistance) || anchor.ReferenceDistance <= 0 {
		return mgl64.Vec3{}, ErrZeroDistance
	}
	ratio := cameraPos.Sub(currentPos).Len() / anchor.ReferenceDistance
	return anchor.ReferenceScale.Mul(ratio * factor), nil
}
