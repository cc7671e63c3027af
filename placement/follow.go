package placement

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const EasingLinear = "linear"

// AnimationRequest asks the host to tween an object's position.
type AnimationRequest struct {
	Target   mgl64.Vec3
	Duration time.Duration
	Easing   string
	Loop     bool
}

// FollowState is the per-object memory of the camera follower. LastTarget only
// changes when a request is emitted.
type FollowState struct {
	LastTarget     mgl64.Vec3
	InitialY       float64
	AngleThreshold float64 // degrees
	Epsilon        float64
}

// DeriveAngle is the default follow threshold: half the horizontal field of
// view approximated as fov*aspect.
func DeriveAngle(fov, aspect float64) float64 {
	return fov * aspect / 2
}

// NewFollowState captures the initial height and resolves the threshold once.
func NewFollowState(cfg FollowConfig, cam Camera, objectPos mgl64.Vec3) FollowState {
	angle := cfg.Angle
	if angle == 0 {
		angle = DeriveAngle(cam.FOV, cam.Aspect)
	}
	eps := cfg.Epsilon
	if !finite(eps) || eps <= 0 {
		eps = DefaultFollowEpsilon
	}
	return FollowState{
		InitialY:       objectPos.Y(),
		AngleThreshold: angle,
		Epsilon:        eps,
	}
}

// AngleBetween returns the angle in degrees between a and b. A zero-length
// vector has no direction and yields 0.
func AngleBetween(a, b mgl64.Vec3) float64 {
	denom := a.Len() * b.Len()
	if denom == 0 || !finite(denom) {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// Update decides whether the object has drifted out of the camera cone. It
// returns a request, and records its target, only when the angle exceeds the
// threshold and the new target moved by more than Epsilon since the last one.
func (s *FollowState) Update(cam Camera, objectPos mgl64.Vec3, cfg FollowConfig) (AnimationRequest, bool) {
	toObject := objectPos.Sub(cam.Position)
	angle := AngleBetween(toObject, cam.Direction)

	candidate := cam.Position.Add(cam.Direction.Mul(cfg.Distance))
	if angle <= s.AngleThreshold || s.LastTarget.Sub(candidate).Len() <= s.Epsilon {
		return AnimationRequest{}, false
	}

	y := candidate.Y()
	if cfg.Horizontal {
		y = s.InitialY
	}
	s.LastTarget = candidate
	return AnimationRequest{
		Target:   mgl64.Vec3{candidate.X(), y, candidate.Z()},
		Duration: cfg.Duration,
		Easing:   EasingLinear,
	}, true
}
