package component

// Camera marks the viewing entity. Its Transform supplies position and
// orientation; the camera looks down its local -Z.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
}

var CameraComponent = NewComponent[Camera]()
