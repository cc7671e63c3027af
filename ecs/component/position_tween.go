package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
)

// PositionTween animates the local position towards To. Adding a new tween
// replaces the pending one.
type PositionTween struct {
	From     mgl64.Vec3
	To       mgl64.Vec3
	Duration time.Duration
	Loop     bool

	Axes [3]*gween.Tween
}

var PositionTweenComponent = NewComponent[PositionTween]()
