// Package placement holds the camera-relative placement math: viewport
// fitting, distance-normalized scaling, camera following, billboarding and
// bounding-box alignment. Everything here is a pure function of its inputs.
package placement

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrDegenerateBox = errors.New("placement: bounding box has no width or height")
	ErrNoFit         = errors.New("placement: no positive finite scale fits the viewport")
)

// FitResult is the outcome of SolveFit. Converged is false when the iteration
// cap was hit; Scale then holds the last approximation.
type FitResult struct {
	Scale      float64
	Iterations int
	Converged  bool
}

// SolveFit finds the uniform scale at which box occupies cfg.Percentage of the
// visible frame at distanceToCenter from a camera with the given vertical fov
// (degrees) and aspect ratio.
//
// With UseFrontFace the distance is measured to the box's near face, which
// itself moves with the scale being solved for, so the scale is found by
// fixed-point iteration.
func SolveFit(box Box, fov, aspect, distanceToCenter float64, cfg FitConfig, opts SolverOptions) (FitResult, error) {
	if box.Degenerate() {
		return FitResult{}, ErrDegenerateBox
	}
	if !finite(cfg.Percentage) || cfg.Percentage <= 0 {
		cfg.Percentage = DefaultPercentage
	}
	opts, _ = NormalizeSolver(opts)

	size := box.Size()
	fraction := cfg.Percentage / 100
	fovFactor := 2 * math.Tan(mgl64.DegToRad(fov)/2)

	scale, prev := 1.0, 1.0
	diff := math.Inf(1)
	iterations := 0
	for diff > opts.Tolerance && iterations < opts.MaxIterations {
		distance := distanceToCenter
		if cfg.UseFrontFace {
			distance -= scale * size.Z() / 2
		}
		visibleHeight := fovFactor * distance
		visibleWidth := visibleHeight * aspect

		byHeight := visibleHeight / size.Y() * fraction
		byWidth := visibleWidth / size.X() * fraction

		scale = math.Min(byWidth, byHeight)
		diff = math.Abs(scale - prev)
		prev = scale
		iterations++
	}

	res := FitResult{Scale: scale, Iterations: iterations, Converged: diff <= opts.Tolerance}
	if !finite(scale) || scale <= 0 {
		return res, ErrNoFit
	}
	return res, nil
}
