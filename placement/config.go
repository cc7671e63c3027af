package placement

import (
	"math"
	"time"
)

const (
	DefaultPercentage     = 100.0
	DefaultTolerance      = 0.05
	DefaultMaxIterations  = 100
	DefaultScaleFactor    = 1.0
	DefaultFollowDistance = 2.0
	DefaultFollowDuration = 500 * time.Millisecond
	DefaultFollowEpsilon  = 0.1
)

// FitConfig configures fit-to-viewport scaling.
type FitConfig struct {
	Percentage   float64
	UseFrontFace bool
}

// SolverOptions bounds the fixed-point iteration in SolveFit. Zero values
// select the defaults.
type SolverOptions struct {
	Tolerance     float64
	MaxIterations int
}

// AutoScaleConfig configures distance-normalized scaling.
type AutoScaleConfig struct {
	Factor  float64
	Enabled bool
}

// FollowConfig configures camera following. Angle zero means "derive from the
// camera's field of view when the follower is initialised".
type FollowConfig struct {
	Distance   float64
	Angle      float64
	Duration   time.Duration
	Horizontal bool
	Epsilon    float64
}

func DefaultFitConfig() FitConfig {
	return FitConfig{Percentage: DefaultPercentage}
}

func DefaultSolverOptions() SolverOptions {
	return SolverOptions{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

func DefaultAutoScaleConfig() AutoScaleConfig {
	return AutoScaleConfig{Factor: DefaultScaleFactor, Enabled: true}
}

func DefaultFollowConfig() FollowConfig {
	return FollowConfig{
		Distance: DefaultFollowDistance,
		Duration: DefaultFollowDuration,
		Epsilon:  DefaultFollowEpsilon,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeFit replaces a non-numeric or non-positive percentage with the default.
func NormalizeFit(cfg FitConfig) (FitConfig, Warnings) {
	var ws Warnings
	if !finite(cfg.Percentage) || cfg.Percentage <= 0 {
		ws.Add("fit-into-fov", "percentage", "must be a positive number, got %v; using %v", cfg.Percentage, DefaultPercentage)
		cfg.Percentage = DefaultPercentage
	}
	return cfg, ws
}

// NormalizeSolver fills unset options and replaces invalid ones.
func NormalizeSolver(opts SolverOptions) (SolverOptions, Warnings) {
	var ws Warnings
	switch {
	case opts.Tolerance == 0:
		opts.Tolerance = DefaultTolerance
	case !finite(opts.Tolerance) || opts.Tolerance < 0:
		ws.Add("fit-into-fov", "tolerance", "must be a positive number, got %v; using %v", opts.Tolerance, DefaultTolerance)
		opts.Tolerance = DefaultTolerance
	}
	switch {
	case opts.MaxIterations == 0:
		opts.MaxIterations = DefaultMaxIterations
	case opts.MaxIterations < 0:
		ws.Add("fit-into-fov", "max_iterations", "must be positive, got %d; using %d", opts.MaxIterations, DefaultMaxIterations)
		opts.MaxIterations = DefaultMaxIterations
	}
	return opts, ws
}

// NormalizeAutoScale replaces a non-numeric factor with the default.
func NormalizeAutoScale(cfg AutoScaleConfig) (AutoScaleConfig, Warnings) {
	var ws Warnings
	if !finite(cfg.Factor) {
		ws.Add("auto-scale", "factor", "must be a number, got %v; using %v", cfg.Factor, DefaultScaleFactor)
		cfg.Factor = DefaultScaleFactor
	}
	return cfg, ws
}

// NormalizeFollow replaces non-numeric or out of range follow settings.
func NormalizeFollow(cfg FollowConfig) (FollowConfig, Warnings) {
	var ws Warnings
	if !finite(cfg.Distance) {
		ws.Add("follow-camera", "distance", "must be a number, got %v; using %v", cfg.Distance, DefaultFollowDistance)
		cfg.Distance = DefaultFollowDistance
	}
	if !finite(cfg.Angle) || cfg.Angle < 0 {
		ws.Add("follow-camera", "angle", "must be a non-negative number, got %v; deriving from the camera", cfg.Angle)
		cfg.Angle = 0
	}
	if cfg.Duration < 0 {
		ws.Add("follow-camera", "duration", "must not be negative, got %v; using %v", cfg.Duration, DefaultFollowDuration)
		cfg.Duration = DefaultFollowDuration
	}
	switch {
	case cfg.Epsilon == 0:
		cfg.Epsilon = DefaultFollowEpsilon
	case !finite(cfg.Epsilon) || cfg.Epsilon < 0:
		ws.Add("follow-camera", "epsilon", "must be a positive number, got %v; using %v", cfg.Epsilon, DefaultFollowEpsilon)
		cfg.Epsilon = DefaultFollowEpsilon
	}
	return cfg, ws
}
