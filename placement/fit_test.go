package placement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(side float64) Box {
	h := side / 2
	return Box{Min: mgl64.Vec3{-h, -h, -h}, Max: mgl64.Vec3{h, h, h}}
}

func TestSolveFitCenterDistance(t *testing.T) {
	box := cube(4)
	res, err := SolveFit(box, 60, 1.0, 10, FitConfig{Percentage: 100}, SolverOptions{})
	require.NoError(t, err)

	want := 2 * math.Tan(mgl64.DegToRad(30)) * 10 / 4
	assert.InDelta(t, want, res.Scale, 1e-12)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, DefaultMaxIterations)

	half, err := SolveFit(box, 60, 1.0, 10, FitConfig{Percentage: 50}, SolverOptions{})
	require.NoError(t, err)
	assert.Equal(t, res.Scale/2, half.Scale)
}

func TestSolveFitIsPure(t *testing.T) {
	box := Box{Min: mgl64.Vec3{-1, -0.5, -0.5}, Max: mgl64.Vec3{1, 0.5, 0.5}}
	cfg := FitConfig{Percentage: 80, UseFrontFace: true}

	first, err := SolveFit(box, 60, 16.0/9.0, 12, cfg, SolverOptions{})
	require.NoError(t, err)
	second, err := SolveFit(box, 60, 16.0/9.0, 12, cfg, SolverOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveFitMonotonicInPercentage(t *testing.T) {
	cases := []struct {
		name      string
		frontFace bool
		opts      SolverOptions
	}{
		{"center", false, SolverOptions{}},
		{"front_face", true, SolverOptions{Tolerance: 1e-9, MaxIterations: 1000}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prev := 0.0
			for _, pct := range []float64{10, 25, 50, 75, 100, 150} {
				res, err := SolveFit(cube(4), 60, 1.0, 10, FitConfig{Percentage: pct, UseFrontFace: c.frontFace}, c.opts)
				require.NoError(t, err, "percentage %v", pct)
				assert.GreaterOrEqual(t, res.Scale, prev, "percentage %v", pct)
				prev = res.Scale
			}
		})
	}
}

func TestSolveFitFrontFace(t *testing.T) {
	box := cube(4)
	center, err := SolveFit(box, 60, 1.0, 10, FitConfig{Percentage: 100}, SolverOptions{})
	require.NoError(t, err)
	front, err := SolveFit(box, 60, 1.0, 10, FitConfig{Percentage: 100, UseFrontFace: true}, SolverOptions{})
	require.NoError(t, err)

	assert.True(t, front.Converged)
	assert.Greater(t, front.Iterations, 1)
	assert.Less(t, front.Scale, center.Scale)

	// the result is (close to) a fixed point of the front-face relation
	fovFactor := 2 * math.Tan(mgl64.DegToRad(30))
	next := fovFactor * (10 - front.Scale*4/2) / 4
	assert.InDelta(t, front.Scale, next, DefaultTolerance)
}

func TestSolveFitWideAspectUsesHeight(t *testing.T) {
	box := cube(2)
	res, err := SolveFit(box, 90, 4, 5, FitConfig{Percentage: 100}, SolverOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Tan(mgl64.DegToRad(45))*5/2, res.Scale, 1e-9)
}

func TestSolveFitIterationCap(t *testing.T) {
	t.Run("cap_of_one", func(t *testing.T) {
		res, err := SolveFit(cube(4), 60, 1.0, 10, FitConfig{Percentage: 100, UseFrontFace: true}, SolverOptions{MaxIterations: 1})
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, 1, res.Iterations)
		assert.Greater(t, res.Scale, 0.0)
	})

	t.Run("oscillating", func(t *testing.T) {
		res, _ := SolveFit(cube(4), 60, 1.0, 10, FitConfig{Percentage: 300, UseFrontFace: true}, SolverOptions{})
		assert.False(t, res.Converged)
		assert.Equal(t, DefaultMaxIterations, res.Iterations)
	})
}

func TestSolveFitDegenerateInputs(t *testing.T) {
	cases := []struct {
		name     string
		box      Box
		distance float64
		want     error
	}{
		{"zero_width", Box{Max: mgl64.Vec3{0, 1, 1}}, 10, ErrDegenerateBox},
		{"zero_height", Box{Max: mgl64.Vec3{1, 0, 1}}, 10, ErrDegenerateBox},
		{"empty", EmptyBox(), 10, ErrDegenerateBox},
		{"zero_distance", cube(1), 0, ErrNoFit},
		{"flat_panel_is_fine", Box{Max: mgl64.Vec3{2, 1, 0}}, 10, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := SolveFit(c.box, 60, 1.0, c.distance, FitConfig{Percentage: 100}, SolverOptions{})
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestSolveFitBadPercentageFallsBack(t *testing.T) {
	want, err := SolveFit(cube(4), 60, 1, 10, FitConfig{Percentage: 100}, SolverOptions{})
	require.NoError(t, err)
	for _, pct := range []float64{0, -20, math.NaN()} {
		got, err := SolveFit(cube(4), 60, 1, 10, FitConfig{Percentage: pct}, SolverOptions{})
		require.NoError(t, err)
		assert.Equal(t, want.Scale, got.Scale)
	}
}
