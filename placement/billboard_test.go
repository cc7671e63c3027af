package placement

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceTowards(t *testing.T) {
	pos := mgl64.Vec3{1, 1, 1}
	targets := []mgl64.Vec3{
		{1, 1, 5},
		{1, 1, -4},
		{6, 1, 1},
		{-3, 2.5, 7},
		{1, 9, 1},
		{1, -3, 1},
	}

	for _, target := range targets {
		q, ok := FaceTowards(pos, target)
		require.True(t, ok)
		want := target.Sub(pos).Normalize()
		got := q.Rotate(mgl64.Vec3{0, 0, 1})
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-3, "target %v: want %v got %v", target, want, got)
		}
		assert.InDelta(t, 1, q.Len(), 1e-9)
	}
}

func TestFaceTowardsKeepsUpright(t *testing.T) {
	q, ok := FaceTowards(mgl64.Vec3{}, mgl64.Vec3{3, 0.5, -2})
	require.True(t, ok)
	up := q.Rotate(mgl64.Vec3{0, 1, 0})
	right := q.Rotate(mgl64.Vec3{1, 0, 0})
	assert.Greater(t, up.Y(), 0.0)
	assert.InDelta(t, 0, right.Y(), 1e-9)
}

func TestFaceTowardsSamePoint(t *testing.T) {
	q, ok := FaceTowards(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3})
	assert.False(t, ok)
	assert.Equal(t, mgl64.QuatIdent(), q)
}

func TestToLocalRotation(t *testing.T) {
	parent := mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0})
	world, ok := FaceTowards(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})
	require.True(t, ok)

	local := ToLocalRotation(world, parent)
	recomposed := parent.Mul(local)
	assert.True(t, recomposed.OrientationEqualThreshold(world, 1e-9))
}
