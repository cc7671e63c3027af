package placement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestBoxBasics(t *testing.T) {
	b := BoxFromPoints(mgl64.Vec3{-1, 0, 2}, mgl64.Vec3{3, 4, -2})
	assert.Equal(t, mgl64.Vec3{4, 4, 4}, b.Size())
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, b.Center())
	assert.False(t, b.Empty())
	assert.False(t, b.Degenerate())

	empty := EmptyBox()
	assert.True(t, empty.Empty())
	assert.Equal(t, mgl64.Vec3{}, empty.Size())
	assert.Equal(t, b, empty.Union(b))
	assert.Equal(t, b, b.Union(empty))
}

func TestBoxDegenerate(t *testing.T) {
	cases := []struct {
		name string
		box  Box
		want bool
	}{
		{"flat_depth", Box{Max: mgl64.Vec3{1, 1, 0}}, false},
		{"no_width", Box{Max: mgl64.Vec3{0, 1, 1}}, true},
		{"no_height", Box{Max: mgl64.Vec3{1, 0, 1}}, true},
		{"infinite", Box{Max: mgl64.Vec3{math.Inf(1), 1, 1}}, true},
		{"empty", EmptyBox(), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.box.Degenerate())
		})
	}
}

func TestBoxTransform(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	moved := b.Transform(mgl64.Translate3D(5, 0, 0).Mul4(mgl64.Scale3D(2, 2, 2)))
	assert.True(t, moved.Min.ApproxEqual(mgl64.Vec3{3, -2, -2}))
	assert.True(t, moved.Max.ApproxEqual(mgl64.Vec3{7, 2, 2}))

	rotated := Box{Max: mgl64.Vec3{2, 1, 0}}.Transform(mgl64.HomogRotate3DZ(mgl64.DegToRad(90)))
	assert.True(t, rotated.Size().ApproxEqual(mgl64.Vec3{1, 2, 0}))
}
