package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box in world space.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyBox returns a box that any point expands into.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// BoxFromPoints returns the smallest box containing pts.
func BoxFromPoints(pts ...mgl64.Vec3) Box {
	b := EmptyBox()
	for _, p := range pts {
		b = b.ExpandByPoint(p)
	}
	return b
}

// Empty reports whether the box contains no point at all.
func (b Box) Empty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Size returns the per-axis extent, or zero for an empty box.
func (b Box) Size() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint, or zero for an empty box.
func (b Box) Center() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Degenerate reports whether the box has no usable width or height. Depth may
// be zero (flat panels are common); width and height may not.
func (b Box) Degenerate() bool {
	size := b.Size()
	for _, v := range []float64{size.X(), size.Y(), size.Z()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return size.X() <= 0 || size.Y() <= 0
}

func (b Box) ExpandByPoint(p mgl64.Vec3) Box {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

func (b Box) Union(o Box) Box {
	if o.Empty() {
		return b
	}
	return b.ExpandByPoint(o.Min).ExpandByPoint(o.Max)
}

// Corners returns the eight corners of a non-empty box.
func (b Box) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		out[i] = c
	}
	return out
}

// Transform returns the axis-aligned box around b's corners after applying m.
func (b Box) Transform(m mgl64.Mat4) Box {
	if b.Empty() {
		return b
	}
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.ExpandByPoint(mgl64.TransformCoordinate(c, m))
	}
	return out
}
