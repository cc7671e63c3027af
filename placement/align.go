package placement

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type HAlign string

const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

// Alignment places an element inside its parent's bounding box.
type Alignment struct {
	Horizontal HAlign
	Vertical   VAlign
	ZIndex     float64
}

// ParseAlignment validates user supplied alignment values. Empty values mean
// center. If either axis is invalid both fall back to center together.
func ParseAlignment(h, v string, zIndex float64) (Alignment, Warnings) {
	var ws Warnings
	a := Alignment{
		Horizontal: HAlign(strings.ToLower(strings.TrimSpace(h))),
		Vertical:   VAlign(strings.ToLower(strings.TrimSpace(v))),
		ZIndex:     zIndex,
	}
	if a.Horizontal == "" {
		a.Horizontal = HAlignCenter
	}
	if a.Vertical == "" {
		a.Vertical = VAlignCenter
	}

	if !validHAlign(a.Horizontal) || !validVAlign(a.Vertical) {
		ws.Add("auto-position", "align", "invalid align value(s) h=%q v=%q; using center", h, v)
		a.Horizontal = HAlignCenter
		a.Vertical = VAlignCenter
	}
	if !finite(a.ZIndex) {
		ws.Add("auto-position", "z_index", "must be a number, got %v; using 0", zIndex)
		a.ZIndex = 0
	}
	return a, ws
}

func validHAlign(h HAlign) bool {
	switch h {
	case HAlignLeft, HAlignCenter, HAlignRight:
		return true
	}
	return false
}

func validVAlign(v VAlign) bool {
	switch v {
	case VAlignTop, VAlignCenter, VAlignBottom:
		return true
	}
	return false
}

// AlignOffset returns the element position, relative to the parent's center,
// that puts the element flush against the requested parent edges.
func AlignOffset(parentSize, elementSize mgl64.Vec3, a Alignment) mgl64.Vec3 {
	var x, y float64
	switch a.Horizontal {
	case HAlignLeft:
		x = -(parentSize.X() / 2) + elementSize.X()/2
	case HAlignRight:
		x = parentSize.X()/2 - elementSize.X()/2
	}
	switch a.Vertical {
	case VAlignTop:
		y = parentSize.Y()/2 - elementSize.Y()/2
	case VAlignBottom:
		y = -(parentSize.Y() / 2) + elementSize.Y()/2
	}
	return mgl64.Vec3{x, y, a.ZIndex}
}
