package component

import "github.com/milk9111/camrig/placement"

// AutoScale keeps the apparent size constant as the camera distance changes.
// Anchor is captured on scene_ready and again on every camera_reloaded.
type AutoScale struct {
	Config   placement.AutoScaleConfig
	Anchor   placement.ScaleAnchor
	Captured bool
}

var AutoScaleComponent = NewComponent[AutoScale]()
