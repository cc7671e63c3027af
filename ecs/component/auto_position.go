package component

import "github.com/milk9111/camrig/placement"

// AutoPosition aligns the entity inside its parent's box once per scene_ready.
type AutoPosition struct {
	Alignment placement.Alignment
	Applied   bool
}

var AutoPositionComponent = NewComponent[AutoPosition]()
