package component

import "github.com/milk9111/camrig/placement"

type FollowCamera struct {
	Config      placement.FollowConfig
	State       placement.FollowState
	Initialized bool
}

var FollowCameraComponent = NewComponent[FollowCamera]()
