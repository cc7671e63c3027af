package component

import "github.com/milk9111/camrig/placement"

// FitIntoView scales the entity so its box fills a share of the viewport.
type FitIntoView struct {
	Config placement.FitConfig
	Solver placement.SolverOptions

	// Box is measured at unit scale with rotation neutralised.
	Box      placement.Box
	Measured bool
	Last     placement.FitResult
}

var FitIntoViewComponent = NewComponent[FitIntoView]()
