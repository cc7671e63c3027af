package component

type ScaleStrategy string

const (
	ScaleFixed    ScaleStrategy = "fixed"
	ScaleDistance ScaleStrategy = "distance"
	ScaleFit      ScaleStrategy = "fit"
)

// Scaling names the single strategy that owns an entity's scale.
type Scaling struct {
	Strategy ScaleStrategy
}

var ScalingComponent = NewComponent[Scaling]()
