package system

import (
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PositionTweenSystem advances PositionTweens by the world's tick delta and
// removes them when they finish.
type PositionTweenSystem struct{}

func NewPositionTweenSystem() *PositionTweenSystem { return &PositionTweenSystem{} }

func (s *PositionTweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := float32(w.Delta().Seconds())
	var done []ecs.Entity
	ecs.ForEach2(w, component.PositionTweenComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pt *component.PositionTween, t *component.Transform) {
		if pt == nil || t == nil {
			return
		}

		if pt.Duration <= 0 {
			t.Position = pt.To
			done = append(done, e)
			return
		}

		if pt.Axes[0] == nil {
			seconds := float32(pt.Duration.Seconds())
			for i := range pt.Axes {
				pt.Axes[i] = gween.New(float32(pt.From[i]), float32(pt.To[i]), seconds, ease.Linear)
			}
		}

		finished := true
		for i, axis := range pt.Axes {
			v, ok := axis.Update(dt)
			t.Position[i] = float64(v)
			finished = finished && ok
		}
		if !finished {
			return
		}

		// Land exactly on the target; float32 tweening loses precision.
		t.Position = pt.To
		if pt.Loop {
			for _, axis := range pt.Axes {
				axis.Reset()
			}
			return
		}
		done = append(done, e)
	})

	for _, e := range done {
		ecs.Remove(w, e, component.PositionTweenComponent.Kind())
	}
}
