package system

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/rs/zerolog"
)

// ScaleSystem owns the scale of every entity with a Scaling component and
// applies whichever strategy the entity declares.
type ScaleSystem struct {
	bounds *BoundsCache
	log    zerolog.Logger
}

func NewScaleSystem(bounds *BoundsCache, log zerolog.Logger) *ScaleSystem {
	if bounds == nil {
		bounds = NewBoundsCache(nil)
	}
	return &ScaleSystem{bounds: bounds, log: frameLogger(log, "scale")}
}

func (s *ScaleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cam, _, ok := ActiveCamera(w)
	if !ok {
		return
	}

	events := w.Events()
	ready := events.Has(ecs.EventSceneReady)
	reloaded := events.Has(ecs.EventCameraReloaded)
	refit := fitTargets(events.Filter(ecs.EventFit))

	ecs.ForEach2(w, component.ScalingComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.Scaling, t *component.Transform) {
		if sc == nil || t == nil {
			return
		}
		switch sc.Strategy {
		case component.ScaleDistance:
			s.updateDistance(w, e, t, cam, ready, reloaded)
		case component.ScaleFit:
			s.updateFit(w, e, t, cam, ready || refit.includes(e))
		}
	})
}

func (s *ScaleSystem) updateDistance(w *ecs.World, e ecs.Entity, t *component.Transform, cam placement.Camera, ready, reloaded bool) {
	as, ok := ecs.Get(w, e, component.AutoScaleComponent.Kind())
	if !ok {
		return
	}

	pos := WorldPosition(w, e)
	if ready || reloaded {
		ref := t.Scale
		if as.Captured {
			ref = as.Anchor.ReferenceScale
		}
		anchor, err := placement.CaptureAnchor(ref, cam.Position, pos)
		if err != nil {
			s.warn(w, e, err, "capture anchor")
			return
		}
		as.Anchor = anchor
		as.Captured = true
	}

	if !as.Captured || !as.Config.Enabled {
		return
	}
	scale, err := placement.ScaleAt(as.Anchor, cam.Position, pos, as.Config.Factor)
	if err != nil {
		s.warn(w, e, err, "scale at distance")
		return
	}
	t.Scale = scale
}

func (s *ScaleSystem) updateFit(w *ecs.World, e ecs.Entity, t *component.Transform, cam placement.Camera, remeasure bool) {
	fit, ok := ecs.Get(w, e, component.FitIntoViewComponent.Kind())
	if !ok {
		return
	}

	if remeasure {
		// Measure at unit scale; the solved scale replaces saved only on success.
		saved := t.Scale
		t.Scale = mgl64.Vec3{1, 1, 1}
		box, ok := s.bounds.Measure(w, e, true)
		t.Scale = saved
		if !ok {
			s.log.Warn().Uint64("entity", uint64(e)).Str("name", ecs.NameOf(w, e)).Msg("fit: nothing to measure")
			fit.Measured = false
			return
		}
		fit.Box = box
		fit.Measured = true
	} else {
		// Without a live auto-scale the fit only follows ready and fit events.
		as, ok := ecs.Get(w, e, component.AutoScaleComponent.Kind())
		if !ok || !as.Config.Enabled || !fit.Measured {
			return
		}
	}
	if !fit.Measured {
		return
	}

	distance := cam.Position.Sub(WorldPosition(w, e)).Len()
	res, err := placement.SolveFit(fit.Box, cam.FOV, cam.Aspect, distance, fit.Config, fit.Solver)
	if err != nil {
		s.warn(w, e, err, "solve fit")
		return
	}
	if !res.Converged {
		s.log.Warn().
			Uint64("entity", uint64(e)).
			Str("name", ecs.NameOf(w, e)).
			Int("iterations", res.Iterations).
			Float64("scale", res.Scale).
			Msg("fit: solver did not converge")
	}
	fit.Last = res
	t.Scale = mgl64.Vec3{res.Scale, res.Scale, res.Scale}
}

func (s *ScaleSystem) warn(w *ecs.World, e ecs.Entity, err error, op string) {
	evt := s.log.Warn().Uint64("entity", uint64(e)).Str("name", ecs.NameOf(w, e)).Err(err)
	switch {
	case errors.Is(err, placement.ErrDegenerateBox), errors.Is(err, placement.ErrNoFit), errors.Is(err, placement.ErrZeroDistance):
		evt.Msg(op + ": skipped")
	default:
		evt.Msg(op + ": failed")
	}
}

type fitSet struct {
	all      bool
	entities map[ecs.Entity]bool
}

func fitTargets(events []ecs.Event) fitSet {
	set := fitSet{entities: make(map[ecs.Entity]bool)}
	for _, evt := range events {
		target, _ := evt.Data.(ecs.Entity)
		if !target.Valid() {
			set.all = true
			continue
		}
		set.entities[target] = true
	}
	return set
}

func (f fitSet) includes(e ecs.Entity) bool {
	return f.all || f.entities[e]
}
