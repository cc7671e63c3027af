package system

import (
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/rs/zerolog"
)

// AutoPositionSystem aligns elements inside their parent's bounding box. It
// only runs in ticks that carry scene_ready.
type AutoPositionSystem struct {
	bounds *BoundsCache
	log    zerolog.Logger
}

func NewAutoPositionSystem(bounds *BoundsCache, log zerolog.Logger) *AutoPositionSystem {
	if bounds == nil {
		bounds = NewBoundsCache(nil)
	}
	return &AutoPositionSystem{bounds: bounds, log: log.With().Str("system", "auto_position").Logger()}
}

func (s *AutoPositionSystem) Update(w *ecs.World) {
	if w == nil || !w.Events().Has(ecs.EventSceneReady) {
		return
	}

	ecs.ForEach2(w, component.AutoPositionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ap *component.AutoPosition, t *component.Transform) {
		if ap == nil || t == nil {
			return
		}
		parent, ok := ecs.ParentOf(w, e)
		if !ok {
			s.log.Warn().Uint64("entity", uint64(e)).Str("name", ecs.NameOf(w, e)).Msg("auto position: no parent to align against")
			return
		}

		elBox, ok := s.bounds.Measure(w, e, false)
		if !ok {
			s.log.Warn().Uint64("entity", uint64(e)).Str("name", ecs.NameOf(w, e)).Msg("auto position: element has no geometry")
			return
		}
		parentBox, ok := s.bounds.Measure(w, parent, false)
		if !ok {
			return
		}

		t.Position = placement.AlignOffset(parentBox.Size(), elBox.Size(), ap.Alignment)
		ap.Applied = true
		s.log.Debug().
			Uint64("entity", uint64(e)).
			Str("name", ecs.NameOf(w, e)).
			Floats64("position", t.Position[:]).
			Msg("auto position: aligned")
	})
}
