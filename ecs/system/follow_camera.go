package system

import (
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/rs/zerolog"
)

// FollowCameraSystem moves objects back in front of the camera once they
// drift outside its cone. Moves are requested as PositionTweens.
type FollowCameraSystem struct {
	log zerolog.Logger
}

func NewFollowCameraSystem(log zerolog.Logger) *FollowCameraSystem {
	return &FollowCameraSystem{log: log.With().Str("system", "follow_camera").Logger()}
}

func (s *FollowCameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cam, camEntity, ok := ActiveCamera(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.FollowCameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, fc *component.FollowCamera, t *component.Transform) {
		if fc == nil || t == nil || e == camEntity {
			return
		}

		pos := WorldPosition(w, e)
		if !fc.Initialized {
			fc.State = placement.NewFollowState(fc.Config, cam, pos)
			fc.Initialized = true
		}

		req, ok := fc.State.Update(cam, pos, fc.Config)
		if !ok {
			return
		}

		tween := &component.PositionTween{
			From:     t.Position,
			To:       ToParentSpace(w, e, req.Target),
			Duration: req.Duration,
			Loop:     req.Loop,
		}
		if err := ecs.Add(w, e, component.PositionTweenComponent.Kind(), tween); err != nil {
			s.log.Error().Err(err).Uint64("entity", uint64(e)).Msg("follow: add tween")
			return
		}
		w.Events().Push(ecs.Event{Type: ecs.EventFollowTriggered, Data: e})
		s.log.Debug().
			Uint64("entity", uint64(e)).
			Str("name", ecs.NameOf(w, e)).
			Floats64("target", req.Target[:]).
			Dur("duration", req.Duration).
			Msg("follow: animate")
	})
}
