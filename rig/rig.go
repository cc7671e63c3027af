// Package rig hosts a scene: it owns the world, runs the placement systems in
// a fixed order once per tick and exposes the lifecycle hooks.
package rig

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/ecs/entity"
	"github.com/milk9111/camrig/ecs/system"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/prefabs"
	"github.com/rs/zerolog"
)

var ErrPositionConflict = errors.New("rig: entity has more than one position owner")

type Rig struct {
	World *ecs.World
	Scene *entity.Scene

	log       zerolog.Logger
	scheduler *ecs.Scheduler
	bounds    *system.BoundsCache
	scripts   *system.CameraScriptSystem
	watcher   *prefabs.Watcher
}

// New loads a scene file (or the embedded default when scenePath is empty).
func New(scenePath string, log zerolog.Logger) (*Rig, error) {
	spec, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return nil, err
	}
	if scenePath == "" {
		scenePath = prefabs.DefaultScene
	}
	return FromSpec(spec, scenePath, log)
}

// FromSpec builds a rig around an already decoded scene.
func FromSpec(spec prefabs.SceneSpec, scenePath string, log zerolog.Logger) (*Rig, error) {
	r := &Rig{log: log.With().Str("component", "rig").Logger()}
	if err := r.load(spec, scenePath); err != nil {
		return nil, err
	}

	r.bounds = system.NewBoundsCache(nil)
	r.scripts = system.NewCameraScriptSystem(log)
	r.scheduler = ecs.NewScheduler(
		r.scripts,
		system.NewFollowCameraSystem(log),
		system.NewPositionTweenSystem(),
		system.NewAutoPositionSystem(r.bounds, log),
		system.NewScaleSystem(r.bounds, log),
		system.NewBillboardSystem(),
	)
	return r, nil
}

func (r *Rig) load(spec prefabs.SceneSpec, scenePath string) error {
	w := ecs.NewWorld()
	scene, err := entity.BuildSceneSpec(w, spec, scenePath)
	if err != nil {
		return err
	}
	if err := checkOwnership(w, scene); err != nil {
		return err
	}
	for _, warn := range scene.Warnings {
		r.log.Warn().Str("source", warn.Source).Str("field", warn.Field).Str("scene", scenePath).Msg(warn.Message)
	}
	r.World = w
	r.Scene = scene
	return nil
}

// checkOwnership rejects entities that two systems would both move.
func checkOwnership(w *ecs.World, scene *entity.Scene) error {
	for _, name := range scene.Order {
		e := scene.Entities[name]
		if ecs.Has(w, e, component.AutoPositionComponent.Kind()) && ecs.Has(w, e, component.FollowCameraComponent.Kind()) {
			return fmt.Errorf("%w: %q has auto_position and follow_camera", ErrPositionConflict, name)
		}
	}
	return nil
}

// SignalReady tells the next tick that geometry is in place: alignment runs,
// boxes are measured and scale anchors are captured.
func (r *Rig) SignalReady() {
	r.World.Events().Push(ecs.Event{Type: ecs.EventSceneReady})
}

// ReloadCamera makes distance-scaled entities re-capture their anchor.
func (r *Rig) ReloadCamera() {
	r.World.Events().Push(ecs.Event{Type: ecs.EventCameraReloaded})
}

// TriggerFit re-measures and refits e on the next tick. Zero refits every
// fit entity.
func (r *Rig) TriggerFit(e ecs.Entity) {
	r.World.Events().Push(ecs.Event{Type: ecs.EventFit, Data: e})
}

// Tick applies pending file changes and advances the world by dt.
func (r *Rig) Tick(dt time.Duration) {
	r.pollWatcher()
	r.World.Advance(dt)
	r.scheduler.Update(r.World)
}

// Camera returns this tick's camera snapshot.
func (r *Rig) Camera() (placement.Camera, bool) {
	cam, _, ok := system.ActiveCamera(r.World)
	return cam, ok
}

func (r *Rig) Lookup(name string) (ecs.Entity, bool) {
	e, ok := r.Scene.Entities[name]
	return e, ok && ecs.IsAlive(r.World, e)
}

// EntityState is a world-space snapshot of one entity.
type EntityState struct {
	Name     string
	Entity   ecs.Entity
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	Box      placement.Box
	HasBox   bool
}

// Snapshot reports every entity in scene order.
func (r *Rig) Snapshot() []EntityState {
	out := make([]EntityState, 0, len(r.Scene.Order))
	var provider system.SubtreeBounds
	for _, name := range r.Scene.Order {
		e, ok := r.Lookup(name)
		if !ok {
			continue
		}
		state := EntityState{
			Name:     name,
			Entity:   e,
			Position: system.WorldPosition(r.World, e),
			Rotation: system.WorldRotation(r.World, e),
		}
		if t, ok := ecs.Get(r.World, e, component.TransformComponent.Kind()); ok {
			state.Scale = t.Scale
		}
		state.Box, state.HasBox = provider.Bounds(r.World, e)
		out = append(out, state)
	}
	return out
}
