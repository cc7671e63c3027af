package entity

import (
	"fmt"

	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/prefabs"
)

// Scene is the result of building a scene spec into a world.
type Scene struct {
	Name     string
	Path     string
	Camera   ecs.Entity
	Entities map[string]ecs.Entity
	Order    []string // spec order
	Warnings placement.Warnings
}

// BuildScene loads a scene file and builds it into w.
func BuildScene(w *ecs.World, scenePath string) (*Scene, error) {
	spec, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return nil, err
	}
	return BuildSceneSpec(w, spec, scenePath)
}

// BuildSceneSpec creates every entity, then wires parents by name. On error
// nothing it created is left in the world.
func BuildSceneSpec(w *ecs.World, spec prefabs.SceneSpec, scenePath string) (*Scene, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}
	scene := &Scene{Name: spec.Name, Path: scenePath, Entities: make(map[string]ecs.Entity, len(spec.Entities))}
	created := make([]ecs.Entity, 0, len(spec.Entities))
	fail := func(err error) (*Scene, error) {
		for _, e := range created {
			ecs.DestroyEntity(w, e)
		}
		return nil, err
	}

	for i, es := range spec.Entities {
		if es.Name == "" {
			return fail(fmt.Errorf("build scene %s: entity %d has no name", scenePath, i))
		}
		if _, dup := scene.Entities[es.Name]; dup {
			return fail(fmt.Errorf("build scene %s: duplicate entity name %q", scenePath, es.Name))
		}
		ctx := &buildContext{ScenePath: scenePath}
		e, err := BuildEntity(w, es, ctx)
		if err != nil {
			return fail(fmt.Errorf("build scene %s: %w", scenePath, err))
		}
		created = append(created, e)
		scene.Entities[es.Name] = e
		scene.Order = append(scene.Order, es.Name)
		scene.Warnings.Merge(ctx.Warnings)
	}

	for _, es := range spec.Entities {
		if es.Parent == "" {
			continue
		}
		parent, ok := scene.Entities[es.Parent]
		if !ok {
			return fail(fmt.Errorf("build scene %s: %q: unknown parent %q", scenePath, es.Name, es.Parent))
		}
		if err := ecs.SetParent(w, scene.Entities[es.Name], parent); err != nil {
			return fail(fmt.Errorf("build scene %s: %q: %w", scenePath, es.Name, err))
		}
	}

	for _, es := range spec.Entities {
		e := scene.Entities[es.Name]
		if !ecs.Has(w, e, component.CameraComponent.Kind()) {
			continue
		}
		if scene.Camera.Valid() {
			scene.Warnings.Add(es.Name+".camera", "", "only one camera is used; %q is ignored", es.Name)
			continue
		}
		scene.Camera = e
	}
	if !scene.Camera.Valid() {
		return fail(fmt.Errorf("build scene %s: no entity has a camera component", scenePath))
	}
	return scene, nil
}
