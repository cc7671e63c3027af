package entity

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	ScenePath string
	Name      string
	Warnings  placement.Warnings
}

func (ctx *buildContext) warn(ws placement.Warnings) {
	for _, w := range ws {
		w.Source = ctx.Name + "." + w.Source
		ctx.Warnings = append(ctx.Warnings, w)
	}
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":     addTransform,
	"mesh":          addMesh,
	"camera":        addCamera,
	"camera_script": addCameraScript,
	"billboard":     addBillboard,
	"auto_scale":    addAutoScale,
	"fit_into_fov":  addFitIntoFOV,
	"follow_camera": addFollowCamera,
	"auto_position": addAutoPosition,
}

var componentBuildOrder = []string{
	"transform",
	"mesh",
	"camera",
	"camera_script",
	"billboard",
	"auto_scale",
	"fit_into_fov",
	"follow_camera",
	"auto_position",
}

// BuildEntity creates one entity from its spec. Parents are resolved by
// BuildScene once every entity exists.
func BuildEntity(w *ecs.World, spec entityPrefabSpec, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if ctx == nil {
		ctx = &buildContext{}
	}
	ctx.Name = spec.Name

	e := ecs.CreateEntity(w)
	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add name: %w", spec.Name, err)
		}
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}
	if _, ok := remaining["transform"]; !ok {
		// every scene node carries a TRS, even pure grouping nodes
		remaining["transform"] = nil
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	if len(remaining) > 0 {
		unknown := make([]string, 0, len(remaining))
		for name := range remaining {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
	}

	if err := resolveScaling(w, e, ctx); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: scaling: %w", spec.Name, err)
	}
	return e, nil
}

// resolveScaling picks the single scale strategy. Fit-to-viewport wins over
// auto-scale; the auto-scale then only keeps the fit live every tick.
func resolveScaling(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	hasFit := ecs.Has(w, e, component.FitIntoViewComponent.Kind())
	hasAuto := ecs.Has(w, e, component.AutoScaleComponent.Kind())

	var strategy component.ScaleStrategy
	switch {
	case hasFit && hasAuto:
		var ws placement.Warnings
		ws.Add("scaling", "strategy", "auto_scale and fit_into_fov both set; fit_into_fov owns the scale")
		ctx.warn(ws)
		strategy = component.ScaleFit
	case hasFit:
		strategy = component.ScaleFit
	case hasAuto:
		strategy = component.ScaleDistance
	default:
		return nil
	}
	return ecs.Add(w, e, component.ScalingComponent.Kind(), &component.Scaling{Strategy: strategy})
}

func vec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpecWithDefaults(raw, prefabs.DefaultTransformSpec())
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: vec3(spec.Position),
		Rotation: mgl64.AnglesToQuat(
			mgl64.DegToRad(spec.Rotation[0]),
			mgl64.DegToRad(spec.Rotation[1]),
			mgl64.DegToRad(spec.Rotation[2]),
			mgl64.XYZ,
		),
		Scale: vec3(spec.Scale),
	})
}

type meshSpec = prefabs.MeshComponentSpec

func addMesh(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[meshSpec](raw)
	if err != nil {
		return fmt.Errorf("decode mesh spec: %w", err)
	}
	box := placement.BoxFromPoints(vec3(spec.Min), vec3(spec.Max))
	return ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{Min: box.Min, Max: box.Max})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpecWithDefaults(raw, prefabs.DefaultCameraSpec())
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	def := prefabs.DefaultCameraSpec()
	var ws placement.Warnings
	if !(spec.FOV > 0 && spec.FOV < 180) {
		ws.Add("camera", "fov", "fov %v out of range (0, 180), using %v", spec.FOV, def.FOV)
		spec.FOV = def.FOV
	}
	if !(spec.Aspect > 0) {
		ws.Add("camera", "aspect", "aspect %v must be positive, using %v", spec.Aspect, def.Aspect)
		spec.Aspect = def.Aspect
	}
	ctx.warn(ws)
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		FOV:    spec.FOV,
		Aspect: spec.Aspect,
		Near:   spec.Near,
		Far:    spec.Far,
	})
}

type cameraScriptSpec = prefabs.CameraScriptComponentSpec

func addCameraScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraScriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera_script spec: %w", err)
	}
	if spec.Script == "" {
		return fmt.Errorf("camera_script: script is required")
	}
	if _, err := prefabs.LoadScript(spec.Script); err != nil {
		return fmt.Errorf("camera_script: load %q: %w", spec.Script, err)
	}
	return ecs.Add(w, e, component.CameraScriptComponent.Kind(), &component.CameraScript{Path: spec.Script})
}

func addBillboard(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BillboardComponent.Kind(), &component.Billboard{})
}

type autoScaleSpec = prefabs.AutoScaleComponentSpec

func addAutoScale(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpecWithDefaults(raw, prefabs.DefaultAutoScaleSpec())
	if err != nil {
		return fmt.Errorf("decode auto_scale spec: %w", err)
	}
	cfg, ws := placement.NormalizeAutoScale(placement.AutoScaleConfig{Factor: spec.Factor, Enabled: spec.Enabled})
	ctx.warn(ws)
	return ecs.Add(w, e, component.AutoScaleComponent.Kind(), &component.AutoScale{Config: cfg})
}

type fitIntoFOVSpec = prefabs.FitIntoFOVComponentSpec

func addFitIntoFOV(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpecWithDefaults(raw, prefabs.DefaultFitIntoFOVSpec())
	if err != nil {
		return fmt.Errorf("decode fit_into_fov spec: %w", err)
	}
	cfg, ws := placement.NormalizeFit(placement.FitConfig{Percentage: spec.Percentage, UseFrontFace: spec.UseFrontFace})
	ctx.warn(ws)
	opts, ws := placement.NormalizeSolver(placement.SolverOptions{Tolerance: spec.Tolerance, MaxIterations: spec.MaxIterations})
	ctx.warn(ws)
	return ecs.Add(w, e, component.FitIntoViewComponent.Kind(), &component.FitIntoView{Config: cfg, Solver: opts})
}

type followCameraSpec = prefabs.FollowCameraComponentSpec

func addFollowCamera(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpecWithDefaults(raw, prefabs.DefaultFollowCameraSpec())
	if err != nil {
		return fmt.Errorf("decode follow_camera spec: %w", err)
	}
	ms := spec.Duration
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		ms = -1
	}
	cfg, ws := placement.NormalizeFollow(placement.FollowConfig{
		Distance:   spec.Distance,
		Angle:      spec.Angle,
		Duration:   time.Duration(ms * float64(time.Millisecond)),
		Horizontal: spec.Horizontal,
		Epsilon:    placement.DefaultFollowEpsilon,
	})
	ctx.warn(ws)
	return ecs.Add(w, e, component.FollowCameraComponent.Kind(), &component.FollowCamera{Config: cfg})
}

type autoPositionSpec = prefabs.AutoPositionComponentSpec

func addAutoPosition(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpecWithDefaults(raw, prefabs.DefaultAutoPositionSpec())
	if err != nil {
		return fmt.Errorf("decode auto_position spec: %w", err)
	}
	align, ws := placement.ParseAlignment(spec.HAlign, spec.VAlign, spec.ZIndex)
	ctx.warn(ws)
	return ecs.Add(w, e, component.AutoPositionComponent.Kind(), &component.AutoPosition{Alignment: align})
}
