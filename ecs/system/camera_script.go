package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/prefabs"
	"github.com/rs/zerolog"
)

// CameraScriptSystem drives scripted entities (usually the camera) from tengo.
// Each tick the script sees `elapsed`, `dt`, `frame` and the current
// `position`, and may assign `position` and `target` as [x, y, z] arrays.
// Setting `target` turns the entity so its -Z axis looks at it.
type CameraScriptSystem struct {
	log     zerolog.Logger
	scripts map[ecs.Entity]*cameraScriptRuntime
}

type cameraScriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	elapsed  time.Duration
	failed   bool
}

func NewCameraScriptSystem(log zerolog.Logger) *CameraScriptSystem {
	return &CameraScriptSystem{
		log:     frameLogger(log, "camera_script"),
		scripts: make(map[ecs.Entity]*cameraScriptRuntime),
	}
}

// Reload drops every compiled script whose path matches name, or all of them
// when name is empty. They are recompiled on the next tick.
func (s *CameraScriptSystem) Reload(name string) {
	for e, rt := range s.scripts {
		if name == "" || sameScript(rt.path, name) {
			delete(s.scripts, e)
		}
	}
}

func (s *CameraScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraScriptComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cs *component.CameraScript, t *component.Transform) {
		if cs == nil || t == nil || strings.TrimSpace(cs.Path) == "" {
			return
		}

		rt, err := s.runtime(e, cs.Path)
		if err != nil {
			s.log.Error().Err(err).Uint64("entity", uint64(e)).Str("script", cs.Path).Msg("camera script: load")
			return
		}
		if rt.failed {
			return
		}

		rt.elapsed += w.Delta()
		if err := rt.run(w, t); err != nil {
			// A runtime error disables the script until it is reloaded.
			rt.failed = true
			s.log.Error().Err(err).Uint64("entity", uint64(e)).Str("script", cs.Path).Msg("camera script: run")
		}
	})
}

func (s *CameraScriptSystem) runtime(e ecs.Entity, path string) (*cameraScriptRuntime, error) {
	if rt, ok := s.scripts[e]; ok && rt.path == path {
		return rt, nil
	}
	rt, err := compileCameraScript(path)
	if err != nil {
		// Cache the failure so a broken script is reported once per reload.
		s.scripts[e] = &cameraScriptRuntime{path: path, failed: true}
		return nil, err
	}
	s.scripts[e] = rt
	return rt, nil
}

func compileCameraScript(path string) (*cameraScriptRuntime, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("dt", 0.0)
	_ = script.Add("frame", 0)
	_ = script.Add("position", []interface{}{0.0, 0.0, 0.0})
	_ = script.Add("target", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return &cameraScriptRuntime{path: path, compiled: compiled}, nil
}

func (rt *cameraScriptRuntime) run(w *ecs.World, t *component.Transform) error {
	c := rt.compiled
	if err := c.Set("elapsed", rt.elapsed.Seconds()); err != nil {
		return err
	}
	if err := c.Set("dt", w.Delta().Seconds()); err != nil {
		return err
	}
	if err := c.Set("frame", int64(w.Frame())); err != nil {
		return err
	}
	if err := c.Set("position", []interface{}{t.Position[0], t.Position[1], t.Position[2]}); err != nil {
		return err
	}
	if err := c.Set("target", nil); err != nil {
		return err
	}
	if err := c.Run(); err != nil {
		return err
	}

	pos, err := vec3FromScript(c.Get("position"))
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	t.Position = pos

	if target := c.Get("target"); !target.IsUndefined() {
		look, err := vec3FromScript(target)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		// FaceTowards aims +Z, so aim it away from the target to look down -Z.
		if rot, ok := placement.FaceTowards(look, pos); ok {
			t.Rotation = rot
		}
	}
	return nil
}

func vec3FromScript(v *tengo.Variable) (mgl64.Vec3, error) {
	if v == nil || v.IsUndefined() {
		return mgl64.Vec3{}, fmt.Errorf("undefined")
	}
	arr := v.Array()
	if len(arr) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want [x, y, z], got %s", v.ValueType())
	}
	var out mgl64.Vec3
	for i, raw := range arr {
		switch n := raw.(type) {
		case float64:
			out[i] = n
		case int64:
			out[i] = float64(n)
		default:
			return mgl64.Vec3{}, fmt.Errorf("element %d is %T", i, raw)
		}
	}
	return out, nil
}

func sameScript(a, b string) bool {
	return prefabs.ScriptName(a) == prefabs.ScriptName(b)
}
