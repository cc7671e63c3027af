package entity

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseScene(t *testing.T, src string) prefabs.SceneSpec {
	t.Helper()
	var spec prefabs.SceneSpec
	require.NoError(t, yaml.Unmarshal([]byte(src), &spec))
	return spec
}

const cameraYAML = `
  - name: camera
    components:
      transform: {position: [0, 0, 5]}
      camera: {fov: 60, aspect: 1.5}
`

func TestBuildDefaultScene(t *testing.T) {
	w := ecs.NewWorld()
	scene, err := BuildScene(w, "")
	require.NoError(t, err)

	assert.Equal(t, "demo", scene.Name)
	assert.Equal(t, scene.Entities["camera"], scene.Camera)
	assert.Empty(t, scene.Warnings)

	badge := scene.Entities["badge"]
	parent, ok := ecs.ParentOf(w, badge)
	require.True(t, ok)
	assert.Equal(t, scene.Entities["panel"], parent)

	sc, ok := ecs.Get(w, scene.Entities["panel"], component.ScalingComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ScaleFit, sc.Strategy)

	sc, ok = ecs.Get(w, scene.Entities["marker"], component.ScalingComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ScaleDistance, sc.Strategy)

	assert.False(t, ecs.Has(w, badge, component.ScalingComponent.Kind()))
}

func TestBuildSceneDefaults(t *testing.T) {
	w := ecs.NewWorld()
	spec := parseScene(t, "name: defaults\nentities:"+cameraYAML+`
  - name: thing
    components:
      auto_scale:
      fit_into_fov: {}
      follow_camera: {}
      auto_position: {}
`)
	scene, err := BuildSceneSpec(w, spec, "defaults.yaml")
	require.NoError(t, err)
	e := scene.Entities["thing"]

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok, "a transform is added when none is declared")
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, tr.Scale)

	as, _ := ecs.Get(w, e, component.AutoScaleComponent.Kind())
	assert.Equal(t, placement.DefaultAutoScaleConfig(), as.Config)

	fit, _ := ecs.Get(w, e, component.FitIntoViewComponent.Kind())
	assert.Equal(t, placement.DefaultFitConfig(), fit.Config)
	assert.Equal(t, placement.DefaultSolverOptions(), fit.Solver)

	fc, _ := ecs.Get(w, e, component.FollowCameraComponent.Kind())
	assert.Equal(t, 2.0, fc.Config.Distance)
	assert.Equal(t, 500*time.Millisecond, fc.Config.Duration)
	assert.Zero(t, fc.Config.Angle)
	assert.False(t, fc.Config.Horizontal)

	ap, _ := ecs.Get(w, e, component.AutoPositionComponent.Kind())
	assert.Equal(t, placement.HAlignCenter, ap.Alignment.Horizontal)
	assert.Equal(t, placement.VAlignCenter, ap.Alignment.Vertical)

	sc, _ := ecs.Get(w, e, component.ScalingComponent.Kind())
	assert.Equal(t, component.ScaleFit, sc.Strategy)
	require.Len(t, scene.Warnings, 1, "auto_scale with fit_into_fov is reported")
	assert.Equal(t, "thing.scaling", scene.Warnings[0].Source)
}

func TestBuildSceneInvalidValuesWarn(t *testing.T) {
	w := ecs.NewWorld()
	spec := parseScene(t, "name: invalid\nentities:"+cameraYAML+`
  - name: thing
    components:
      transform:
        rotation: [0, 90, 0]
      fit_into_fov: {percentage: -5, max_iterations: -1}
      auto_position: {h_align: middle, v_align: TOP, z_index: .nan}
      follow_camera: {duration: 250, angle: 45, horizontal: true}
`)
	scene, err := BuildSceneSpec(w, spec, "invalid.yaml")
	require.NoError(t, err)
	e := scene.Entities["thing"]

	fields := make([]string, 0, len(scene.Warnings))
	for _, warn := range scene.Warnings {
		fields = append(fields, warn.Field)
	}
	assert.ElementsMatch(t, []string{"percentage", "max_iterations", "align", "z_index"}, fields)

	fit, _ := ecs.Get(w, e, component.FitIntoViewComponent.Kind())
	assert.Equal(t, 100.0, fit.Config.Percentage)
	assert.Equal(t, placement.DefaultMaxIterations, fit.Solver.MaxIterations)

	ap, _ := ecs.Get(w, e, component.AutoPositionComponent.Kind())
	assert.Equal(t, placement.HAlignCenter, ap.Alignment.Horizontal)
	assert.Equal(t, placement.VAlignCenter, ap.Alignment.Vertical, "one bad axis resets both")
	assert.False(t, math.IsNaN(ap.Alignment.ZIndex))

	fc, _ := ecs.Get(w, e, component.FollowCameraComponent.Kind())
	assert.Equal(t, 250*time.Millisecond, fc.Config.Duration)
	assert.Equal(t, 45.0, fc.Config.Angle)
	assert.True(t, fc.Config.Horizontal)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	got := tr.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	assert.InDelta(t, 1.0, got.X(), 1e-9)
}

func TestBuildSceneErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown_component", "name: x\nentities:" + cameraYAML + "  - name: a\n    components:\n      sparkle: {}\n", `no builder for component "sparkle"`},
		{"unknown_field", "name: x\nentities:" + cameraYAML + "  - name: a\n    components:\n      auto_scale: {fudge: 2}\n", "fudge"},
		{"unknown_parent", "name: x\nentities:" + cameraYAML + "  - name: a\n    parent: ghost\n", `unknown parent "ghost"`},
		{"duplicate_name", "name: x\nentities:" + cameraYAML + "  - name: camera\n", "duplicate entity name"},
		{"no_camera", "name: x\nentities:\n  - name: a\n", "no entity has a camera"},
		{"missing_script", "name: x\nentities:" + cameraYAML + "  - name: a\n    components:\n      camera_script: {script: nope.tengo}\n", "camera_script"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildSceneSpec(w, parseScene(t, tc.yaml), tc.name+".yaml")
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.want), err.Error())
			assert.Empty(t, ecs.Entities(w), "a failed build leaves nothing behind")
		})
	}
}

func TestBuildSceneExtraCameraWarns(t *testing.T) {
	w := ecs.NewWorld()
	spec := parseScene(t, "name: two\nentities:"+cameraYAML+`
  - name: second
    components:
      camera: {fov: 500}
`)
	scene, err := BuildSceneSpec(w, spec, "two.yaml")
	require.NoError(t, err)
	assert.Equal(t, scene.Entities["camera"], scene.Camera)
	require.Len(t, scene.Warnings, 2)
	assert.Equal(t, "fov", scene.Warnings[0].Field)
}
