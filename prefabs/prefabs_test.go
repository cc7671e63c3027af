package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToEmbedded(t *testing.T) {
	data, err := Load("demo.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: demo")

	data, err = LoadScript("prefabs/scripts/orbit.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(data), "position =")

	_, err = Load("missing.yaml")
	assert.Error(t, err)
}

func TestLoadPrefersDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: local\nentities:\n  - name: a\n"), 0o644))

	spec, err := LoadSceneSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "local", spec.Name)
	assert.Len(t, spec.Entities, 1)
}

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec("")
	require.NoError(t, err)
	assert.Equal(t, "demo", spec.Name)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\n"), 0o644))
	_, err = LoadSceneSpec(path)
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	cases := []struct {
		in, script, scene string
	}{
		{"orbit.tengo", "orbit.tengo", "orbit.tengo"},
		{"prefabs/scripts/orbit.tengo", "orbit.tengo", "orbit.tengo"},
		{"/tmp/x/demo.yaml", "demo.yaml", "demo.yaml"},
		{"", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.script, ScriptName(tc.in))
			assert.Equal(t, tc.scene, SceneName(tc.in))
		})
	}
}

func TestDecodeComponentSpecWithDefaults(t *testing.T) {
	t.Run("missing_keys_keep_defaults", func(t *testing.T) {
		spec, err := DecodeComponentSpecWithDefaults(map[string]any{"percentage": 40}, DefaultFitIntoFOVSpec())
		require.NoError(t, err)
		assert.Equal(t, 40.0, spec.Percentage)
		assert.Equal(t, 0.05, spec.Tolerance)
		assert.Equal(t, 100, spec.MaxIterations)
	})

	t.Run("nil_is_defaults", func(t *testing.T) {
		spec, err := DecodeComponentSpecWithDefaults(nil, DefaultAutoScaleSpec())
		require.NoError(t, err)
		assert.Equal(t, DefaultAutoScaleSpec(), spec)
	})

	t.Run("vectors", func(t *testing.T) {
		spec, err := DecodeComponentSpecWithDefaults(map[string]any{"position": []any{1, 2.5, -3}}, DefaultTransformSpec())
		require.NoError(t, err)
		assert.Equal(t, Vec3Spec{1, 2.5, -3}, spec.Position)
		assert.Equal(t, Vec3Spec{1, 1, 1}, spec.Scale)
	})

	t.Run("unknown_key", func(t *testing.T) {
		_, err := DecodeComponentSpec[AutoScaleComponentSpec](map[string]any{"factr": 2})
		assert.Error(t, err)
	})
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	scene := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scene, []byte("name: x"), 0o644))

	script := filepath.Join(dir, "path.tengo")
	require.NoError(t, os.WriteFile(script, []byte("position := [0, 0, 0]"), 0o644))

	got := make(map[string]ChangeKind)
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case c := <-w.Changes:
			got[c.Path] = c.Kind
		case <-timeout:
			t.Fatalf("only saw %v", got)
		}
	}
	assert.Equal(t, map[string]ChangeKind{scene: ChangeScene, script: ChangeScript}, got)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestClassifyPath(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"scenes/demo.yaml", ChangeScene, true},
		{"DEMO.YML", ChangeScene, true},
		{"scripts/orbit.tengo", ChangeScript, true},
		{"scripts/orbit.lua", 0, false},
		{"README", 0, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			kind, ok := ClassifyPath(c.path)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.kind, kind)
		})
	}
}
