package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SceneSpec is a whole scene: the camera is just an entity with a camera
// component.
type SceneSpec struct {
	Name     string            `yaml:"name"`
	Entities []EntityBuildSpec `yaml:"entities"`
}

// EntityBuildSpec names an entity, its parent (by name) and its components
// keyed by registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Parent     string         `yaml:"parent"`
	Components map[string]any `yaml:"components"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	if filename == "" {
		filename = DefaultScene
	}
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return SceneSpec{}, err
	}
	if len(spec.Entities) == 0 {
		return SceneSpec{}, fmt.Errorf("prefabs: scene %s defines no entities", filename)
	}
	return spec, nil
}
