package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeComponentSpec decodes one entry of a components map. Unknown keys are
// rejected.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	return DecodeComponentSpecWithDefaults(raw, zero)
}

// DecodeComponentSpecWithDefaults decodes raw over defaults, so keys missing
// from the yaml keep their default values.
func DecodeComponentSpecWithDefaults[T any](raw any, defaults T) (T, error) {
	out := defaults
	if raw == nil {
		return out, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return defaults, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return defaults, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

type Vec3Spec [3]float64

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
	Rotation Vec3Spec `yaml:"rotation"` // euler degrees, XYZ order
	Scale    Vec3Spec `yaml:"scale"`
}

func DefaultTransformSpec() TransformComponentSpec {
	return TransformComponentSpec{Scale: Vec3Spec{1, 1, 1}}
}

type MeshComponentSpec struct {
	Min Vec3Spec `yaml:"min"`
	Max Vec3Spec `yaml:"max"`
}

type CameraComponentSpec struct {
	FOV    float64 `yaml:"fov"`
	Aspect float64 `yaml:"aspect"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

func DefaultCameraSpec() CameraComponentSpec {
	return CameraComponentSpec{FOV: 80, Aspect: 16.0 / 9.0, Near: 0.1, Far: 1000}
}

type CameraScriptComponentSpec struct {
	Script string `yaml:"script"`
}

type AutoScaleComponentSpec struct {
	Factor  float64 `yaml:"factor"`
	Enabled bool    `yaml:"enabled"`
}

func DefaultAutoScaleSpec() AutoScaleComponentSpec {
	return AutoScaleComponentSpec{Factor: 1, Enabled: true}
}

type FollowCameraComponentSpec struct {
	Distance   float64 `yaml:"distance"`
	Angle      float64 `yaml:"angle"`
	Duration   float64 `yaml:"duration"` // milliseconds
	Horizontal bool    `yaml:"horizontal"`
}

func DefaultFollowCameraSpec() FollowCameraComponentSpec {
	return FollowCameraComponentSpec{Distance: 2, Duration: 500}
}

type AutoPositionComponentSpec struct {
	HAlign string  `yaml:"h_align"`
	VAlign string  `yaml:"v_align"`
	ZIndex float64 `yaml:"z_index"`
}

func DefaultAutoPositionSpec() AutoPositionComponentSpec {
	return AutoPositionComponentSpec{HAlign: "center", VAlign: "center"}
}

type FitIntoFOVComponentSpec struct {
	Percentage    float64 `yaml:"percentage"`
	UseFrontFace  bool    `yaml:"use_front_face"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

func DefaultFitIntoFOVSpec() FitIntoFOVComponentSpec {
	return FitIntoFOVComponentSpec{Percentage: 100, Tolerance: 0.05, MaxIterations: 100}
}
