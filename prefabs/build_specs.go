package prefabs

import (
	"gopkg.in/yaml.v3"

	"github.com/milk9111/pursuit/noise"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// SceneSpec holds the scene-wide settings.
type SceneSpec struct {
	Name       string       `yaml:"name"`
	Background *YAMLColor   `yaml:"background"`
	Width      float64      `yaml:"width"`
	Height     float64      `yaml:"height"`
	Noise      noise.Params `yaml:"noise"`
	Walker     string       `yaml:"walker"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type NoiseWalkerComponentSpec struct {
	XOffset float64 `yaml:"x_offset"`
	YOffset float64 `yaml:"y_offset"`
	Step    float64 `yaml:"step"`
}

type PursuerComponentSpec struct {
	Target   string     `yaml:"target"`
	Accel    float64    `yaml:"accel"`
	MaxSpeed float64    `yaml:"max_speed"`
	Up       *PointSpec `yaml:"up"`
}

type RingSpec struct {
	Diameter    float64    `yaml:"diameter"`
	Fill        *YAMLColor `yaml:"fill"`
	Stroke      *YAMLColor `yaml:"stroke"`
	StrokeWidth float64    `yaml:"stroke_width"`
}

type TargetRingsComponentSpec struct {
	Rings []RingSpec `yaml:"rings"`
}

type PolygonComponentSpec struct {
	Points      []PointSpec `yaml:"points"`
	Fill        *YAMLColor  `yaml:"fill"`
	Stroke      *YAMLColor  `yaml:"stroke"`
	StrokeWidth float64     `yaml:"stroke_width"`
}
