package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec lists the components of an entity prefab by registry
// name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a raw component map into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	out, err := decodeStrict[T](b)
	if err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image      string     `yaml:"image"`
	AngryImage string     `yaml:"angry_image"`
	Size       float64    `yaml:"size"`
	OriginX    float64    `yaml:"origin_x"`
	OriginY    float64    `yaml:"origin_y"`
	Tint       *YAMLColor `yaml:"tint"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type PhysicsBodyComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

type BehaviorComponentSpec struct {
	Profile string `yaml:"profile"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}
