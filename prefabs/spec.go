package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/moodsprites/behavior"
)

// LoadSpec decodes a prefab into T, rejecting fields T does not declare.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := decodeStrict[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func decodeStrict[T any](data []byte) (T, error) {
	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return spec, fmt.Errorf("empty document")
		}
		return spec, err
	}
	return spec, nil
}

// GameSpec is the top-level game setup in game.yaml.
type GameSpec struct {
	SpriteCount int           `yaml:"sprite_count"`
	ScorePrefix string        `yaml:"score_prefix"`
	Camera      string        `yaml:"camera"`
	Sprite      string        `yaml:"sprite"`
	Profile     string        `yaml:"profile"`
	ScoreScript string        `yaml:"score_script"`
	Explosion   ExplosionSpec `yaml:"explosion"`
}

type ExplosionSpec struct {
	Image     string     `yaml:"image"`
	Size      float64    `yaml:"size"`
	StartSize float64    `yaml:"start_size"`
	EndSize   float64    `yaml:"end_size"`
	Speed     float64    `yaml:"speed"`
	MaxFrames int        `yaml:"max_frames"`
	Color     *YAMLColor `yaml:"color"`
}

func LoadGameSpec(name string) (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.SpriteCount < 0 {
		return nil, fmt.Errorf("prefabs: %s: sprite_count must not be negative", name)
	}
	if spec.ScorePrefix == "" {
		spec.ScorePrefix = "Score: "
	}
	if spec.Explosion.StartSize == 0 {
		spec.Explosion.StartSize = 1
	}
	if spec.Explosion.EndSize == 0 {
		spec.Explosion.EndSize = 3
	}
	if spec.Explosion.Speed == 0 {
		spec.Explosion.Speed = 3
	}
	return &spec, nil
}

type CameraSpec struct {
	Name             string        `yaml:"name"`
	Transform        TransformSpec `yaml:"transform"`
	OrthographicSize float64       `yaml:"orthographic_size"`
	PixelsPerUnit    float64       `yaml:"pixels_per_unit"`
}

func LoadCameraSpec(name string) (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.OrthographicSize <= 0 {
		return nil, fmt.Errorf("prefabs: %s: orthographic_size must be positive", name)
	}
	if spec.PixelsPerUnit <= 0 {
		spec.PixelsPerUnit = 64
	}
	return &spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// DirectionSpec defaults to horizontal and vertical movement.
type DirectionSpec struct {
	Horizontal *bool `yaml:"horizontal"`
	Vertical   *bool `yaml:"vertical"`
	Diagonal   bool  `yaml:"diagonal"`
}

func (d DirectionSpec) Directions() behavior.Directions {
	dirs := behavior.Directions{Horizontal: true, Vertical: true, Diagonal: d.Diagonal}
	if d.Horizontal != nil {
		dirs.Horizontal = *d.Horizontal
	}
	if d.Vertical != nil {
		dirs.Vertical = *d.Vertical
	}
	return dirs
}

// ProfileSpec is the yaml form of a behavior.Profile.
type ProfileSpec struct {
	Name                    string        `yaml:"name"`
	Speed                   ValueSpec     `yaml:"speed"`
	DirectionSwitchInterval ValueSpec     `yaml:"direction_switch_interval"`
	OnscreenMargins         Vec2Spec      `yaml:"onscreen_margins"`
	Direction               DirectionSpec `yaml:"direction"`
	HappyColor              YAMLColor     `yaml:"happy_color"`
	AngryColor              YAMLColor     `yaml:"angry_color"`
	AngryInterval           ValueSpec     `yaml:"angry_interval"`
	AngryDuration           ValueSpec     `yaml:"angry_duration"`
}

// Build converts the spec into a validated profile.
func (s ProfileSpec) Build() (*behavior.Profile, error) {
	required := []struct {
		name string
		v    ValueSpec
	}{
		{"speed", s.Speed},
		{"direction_switch_interval", s.DirectionSwitchInterval},
		{"angry_interval", s.AngryInterval},
		{"angry_duration", s.AngryDuration},
	}
	for _, r := range required {
		if !r.v.Set {
			return nil, fmt.Errorf("%s is required", r.name)
		}
	}

	p := &behavior.Profile{
		Name:                    s.Name,
		Speed:                   s.Speed.Value,
		DirectionSwitchInterval: s.DirectionSwitchInterval.Value,
		OnscreenMargins:         s.OnscreenMargins.Vector(),
		Directions:              s.Direction.Directions(),
		HappyColor:              s.HappyColor.Color,
		AngryColor:              s.AngryColor.Color,
		AngryInterval:           s.AngryInterval.Value,
		AngryDuration:           s.AngryDuration.Value,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func LoadProfile(name string) (*behavior.Profile, error) {
	spec, err := LoadSpec[ProfileSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(Name(name), ".yaml")
	}
	p, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return p, nil
}

// ProfileKey is the name scores are recorded under for the profile file:
// its yaml name, or the file name when the profile cannot be loaded.
func ProfileKey(name string) string {
	if p, err := LoadProfile(name); err == nil {
		return p.Name
	}
	return strings.TrimSuffix(Name(name), ".yaml")
}

// ValueSpec decodes either a scalar (fixed) or a {min, max} mapping
// (sampled on every use).
type ValueSpec struct {
	behavior.Value
	// Set reports whether the field was present in the document.
	Set bool
}

func (v *ValueSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("value must be a number: %w", err)
		}
		v.Value = behavior.Fixed(f)
		v.Set = true
		return nil
	case yaml.MappingNode:
		var raw struct {
			Min *float64 `yaml:"min"`
			Max *float64 `yaml:"max"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		if raw.Min == nil || raw.Max == nil {
			return fmt.Errorf("random value needs both min and max (line %d)", value.Line)
		}
		v.Value = behavior.Range(*raw.Min, *raw.Max)
		v.Set = true
		return v.Value.Validate()
	default:
		return fmt.Errorf("value must be a number or a {min, max} mapping (line %d)", value.Line)
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts "#rrggbb" or "#rrggbbaa"; the leading # is optional.
func ParseHexColor(raw string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %s: %w", raw, err)
		}
		return uint8(v), nil
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
