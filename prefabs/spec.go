package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

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

type GridSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type GlyphSpec struct {
	Glyph Glyph     `yaml:"glyph"`
	Color YAMLColor `yaml:"color"`
}

type PlayerSpec struct {
	Name       string        `yaml:"name"`
	Speed      float64       `yaml:"speed"`
	HitboxSize float64       `yaml:"hitbox_size"`
	Spawn      GridSpec      `yaml:"spawn"`
	Z          float64       `yaml:"z"`
	Sprite     GlyphSpec     `yaml:"sprite"`
	Background GlyphSpec     `yaml:"background"`
	Animation  AnimationSpec `yaml:"animation"`
}

type AnimationSpec struct {
	FrameSeconds float64 `yaml:"frame_seconds"`
	Down         []Glyph `yaml:"down"`
	Up           []Glyph `yaml:"up"`
	Left         []Glyph `yaml:"left"`
	Right        []Glyph `yaml:"right"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EncounterSpec struct {
	MinSeconds      float64 `yaml:"min_seconds"`
	MaxSeconds      float64 `yaml:"max_seconds"`
	FadeSeconds     float64 `yaml:"fade_seconds"`
	DoorFadeSeconds float64 `yaml:"door_fade_seconds"`
}

func LoadEncounterSpec() (*EncounterSpec, error) {
	spec, err := LoadSpec[EncounterSpec]("encounter.yaml")
	if err != nil {
		return nil, err
	}
	if spec.MaxSeconds < spec.MinSeconds {
		return nil, fmt.Errorf("prefabs: encounter.yaml: max_seconds %.2f below min_seconds %.2f", spec.MaxSeconds, spec.MinSeconds)
	}
	return &spec, nil
}

type EnemySpec struct {
	Type   string    `yaml:"type"`
	Glyph  Glyph     `yaml:"glyph"`
	Color  YAMLColor `yaml:"color"`
	Health int       `yaml:"health"`
	Exp    int       `yaml:"exp"`
}

type EnemyTableSpec struct {
	Scale      float64     `yaml:"scale"`
	Position   PointSpec   `yaml:"position"`
	HealthText PointSpec   `yaml:"health_text"`
	TextColor  YAMLColor   `yaml:"text_color"`
	Enemies    []EnemySpec `yaml:"enemies"`
	Script     string      `yaml:"script"`
}

// PointSpec is measured in tiles.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func LoadEnemyTableSpec() (*EnemyTableSpec, error) {
	spec, err := LoadSpec[EnemyTableSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Enemies) == 0 {
		return nil, fmt.Errorf("prefabs: enemies.yaml: no enemies defined")
	}
	return &spec, nil
}

type NineSliceSpec struct {
	UpperLeft  Glyph `yaml:"upper_left"`
	UpperRight Glyph `yaml:"upper_right"`
	LowerLeft  Glyph `yaml:"lower_left"`
	LowerRight Glyph `yaml:"lower_right"`
	Horizontal Glyph `yaml:"horizontal"`
	Vertical   Glyph `yaml:"vertical"`
	// Fill is drawn inside the border; a negative value leaves it empty.
	Fill Glyph `yaml:"fill"`
}

type MenuSpec struct {
	ButtonWidth  int       `yaml:"button_width"`
	ButtonHeight int       `yaml:"button_height"`
	Anchor       PointSpec `yaml:"anchor"`
	SlideTiles   float64   `yaml:"slide_tiles"`
	SlideSpeed   float64   `yaml:"slide_speed"`
	Idle         YAMLColor `yaml:"idle"`
	Highlight    YAMLColor `yaml:"highlight"`
	Text         YAMLColor `yaml:"text"`
}

type UISpec struct {
	NineSlice NineSliceSpec `yaml:"nine_slice"`
	Menu      MenuSpec      `yaml:"menu"`
}

func LoadUISpec() (*UISpec, error) {
	spec, err := LoadSpec[UISpec]("ui.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioSpec struct {
	Volume float64    `yaml:"volume"`
	Clips  []ClipSpec `yaml:"clips"`
}

func LoadAudioSpec() (*AudioSpec, error) {
	spec, err := LoadSpec[AudioSpec]("audio.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Glyph is a sheet index written either as a number or as a one-character
// string ("Z" is 90).
type Glyph int

func (g *Glyph) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("glyph must be a scalar")
	}
	if value.ShortTag() != "!!str" {
		n, err := strconv.Atoi(value.Value)
		if err != nil {
			return fmt.Errorf("invalid glyph %q: %w", value.Value, err)
		}
		*g = Glyph(n)
		return nil
	}
	r, size := utf8.DecodeRuneInString(value.Value)
	if size == 0 || size != len(value.Value) {
		return fmt.Errorf("glyph string must be one character: %q", value.Value)
	}
	*g = Glyph(r)
	return nil
}

type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
