package catalog

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind tags one obstacle silhouette. Draw routines are looked up by kind, so
// adding a new silhouette means adding a catalog entry and one draw routine.
type Kind string

const (
	KindSpike       Kind = "spike"
	KindCube        Kind = "cube"
	KindCubeOutline Kind = "cube_outline"
	KindOrb         Kind = "orb"
	KindRobot       Kind = "robot"
	KindShip        Kind = "ship"
	KindBall        Kind = "ball"
	KindWave        Kind = "wave"
	KindSpider      Kind = "spider"
	KindSwing       Kind = "swing"
	KindUFO         Kind = "ufo"
	KindStarSmall   Kind = "star_small"
	KindStarBig     Kind = "star_big"
)

var knownKinds = map[Kind]bool{
	KindSpike:       true,
	KindCube:        true,
	KindCubeOutline: true,
	KindOrb:         true,
	KindRobot:       true,
	KindShip:        true,
	KindBall:        true,
	KindWave:        true,
	KindSpider:      true,
	KindSwing:       true,
	KindUFO:         true,
	KindStarSmall:   true,
	KindStarBig:     true,
}

// Template is one immutable catalog entry. Fields are copied onto obstacles at
// spawn time and never mutated afterwards.
type Template struct {
	Kind   Kind       `yaml:"type"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
	Ground bool       `yaml:"ground"`
	Glow   bool       `yaml:"glow"`
	Filled bool       `yaml:"filled"`
}

// RGBA returns the template color, defaulting to white when unset.
func (t Template) RGBA() color.NRGBA {
	if t.Color == nil || t.Color.Color == nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	r, g, b, a := t.Color.Color.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// Load returns the obstacle catalog, preferring a disk copy over the embedded
// default so the file can be tweaked without rebuilding.
func Load() ([]Template, error) {
	data, err := readCatalog()
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) ([]Template, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("catalog: no templates defined")
	}
	for i, t := range f.Templates {
		if !knownKinds[t.Kind] {
			return nil, fmt.Errorf("catalog: template %d: unknown type %q", i, t.Kind)
		}
		if t.Width <= 0 || t.Height <= 0 {
			return nil, fmt.Errorf("catalog: template %d (%s): non-positive size %gx%g", i, t.Kind, t.Width, t.Height)
		}
	}
	return f.Templates, nil
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa" scalars.
type YAMLColor struct {
	color.Color
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

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
