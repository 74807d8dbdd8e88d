package geometry

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// modelFile is the on-disk YAML layout of a model.
type modelFile struct {
	Name     string       `yaml:"name"`
	Vertices [][3]float64 `yaml:"vertices"`
	Faces    [][3]int     `yaml:"faces"`
	Colors   []string     `yaml:"colors"` // "#rrggbb" or "#rrggbbaa", one per face
}

// LoadFile reads a YAML model file and validates it. Geometry errors are
// fatal to the caller: an invalid model never renders.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geometry: read %s: %w", path, err)
	}

	var mf modelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("geometry: parse %s: %w", path, err)
	}

	m := &Model{
		Name:  mf.Name,
		Faces: mf.Faces,
	}
	if m.Name == "" {
		m.Name = path
	}
	m.Vertices = make([]mathutil.Vec3, len(mf.Vertices))
	for i, v := range mf.Vertices {
		m.Vertices[i] = mathutil.Vec3(v)
	}
	if len(mf.Colors) > 0 {
		m.Colors = make([]color.NRGBA, len(mf.Colors))
		for i, s := range mf.Colors {
			c, err := parseHexColor(s)
			if err != nil {
				return nil, fmt.Errorf("geometry: %s color %d: %w", path, i, err)
			}
			m.Colors[i] = c
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
