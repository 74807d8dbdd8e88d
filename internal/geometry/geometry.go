// Package geometry holds the constant body-frame shape of a vehicle:
// vertices, triangular faces, and per-face colors. Models are loaded once
// at startup and never mutated.
package geometry

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// ErrInvalidGeometry reports a model whose faces reference out-of-range
// vertices or whose color table does not match the face count. Fatal at
// load time.
var ErrInvalidGeometry = errors.New("geometry: invalid model")

// Model is a triangle mesh in the body frame (x forward, y right, z down).
type Model struct {
	Name     string
	Vertices []mathutil.Vec3
	Faces    [][3]int
	// Colors holds one color per face. Empty means every face uses
	// DefaultColor.
	Colors []color.NRGBA
}

// DefaultColor is used for faces of models without a color table.
var DefaultColor = color.NRGBA{R: 160, G: 160, B: 170, A: 255}

// Validate checks face indices against the vertex table and the color table
// length. Any violation wraps ErrInvalidGeometry.
func (m *Model) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: %q has no vertices", ErrInvalidGeometry, m.Name)
	}
	if len(m.Faces) == 0 {
		return fmt.Errorf("%w: %q has no faces", ErrInvalidGeometry, m.Name)
	}
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= n {
				return fmt.Errorf("%w: %q face %d references vertex %d of %d",
					ErrInvalidGeometry, m.Name, fi, vi, n)
			}
		}
	}
	if len(m.Colors) != 0 && len(m.Colors) != len(m.Faces) {
		return fmt.Errorf("%w: %q has %d colors for %d faces",
			ErrInvalidGeometry, m.Name, len(m.Colors), len(m.Faces))
	}
	return nil
}

// FaceColor returns the color of face i, falling back to DefaultColor.
func (m *Model) FaceColor(i int) color.NRGBA {
	if i >= 0 && i < len(m.Colors) {
		return m.Colors[i]
	}
	return DefaultColor
}

// Bounds returns the axis-aligned min/max corners of the model in the body
// frame.
func (m *Model) Bounds() (min, max mathutil.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return
}

// Radius returns the largest vertex distance from the body origin, used to
// size the view so the model stays in frame at any attitude.
func (m *Model) Radius() float64 {
	var r float64
	for _, v := range m.Vertices {
		if l := v.Len(); l > r {
			r = l
		}
	}
	return r
}
