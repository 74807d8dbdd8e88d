package geometry

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range []string{"mav", "spacecraft", "cube"} {
		m := Builtin(name)
		require.NotNil(t, m, name)
		assert.NoError(t, m.Validate(), name)
		assert.Greater(t, m.Radius(), 0.0, name)
		assert.Equal(t, len(m.Faces), len(m.Colors), name)
	}
	assert.Nil(t, Builtin("dirigible"))
}

func TestValidateRejectsOutOfRangeFace(t *testing.T) {
	m := &Model{
		Name:     "broken",
		Vertices: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][3]int{{0, 1, 3}},
	}
	assert.ErrorIs(t, m.Validate(), ErrInvalidGeometry)

	m.Faces = [][3]int{{0, 1, -1}}
	assert.ErrorIs(t, m.Validate(), ErrInvalidGeometry)
}

func TestValidateRejectsColorCountMismatch(t *testing.T) {
	m := &Model{
		Name:     "broken",
		Vertices: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}},
		Colors:   []color.NRGBA{DefaultColor, DefaultColor},
	}
	assert.ErrorIs(t, m.Validate(), ErrInvalidGeometry)
}

func TestFaceColorFallback(t *testing.T) {
	m := &Model{
		Vertices: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	assert.Equal(t, DefaultColor, m.FaceColor(0))
}

func TestBounds(t *testing.T) {
	min, max := Cube(2).Bounds()
	assert.Equal(t, mathutil.Vec3{-1, -1, -1}, min)
	assert.Equal(t, mathutil.Vec3{1, 1, 1}, max)
}

func TestLoadFile(t *testing.T) {
	src := `name: dart
vertices:
  - [1.0, 0.0, 0.0]
  - [-1.0, 0.5, 0.0]
  - [-1.0, -0.5, 0.0]
  - [-1.0, 0.0, -0.5]
faces:
  - [0, 1, 2]
  - [0, 1, 3]
  - [0, 2, 3]
colors:
  - "#e6c828"
  - "#325adc"
  - "#325adcff"
`
	path := filepath.Join(t.TempDir(), "dart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dart", m.Name)
	assert.Len(t, m.Vertices, 4)
	assert.Len(t, m.Faces, 3)
	assert.Equal(t, color.NRGBA{R: 0xe6, G: 0xc8, B: 0x28, A: 0xff}, m.Colors[0])
	assert.Equal(t, m.Colors[1], m.Colors[2])
}

func TestLoadFileRejectsBadFaceIndex(t *testing.T) {
	src := `vertices:
  - [0.0, 0.0, 0.0]
  - [1.0, 0.0, 0.0]
faces:
  - [0, 1, 9]
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestLoadFileRejectsBadColor(t *testing.T) {
	src := `vertices:
  - [0.0, 0.0, 0.0]
  - [1.0, 0.0, 0.0]
  - [0.0, 1.0, 0.0]
faces:
  - [0, 1, 2]
colors:
  - "chartreuse"
`
	path := filepath.Join(t.TempDir(), "badcolor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
