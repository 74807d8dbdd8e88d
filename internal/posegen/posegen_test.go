package posegen

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
)

func TestScriptInterpolates(t *testing.T) {
	s, err := NewScript([]Keyframe{
		{At: 0},
		{At: 2 * time.Second, Yaw: 90, North: 10},
	})
	require.NoError(t, err)

	p, err := s.Next(time.Second)
	require.NoError(t, err)
	yaw, pitch, roll := p.Euler()
	assert.InDelta(t, math.Pi/4, yaw, 1e-9)
	assert.InDelta(t, 0, pitch, 1e-12)
	assert.InDelta(t, 0, roll, 1e-12)
	assert.InDelta(t, 5, p.Position[0], 1e-9)
}

func TestScriptHoldsBeyondEnds(t *testing.T) {
	s, err := NewScript([]Keyframe{
		{At: time.Second, East: 3},
		{At: 2 * time.Second, East: 7},
	})
	require.NoError(t, err)

	early, err := s.Next(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, early.Position[1])

	late, err := s.Next(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 7.0, late.Position[1])
	assert.Equal(t, 2*time.Second, s.End())
}

func TestScriptSortsKeyframes(t *testing.T) {
	s, err := NewScript([]Keyframe{
		{At: 4 * time.Second, Down: -4},
		{At: 0, Down: 0},
	})
	require.NoError(t, err)
	p, err := s.Next(2 * time.Second)
	require.NoError(t, err)
	assert.InDelta(t, -2, p.Position[2], 1e-9)
}

func TestNewScriptRejectsEmpty(t *testing.T) {
	_, err := NewScript(nil)
	assert.Error(t, err)
}

func TestDemoScriptPosesValidate(t *testing.T) {
	s := DemoScript()
	for ts := time.Duration(0); ts <= s.End(); ts += 250 * time.Millisecond {
		p, err := s.Next(ts)
		require.NoError(t, err)
		assert.NoError(t, p.Validate())
	}
}

func TestLoadScript(t *testing.T) {
	src := `keyframes:
  - at: 0s
  - at: 1500ms
    yaw: 45
    north: 2.5
`
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, s.End())

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadScriptRejectsBadDuration(t *testing.T) {
	src := `keyframes:
  - at: whenever
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	_, err := LoadScript(path)
	assert.Error(t, err)
}

func TestOrbitClosesTheLoop(t *testing.T) {
	o := &Orbit{Radius: 50, Period: 8 * time.Second, BankDeg: 20}

	p0, err := o.Next(0)
	require.NoError(t, err)
	p1, err := o.Next(8 * time.Second)
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		assert.InDelta(t, p0.Position[k], p1.Position[k], 1e-6)
	}
	// Quarter lap puts the aircraft due east of center, heading south.
	pq, err := o.Next(2 * time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 0, pq.Position[0], 1e-6)
	assert.InDelta(t, 50, pq.Position[1], 1e-6)
}

func TestRateIntegratorStraightLine(t *testing.T) {
	ri := NewRateIntegrator(pose.Identity(), mathutil.Vec3{10, 0, 0}, mathutil.Vec3{})
	var p pose.Pose
	var err error
	for i := 0; i <= 100; i++ {
		p, err = ri.Next(time.Duration(i) * 10 * time.Millisecond)
		require.NoError(t, err)
	}
	// 10 m/s north for 1 s.
	assert.InDelta(t, 10, p.Position[0], 1e-9)
	assert.InDelta(t, 0, p.Position[1], 1e-9)
}

func TestRateIntegratorYawRate(t *testing.T) {
	ri := NewRateIntegrator(pose.Identity(), mathutil.Vec3{}, mathutil.Vec3{0, 0, 0.5})
	var p pose.Pose
	for i := 0; i <= 1000; i++ {
		var err error
		p, err = ri.Next(time.Duration(i) * time.Millisecond)
		require.NoError(t, err)
	}
	yaw, _, _ := p.Euler()
	assert.InDelta(t, 0.5, yaw, 1e-3)
	assert.NoError(t, p.Validate())
}

func TestFixedSource(t *testing.T) {
	want := pose.FromEuler(mathutil.Vec3{1, 2, 3}, 0.1, 0.2, 0.3)
	got, err := Fixed(want).Next(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
