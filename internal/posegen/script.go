package posegen

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
)

// Keyframe pins the pose at one instant of a scripted sequence. Angles in
// degrees, position in meters NED.
type Keyframe struct {
	At    time.Duration
	North float64
	East  float64
	Down  float64
	Yaw   float64
	Pitch float64
	Roll  float64
}

func (k Keyframe) pose() pose.Pose {
	return pose.FromEuler(
		mathutil.Vec3{k.North, k.East, k.Down},
		mathutil.Deg2Rad(k.Yaw),
		mathutil.Deg2Rad(k.Pitch),
		mathutil.Deg2Rad(k.Roll),
	)
}

// Script interpolates linearly between ordered keyframes. Before the first
// keyframe it holds the first pose; after the last it holds the last — the
// manually scripted rotate-then-translate sequences used to verify the
// viewer by eye.
type Script struct {
	keys []Keyframe
}

// NewScript sorts the keyframes by time and returns the script. At least
// one keyframe is required.
func NewScript(keys []Keyframe) (*Script, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("posegen: script needs at least one keyframe")
	}
	ks := make([]Keyframe, len(keys))
	copy(ks, keys)
	sort.Slice(ks, func(i, j int) bool { return ks[i].At < ks[j].At })
	return &Script{keys: ks}, nil
}

// End returns the time of the last keyframe.
func (s *Script) End() time.Duration {
	return s.keys[len(s.keys)-1].At
}

// Next implements Source.
func (s *Script) Next(t time.Duration) (pose.Pose, error) {
	ks := s.keys
	if t <= ks[0].At {
		return ks[0].pose(), nil
	}
	if t >= ks[len(ks)-1].At {
		return ks[len(ks)-1].pose(), nil
	}
	i := sort.Search(len(ks), func(i int) bool { return ks[i].At > t }) - 1
	a, b := ks[i], ks[i+1]
	f := float64(t-a.At) / float64(b.At-a.At)
	k := Keyframe{
		North: lerp(a.North, b.North, f),
		East:  lerp(a.East, b.East, f),
		Down:  lerp(a.Down, b.Down, f),
		Yaw:   lerp(a.Yaw, b.Yaw, f),
		Pitch: lerp(a.Pitch, b.Pitch, f),
		Roll:  lerp(a.Roll, b.Roll, f),
	}
	return k.pose(), nil
}

func lerp(a, b, f float64) float64 { return a + f*(b-a) }

// DemoScript exercises each attitude axis in turn, then a climbing
// translation: the standard eyeball check for the display conventions.
func DemoScript() *Script {
	s, _ := NewScript([]Keyframe{
		{At: 0},
		{At: 2 * time.Second, Yaw: 90},
		{At: 4 * time.Second, Yaw: 90, Pitch: 30},
		{At: 6 * time.Second, Yaw: 90, Pitch: 30, Roll: 45},
		{At: 8 * time.Second},
		{At: 12 * time.Second, North: 10, East: 10, Down: -5},
	})
	return s
}

// scriptFile is the YAML layout: a list of keyframes with "at" durations
// ("2s", "500ms", ...).
type scriptFile struct {
	Keyframes []fileKeyframe `yaml:"keyframes"`
}

type fileKeyframe struct {
	At    string  `yaml:"at"`
	North float64 `yaml:"north"`
	East  float64 `yaml:"east"`
	Down  float64 `yaml:"down"`
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	Roll  float64 `yaml:"roll"`
}

// LoadScript reads a keyframe script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("posegen: read %s: %w", path, err)
	}
	var sf scriptFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("posegen: parse %s: %w", path, err)
	}
	keys := make([]Keyframe, len(sf.Keyframes))
	for i, fk := range sf.Keyframes {
		at, err := time.ParseDuration(fk.At)
		if err != nil {
			return nil, fmt.Errorf("posegen: %s keyframe %d: bad duration %q: %w", path, i, fk.At, err)
		}
		keys[i] = Keyframe{
			At:    at,
			North: fk.North,
			East:  fk.East,
			Down:  fk.Down,
			Yaw:   fk.Yaw,
			Pitch: fk.Pitch,
			Roll:  fk.Roll,
		}
	}
	s, err := NewScript(keys)
	if err != nil {
		return nil, fmt.Errorf("posegen: %s: %w", path, err)
	}
	return s, nil
}
