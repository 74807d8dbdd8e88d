package geometry

import (
	"image/color"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

var (
	yellow = color.NRGBA{R: 230, G: 200, B: 40, A: 255}
	blue   = color.NRGBA{R: 50, G: 90, B: 220, A: 255}
	green  = color.NRGBA{R: 60, G: 170, B: 80, A: 255}
	red    = color.NRGBA{R: 205, G: 60, B: 50, A: 255}
	gray   = color.NRGBA{R: 130, G: 135, B: 145, A: 255}
)

// MAV airframe dimensions in meters.
const (
	mavNoseLen  = 2.0
	mavCabinLen = 1.0
	mavTailLen  = 4.0
	mavFuseH    = 1.0
	mavFuseW    = 1.0
	mavWingL    = 1.5
	mavWingW    = 6.0
	mavTailH    = 1.5
	mavHTailL   = 1.0
	mavHTailW   = 3.0
)

// MAV returns the fixed-wing airframe model: pointed nose, box fuselage
// tapering to the tail, main wing, horizontal stabilizer, and vertical fin.
func MAV() *Model {
	return &Model{
		Name: "mav",
		Vertices: []mathutil.Vec3{
			{mavNoseLen, 0, 0},                                // 0 nose tip
			{mavCabinLen, mavFuseW / 2, -mavFuseH / 2},        // 1 bulkhead top right
			{mavCabinLen, -mavFuseW / 2, -mavFuseH / 2},       // 2 bulkhead top left
			{mavCabinLen, -mavFuseW / 2, mavFuseH / 2},        // 3 bulkhead bottom left
			{mavCabinLen, mavFuseW / 2, mavFuseH / 2},         // 4 bulkhead bottom right
			{-mavTailLen, 0, 0},                               // 5 tail point
			{0, mavWingW / 2, 0},                              // 6 wing leading right
			{-mavWingL, mavWingW / 2, 0},                      // 7 wing trailing right
			{-mavWingL, -mavWingW / 2, 0},                     // 8 wing trailing left
			{0, -mavWingW / 2, 0},                             // 9 wing leading left
			{-mavTailLen + mavHTailL, mavHTailW / 2, 0},       // 10 stab leading right
			{-mavTailLen, mavHTailW / 2, 0},                   // 11 stab trailing right
			{-mavTailLen, -mavHTailW / 2, 0},                  // 12 stab trailing left
			{-mavTailLen + mavHTailL, -mavHTailW / 2, 0},      // 13 stab leading left
			{-mavTailLen + mavHTailL, 0, 0},                   // 14 fin root
			{-mavTailLen, 0, -mavTailH},                       // 15 fin tip
		},
		Faces: [][3]int{
			{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}, // nose
			{5, 1, 2}, {5, 2, 3}, {5, 3, 4}, {5, 4, 1}, // fuselage
			{6, 7, 8}, {8, 9, 6}, // wing
			{10, 11, 12}, {12, 13, 10}, // horizontal stabilizer
			{14, 15, 5}, // vertical fin
		},
		Colors: []color.NRGBA{
			yellow, yellow, yellow, yellow,
			blue, blue, blue, blue,
			green, green,
			green, green,
			blue,
		},
	}
}

// Spacecraft returns the boxy satellite body with two solar panels, the
// other vehicle variant rendered by the viewer.
func Spacecraft() *Model {
	return &Model{
		Name: "spacecraft",
		Vertices: []mathutil.Vec3{
			{1, 1, -1}, {1, -1, -1}, {1, -1, 1}, {1, 1, 1}, // 0-3 front face
			{-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, // 4-7 rear face
			{2.2, 0, 0},                                      // 8 antenna tip
			{0.5, 1, 0}, {0.5, 3.2, 0}, {-0.5, 3.2, 0}, {-0.5, 1, 0}, // 9-12 right panel
			{0.5, -1, 0}, {0.5, -3.2, 0}, {-0.5, -3.2, 0}, {-0.5, -1, 0}, // 13-16 left panel
		},
		Faces: [][3]int{
			{8, 0, 1}, {8, 1, 2}, {8, 2, 3}, {8, 3, 0}, // antenna cone
			{0, 1, 5}, {5, 4, 0}, // top
			{3, 2, 6}, {6, 7, 3}, // bottom
			{0, 3, 7}, {7, 4, 0}, // right side
			{1, 2, 6}, {6, 5, 1}, // left side
			{4, 5, 6}, {6, 7, 4}, // rear
			{9, 10, 11}, {11, 12, 9}, // right panel
			{13, 14, 15}, {15, 16, 13}, // left panel
		},
		Colors: []color.NRGBA{
			red, red, red, red,
			gray, gray,
			gray, gray,
			gray, gray,
			gray, gray,
			gray, gray,
			blue, blue,
			blue, blue,
		},
	}
}

// Cube returns an axis-aligned cube of the given side length, six faces
// split into twelve triangles. Handy as a reference body when checking
// rotation conventions.
func Cube(side float64) *Model {
	h := side / 2
	return &Model{
		Name: "cube",
		Vertices: []mathutil.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		Faces: [][3]int{
			{0, 1, 2}, {2, 3, 0}, // top (-z)
			{4, 5, 6}, {6, 7, 4}, // bottom (+z)
			{0, 1, 5}, {5, 4, 0},
			{2, 3, 7}, {7, 6, 2},
			{1, 2, 6}, {6, 5, 1},
			{3, 0, 4}, {4, 7, 3},
		},
		Colors: []color.NRGBA{
			red, red, blue, blue, green, green,
			yellow, yellow, gray, gray, gray, gray,
		},
	}
}

// Builtin returns a named built-in model, or nil if unknown.
func Builtin(name string) *Model {
	switch name {
	case "mav":
		return MAV()
	case "spacecraft":
		return Spacecraft()
	case "cube":
		return Cube(2)
	}
	return nil
}
