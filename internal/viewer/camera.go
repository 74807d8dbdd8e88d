package viewer

import (
	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// nedToView maps NED world axes to view axes: east → screen right,
// up (-down) → screen up, north → away from the viewer. The default camera
// therefore sits on the south horizon looking north.
var nedToView = mathutil.Mat3{
	0, 1, 0,
	0, 0, -1,
	-1, 0, 0,
}

// Camera fixes the world-to-screen mapping for every frame of an animation.
// Keeping it constant across frames is what makes rotations and
// translations read consistently on screen.
type Camera struct {
	// AzimuthDeg rotates the scene about the vertical; 0 views from the
	// south, 90 from the east.
	AzimuthDeg float64 `yaml:"azimuth"`
	// ElevationDeg raises the viewpoint above the horizon; 90 looks
	// straight down with north up.
	ElevationDeg float64 `yaml:"elevation"`
	// ViewSpan is the world distance (meters) covered by the image width.
	// Zero lets the renderer size it from the model.
	ViewSpan float64 `yaml:"view_span"`
	// Center is the NED point at the middle of the image.
	Center mathutil.Vec3 `yaml:"-"`
}

// Matrix returns the NED-to-view rotation for the camera.
func (c Camera) Matrix() mathutil.Mat3 {
	m := mathutil.Mat3Mul(nedToView, mathutil.RotZ(mathutil.Deg2Rad(c.AzimuthDeg)))
	return mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(c.ElevationDeg)), m)
}

// project transforms world-frame vertices to screen coordinates and
// view-space depth for a w×h target. Larger depth is closer to the viewer.
func project(verts []mathutil.Vec3, view mathutil.Mat3, center mathutil.Vec3, scale float64, w, h int) (px, py, pz []float64) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	halfW := float64(w) / 2
	halfH := float64(h) / 2
	for i, v := range verts {
		t := view.MulVec3(v.Sub(center))
		px[i] = halfW + t[0]*scale
		py[i] = halfH - t[1]*scale
		pz[i] = t[2]
	}
	return
}
