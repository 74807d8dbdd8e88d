package pose

import (
	"fmt"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// Transform maps body-frame vertices into the world frame:
//
//	world = R(orientation) · body + position
//
// The identity pose returns the input vertices unchanged. A malformed
// orientation yields ErrInvalidPose and no output.
func Transform(p Pose, body []mathutil.Vec3) ([]mathutil.Vec3, error) {
	R, err := p.Rotation()
	if err != nil {
		return nil, err
	}
	world := make([]mathutil.Vec3, len(body))
	for i, v := range body {
		world[i] = R.MulVec3(v).Add(p.Position)
	}
	return world, nil
}

// TransformMatrix is Transform for callers holding a rotation matrix rather
// than a quaternion. The matrix must be orthonormal with det +1.
func TransformMatrix(R mathutil.Mat3, position mathutil.Vec3, body []mathutil.Vec3) ([]mathutil.Vec3, error) {
	if !R.IsRotation(normTol) {
		return nil, fmt.Errorf("%w: matrix not orthonormal", ErrInvalidPose)
	}
	world := make([]mathutil.Vec3, len(body))
	for i, v := range body {
		world[i] = R.MulVec3(v).Add(position)
	}
	return world, nil
}
