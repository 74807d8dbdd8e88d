// Package pose defines the rigid-body pose of the aircraft and the
// body-frame to world-frame vertex transform.
//
// The world frame is NED: x north, y east, z down. The body frame is fixed
// to the airframe: x out the nose, y out the right wing, z through the
// belly. Orientation follows the aerospace 3-2-1 convention (yaw, pitch,
// roll) and is carried as a unit quaternion.
package pose

import (
	"errors"
	"fmt"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// ErrInvalidPose reports an orientation that is not a valid rotation.
var ErrInvalidPose = errors.New("pose: orientation is not a valid rotation")

// Frame names a coordinate system, used to label vertex sets before and
// after transformation.
type Frame string

const (
	FrameBody Frame = "body"
	FrameNED  Frame = "ned"
)

// Pose is the position and orientation of a rigid body at an instant.
// Position is in meters, NED. The zero value is not valid; use Identity.
type Pose struct {
	Position    mathutil.Vec3
	Orientation mathutil.Quat
}

// Identity returns the pose at the NED origin with zero attitude.
func Identity() Pose {
	return Pose{Orientation: mathutil.QuatIdentity()}
}

// FromEuler builds a pose from NED position and 3-2-1 Euler angles in
// radians.
func FromEuler(position mathutil.Vec3, yaw, pitch, roll float64) Pose {
	return Pose{
		Position:    position,
		Orientation: mathutil.EulerToQuat(yaw, pitch, roll),
	}
}

// normTol is the allowed deviation of the quaternion norm from 1.
const normTol = 1e-6

// Validate checks that the orientation quaternion is normalized.
func (p Pose) Validate() error {
	n := p.Orientation.Norm()
	if n < 1-normTol || n > 1+normTol {
		return fmt.Errorf("%w: quaternion norm %v", ErrInvalidPose, n)
	}
	return nil
}

// Rotation returns the body-to-world rotation matrix for the pose, or
// ErrInvalidPose if the orientation is malformed.
func (p Pose) Rotation() (mathutil.Mat3, error) {
	if err := p.Validate(); err != nil {
		return mathutil.Mat3Identity(), err
	}
	return mathutil.QuatToMat3(p.Orientation), nil
}

// Euler returns the pose attitude as 3-2-1 Euler angles in radians.
func (p Pose) Euler() (yaw, pitch, roll float64) {
	return mathutil.QuatToEuler(p.Orientation)
}

func (p Pose) String() string {
	yaw, pitch, roll := p.Euler()
	return fmt.Sprintf("pose{ned=(%.2f, %.2f, %.2f) ypr=(%.1f°, %.1f°, %.1f°)}",
		p.Position[0], p.Position[1], p.Position[2],
		mathutil.Rad2Deg(yaw), mathutil.Rad2Deg(pitch), mathutil.Rad2Deg(roll))
}
