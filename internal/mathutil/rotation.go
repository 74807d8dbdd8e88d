package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// EulerToMat builds the body-to-world rotation matrix for aerospace 3-2-1
// Euler angles: yaw ψ about Z, then pitch θ about Y, then roll φ about X.
// R = Rz(ψ) · Ry(θ) · Rx(φ). Angles in radians.
func EulerToMat(yaw, pitch, roll float64) Mat3 {
	return Mat3Mul(Mat3Mul(RotZ(yaw), RotY(pitch)), RotX(roll))
}

// MatToEuler recovers 3-2-1 Euler angles from a body-to-world rotation
// matrix. Pitch is clamped to ±π/2; at the gimbal-lock singularity yaw and
// roll are not unique and roll is reported as 0.
func MatToEuler(m Mat3) (yaw, pitch, roll float64) {
	s := -m[6]
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	pitch = math.Asin(s)
	if math.Abs(s) > 1-1e-9 {
		yaw = math.Atan2(-m[1], m[4])
		roll = 0
		return
	}
	yaw = math.Atan2(m[3], m[0])
	roll = math.Atan2(m[7], m[8])
	return
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
