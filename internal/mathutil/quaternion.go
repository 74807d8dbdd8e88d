package mathutil

import "math"

// Quat represents a unit quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// EulerToQuat converts aerospace 3-2-1 Euler angles (yaw ψ, pitch θ, roll φ,
// radians) to a quaternion. Consistent with EulerToMat.
func EulerToQuat(yaw, pitch, roll float64) Quat {
	cy, sy := math.Cos(yaw*0.5), math.Sin(yaw*0.5)
	cp, sp := math.Cos(pitch*0.5), math.Sin(pitch*0.5)
	cr, sr := math.Cos(roll*0.5), math.Sin(roll*0.5)

	return Quat{
		sr*cp*cy - cr*sp*sy, // x
		cr*sp*cy + sr*cp*sy, // y
		cr*cp*sy - sr*sp*cy, // z
		cr*cp*cy + sr*sp*sy, // w
	}
}

// QuatToEuler recovers 3-2-1 Euler angles from a quaternion.
func QuatToEuler(q Quat) (yaw, pitch, roll float64) {
	x, y, z, w := q[0], q[1], q[2], q[3]

	s := 2 * (w*y - z*x)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	pitch = math.Asin(s)
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix (body to world).
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// QuatMul returns the Hamilton product a ⊗ b (apply b's rotation, then a's).
func QuatMul(a, b Quat) Quat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Normalize returns q scaled to unit norm. A degenerate quaternion returns
// the identity rotation.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n < 1e-12 {
		return QuatIdentity()
	}
	return Quat{q[0] / n, q[1] / n, q[2] / n, q[3] / n}
}

// RotateVec rotates v by q.
func (q Quat) RotateVec(v Vec3) Vec3 {
	return QuatToMat3(q).MulVec3(v)
}

// IntegrateRates advances q by body angular rates ω (rad/s, body axes) over
// dt seconds using the first-order quaternion kinematic q̇ = ½ q ⊗ ω, then
// renormalizes.
func IntegrateRates(q Quat, omega Vec3, dt float64) Quat {
	d := QuatMul(q, Quat{omega[0], omega[1], omega[2], 0})
	h := 0.5 * dt
	return Quat{
		q[0] + h*d[0],
		q[1] + h*d[1],
		q[2] + h*d[2],
		q[3] + h*d[3],
	}.Normalize()
}
