package pose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// unitCube returns the 8 corners of an axis-aligned cube of side 2.
func unitCube() []mathutil.Vec3 {
	return []mathutil.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
}

func TestTransformIdentityIsExact(t *testing.T) {
	in := unitCube()
	out, err := Transform(Identity(), in)
	require.NoError(t, err)
	// Identity must be bit-exact, not merely within tolerance.
	assert.Equal(t, in, out)
}

func TestTransformTranslateRoundTrip(t *testing.T) {
	in := unitCube()
	v := mathutil.Vec3{12.5, -3.25, 88}

	fwd, err := Transform(Pose{Position: v, Orientation: mathutil.QuatIdentity()}, in)
	require.NoError(t, err)
	back, err := Transform(Pose{Position: v.Neg(), Orientation: mathutil.QuatIdentity()}, fwd)
	require.NoError(t, err)

	for i := range in {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, in[i][k], back[i][k], 1e-12)
		}
	}
}

func TestTransformCubeYaw90(t *testing.T) {
	// 90° rotation about the vertical (NED z) axis maps (x, y, z) to
	// (-y, x, z).
	in := unitCube()
	p := FromEuler(mathutil.Vec3{}, math.Pi/2, 0, 0)

	out, err := Transform(p, in)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i, v := range in {
		want := mathutil.Vec3{-v[1], v[0], v[2]}
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[k], out[i][k], 1e-6, "vertex %d axis %d", i, k)
		}
	}
}

func TestTransformRejectsDenormalizedQuat(t *testing.T) {
	p := Pose{Orientation: mathutil.Quat{0, 0, 0, 2}}
	out, err := Transform(p, unitCube())
	assert.ErrorIs(t, err, ErrInvalidPose)
	assert.Nil(t, out)
}

func TestTransformMatrixRejectsNonOrthonormal(t *testing.T) {
	_, err := TransformMatrix(mathutil.Mat3Diag(1, 1, 1.5), mathutil.Vec3{}, unitCube())
	assert.ErrorIs(t, err, ErrInvalidPose)

	out, err := TransformMatrix(mathutil.RotZ(0.4), mathutil.Vec3{1, 2, 3}, unitCube())
	require.NoError(t, err)
	assert.Len(t, out, 8)
}

func TestFromEulerMatchesRotationMatrix(t *testing.T) {
	yaw, pitch, roll := 0.7, -0.3, 1.1
	p := FromEuler(mathutil.Vec3{5, 6, 7}, yaw, pitch, roll)
	require.NoError(t, p.Validate())

	R, err := p.Rotation()
	require.NoError(t, err)
	want := mathutil.EulerToMat(yaw, pitch, roll)
	for i := 0; i < 9; i++ {
		assert.InDelta(t, want[i], R[i], 1e-9)
	}
}
