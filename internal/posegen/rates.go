package posegen

import (
	"time"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
)

// RateIntegrator advances a pose from body-frame velocity and body angular
// rates: ṗ = R(q)·v and q̇ = ½ q⊗ω, renormalized each step. Kinematics
// only — no forces or moments are modeled.
//
// Next must be called with non-decreasing t; the integrator is stateful and
// not safe for concurrent use.
type RateIntegrator struct {
	Velocity mathutil.Vec3 // body frame, m/s
	Rates    mathutil.Vec3 // p, q, r in rad/s

	state pose.Pose
	last  time.Duration
	init  bool
}

// NewRateIntegrator starts integrating from the given pose.
func NewRateIntegrator(start pose.Pose, velocity, rates mathutil.Vec3) *RateIntegrator {
	return &RateIntegrator{
		Velocity: velocity,
		Rates:    rates,
		state:    start,
	}
}

// Next implements Source.
func (ri *RateIntegrator) Next(t time.Duration) (pose.Pose, error) {
	if !ri.init {
		ri.init = true
		ri.last = t
		return ri.state, ri.state.Validate()
	}
	dt := (t - ri.last).Seconds()
	ri.last = t
	if dt <= 0 {
		return ri.state, nil
	}

	R := mathutil.QuatToMat3(ri.state.Orientation)
	ri.state.Position = ri.state.Position.Add(R.MulVec3(ri.Velocity).Scale(dt))
	ri.state.Orientation = mathutil.IntegrateRates(ri.state.Orientation, ri.Rates, dt)
	return ri.state, nil
}
