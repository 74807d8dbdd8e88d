package posegen

import (
	"math"
	"time"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
)

// Orbit flies a level circle of the given radius around a center point,
// heading coordinated with the track and a constant bank angle.
type Orbit struct {
	Center  mathutil.Vec3 // NED
	Radius  float64       // meters
	Period  time.Duration // time per lap
	BankDeg float64
}

// Next implements Source.
func (o *Orbit) Next(t time.Duration) (pose.Pose, error) {
	period := o.Period
	if period <= 0 {
		period = 10 * time.Second
	}
	th := 2 * math.Pi * float64(t) / float64(period)

	p := mathutil.Vec3{
		o.Center[0] + o.Radius*math.Cos(th),
		o.Center[1] + o.Radius*math.Sin(th),
		o.Center[2],
	}
	// Track is tangent to the circle; heading leads position by 90°.
	yaw := th + math.Pi/2
	return pose.FromEuler(p, yaw, 0, mathutil.Deg2Rad(o.BankDeg)), nil
}
