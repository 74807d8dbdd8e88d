// Package posegen produces the sequence of poses an animation renders.
// Sources are total functions of elapsed time so a frame loop can sample
// them at any frame rate.
package posegen

import (
	"time"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
)

// Source yields the pose at elapsed animation time t. Implementations
// return pose.ErrInvalidPose (wrapped) when they cannot produce a valid
// orientation; the caller decides whether to skip or hold.
type Source interface {
	Next(t time.Duration) (pose.Pose, error)
}

// Func adapts a plain function to a Source.
type Func func(t time.Duration) (pose.Pose, error)

func (f Func) Next(t time.Duration) (pose.Pose, error) { return f(t) }

// Fixed returns a Source that always reports the same pose.
func Fixed(p pose.Pose) Source {
	return Func(func(time.Duration) (pose.Pose, error) { return p, nil })
}
