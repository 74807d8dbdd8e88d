// Package anim drives the animation: it pulls poses from a source, has the
// viewer draw them, and hands finished frames to a recorder.
package anim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/logging"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/posegen"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/video"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/viewer"
)

// Loop steps a single-threaded animation: compute pose, transform, render,
// record, optionally sleep to hold the frame rate.
type Loop struct {
	Source   posegen.Source
	Renderer *viewer.Renderer
	Recorder video.Recorder // nil discards frames
	FPS      int
	Duration time.Duration
	// Pace renders in real time; unset renders as fast as possible.
	Pace   bool
	Logger *slog.Logger
}

// Run renders Duration×FPS frames and returns how many were drawn. An
// invalid pose from the source is logged and the last valid pose is held
// for that frame; render or record failures abort.
func (l *Loop) Run(ctx context.Context) (int, error) {
	if l.Source == nil || l.Renderer == nil {
		return 0, fmt.Errorf("anim: loop needs a source and a renderer")
	}
	fps := l.FPS
	if fps <= 0 {
		fps = 30
	}
	log := l.Logger
	if log == nil {
		log = logging.Noop()
	}

	frameDur := time.Second / time.Duration(fps)
	total := int(l.Duration / frameDur)
	if total < 1 {
		total = 1
	}

	var ticker *time.Ticker
	if l.Pace {
		ticker = time.NewTicker(frameDur)
		defer ticker.Stop()
	}

	last := pose.Identity()
	for n := 0; n < total; n++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		t := time.Duration(n) * frameDur
		p, err := l.Source.Next(t)
		switch {
		case err == nil && p.Validate() == nil:
			last = p
		case errors.Is(err, pose.ErrInvalidPose) || err == nil:
			// Hold the last valid pose for this frame.
			log.Warn("invalid pose, holding last", "frame", n, "t", t, "err", err)
			p = last
		default:
			return n, fmt.Errorf("anim: pose source at %v: %w", t, err)
		}

		img, err := l.Renderer.DrawFrame(p)
		if err != nil {
			return n, fmt.Errorf("anim: frame %d: %w", n, err)
		}
		if l.Recorder != nil {
			if err := l.Recorder.AddFrame(img); err != nil {
				return n, fmt.Errorf("anim: record frame %d: %w", n, err)
			}
		}

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return n + 1, ctx.Err()
			}
		}
	}
	return total, nil
}
