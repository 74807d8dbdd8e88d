package anim

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/logging"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/posegen"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/video"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/viewer"
)

// Parallel renders a fixed pose list across a worker pool. Frames are
// independent, so each worker owns its own renderer; the recorder still
// receives frames in sequence order.
type Parallel struct {
	// NewRenderer builds one renderer per worker.
	NewRenderer func() (*viewer.Renderer, error)
	Workers     int
	Logger      *slog.Logger
}

// Render draws every pose and feeds the frames, in order, to rec. Invalid
// poses are clamped to the previous valid pose before dispatch, matching
// the live loop's policy.
func (pp *Parallel) Render(ctx context.Context, poses []pose.Pose, rec video.Recorder) error {
	if pp.NewRenderer == nil {
		return fmt.Errorf("anim: parallel render needs a renderer factory")
	}
	log := pp.Logger
	if log == nil {
		log = logging.Noop()
	}
	workers := pp.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(poses) && len(poses) > 0 {
		workers = len(poses)
	}

	// Clamp invalid poses up front so workers stay order-independent.
	clamped := make([]pose.Pose, len(poses))
	last := pose.Identity()
	for i, p := range poses {
		if p.Validate() != nil {
			log.Warn("invalid pose, holding last", "frame", i)
			p = last
		} else {
			last = p
		}
		clamped[i] = p
	}

	total := len(clamped)
	frames := make([]*image.NRGBA, total)
	errs := make([]error, total)
	var done atomic.Int64
	start := time.Now()

	// Progress reporter
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				d := done.Load()
				if d > 0 {
					rate := float64(d) / time.Since(start).Seconds()
					log.Info("rendering", "frames", d, "total", total, "fps", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	idxChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := pp.NewRenderer()
			if err != nil {
				for idx := range idxChan {
					errs[idx] = err
				}
				return
			}
			defer r.Close()
			for idx := range idxChan {
				frames[idx], errs[idx] = r.DrawFrame(clamped[idx])
				done.Add(1)
			}
		}()
	}

	for i := range clamped {
		if ctx.Err() != nil {
			break
		}
		idxChan <- i
	}
	close(idxChan)
	wg.Wait()
	close(stop)

	if err := ctx.Err(); err != nil {
		return err
	}
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("anim: frame %d: %w", i, err)
		}
	}

	if rec != nil {
		for i, img := range frames {
			if err := rec.AddFrame(img); err != nil {
				return fmt.Errorf("anim: record frame %d: %w", i, err)
			}
		}
	}
	log.Info("render done", "frames", total, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// SamplePoses evaluates a source at the loop's frame times, for feeding
// Parallel.Render.
func SamplePoses(src posegen.Source, fps int, duration time.Duration) ([]pose.Pose, error) {
	if fps <= 0 {
		fps = 30
	}
	frameDur := time.Second / time.Duration(fps)
	total := int(duration / frameDur)
	if total < 1 {
		total = 1
	}
	poses := make([]pose.Pose, total)
	for n := 0; n < total; n++ {
		p, err := src.Next(time.Duration(n) * frameDur)
		if err != nil {
			return nil, err
		}
		poses[n] = p
	}
	return poses, nil
}
