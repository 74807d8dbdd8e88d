// Command mavview renders an animated view of a vehicle flying a scripted
// pose sequence and writes it as an animated WebP (plus optional stills).
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/anim"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/config"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/geometry"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/logging"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/posegen"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/video"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/viewer"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML config file")
	model := flag.String("model", "", "Builtin model (mav, spacecraft, cube) or model YAML file")
	script := flag.String("script", "", "Scenario: demo, orbit, rates, or keyframe YAML file")
	output := flag.String("o", "", "Animated WebP output path")
	framesDir := flag.String("frames", "", "Also write per-frame stills to this directory")
	width := flag.Int("size", 0, "Frame width in pixels (default: 480)")
	fps := flag.Int("fps", 0, "Frames per second (default: 30)")
	duration := flag.Float64("duration", 0, "Animation length in seconds (default: script length)")
	workers := flag.Int("workers", 0, "Worker goroutines for offline rendering (default: NumCPU)")
	pace := flag.Bool("pace", false, "Render in real time instead of as fast as possible")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Model:       *model,
		Script:      *script,
		Animation:   *output,
		FramesDir:   *framesDir,
		Width:       *width,
		FPS:         *fps,
		DurationSec: *duration,
		Workers:     *workers,
	})

	log := logging.New(os.Stderr, cfg.Logging)

	m, err := loadModel(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	src, scriptEnd, err := buildSource(cfg.Script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}
	length := cfg.Duration()
	if length <= 0 {
		length = scriptEnd
	}
	if length <= 0 {
		length = 10 * time.Second
	}

	var background *image.NRGBA
	if cfg.Background != "" {
		background, err = viewer.LoadBackground(cfg.Background, cfg.Width, cfg.Height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading background: %v\n", err)
			os.Exit(1)
		}
	}

	newRenderer := func() (*viewer.Renderer, error) {
		return viewer.New(viewer.Options{
			Model:       m,
			Camera:      cfg.Camera,
			Width:       cfg.Width,
			Height:      cfg.Height,
			Supersample: cfg.Supersample,
			Background:  background,
			Logger:      log,
		})
	}

	rec := video.Multi{video.NewWebPAnimation(cfg.Animation, cfg.FPS)}
	if cfg.FramesDir != "" {
		still, err := video.NewStillWriter(cfg.FramesDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		rec = append(rec, still)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	frames := int(length.Seconds() * float64(cfg.FPS))
	log.Info("rendering animation",
		"model", m.Name, "script", cfg.Script,
		"frames", frames, "fps", cfg.FPS, "output", cfg.Animation)
	start := time.Now()

	if *pace {
		r, err := newRenderer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer r.Close()
		loop := &anim.Loop{
			Source:   src,
			Renderer: r,
			Recorder: rec,
			FPS:      cfg.FPS,
			Duration: length,
			Pace:     true,
			Logger:   log,
		}
		if _, err := loop.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		poses, err := anim.SamplePoses(src, cfg.FPS, length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		pp := &anim.Parallel{NewRenderer: newRenderer, Workers: cfg.Workers, Logger: log}
		if err := pp.Render(ctx, poses, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := rec.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	log.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))
}

func loadModel(name string) (*geometry.Model, error) {
	if m := geometry.Builtin(name); m != nil {
		return m, nil
	}
	return geometry.LoadFile(name)
}

// buildSource maps a scenario name (or keyframe file path) to a pose
// source and its natural length.
func buildSource(name string) (posegen.Source, time.Duration, error) {
	switch strings.ToLower(name) {
	case "demo":
		s := posegen.DemoScript()
		return s, s.End(), nil
	case "orbit":
		o := &posegen.Orbit{Radius: 40, Period: 12 * time.Second, BankDeg: 25}
		return o, o.Period, nil
	case "rates":
		ri := posegen.NewRateIntegrator(
			pose.Identity(),
			mathutil.Vec3{8, 0, 0},
			mathutil.Vec3{mathutil.Deg2Rad(10), 0, mathutil.Deg2Rad(30)},
		)
		return ri, 12 * time.Second, nil
	}
	s, err := posegen.LoadScript(name)
	if err != nil {
		return nil, 0, err
	}
	return s, s.End(), nil
}
