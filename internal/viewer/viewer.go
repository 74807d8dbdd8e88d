// Package viewer owns the offscreen display surface and draws one frame per
// pose. The Renderer is the only holder of the framebuffer; callers get an
// immutable image copy per frame.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/geometry"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/logging"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/pose"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/postprocess"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/raster"
)

// ErrClosed reports a draw attempt after Close.
var ErrClosed = errors.New("viewer: renderer is closed")

// State is the renderer lifecycle: Idle until the first frame, Rendering
// while frames are drawn, Closed is terminal.
type State int

const (
	StateIdle State = iota
	StateRendering
	StateClosed
)

// Options configures a Renderer. Model is required; everything else has
// working defaults.
type Options struct {
	Model       *geometry.Model
	Camera      Camera
	Width       int
	Height      int
	Supersample int
	Background  *image.NRGBA // pre-scaled underlay, nil for transparent
	Light       *raster.LightConfig
	Logger      *slog.Logger
}

// Renderer rasterizes poses of one model under a fixed camera.
// Not safe for concurrent use: it owns a single mutable framebuffer.
type Renderer struct {
	model *geometry.Model
	cam   Camera
	view  mathutil.Mat3
	scale float64

	width, height int
	super         int
	bg            *image.NRGBA
	light         raster.LightConfig
	log           *slog.Logger

	fb     *raster.FrameBuffer
	state  State
	frames int
}

// New validates the model and acquires the display surface. Geometry
// problems are fatal here, before any frame is drawn.
func New(opts Options) (*Renderer, error) {
	if opts.Model == nil {
		return nil, fmt.Errorf("%w: no model", geometry.ErrInvalidGeometry)
	}
	if err := opts.Model.Validate(); err != nil {
		return nil, err
	}

	if opts.Width <= 0 {
		opts.Width = 480
	}
	if opts.Height <= 0 {
		opts.Height = opts.Width
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}

	cam := opts.Camera
	if cam.ViewSpan <= 0 {
		// Fit the model at any attitude with some margin.
		cam.ViewSpan = 4 * opts.Model.Radius()
	}

	light := raster.DefaultLightConfig()
	if opts.Light != nil {
		light = *opts.Light
	}

	rw := opts.Width * opts.Supersample
	rh := opts.Height * opts.Supersample
	r := &Renderer{
		model:  opts.Model,
		cam:    cam,
		view:   cam.Matrix(),
		scale:  float64(rw) / cam.ViewSpan,
		width:  opts.Width,
		height: opts.Height,
		super:  opts.Supersample,
		bg:     opts.Background,
		light:  light,
		log:    opts.Logger,
		fb:     raster.NewFrameBuffer(rw, rh),
	}
	r.log.Debug("renderer ready",
		"model", opts.Model.Name,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"supersample", opts.Supersample,
		"view_span", cam.ViewSpan)
	return r, nil
}

// DrawFrame replaces the previous frame's geometry with the model at p and
// returns the finished image. Each frame starts from a cleared surface so
// no geometry bleeds through from earlier poses.
func (r *Renderer) DrawFrame(p pose.Pose) (*image.NRGBA, error) {
	if r.state == StateClosed {
		return nil, ErrClosed
	}
	world, err := pose.Transform(p, r.model.Vertices)
	if err != nil {
		return nil, err
	}
	r.state = StateRendering

	r.fb.Reset()
	px, py, pz := project(world, r.view, r.cam.Center, r.scale, r.fb.Width, r.fb.Height)
	for i, f := range r.model.Faces {
		raster.RasterizeTriangle(r.fb, px, py, pz, f, r.model.FaceColor(i), &r.light)
	}

	img := r.fb.ToImage()
	if r.super > 1 {
		img = postprocess.Downsample(img, r.width, r.height)
	}
	if r.bg != nil {
		img = composite(r.bg, img)
	}

	r.frames++
	r.log.Debug("frame drawn", "frame", r.frames, "pose", p.String())
	return img, nil
}

// Frames returns how many frames have been drawn.
func (r *Renderer) Frames() int { return r.frames }

// State returns the lifecycle state.
func (r *Renderer) State() State { return r.state }

// Close releases the display surface. Further draws fail with ErrClosed;
// closing twice is harmless.
func (r *Renderer) Close() error {
	if r.state == StateClosed {
		return nil
	}
	r.state = StateClosed
	r.fb = nil
	r.log.Debug("renderer closed", "frames", r.frames)
	return nil
}

// composite draws the frame over the background underlay.
func composite(bg, frame *image.NRGBA) *image.NRGBA {
	b := frame.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, bg, bg.Bounds().Min, draw.Src)
	draw.Draw(out, b, frame, b.Min, draw.Over)
	return out
}
