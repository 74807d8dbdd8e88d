// Package video collects rendered frames and writes them out, either as a
// single animated WebP or as numbered stills.
package video

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Recorder receives finished frames in display order. Close flushes any
// buffered output; no frames may be added afterwards.
type Recorder interface {
	AddFrame(img *image.NRGBA) error
	Close() error
}

// Multi fans frames out to several recorders.
type Multi []Recorder

func (m Multi) AddFrame(img *image.NRGBA) error {
	for _, r := range m {
		if err := r.AddFrame(img); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var first error
	for _, r := range m {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// WebPAnimation buffers frames and encodes an animated WebP on Close.
type WebPAnimation struct {
	path   string
	fps    int
	frames []image.Image
	closed bool
}

// NewWebPAnimation writes an animation to path at the given frame rate.
func NewWebPAnimation(path string, fps int) *WebPAnimation {
	if fps <= 0 {
		fps = 30
	}
	return &WebPAnimation{path: path, fps: fps}
}

func (w *WebPAnimation) AddFrame(img *image.NRGBA) error {
	if w.closed {
		return fmt.Errorf("video: animation %s already closed", w.path)
	}
	w.frames = append(w.frames, img)
	return nil
}

// Close encodes and writes the animation. Closing with no frames is an
// error: an empty animation file would be malformed.
func (w *WebPAnimation) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if len(w.frames) == 0 {
		return fmt.Errorf("video: animation %s has no frames", w.path)
	}

	frameMS := uint(1000 / w.fps)
	durations := make([]uint, len(w.frames))
	disposals := make([]uint, len(w.frames))
	for i := range durations {
		durations[i] = frameMS
		disposals[i] = 1 // clear to background between frames
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("video: %w", err)
	}
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("video: %w", err)
	}
	defer f.Close()

	ani := nativewebp.Animation{
		Images:    w.frames,
		Durations: durations,
		Disposals: disposals,
		LoopCount: 0, // loop forever
	}
	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return fmt.Errorf("video: encode %s: %w", w.path, err)
	}
	return nil
}

// FrameCount returns how many frames have been added.
func (w *WebPAnimation) FrameCount() int { return len(w.frames) }

// StillWriter writes each frame as dir/frame_NNNN.webp as it arrives.
type StillWriter struct {
	dir    string
	next   int
	closed bool
}

// NewStillWriter creates dir and writes numbered frames into it.
func NewStillWriter(dir string) (*StillWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}
	return &StillWriter{dir: dir}, nil
}

func (s *StillWriter) AddFrame(img *image.NRGBA) error {
	if s.closed {
		return fmt.Errorf("video: still writer %s already closed", s.dir)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.webp", s.next))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("video: %w", err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("video: encode %s: %w", path, err)
	}
	s.next++
	return nil
}

func (s *StillWriter) Close() error {
	s.closed = true
	return nil
}
