package video

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestWebPAnimationWritesRIFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "anim.webp")
	w := NewWebPAnimation(path, 10)

	require.NoError(t, w.AddFrame(testFrame(color.NRGBA{R: 255, A: 255})))
	require.NoError(t, w.AddFrame(testFrame(color.NRGBA{G: 255, A: 255})))
	require.NoError(t, w.AddFrame(testFrame(color.NRGBA{B: 255, A: 255})))
	assert.Equal(t, 3, w.FrameCount())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))

	// Closed recorder refuses more frames but closes idempotently.
	assert.Error(t, w.AddFrame(testFrame(color.NRGBA{A: 255})))
	assert.NoError(t, w.Close())
}

func TestWebPAnimationEmptyFails(t *testing.T) {
	w := NewWebPAnimation(filepath.Join(t.TempDir(), "empty.webp"), 30)
	assert.Error(t, w.Close())
}

func TestStillWriterNumbersFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s, err := NewStillWriter(dir)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddFrame(testFrame(color.NRGBA{R: uint8(i * 40), A: 255})))
	}
	require.NoError(t, s.Close())
	assert.Error(t, s.AddFrame(testFrame(color.NRGBA{A: 255})))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "frame_0000.webp", entries[0].Name())
	assert.Equal(t, "frame_0002.webp", entries[2].Name())
}

func TestMultiFansOut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s, err := NewStillWriter(dir)
	require.NoError(t, err)
	w := NewWebPAnimation(filepath.Join(t.TempDir(), "anim.webp"), 30)

	m := Multi{s, w}
	require.NoError(t, m.AddFrame(testFrame(color.NRGBA{R: 9, A: 255})))
	require.NoError(t, m.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, w.FrameCount())
}
