package raster

import (
	"image/color"
	"math"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/mathutil"
)

// RasterizeTriangle fills one flat-shaded solid-color triangle with z-buffer
// testing. px, py, pz are screen coordinates and view-space depth per
// vertex; larger pz is closer to the viewer.
//
// This is the hot path: shading is per-face, so the final pixel color is
// computed once and the inner loop only does the coverage and depth tests.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	col color.NRGBA,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}
	if col.A == 0 {
		return
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Face normal from the screen-space triangle for flat shading.
	e1 := mathutil.Vec3{x1 - x0, y1 - y0, z1 - z0}
	e2 := mathutil.Vec3{x2 - x0, y2 - y0, z2 - z0}
	n := e1.Cross(e2)
	if n.Len() < 1e-8 {
		return
	}
	shade := lc.ComputeShade(n.Normalize())

	// Solid color: light it once per face.
	fr, fg, fbv := shadeColor(col, shade, lc)

	// Bounding box clipped to the framebuffer.
	w, h := fb.Width, fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = fr
			fb.Color[pxIdx+1] = fg
			fb.Color[pxIdx+2] = fbv
			fb.Color[pxIdx+3] = col.A
		}
	}
}

// shadeColor runs one color through the sRGB-decode, shade, exposure, ACES,
// sRGB-encode pipeline.
func shadeColor(col color.NRGBA, shade float64, lc *LightConfig) (r, g, b uint8) {
	lr := srgbToLinear[col.R] * shade * lc.Exposure
	lg := srgbToLinear[col.G] * shade * lc.Exposure
	lb := srgbToLinear[col.B] * shade * lc.Exposure

	r = clamp255(math.Pow(ACESTonemap(lr), lc.InvGamma) * 255)
	g = clamp255(math.Pow(ACESTonemap(lg), lc.InvGamma) * 255)
	b = clamp255(math.Pow(ACESTonemap(lb), lc.InvGamma) * 255)
	return
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
