package kernel

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
)

// Displacement shifts pixels along a sine wave. Horizontal displacement
// varies with y; vertical displacement varies with x.
type Displacement struct{}

// ProcessImage implements effect.Kernel.
func (Displacement) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	dp, err := payload[effect.DisplacementParams](src, p)
	if err != nil {
		return nil, err
	}
	if dp.Amplitude == 0 || dp.Wavelength <= 0 {
		return src, nil
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	k := 2 * math.Pi / dp.Wavelength

	for y := 0; y < b.Dy(); y++ {
		fy := float64(y) + 0.5
		for x := 0; x < b.Dx(); x++ {
			fx := float64(x) + 0.5
			if dp.Vertical {
				fy2 := fy + dp.Amplitude*math.Sin(k*fx+dp.Phase)
				filter.Set(dst, x, y, filter.SampleBilinear(src, fx, fy2, effect.TileClamp))
				continue
			}
			fx2 := fx + dp.Amplitude*math.Sin(k*fy+dp.Phase)
			filter.Set(dst, x, y, filter.SampleBilinear(src, fx2, fy, effect.TileClamp))
		}
	}
	return dst, nil
}

// defaultWaveCount is used when WaterRippleParams.WaveCount is below 1.
const defaultWaveCount = 1

// WaterRipple displaces pixels radially behind an expanding wave front.
// The front starts at the center and reaches the farthest corner when
// Progress is 1; the waves fade out as Progress grows.
type WaterRipple struct{}

// ProcessImage implements effect.Kernel.
func (WaterRipple) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	wp, err := payload[effect.WaterRippleParams](src, p)
	if err != nil {
		return nil, err
	}
	if wp.Amplitude == 0 || wp.Progress <= 0 || wp.Progress >= 1 {
		return src, nil
	}
	waves := wp.WaveCount
	if waves < 1 {
		waves = defaultWaveCount
	}

	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	cx, cy := wp.CenterX*w, wp.CenterY*h
	maxDist := math.Max(
		math.Max(math.Hypot(cx, cy), math.Hypot(w-cx, cy)),
		math.Max(math.Hypot(cx, h-cy), math.Hypot(w-cx, h-cy)),
	)
	front := wp.Progress * maxDist
	fade := 1 - wp.Progress

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		fy := float64(y) + 0.5
		for x := 0; x < b.Dx(); x++ {
			fx := float64(x) + 0.5
			dx, dy := fx-cx, fy-cy
			d := math.Hypot(dx, dy)
			if d >= front || d == 0 {
				filter.Set(dst, x, y, filter.At(src, x, y, effect.TileClamp))
				continue
			}
			phase := 2 * math.Pi * float64(waves) * (front - d) / front
			off := wp.Amplitude * fade * math.Sin(phase)
			sx := fx + dx/d*off
			sy := fy + dy/d*off
			filter.Set(dst, x, y, filter.SampleBilinear(src, sx, sy, effect.TileClamp))
		}
	}
	return dst, nil
}

// Magnifier zooms the image inside a circle around a center point.
type Magnifier struct{}

// ProcessImage implements effect.Kernel.
func (Magnifier) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	mp, err := payload[effect.MagnifierParams](src, p)
	if err != nil {
		return nil, err
	}
	if mp.Radius <= 0 || mp.Zoom <= 0 || mp.Zoom == 1 {
		return src, nil
	}

	dst := filter.Clone(src)

	// Scale around the center: dst = c + (s - c) * zoom.
	z := mp.Zoom
	m := f64.Aff3{
		z, 0, mp.CenterX * (1 - z),
		0, z, mp.CenterY * (1 - z),
	}
	zoomed := image.NewRGBA(dst.Bounds())
	xdraw.BiLinear.Transform(zoomed, m, dst, dst.Bounds(), xdraw.Src, nil)

	lens := filter.RoundedRect{
		X:      mp.CenterX - mp.Radius,
		Y:      mp.CenterY - mp.Radius,
		Width:  2 * mp.Radius,
		Height: 2 * mp.Radius,
		Radius: mp.Radius,
	}
	area := image.Rect(
		int(math.Floor(lens.X)), int(math.Floor(lens.Y)),
		int(math.Ceil(lens.X+lens.Width))+1, int(math.Ceil(lens.Y+lens.Height))+1,
	).Intersect(dst.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := float32(lens.Coverage(float64(x)+0.5, float64(y)+0.5))
			if cov == 0 {
				continue
			}
			in := filter.At(zoomed, x, y, effect.TileClamp)
			out := filter.At(dst, x, y, effect.TileClamp)
			for c := range out {
				out[c] += (in[c] - out[c]) * cov
			}
			filter.Set(dst, x, y, out)
		}
	}
	return dst, nil
}
