package kernel

import (
	"image"
	"math"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
)

// defaultKawasePasses is used when KawaseBlurParams.Passes is below 1.
const defaultKawasePasses = 3

// Blur is the separable Gaussian blur kernel.
type Blur struct{}

// ProcessImage implements effect.Kernel.
func (Blur) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	bp, err := payload[effect.BlurParams](src, p)
	if err != nil {
		return nil, err
	}
	if bp.Radius <= 0 {
		return src, nil
	}
	return filter.Blur(src, bp.Radius, bp.Radius, effect.TileClamp), nil
}

// KawaseBlur approximates a Gaussian with repeated box blurs.
type KawaseBlur struct{}

// ProcessImage implements effect.Kernel.
func (KawaseBlur) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	kp, err := payload[effect.KawaseBlurParams](src, p)
	if err != nil {
		return nil, err
	}
	if kp.Radius <= 0 {
		return src, nil
	}
	passes := kp.Passes
	if passes < 1 {
		passes = defaultKawasePasses
	}
	return filter.BoxBlur(src, kp.Radius, passes, effect.TileClamp), nil
}

// FusedBlur runs the grey step and the Gaussian blur in one kernel, then
// optionally stretches an inset region of the result.
type FusedBlur struct{}

// ProcessImage implements effect.Kernel.
func (FusedBlur) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	fp, err := payload[effect.FusedBlurParams](src, p)
	if err != nil {
		return nil, err
	}

	out := src
	if fp.GreyCoef1 != 0 || fp.GreyCoef2 != 0 {
		out = filter.Grey(out, fp.GreyCoef1, fp.GreyCoef2)
	}
	if fp.Radius > 0 {
		out = filter.Blur(out, fp.Radius, fp.Radius, fp.TileMode)
	}
	if fp.Width > 0 && fp.Height > 0 {
		in := filter.Inset{Left: fp.OffsetX, Top: fp.OffsetY, Right: fp.OffsetZ, Bottom: fp.OffsetW}
		w := int(math.Round(fp.Width))
		h := int(math.Round(fp.Height))
		out = filter.Stretch(out, in, w, h, fp.TileMode)
	}
	return out, nil
}
