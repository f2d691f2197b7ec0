package kernel

import (
	"image"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
)

// FrameBlend blends the current frame with the previous one.
//
// The previous frame lives in the element's cache slot, which should be an
// effect.CacheSlot[*image.RGBA]. The first frame, and any frame whose size
// differs from the stored one, is returned unchanged. Every successful call
// saves a copy of the current input frame for the next execution, so callers
// may reuse their frame buffer.
//
// A FrameBlend holds per-execution state; the registry creates a fresh
// value for each execution.
type FrameBlend struct {
	prev    *image.RGBA
	current *image.RGBA
}

// LoadCache implements effect.CacheUser.
func (f *FrameBlend) LoadCache(v any) {
	f.prev, _ = v.(*image.RGBA)
}

// SaveCache implements effect.CacheUser.
func (f *FrameBlend) SaveCache() (any, bool) {
	if f.current == nil {
		return nil, false
	}
	return filter.Clone(f.current), true
}

// ProcessImage implements effect.Kernel.
func (f *FrameBlend) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	fp, err := payload[effect.FrameBlendParams](src, p)
	if err != nil {
		return nil, err
	}
	f.current = src

	prev := f.prev
	if prev == nil {
		return src, nil
	}
	if prev.Bounds().Size() != src.Bounds().Size() {
		effect.Logger().Debug("frame blend: size changed, restarting",
			"prev", prev.Bounds().Size(), "current", src.Bounds().Size())
		return src, nil
	}

	factor := min(max(fp.Factor, 0), 1)
	if factor == 0 {
		return src, nil
	}

	b := src.Bounds()
	pb := prev.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		cur := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):][:b.Dx()*4]
		old := prev.Pix[prev.PixOffset(pb.Min.X, pb.Min.Y+y):][:b.Dx()*4]
		out := dst.Pix[y*dst.Stride:][:b.Dx()*4]
		for i := range out {
			out[i] = uint8(float64(old[i])*factor + float64(cur[i])*(1-factor) + 0.5)
		}
	}
	return dst, nil
}
