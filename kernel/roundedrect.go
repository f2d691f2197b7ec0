package kernel

import (
	"image"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
	"github.com/gogpu/effect/surface"
)

// RoundedRect masks the image with an anti-aliased rounded rectangle.
// As the last element of a pipeline it paints directly onto the surface.
type RoundedRect struct{}

// ProcessImage implements effect.Kernel.
func (RoundedRect) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	rp, err := payload[effect.RoundedRectParams](src, p)
	if err != nil {
		return nil, err
	}
	return mask(src, rp), nil
}

// DrawDirect implements effect.DirectDrawer.
func (RoundedRect) DrawDirect(fc *effect.FrameContext, dst surface.Surface, src *image.RGBA, p effect.Erased) error {
	rp, err := payload[effect.RoundedRectParams](src, p)
	if err != nil {
		return err
	}
	dst.DrawImage(mask(src, rp), image.Point{}, drawOptions(fc))
	return nil
}

func mask(src *image.RGBA, rp effect.RoundedRectParams) *image.RGBA {
	shape := filter.RoundedRect{
		X:       rp.X,
		Y:       rp.Y,
		Width:   rp.Width,
		Height:  rp.Height,
		Radius:  rp.Radius,
		Feather: rp.Feather,
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			cov := float32(shape.Coverage(float64(x)+0.5, float64(y)+0.5))
			if cov == 0 {
				continue
			}
			px := filter.At(src, x, y, effect.TileClamp)
			for c := range px {
				px[c] *= cov
			}
			filter.Set(dst, x, y, px)
		}
	}
	return dst
}
