package kernel

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
	"github.com/gogpu/effect/surface"
)

// LinearGradient composites a two-stop linear gradient over the image.
// As the last element of a pipeline it paints directly onto the surface.
type LinearGradient struct{}

// ProcessImage implements effect.Kernel.
func (LinearGradient) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	gp, err := payload[effect.LinearGradientParams](src, p)
	if err != nil {
		return nil, err
	}
	dst := filter.Clone(src)
	layer := gradientLayer(dst.Bounds().Dx(), dst.Bounds().Dy(), gp)
	xdraw.Draw(dst, dst.Bounds(), layer, image.Point{}, xdraw.Over)
	return dst, nil
}

// DrawDirect implements effect.DirectDrawer. It draws src and then the
// gradient layer onto dst, both through the frame transform.
func (LinearGradient) DrawDirect(fc *effect.FrameContext, dst surface.Surface, src *image.RGBA, p effect.Erased) error {
	gp, err := payload[effect.LinearGradientParams](src, p)
	if err != nil {
		return err
	}
	opts := drawOptions(fc)
	dst.DrawImage(src, image.Point{}, opts)

	b := src.Bounds()
	dst.DrawImage(gradientLayer(b.Dx(), b.Dy(), gp), image.Point{}, opts)
	return nil
}

// gradientLayer renders the premultiplied gradient at w x h.
func gradientLayer(w, h int, gp effect.LinearGradientParams) *image.RGBA {
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return layer
	}

	opacity := gp.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	dx, dy := gp.X1-gp.X0, gp.Y1-gp.Y0
	lenSq := dx*dx + dy*dy

	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			t := 0.0
			if lenSq > 0 {
				t = ((u-gp.X0)*dx + (v-gp.Y0)*dy) / lenSq
				t = min(max(t, 0), 1)
			}
			c := lerpNRGBA(gp.StartColor, gp.EndColor, t)
			c.A = uint8(float64(c.A)*opacity + 0.5)
			layer.Set(x, y, c)
		}
	}
	return layer
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// drawOptions returns surface options carrying the frame transform.
func drawOptions(fc *effect.FrameContext) *surface.DrawImageOptions {
	opts := surface.DefaultDrawImageOptions()
	if fc == nil {
		return opts
	}
	if t := fc.EffectiveTransform(); t != effect.IdentityTransform {
		opts.Transform = &t
	}
	return opts
}
