package kernel

import (
	"image"
	"math"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
)

// Grey pulls colors toward their luminance.
type Grey struct{}

// ProcessImage implements effect.Kernel.
func (Grey) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	gp, err := payload[effect.GreyParams](src, p)
	if err != nil {
		return nil, err
	}
	if gp.Coef1 == 0 && gp.Coef2 == 0 {
		return src, nil
	}
	return filter.Grey(src, gp.Coef1, gp.Coef2), nil
}

// ColorMatrix applies a 4x5 color matrix.
type ColorMatrix struct{}

// ProcessImage implements effect.Kernel.
func (ColorMatrix) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	cp, err := payload[effect.ColorMatrixParams](src, p)
	if err != nil {
		return nil, err
	}
	if cp.Matrix == effect.IdentityColorMatrix() {
		return src, nil
	}
	return filter.ColorMatrix(src, &cp.Matrix), nil
}

// EdgeLight adds a colored glow where the luminance gradient is strong.
// Edges are detected with a 3x3 Sobel operator.
type EdgeLight struct{}

// sobelNorm maps the Sobel magnitude of a full black to white step to 1.
const sobelNorm = 4 * 255

// ProcessImage implements effect.Kernel.
func (EdgeLight) ProcessImage(_ *effect.FrameContext, src *image.RGBA, p effect.Erased) (*image.RGBA, error) {
	ep, err := payload[effect.EdgeLightParams](src, p)
	if err != nil {
		return nil, err
	}
	if ep.Strength <= 0 || ep.Color.A == 0 {
		return src, nil
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	lum := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := filter.At(src, x, y, effect.TileClamp)
			lum[y*w+x] = 0.2126*px[0] + 0.7152*px[1] + 0.0722*px[2]
		}
	}
	at := func(x, y int) float32 {
		x = filter.Tile(x, w, effect.TileClamp)
		y = filter.Tile(y, h, effect.TileClamp)
		return lum[y*w+x]
	}

	glowA := float32(ep.Color.A) / 255
	cr := float32(ep.Color.R) * glowA
	cg := float32(ep.Color.G) * glowA
	cb := float32(ep.Color.B) * glowA

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			mag := math.Hypot(float64(gx), float64(gy)) / sobelNorm
			k := float32(math.Min(mag*ep.Strength, 1))

			px := filter.At(src, x, y, effect.TileClamp)
			px[0] += cr * k
			px[1] += cg * k
			px[2] += cb * k
			px[3] = max(px[3], 255*glowA*k)
			filter.Set(dst, x, y, px)
		}
	}
	return dst, nil
}
