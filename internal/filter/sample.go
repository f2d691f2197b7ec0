package filter

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/effect"
)

// Pixel is a premultiplied RGBA value with channels in [0, 255].
type Pixel [4]float32

// Clone returns a copy of src anchored at the origin.
func Clone(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:][:b.Dx()*4], row(src, y))
	}
	return dst
}

// Resize scales src to width x height with bilinear interpolation.
// It returns src itself when the size already matches.
func Resize(src *image.RGBA, width, height int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Tile maps coordinate i into [0, n) according to mode. It returns -1 for
// coordinates outside the image under TileDecal.
func Tile(i, n int, mode effect.TileMode) int {
	if i >= 0 && i < n {
		return i
	}
	if n <= 0 {
		return -1
	}
	switch mode {
	case effect.TileRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case effect.TileMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	case effect.TileDecal:
		return -1
	default:
		if i < 0 {
			return 0
		}
		return n - 1
	}
}

// At returns the pixel at (x, y) relative to the image origin, applying
// mode to coordinates outside the image.
func At(src *image.RGBA, x, y int, mode effect.TileMode) Pixel {
	b := src.Bounds()
	tx := Tile(x, b.Dx(), mode)
	ty := Tile(y, b.Dy(), mode)
	if tx < 0 || ty < 0 {
		return Pixel{}
	}
	i := src.PixOffset(b.Min.X+tx, b.Min.Y+ty)
	s := src.Pix[i : i+4 : i+4]
	return Pixel{float32(s[0]), float32(s[1]), float32(s[2]), float32(s[3])}
}

// SampleBilinear samples src at the continuous position (fx, fy), where
// pixel centers lie at half-integer coordinates.
func SampleBilinear(src *image.RGBA, fx, fy float64, mode effect.TileMode) Pixel {
	fx -= 0.5
	fy -= 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	p00 := At(src, x0, y0, mode)
	p10 := At(src, x0+1, y0, mode)
	p01 := At(src, x0, y0+1, mode)
	p11 := At(src, x0+1, y0+1, mode)

	var out Pixel
	for c := 0; c < 4; c++ {
		top := p00[c] + (p10[c]-p00[c])*tx
		bottom := p01[c] + (p11[c]-p01[c])*tx
		out[c] = top + (bottom-top)*ty
	}
	return out
}

// Set writes p at (x, y) of an origin-anchored image, clamping channels and
// keeping color channels at or below alpha.
func Set(dst *image.RGBA, x, y int, p Pixel) {
	i := dst.PixOffset(x, y)
	s := dst.Pix[i : i+4 : i+4]
	a := clampUint8(p[3])
	s[3] = a
	for c := 0; c < 3; c++ {
		v := clampUint8(p[c])
		if v > a {
			v = a
		}
		s[c] = v
	}
}

// Inset describes a source region by its distances from the four edges.
type Inset struct {
	Left, Top, Right, Bottom float64
}

// Stretch resamples the inset region of src to width x height. Coordinates
// that fall outside src, possible with negative insets, follow mode.
func Stretch(src *image.RGBA, in Inset, width, height int, mode effect.TileMode) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	b := src.Bounds()
	rw := float64(b.Dx()) - in.Left - in.Right
	rh := float64(b.Dy()) - in.Top - in.Bottom
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if rw <= 0 || rh <= 0 {
		return dst
	}

	sx := rw / float64(width)
	sy := rh / float64(height)
	for y := 0; y < height; y++ {
		fy := in.Top + (float64(y)+0.5)*sy
		for x := 0; x < width; x++ {
			fx := in.Left + (float64(x)+0.5)*sx
			Set(dst, x, y, SampleBilinear(src, fx, fy, mode))
		}
	}
	return dst
}

// row returns the pixel bytes of row y relative to the image origin.
func row(src *image.RGBA, y int) []uint8 {
	b := src.Bounds()
	i := src.PixOffset(b.Min.X, b.Min.Y+y)
	return src.Pix[i : i+b.Dx()*4]
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
