package filter

import (
	"image"
	"sync"

	"github.com/gogpu/effect"
)

// Blur applies a separable Gaussian blur with independent X and Y radii.
// A radius <= 0 leaves that axis untouched.
func Blur(src *image.RGBA, radiusX, radiusY float64, mode effect.TileMode) *image.RGBA {
	if radiusX <= 0 && radiusY <= 0 {
		return Clone(src)
	}
	return Convolve(src, CachedGaussianKernel(radiusX), CachedGaussianKernel(radiusY), mode)
}

// BoxBlur applies passes iterations of a separable box blur of the given
// radius. Three passes approximate a Gaussian.
func BoxBlur(src *image.RGBA, radius, passes int, mode effect.TileMode) *image.RGBA {
	if radius <= 0 || passes <= 0 {
		return Clone(src)
	}
	k := BoxKernel(radius)
	out := src
	for i := 0; i < passes; i++ {
		out = Convolve(out, k, k, mode)
	}
	return out
}

// Convolve applies the horizontal kernel kx and then the vertical kernel ky.
// Both kernels must have odd length; taps falling outside the image follow
// mode, and TileDecal taps contribute transparent black.
//
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row with kx into a float buffer
//  2. Vertical pass: convolve each column of the buffer with ky
func Convolve(src *image.RGBA, kx, ky []float32, mode effect.TileMode) *image.RGBA {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dst
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	convolveRows(src, temp, width, height, kx, mode)
	convolveColumns(temp, dst, width, height, ky, mode)
	return dst
}

// convolveRows applies 1D horizontal convolution from src into temp.
func convolveRows(src *image.RGBA, temp []float32, width, height int, kernel []float32, mode effect.TileMode) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		line := row(src, y)
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := Tile(x+k-half, width, mode)
				if kx < 0 {
					continue
				}
				i := kx * 4
				r += float32(line[i+0]) * weight
				g += float32(line[i+1]) * weight
				b += float32(line[i+2]) * weight
				a += float32(line[i+3]) * weight
			}

			t := (y*width + x) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// convolveColumns applies 1D vertical convolution from temp into dst.
func convolveColumns(temp []float32, dst *image.RGBA, width, height int, kernel []float32, mode effect.TileMode) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var p Pixel

			for k, weight := range kernel {
				ky := Tile(y+k-half, height, mode)
				if ky < 0 {
					continue
				}
				t := (ky*width + x) * 4
				p[0] += temp[t+0] * weight
				p[1] += temp[t+1] * weight
				p[2] += temp[t+2] * weight
				p[3] += temp[t+3] * weight
			}

			Set(dst, x, y, p)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer retrieves a temporary buffer of width*height*4 elements.
// The contents are unspecified; callers overwrite every element.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers (64MB max).
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
