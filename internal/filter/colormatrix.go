package filter

import (
	"image/color"
	"math"
)

// Color matrices are 4x5 row-major over straight-alpha [0, 255] channels:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column is a bias in channel units.

// Identity returns the matrix that leaves colors unchanged.
func Identity() [20]float32 {
	return [20]float32{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// Brightness scales the color channels.
// 0 is black, 1 unchanged, 2 twice as bright.
func Brightness(factor float32) [20]float32 {
	return [20]float32{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales the color channels around mid grey.
// 0 is flat grey, 1 unchanged.
func Contrast(factor float32) [20]float32 {
	offset := 128 * (1 - factor)
	return [20]float32{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between luminance (0) and the original color (1).
func Saturation(factor float32) [20]float32 {
	inv := 1 - factor
	return [20]float32{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Sepia returns a sepia tone matrix.
func Sepia() [20]float32 {
	return [20]float32{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Invert inverts the color channels and keeps alpha.
func Invert() [20]float32 {
	return [20]float32{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates hue by degrees while preserving luminance.
func HueRotate(degrees float64) [20]float32 {
	rad := degrees * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))

	return [20]float32{
		lumR + c*(1-lumR) - s*lumR, lumG - c*lumG - s*lumG, lumB - c*lumB + s*(1-lumB), 0, 0,
		lumR - c*lumR + s*0.143, lumG + c*(1-lumG) + s*0.140, lumB - c*lumB - s*0.283, 0, 0,
		lumR - c*lumR - s*(1-lumR), lumG - c*lumG + s*lumG, lumB + c*(1-lumB) + s*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Opacity scales alpha.
func Opacity(factor float32) [20]float32 {
	m := Identity()
	m[18] = factor
	return m
}

// Tint blends colors toward tint by the tint's alpha.
func Tint(tint color.NRGBA) [20]float32 {
	f := float32(tint.A) / 255
	inv := 1 - f
	return [20]float32{
		inv, 0, 0, 0, float32(tint.R) * f,
		0, inv, 0, 0, float32(tint.G) * f,
		0, 0, inv, 0, float32(tint.B) * f,
		0, 0, 0, 1, 0,
	}
}

// Compose returns the matrix that applies first and then second.
func Compose(first, second [20]float32) [20]float32 {
	a, b := &second, &first
	var r [20]float32
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}
	return r
}
