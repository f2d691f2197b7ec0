package filter

import "image"

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Grey moves every channel toward the pixel luminance. Pixels whose straight
// luminance is below one half move by coef1, brighter pixels by coef2.
// A coefficient of 0 leaves the pixel unchanged and 1 makes it fully grey.
//
// Premultiplied channels are blended directly: the luminance of a
// premultiplied pixel is its straight luminance scaled by alpha.
func Grey(src *image.RGBA, coef1, coef2 float64) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	c1, c2 := float32(coef1), float32(coef2)

	for y := 0; y < b.Dy(); y++ {
		in := row(src, y)
		out := dst.Pix[y*dst.Stride:][:b.Dx()*4]
		for i := 0; i < len(in); i += 4 {
			r, g, bl, a := float32(in[i]), float32(in[i+1]), float32(in[i+2]), in[i+3]
			out[i+3] = a
			if a == 0 {
				continue
			}

			l := lumR*r + lumG*g + lumB*bl
			coef := c2
			if l < float32(a)/2 {
				coef = c1
			}
			out[i+0] = clampUint8(r + (l-r)*coef)
			out[i+1] = clampUint8(g + (l-g)*coef)
			out[i+2] = clampUint8(bl + (l-bl)*coef)
		}
	}
	return dst
}

// ColorMatrix applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias values. Color values are straight alpha in
// [0, 255] during transformation, then re-premultiplied and clamped.
func ColorMatrix(src *image.RGBA, m *[20]float32) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		in := row(src, y)
		for i := 0; i < len(in); i += 4 {
			pr := float32(in[i+0])
			pg := float32(in[i+1])
			pb := float32(in[i+2])
			a := float32(in[i+3])

			// The matrix coefficients assume straight-alpha color values.
			var r, g, bl float32
			if a > 0 {
				r = pr * 255 / a
				g = pg * 255 / a
				bl = pb * 255 / a
			}

			newR := m[0]*r + m[1]*g + m[2]*bl + m[3]*a + m[4]
			newG := m[5]*r + m[6]*g + m[7]*bl + m[8]*a + m[9]
			newB := m[10]*r + m[11]*g + m[12]*bl + m[13]*a + m[14]
			newA := m[15]*r + m[16]*g + m[17]*bl + m[18]*a + m[19]

			if newA > 255 {
				newA = 255
			}
			if newA > 0 {
				factor := newA / 255
				newR *= factor
				newG *= factor
				newB *= factor
			} else {
				newR, newG, newB = 0, 0, 0
			}

			Set(dst, i/4, y, Pixel{newR, newG, newB, newA})
		}
	}
	return dst
}
