// Package filter provides the numeric image primitives behind the effect
// kernels.
//
// All functions operate on premultiplied *image.RGBA values and never modify
// their input:
//   - Gaussian and box convolution (separable, tile-mode aware)
//   - Luminance pull (grey), 4x5 color matrices and their builders
//   - Bilinear sampling with tile modes, resize and inset stretch
//   - Signed distance coverage for rounded rectangles
//
// Images with a non-zero origin are supported; results always start at the
// origin.
package filter
