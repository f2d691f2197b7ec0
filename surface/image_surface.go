// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ImageSurface is a CPU surface that renders to an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.DrawImage(img, image.Pt(10, 10), nil)
//	out := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	draws  int
	closed bool
}

// NewImageSurface creates a new CPU surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface that renders into img directly.
// img may be a sub-image of a larger buffer.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// DrawImage composites img onto the surface.
func (s *ImageSurface) DrawImage(img image.Image, at image.Point, opts *DrawImageOptions) {
	if s.closed || img == nil {
		return
	}
	if opts == nil {
		opts = DefaultDrawImageOptions()
	}
	if opts.Alpha <= 0 {
		return
	}

	sr := img.Bounds()
	if opts.SrcRect != nil {
		sr = opts.SrcRect.Intersect(sr)
	}
	if sr.Empty() {
		return
	}

	op := xdraw.Over
	if opts.Mode == CompositeSrc {
		op = xdraw.Src
	}

	var xopts *xdraw.Options
	if opts.Alpha < 1 {
		xopts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha16{A: uint16(opts.Alpha * 0xffff)}),
		}
	}

	interp := interpolator(opts.Filter)
	at = at.Add(s.img.Bounds().Min)
	s.draws++

	switch {
	case opts.Transform != nil:
		m := *opts.Transform
		m[2] += float64(at.X)
		m[5] += float64(at.Y)
		interp.Transform(s.img, m, img, sr, op, xopts)
	case opts.DstRect != nil:
		interp.Scale(s.img, opts.DstRect.Add(at), img, sr, op, xopts)
	default:
		xdraw.Copy(s.img, at, img, sr, op, xopts)
	}
}

// Flush is a no-op for ImageSurface.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	b := s.img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		start := s.img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(result.Pix[y*result.Stride:][:s.width*4], s.img.Pix[start:start+s.width*4])
	}
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// Image returns the underlying image. This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// DrawCount returns the number of DrawImage calls that reached the surface.
func (s *ImageSurface) DrawCount() int {
	return s.draws
}

// interpolator returns the x/image interpolator for a filter.
func interpolator(f Filter) xdraw.Interpolator {
	switch f {
	case FilterBilinear:
		return xdraw.BiLinear
	case FilterCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

var _ Surface = (*ImageSurface)(nil)
