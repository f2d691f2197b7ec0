// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"
)

// Surface is the output target of an effect pipeline.
//
// The engine either composites the pipeline's final image onto a Surface
// itself, or lets a direct-draw kernel paint onto it.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// DrawImage composites img onto the surface with its top-left corner
	// at at. If opts is nil, DefaultDrawImageOptions is used.
	DrawImage(img image.Image, at image.Point, opts *DrawImageOptions)

	// Flush ensures all pending drawing operations are complete.
	Flush() error

	// Snapshot returns a copy of the current surface contents.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent.
	Close() error
}

// CompositeMode selects how drawn pixels combine with the surface.
type CompositeMode uint8

const (
	// CompositeOver is Porter-Duff source-over.
	CompositeOver CompositeMode = iota

	// CompositeSrc replaces destination pixels.
	CompositeSrc
)

// Filter specifies the interpolation mode for scaled or transformed draws.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor interpolation.
	FilterNearest Filter = iota

	// FilterBilinear uses bilinear interpolation.
	FilterBilinear

	// FilterCatmullRom uses the Catmull-Rom cubic kernel.
	FilterCatmullRom
)

// DrawImageOptions defines options for drawing images.
type DrawImageOptions struct {
	// SrcRect is the source rectangle within the image.
	// If nil, the entire image is used.
	SrcRect *image.Rectangle

	// DstRect scales the source into this destination rectangle.
	// If nil, the image is drawn at its original size.
	DstRect *image.Rectangle

	// Transform maps source to surface coordinates. When set it takes
	// precedence over DstRect and the at position.
	Transform *f64.Aff3

	// Alpha is the opacity (0.0 = transparent, 1.0 = opaque).
	Alpha float64

	// Filter is the interpolation mode for scaling.
	Filter Filter

	// Mode is the composite mode.
	Mode CompositeMode
}

// DefaultDrawImageOptions returns DrawImageOptions with default values.
func DefaultDrawImageOptions() *DrawImageOptions {
	return &DrawImageOptions{
		Alpha:  1.0,
		Filter: FilterBilinear,
		Mode:   CompositeOver,
	}
}
