// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package accel

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
	"github.com/gogpu/effect/kernel"
)

// Program is a lowered blur running at reduced resolution.
type Program struct {
	params effect.Erased
	scale  int
	format gputypes.TextureFormat
	kern   effect.Kernel
}

func newProgram(params effect.Erased, scale int, format gputypes.TextureFormat) *Program {
	var k effect.Kernel
	switch params.Kind() {
	case effect.KindBlur:
		k = kernel.Blur{}
	case effect.KindKawaseBlur:
		k = kernel.KawaseBlur{}
	case effect.KindFusedBlur:
		k = kernel.FusedBlur{}
	default:
		return nil
	}
	return &Program{params: params, scale: scale, format: format, kern: k}
}

// Kind implements effect.AcceleratedProgram.
func (p *Program) Kind() effect.Kind {
	return p.params.Kind()
}

// Params returns the payload at reduced resolution.
func (p *Program) Params() effect.Erased {
	return p.params
}

// Scale returns the downsampling factor.
func (p *Program) Scale() int {
	return p.scale
}

// Format returns the texture format of the program's targets.
func (p *Program) Format() gputypes.TextureFormat {
	return p.format
}

// Extent returns the output texture extent for an input of size r.
func (p *Program) Extent(r image.Rectangle) gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(max((r.Dx()+p.scale-1)/p.scale, 1)),
		Height:             uint32(max((r.Dy()+p.scale-1)/p.scale, 1)),
		DepthOrArrayLayers: 1,
	}
}

// Run implements effect.AcceleratedProgram. A frame-sized input is
// downsampled to Extent first. A smaller input already comes from an
// earlier program and is processed at its own resolution.
func (p *Program) Run(fc *effect.FrameContext, src *image.RGBA) (*image.RGBA, error) {
	if src == nil {
		return nil, effect.ErrNilImage
	}
	small := src
	if p.atFrameSize(fc, src.Bounds()) {
		ext := p.Extent(src.Bounds())
		small = filter.Resize(src, int(ext.Width), int(ext.Height))
	}

	out, err := p.kern.ProcessImage(fc, small, p.params)
	if err != nil {
		return nil, fmt.Errorf("accel: %s program: %w", p.Kind(), err)
	}
	return out, nil
}

func (p *Program) atFrameSize(fc *effect.FrameContext, r image.Rectangle) bool {
	if fc == nil || fc.Width <= 0 || fc.Height <= 0 {
		return true
	}
	return r.Dx() >= fc.Width && r.Dy() >= fc.Height
}

// String returns a short description for logs.
func (p *Program) String() string {
	return fmt.Sprintf("%s/%dx %v", p.params, p.scale, p.format)
}

var _ effect.AcceleratedProgram = (*Program)(nil)
