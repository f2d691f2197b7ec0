// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package accel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/effect"
)

// Default builder settings.
const (
	DefaultDownscale = 2
	DefaultMinRadius = 4.0
)

// ErrUnsupportedFormat is returned when the device surface format is not an
// 8-bit RGBA or BGRA format.
var ErrUnsupportedFormat = errors.New("accel: unsupported surface format")

// Option configures a Builder.
type Option func(*Builder)

// WithDownscale sets the downsampling factor. Factors below 2 disable
// lowering.
func WithDownscale(factor int) Option {
	return func(b *Builder) {
		b.downscale = factor
	}
}

// WithMinRadius sets the smallest blur radius worth lowering.
func WithMinRadius(r float64) Option {
	return func(b *Builder) {
		b.minRadius = r
	}
}

// WithDeviceProvider shares the host's GPU device. Its surface format
// becomes the program texture format.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(b *Builder) {
		b.provider = p
	}
}

// WithLogger sets the logger for declined pipelines.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// Builder lowers blur-family nodes to downscaled programs.
type Builder struct {
	downscale int
	minRadius float64
	provider  gpucontext.DeviceProvider
	logger    *slog.Logger
}

// NewBuilder returns a builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		downscale: DefaultDownscale,
		minRadius: DefaultMinRadius,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Format returns the texture format programs will use. Without a device
// provider, or when the provider reports no format, it is RGBA8Unorm.
func (b *Builder) Format() (gputypes.TextureFormat, error) {
	if b.provider == nil {
		return gputypes.TextureFormatRGBA8Unorm, nil
	}
	switch f := b.provider.SurfaceFormat(); f {
	case gputypes.TextureFormatUndefined:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return f, nil
	default:
		return f, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Build implements effect.AcceleratedBuilder. It returns p itself when
// nothing is lowered.
func (b *Builder) Build(p effect.Pipeline) effect.Pipeline {
	if b.downscale < 2 {
		return p
	}
	format, err := b.Format()
	if err != nil {
		b.log().Warn("accel: pipeline declined", "error", err)
		return p
	}

	var out effect.Pipeline
	for i, c := range p {
		prog := b.lower(c.Node(), format)
		if prog == nil {
			continue
		}
		if out == nil {
			out = append(effect.Pipeline(nil), p...)
		}
		out[i] = effect.NewAccelerated(prog)
	}
	if out == nil {
		return p
	}
	return out
}

// lower returns the program for n, or nil if n stays on the CPU path.
func (b *Builder) lower(n *effect.Node, format gputypes.TextureFormat) *Program {
	if n == nil {
		return nil
	}
	scale := float64(b.downscale)

	switch n.Kind() {
	case effect.KindBlur:
		bp, ok := effect.Unbox[effect.BlurParams](n.Params())
		if !ok || bp.Radius < b.minRadius {
			return nil
		}
		bp.Radius /= scale
		return newProgram(effect.Box(bp), b.downscale, format)

	case effect.KindKawaseBlur:
		kp, ok := effect.Unbox[effect.KawaseBlurParams](n.Params())
		if !ok || float64(kp.Radius) < b.minRadius {
			return nil
		}
		kp.Radius = max(kp.Radius/b.downscale, 1)
		return newProgram(effect.Box(kp), b.downscale, format)

	case effect.KindFusedBlur:
		fp, ok := effect.Unbox[effect.FusedBlurParams](n.Params())
		// Inset and stretch address full-resolution pixels.
		if !ok || fp.Radius < b.minRadius || fp.Width > 0 || fp.Height > 0 {
			return nil
		}
		fp.Radius /= scale
		return newProgram(effect.Box(fp), b.downscale, format)
	}
	return nil
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return effect.Logger()
}

var _ effect.AcceleratedBuilder = (*Builder)(nil)
