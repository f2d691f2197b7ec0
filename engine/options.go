package engine

import (
	"log/slog"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/kernel"
	"github.com/gogpu/effect/pass"
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := engine.New(
//	    engine.WithKernels(myKernels),
//	    engine.WithDirectDraw(false),
//	)
type Option func(*options)

type options struct {
	kernels    *effect.Kernels
	logger     *slog.Logger
	builder    effect.AcceleratedBuilder
	rules      []pass.FusionRule
	directDraw bool
	metrics    *Metrics
}

func defaultOptions() options {
	return options{
		directDraw: true,
	}
}

// WithKernels sets the kernel registry. The default is kernel.Defaults().
func WithKernels(k *effect.Kernels) Option {
	return func(o *options) {
		o.kernels = k
	}
}

// WithLogger sets the logger for skipped elements and fallbacks.
// The default is effect.Logger(), read at each use.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBuilder enables the accelerated path with the given builder.
func WithBuilder(b effect.AcceleratedBuilder) Option {
	return func(o *options) {
		o.builder = b
	}
}

// WithFusionRules replaces the default fusion rules.
func WithFusionRules(rules ...pass.FusionRule) Option {
	return func(o *options) {
		o.rules = rules
	}
}

// WithDirectDraw enables or disables painting straight onto the surface.
// It is enabled by default.
func WithDirectDraw(enabled bool) Option {
	return func(o *options) {
		o.directDraw = enabled
	}
}

// WithMetrics records pass, dispatch and latency metrics into m.
//
// Example:
//
//	m, err := engine.NewMetrics(prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	e := engine.New(engine.WithMetrics(m))
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// resolveKernels returns the configured registry or the defaults.
func (o *options) resolveKernels() *effect.Kernels {
	if o.kernels != nil {
		return o.kernels
	}
	return kernel.Defaults()
}
