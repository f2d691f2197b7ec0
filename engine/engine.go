package engine

import (
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
	"github.com/gogpu/effect/pass"
	"github.com/gogpu/effect/surface"
)

// Execution results recorded in metrics.
const (
	resultRejected = "rejected"
	resultEmpty    = "empty"
	resultImage    = "image"
	resultDirect   = "direct"
)

// Engine compiles and executes effect pipelines.
type Engine struct {
	kernels  *effect.Kernels
	logger   *slog.Logger
	compiler pass.Compiler
	metrics  *Metrics

	directDraw bool
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		kernels: o.resolveKernels(),
		logger:  o.logger,
		compiler: pass.Compiler{
			Builder:           o.builder,
			Rules:             o.rules,
			DisableDirectDraw: !o.directDraw,
		},
		metrics:    o.metrics,
		directDraw: o.directDraw,
	}
}

// Kernels returns the engine's kernel registry.
func (e *Engine) Kernels() *effect.Kernels {
	return e.kernels
}

// Compile runs the standard passes over p in place and returns their
// reports. Execute calls Compile itself.
func (e *Engine) Compile(p *effect.Pipeline) []pass.Report {
	reports := e.compiler.Compile(p)
	e.metrics.observePasses(reports)
	return reports
}

// Execute compiles p and runs it on src with a frame the size of src.
// See ExecuteFrame.
func (e *Engine) Execute(p *effect.Pipeline, src *image.RGBA, dst surface.Surface, lookup effect.CacheLookup) (*image.RGBA, bool) {
	return e.ExecuteFrame(nil, p, src, dst, lookup)
}

// ExecuteFrame compiles p and runs it on src.
//
// It returns the output image and false, or nil and true when the last
// element painted directly onto dst. A nil src or dst returns nil and false
// without running any pass. An empty pipeline returns src and false.
//
// A nil fc, or one with a zero size, takes its size from src. lookup may be
// nil; otherwise it supplies the cache of each node.
func (e *Engine) ExecuteFrame(fc *effect.FrameContext, p *effect.Pipeline, src *image.RGBA, dst surface.Surface, lookup effect.CacheLookup) (*image.RGBA, bool) {
	start := time.Now()

	if src == nil || dst == nil {
		e.metrics.observeExecution(resultRejected, start)
		return nil, false
	}
	if p == nil {
		p = &effect.Pipeline{}
	}
	fc = frameFor(fc, src)

	e.Compile(p)
	if len(*p) == 0 {
		e.metrics.observeExecution(resultEmpty, start)
		return src, false
	}

	img := src
	pl := *p
	for i, c := range pl {
		last := i == len(pl)-1

		if a := c.Accelerated(); a != nil {
			img = e.runAccelerated(fc, c, a, img, last)
			continue
		}

		out, drew := e.dispatch(fc, c, img, dst, lookup, last)
		if drew {
			e.metrics.observeExecution(resultDirect, start)
			return nil, true
		}
		img = out
	}

	e.metrics.observeExecution(resultImage, start)
	return img, false
}

// runAccelerated runs one accelerated element. Its output is scaled to the
// frame size when the element is flagged NeedsUpscale or is last.
func (e *Engine) runAccelerated(fc *effect.FrameContext, c *effect.Composable, a *effect.AcceleratedInstance, img *image.RGBA, last bool) *image.RGBA {
	out, err := a.Program().Run(fc, img)
	if err == nil && out == nil {
		err = effect.ErrNilImage
	}
	if err != nil {
		e.log().Warn("effect: accelerated element skipped", "element", c, "error", err)
		e.metrics.observeDispatch(a.Kind(), OutcomeError)
		return img
	}

	if up, _ := effect.GetFlag[effect.NeedsUpscale](c); bool(up) || last {
		out = filter.Resize(out, fc.Width, fc.Height)
	}
	e.metrics.observeDispatch(a.Kind(), OutcomeProducedImage)
	return out
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return effect.Logger()
}

// frameFor returns fc completed with the size of src.
func frameFor(fc *effect.FrameContext, src *image.RGBA) *effect.FrameContext {
	b := src.Bounds()
	if fc == nil {
		return &effect.FrameContext{Width: b.Dx(), Height: b.Dy()}
	}
	if fc.Width > 0 && fc.Height > 0 {
		return fc
	}
	out := *fc
	out.Width, out.Height = b.Dx(), b.Dy()
	return &out
}
