package pass

import (
	"github.com/gogpu/effect"
)

// Result describes the outcome of one pass run. It is used for diagnostics
// and telemetry only; correctness never depends on it.
type Result struct {
	// Changed reports whether the pass rewrote or annotated the pipeline.
	Changed bool
}

// Pass is one analysis or rewrite step over a pipeline.
type Pass interface {
	// Name returns a short stable identifier, used in logs and metrics.
	Name() string

	// Run processes p in place.
	Run(p *effect.Pipeline) Result
}

// Report is the result of one pass within Run.
type Report struct {
	Pass string
	Result
}

// Run runs passes once, in order, and returns one report per pass.
func Run(p *effect.Pipeline, passes ...Pass) []Report {
	reports := make([]Report, 0, len(passes))
	for _, ps := range passes {
		r := ps.Run(p)
		effect.Logger().Debug("effect pass", "pass", ps.Name(), "changed", r.Changed, "len", pipelineLen(p))
		reports = append(reports, Report{Pass: ps.Name(), Result: r})
	}
	return reports
}

func pipelineLen(p *effect.Pipeline) int {
	if p == nil {
		return 0
	}
	return len(*p)
}

// Compiler runs the standard passes in their fixed order.
type Compiler struct {
	// Builder lowers compatible pipelines to accelerated elements.
	// If nil, the lowering step is skipped.
	Builder effect.AcceleratedBuilder

	// Rules are the fusion rules. If nil, DefaultFusionRules is used.
	Rules []FusionRule

	// DisableDirectDraw skips direct-draw marking and clears a DirectDraw
	// flag left on the last element by an earlier compile.
	DisableDirectDraw bool
}

// Compile runs compatibility, fusion, lowering, upscale and direct-draw
// marking on p. Lowering runs only when a Builder is configured and the
// pipeline contains a blur-family kind; its report is omitted otherwise.
func (c *Compiler) Compile(p *effect.Pipeline) []Report {
	compat := NewCompatibility()
	reports := Run(p, compat, NewFusion(c.Rules...))

	if c.Builder != nil && compat.HasBlurFamily() {
		reports = append(reports, Run(p, &Lowering{Builder: c.Builder})...)
	}

	reports = append(reports, Run(p, Upscale{})...)
	if !c.DisableDirectDraw {
		reports = append(reports, Run(p, DirectDrawMark{})...)
	} else if p != nil {
		if last := p.Last(); last != nil {
			effect.ClearFlag[effect.DirectDraw](last)
		}
	}
	return reports
}
