package pass

import "github.com/gogpu/effect"

// Lowering hands the pipeline to an accelerated builder.
type Lowering struct {
	Builder effect.AcceleratedBuilder
}

// Name implements Pass.
func (*Lowering) Name() string { return "lowering" }

// Run implements Pass. A builder result of a different length, or with any
// element replaced, counts as a change.
func (l *Lowering) Run(p *effect.Pipeline) Result {
	if p == nil || len(*p) == 0 || l.Builder == nil {
		return Result{}
	}

	out := l.Builder.Build(*p)
	changed := len(out) != len(*p)
	if !changed {
		for i := range out {
			if out[i] != (*p)[i] {
				changed = true
				break
			}
		}
	}
	if changed {
		*p = out
	}
	return Result{Changed: changed}
}
