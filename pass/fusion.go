package pass

import "github.com/gogpu/effect"

// FusionRule replaces an adjacent (First, Second) pair of nodes with the
// single node returned by Fuse. Fuse reports false to keep the pair.
type FusionRule struct {
	First  effect.Kind
	Second effect.Kind
	Fuse   func(first, second effect.Erased) (effect.Erased, bool)
}

// GreyBlurRule fuses Grey followed by Blur into FusedBlur. The inset,
// stretch and tile mode fields keep their zero defaults.
var GreyBlurRule = FusionRule{
	First:  effect.KindGrey,
	Second: effect.KindBlur,
	Fuse: func(first, second effect.Erased) (effect.Erased, bool) {
		g, ok := effect.Unbox[effect.GreyParams](first)
		if !ok {
			return effect.Erased{}, false
		}
		b, ok := effect.Unbox[effect.BlurParams](second)
		if !ok {
			return effect.Erased{}, false
		}
		return effect.Box(effect.FusedBlurParams{
			Radius:    b.Radius,
			GreyCoef1: g.Coef1,
			GreyCoef2: g.Coef2,
		}), true
	},
}

// DefaultFusionRules returns the built-in fusion rules.
func DefaultFusionRules() []FusionRule {
	return []FusionRule{GreyBlurRule}
}

// Fusion merges adjacent nodes for which a rule exists.
//
// The scan resumes after a fused element, so a fused result is never fused
// again in the same run. Accelerated elements are never fused.
type Fusion struct {
	rules []FusionRule
}

// NewFusion returns a fusion pass. With no rules it uses DefaultFusionRules.
func NewFusion(rules ...FusionRule) *Fusion {
	if len(rules) == 0 {
		rules = DefaultFusionRules()
	}
	return &Fusion{rules: rules}
}

// Name implements Pass.
func (*Fusion) Name() string { return "fusion" }

// Run implements Pass.
func (f *Fusion) Run(p *effect.Pipeline) Result {
	if p == nil || len(*p) < 2 {
		return Result{}
	}

	in := *p
	out := make(effect.Pipeline, 0, len(in))
	changed := false

	for i := 0; i < len(in); i++ {
		if i+1 < len(in) {
			if fused, ok := f.fuse(in[i], in[i+1]); ok {
				out = append(out, fused)
				changed = true
				i++
				continue
			}
		}
		out = append(out, in[i])
	}

	if changed {
		*p = out
	}
	return Result{Changed: changed}
}

func (f *Fusion) fuse(a, b *effect.Composable) (*effect.Composable, bool) {
	na, nb := a.Node(), b.Node()
	if na == nil || nb == nil {
		return nil, false
	}
	for _, r := range f.rules {
		if na.Kind() != r.First || nb.Kind() != r.Second || r.Fuse == nil {
			continue
		}
		if e, ok := r.Fuse(na.Params(), nb.Params()); ok && !e.IsZero() {
			return effect.NewFromErased(e), true
		}
	}
	return nil, false
}
