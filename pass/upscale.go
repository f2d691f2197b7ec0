package pass

import "github.com/gogpu/effect"

// Upscale sets NeedsUpscale on every accelerated element: true when the next
// element is a plain node, false when the element is last or is followed by
// another accelerated element. Nodes are left alone.
type Upscale struct{}

// Name implements Pass.
func (Upscale) Name() string { return "upscale" }

// Run implements Pass. It reports a change when any flag was missing or
// held the wrong value.
func (Upscale) Run(p *effect.Pipeline) Result {
	if p == nil {
		return Result{}
	}

	changed := false
	pl := *p
	for i, c := range pl {
		if !c.IsAccelerated() {
			continue
		}
		want := effect.NeedsUpscale(i+1 < len(pl) && pl[i+1].Node() != nil)
		if got, ok := effect.GetFlag[effect.NeedsUpscale](c); ok && got == want {
			continue
		}
		effect.SetFlag(c, want)
		changed = true
	}
	return Result{Changed: changed}
}
