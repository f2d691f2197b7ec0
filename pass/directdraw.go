package pass

import "github.com/gogpu/effect"

// DirectDrawMark sets DirectDraw on the last element when its kind can
// paint directly onto the output surface.
type DirectDrawMark struct{}

// Name implements Pass.
func (DirectDrawMark) Name() string { return "directdraw" }

// Run implements Pass.
func (DirectDrawMark) Run(p *effect.Pipeline) Result {
	if p == nil {
		return Result{}
	}
	last := p.Last()
	if last == nil || !last.Kind().SupportsDirectDraw() {
		return Result{}
	}
	if v, ok := effect.GetFlag[effect.DirectDraw](last); ok && bool(v) {
		return Result{}
	}
	effect.SetFlag(last, effect.DirectDraw(true))
	return Result{Changed: true}
}
