package pass

import (
	"image"

	"github.com/gogpu/effect"
)

// fakeProgram is an accelerated program that returns its input.
type fakeProgram struct {
	kind effect.Kind
}

func (f fakeProgram) Kind() effect.Kind { return f.kind }

func (f fakeProgram) Run(_ *effect.FrameContext, src *image.RGBA) (*image.RGBA, error) {
	return src, nil
}

func accel(k effect.Kind) *effect.Composable {
	return effect.NewAccelerated(fakeProgram{kind: k})
}

// builderFunc adapts a function to effect.AcceleratedBuilder.
type builderFunc func(effect.Pipeline) effect.Pipeline

func (f builderFunc) Build(p effect.Pipeline) effect.Pipeline { return f(p) }

func grey(c1, c2 float64) *effect.Composable {
	return effect.New(effect.GreyParams{Coef1: c1, Coef2: c2})
}

func blur(r float64) *effect.Composable {
	return effect.New(effect.BlurParams{Radius: r})
}

func gradient() *effect.Composable {
	return effect.New(effect.LinearGradientParams{X1: 1})
}
