package pass

import "github.com/gogpu/effect"

// Compatibility records whether a pipeline is a candidate for the
// accelerated path. It never modifies the pipeline.
type Compatibility struct {
	hasBlurFamily bool
}

// NewCompatibility returns a compatibility pass with no recorded result.
func NewCompatibility() *Compatibility {
	return &Compatibility{}
}

// Name implements Pass.
func (*Compatibility) Name() string { return "compatibility" }

// Run implements Pass.
func (c *Compatibility) Run(p *effect.Pipeline) Result {
	c.hasBlurFamily = false
	if p == nil {
		return Result{}
	}
	for _, el := range *p {
		if el.Kind().IsBlurFamily() {
			c.hasBlurFamily = true
			break
		}
	}
	return Result{}
}

// HasBlurFamily reports whether the last run saw a blur-family kind.
func (c *Compatibility) HasBlurFamily() bool {
	return c.hasBlurFamily
}
