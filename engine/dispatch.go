package engine

import (
	"fmt"
	"image"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/surface"
)

// Outcome is the result of dispatching one pipeline element.
type Outcome uint8

// Outcome constants.
const (
	// OutcomeError means the element was skipped and its input passed through.
	OutcomeError Outcome = iota

	// OutcomeProducedImage means the element produced an image for the next
	// element.
	OutcomeProducedImage

	// OutcomeDrewOnSurface means the element painted onto the surface.
	OutcomeDrewOnSurface
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeError:
		return "error"
	case OutcomeProducedImage:
		return "image"
	case OutcomeDrewOnSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// dispatch runs one node: resolve the kernel, load its cache, process or
// draw directly, then save its cache. On failure it returns img unchanged.
func (e *Engine) dispatch(fc *effect.FrameContext, c *effect.Composable, img *image.RGBA, dst surface.Surface, lookup effect.CacheLookup, last bool) (*image.RGBA, bool) {
	out, o := e.dispatchNode(fc, c, img, dst, lookup, last)
	e.metrics.observeDispatch(c.Kind(), o)
	switch o {
	case OutcomeDrewOnSurface:
		return nil, true
	case OutcomeProducedImage:
		return out, false
	default:
		return img, false
	}
}

func (e *Engine) dispatchNode(fc *effect.FrameContext, c *effect.Composable, img *image.RGBA, dst surface.Surface, lookup effect.CacheLookup, last bool) (*image.RGBA, Outcome) {
	node := c.Node()
	if node == nil {
		return nil, OutcomeError
	}

	kern, err := e.kernels.Build(node.Kind())
	if err != nil {
		e.log().Warn("effect: element skipped", "element", c, "error", err)
		return nil, OutcomeError
	}

	var slot effect.CacheProvider
	if lookup != nil {
		slot = lookup(c)
	}
	user, _ := kern.(effect.CacheUser)
	if user != nil {
		var v any
		if slot != nil {
			v, _ = slot.GetFirst()
		}
		user.LoadCache(v)
	}

	if last && e.directDraw && wantsDirectDraw(c) {
		if drawer, ok := kern.(effect.DirectDrawer); ok {
			err := drawer.DrawDirect(fc, dst, img, node.Params())
			if err == nil {
				e.saveCache(c, user, slot)
				return nil, OutcomeDrewOnSurface
			}
			e.log().Warn("effect: direct draw failed, falling back to image", "element", c, "error", err)
		}
	}

	out, err := kern.ProcessImage(fc, img, node.Params())
	if err == nil && out == nil {
		err = effect.ErrNilImage
	}
	if err != nil {
		e.log().Warn("effect: element skipped", "element", c, "error", &effect.KernelError{Kind: node.Kind(), Err: err})
		return nil, OutcomeError
	}

	e.saveCache(c, user, slot)
	return out, OutcomeProducedImage
}

func (e *Engine) saveCache(c *effect.Composable, user effect.CacheUser, slot effect.CacheProvider) {
	if user == nil || slot == nil {
		return
	}
	v, ok := user.SaveCache()
	if !ok {
		return
	}
	if !slot.Store(v) {
		e.log().Debug("effect: cache value rejected by slot", "element", c, "type", fmt.Sprintf("%T", v))
	}
}

func wantsDirectDraw(c *effect.Composable) bool {
	v, ok := effect.GetFlag[effect.DirectDraw](c)
	return ok && bool(v)
}
