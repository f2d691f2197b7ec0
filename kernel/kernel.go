package kernel

import (
	"fmt"
	"image"

	"github.com/gogpu/effect"
)

// Defaults returns a new registry with the kernel for every kind installed.
func Defaults() *effect.Kernels {
	r := effect.NewKernels()
	Register(r)
	return r
}

// Register installs the kernel for every kind into r, replacing existing
// entries.
func Register(r *effect.Kernels) {
	r.Register(effect.KindBlur, shared(Blur{}))
	r.Register(effect.KindKawaseBlur, shared(KawaseBlur{}))
	r.Register(effect.KindGrey, shared(Grey{}))
	r.Register(effect.KindFusedBlur, shared(FusedBlur{}))
	r.Register(effect.KindColorMatrix, shared(ColorMatrix{}))
	r.Register(effect.KindLinearGradient, shared(LinearGradient{}))
	r.Register(effect.KindDisplacement, shared(Displacement{}))
	r.Register(effect.KindWaterRipple, shared(WaterRipple{}))
	r.Register(effect.KindMagnifier, shared(Magnifier{}))
	r.Register(effect.KindEdgeLight, shared(EdgeLight{}))
	r.Register(effect.KindRoundedRect, shared(RoundedRect{}))
	r.Register(effect.KindFrameBlend, func() (effect.Kernel, error) {
		return &FrameBlend{}, nil
	})
}

// shared returns a factory handing out one stateless kernel.
func shared(k effect.Kernel) effect.KernelFactory {
	return func() (effect.Kernel, error) { return k, nil }
}

// payload unboxes the exact payload type T from p and checks src.
func payload[T effect.Params](src *image.RGBA, p effect.Erased) (T, error) {
	v, ok := effect.Unbox[T](p)
	if !ok {
		return v, fmt.Errorf("%w: got %s", effect.ErrParamsMismatch, p.Kind())
	}
	if src == nil {
		return v, effect.ErrNilImage
	}
	return v, nil
}

// Every kernel is registered under its payload's kind.
var (
	_ effect.Kernel = Blur{}
	_ effect.Kernel = KawaseBlur{}
	_ effect.Kernel = Grey{}
	_ effect.Kernel = FusedBlur{}
	_ effect.Kernel = ColorMatrix{}
	_ effect.Kernel = LinearGradient{}
	_ effect.Kernel = Displacement{}
	_ effect.Kernel = WaterRipple{}
	_ effect.Kernel = Magnifier{}
	_ effect.Kernel = EdgeLight{}
	_ effect.Kernel = RoundedRect{}
	_ effect.Kernel = (*FrameBlend)(nil)

	_ effect.DirectDrawer = LinearGradient{}
	_ effect.DirectDrawer = RoundedRect{}
	_ effect.CacheUser    = (*FrameBlend)(nil)
)
