package effect

import (
	"image"
	"sort"
	"sync"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/effect/surface"
)

// FrameContext carries per-frame geometry to kernels.
type FrameContext struct {
	// Width and Height are the target resolution of the pipeline output.
	Width, Height int

	// Transform maps image space to surface space for direct draws.
	// The zero value is treated as identity.
	Transform f64.Aff3

	// Frame is a monotonically increasing frame counter chosen by the caller.
	Frame uint64
}

// IdentityTransform is the identity affine matrix.
var IdentityTransform = f64.Aff3{1, 0, 0, 0, 1, 0}

// Bounds returns the target rectangle anchored at the origin.
func (fc *FrameContext) Bounds() image.Rectangle {
	return image.Rect(0, 0, fc.Width, fc.Height)
}

// EffectiveTransform returns Transform, or identity if it is the zero matrix.
func (fc *FrameContext) EffectiveTransform() f64.Aff3 {
	if fc.Transform == (f64.Aff3{}) {
		return IdentityTransform
	}
	return fc.Transform
}

// Kernel processes images for one effect kind.
//
// ProcessImage must not modify src; it returns a new image or src itself
// when the effect is the identity for the given payload.
type Kernel interface {
	ProcessImage(fc *FrameContext, src *image.RGBA, p Erased) (*image.RGBA, error)
}

// DirectDrawer is implemented by kernels that can paint their result onto
// the output surface instead of producing an image.
type DirectDrawer interface {
	DrawDirect(fc *FrameContext, dst surface.Surface, src *image.RGBA, p Erased) error
}

// CacheUser is implemented by kernels that keep state across executions.
// LoadCache runs before processing with the slot's current value, SaveCache
// runs after successful processing and returns the value to store.
type CacheUser interface {
	LoadCache(v any)
	SaveCache() (any, bool)
}

// KernelFactory constructs a kernel for one execution of one element.
type KernelFactory func() (Kernel, error)

// Kernels maps effect kinds to kernel factories.
//
// A Kernels value is owned by the engine configuration that uses it. It is
// safe for concurrent use.
type Kernels struct {
	mu        sync.RWMutex
	factories map[Kind]KernelFactory
}

// NewKernels returns an empty kernel registry.
func NewKernels() *Kernels {
	return &Kernels{factories: make(map[Kind]KernelFactory)}
}

// Register sets the factory for k, replacing any previous one.
// A nil factory removes k.
func (r *Kernels) Register(k Kind, f KernelFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.factories == nil {
		r.factories = make(map[Kind]KernelFactory)
	}
	if f == nil {
		delete(r.factories, k)
		return
	}
	r.factories[k] = f
}

// Lookup returns the factory for k.
func (r *Kernels) Lookup(k Kind) (KernelFactory, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[k]
	return f, ok
}

// Build resolves and constructs the kernel for k.
func (r *Kernels) Build(k Kind) (Kernel, error) {
	f, ok := r.Lookup(k)
	if !ok {
		return nil, &KernelError{Kind: k, Err: ErrUnknownKind}
	}
	kern, err := f()
	if err != nil {
		return nil, &KernelError{Kind: k, Err: err}
	}
	if kern == nil {
		return nil, &KernelError{Kind: k, Err: ErrNilKernel}
	}
	return kern, nil
}

// Kinds returns the registered kinds in ascending order.
func (r *Kernels) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
