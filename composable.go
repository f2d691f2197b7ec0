package effect

import "image"

// NeedsUpscale marks an accelerated element whose reduced-resolution output
// must be scaled back to the frame size before the next element runs.
type NeedsUpscale bool

// DirectDraw marks the last element of a pipeline as painting straight onto
// the output surface.
type DirectDraw bool

// Flag is the set of marker types usable with SetFlag and GetFlag.
type Flag interface {
	NeedsUpscale | DirectDraw
}

// optional is a value that may be absent.
type optional[T any] struct {
	v  T
	ok bool
}

// Flags is the side channel passes use to annotate pipeline elements.
// Every field is optional: a flag that no pass has set reads as absent.
type Flags struct {
	needsUpscale optional[NeedsUpscale]
	directDraw   optional[DirectDraw]
}

// Node is a declarative pipeline element.
type Node struct {
	params Erased
	flags  Flags
}

// Kind returns the node's effect kind.
func (n *Node) Kind() Kind {
	return n.params.Kind()
}

// Params returns the node's boxed payload.
func (n *Node) Params() Erased {
	return n.params
}

// AcceleratedProgram is the lowered form of one or more nodes, produced by
// an AcceleratedBuilder. Its output may be smaller than the frame.
type AcceleratedProgram interface {
	// Kind returns the kind of effect the program implements.
	Kind() Kind

	// Run processes src and returns a new image.
	Run(fc *FrameContext, src *image.RGBA) (*image.RGBA, error)
}

// AcceleratedInstance is a pipeline element backed by an AcceleratedProgram.
type AcceleratedInstance struct {
	program AcceleratedProgram
	flags   Flags
}

// Kind returns the program's effect kind.
func (a *AcceleratedInstance) Kind() Kind {
	return a.program.Kind()
}

// Program returns the lowered program.
func (a *AcceleratedInstance) Program() AcceleratedProgram {
	return a.program
}

// Composable is one pipeline element: either a Node or an
// AcceleratedInstance, never both.
type Composable struct {
	node  *Node
	accel *AcceleratedInstance
}

// New returns a composable holding a node with the given payload.
func New[P Params](p P) *Composable {
	return &Composable{node: &Node{params: Box(p)}}
}

// NewFromErased returns a composable holding a node with a boxed payload.
func NewFromErased(e Erased) *Composable {
	return &Composable{node: &Node{params: e}}
}

// NewAccelerated returns a composable holding an accelerated instance.
// It returns nil if prog is nil.
func NewAccelerated(prog AcceleratedProgram) *Composable {
	if prog == nil {
		return nil
	}
	return &Composable{accel: &AcceleratedInstance{program: prog}}
}

// Kind returns the element's effect kind.
func (c *Composable) Kind() Kind {
	switch {
	case c == nil:
		return KindNone
	case c.node != nil:
		return c.node.Kind()
	case c.accel != nil:
		return c.accel.Kind()
	default:
		return KindNone
	}
}

// Node returns the declarative node, or nil for an accelerated element.
func (c *Composable) Node() *Node {
	if c == nil {
		return nil
	}
	return c.node
}

// Accelerated returns the accelerated instance, or nil for a node.
func (c *Composable) Accelerated() *AcceleratedInstance {
	if c == nil {
		return nil
	}
	return c.accel
}

// IsAccelerated reports whether c holds an accelerated instance.
func (c *Composable) IsAccelerated() bool {
	return c.Accelerated() != nil
}

// String returns a short description for logs.
func (c *Composable) String() string {
	switch {
	case c.Node() != nil:
		return c.node.params.String()
	case c.Accelerated() != nil:
		return "Accelerated(" + c.accel.Kind().String() + ")"
	default:
		return "<nil>"
	}
}

func (c *Composable) flags() *Flags {
	switch {
	case c.Node() != nil:
		return &c.node.flags
	case c.Accelerated() != nil:
		return &c.accel.flags
	default:
		return nil
	}
}

// SetFlag stores v in c's side channel. It never touches kind or payload.
func SetFlag[F Flag](c *Composable, v F) {
	f := c.flags()
	if f == nil {
		return
	}
	switch x := any(v).(type) {
	case NeedsUpscale:
		f.needsUpscale = optional[NeedsUpscale]{v: x, ok: true}
	case DirectDraw:
		f.directDraw = optional[DirectDraw]{v: x, ok: true}
	}
}

// GetFlag returns the flag of type F and whether it was set.
func GetFlag[F Flag](c *Composable) (F, bool) {
	var zero F
	f := c.flags()
	if f == nil {
		return zero, false
	}
	switch any(zero).(type) {
	case NeedsUpscale:
		return any(f.needsUpscale.v).(F), f.needsUpscale.ok
	case DirectDraw:
		return any(f.directDraw.v).(F), f.directDraw.ok
	}
	return zero, false
}

// ClearFlag removes the flag of type F from c.
func ClearFlag[F Flag](c *Composable) {
	f := c.flags()
	if f == nil {
		return
	}
	var zero F
	switch any(zero).(type) {
	case NeedsUpscale:
		f.needsUpscale = optional[NeedsUpscale]{}
	case DirectDraw:
		f.directDraw = optional[DirectDraw]{}
	}
}

// Pipeline is an ordered sequence of composables. Each element's output
// feeds the next element's input.
type Pipeline []*Composable

// Last returns the last element, or nil for an empty pipeline.
func (p Pipeline) Last() *Composable {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Kinds returns the kind of every element in order.
func (p Pipeline) Kinds() []Kind {
	out := make([]Kind, len(p))
	for i, c := range p {
		out[i] = c.Kind()
	}
	return out
}

// AcceleratedBuilder lowers runs of compatible nodes into accelerated
// instances. Build may return p unchanged; it must preserve the observable
// input to output chain.
type AcceleratedBuilder interface {
	Build(p Pipeline) Pipeline
}
