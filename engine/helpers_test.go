package engine

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/surface"
)

var errBoom = errors.New("boom")

// captureHandler records log records for assertions.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func newCapture() (*captureHandler, *slog.Logger) {
	h := &captureHandler{}
	return h, slog.New(h)
}

// addKernel adds delta to the red channel of every pixel and records the
// size of each input it sees.
type addKernel struct {
	delta uint8
	err   error
	nilOK bool
	seen  *[]image.Point
}

func (k addKernel) ProcessImage(_ *effect.FrameContext, src *image.RGBA, _ effect.Erased) (*image.RGBA, error) {
	if k.seen != nil {
		*k.seen = append(*k.seen, src.Bounds().Size())
	}
	if k.err != nil {
		return nil, k.err
	}
	if k.nilOK {
		return nil, nil
	}
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] += k.delta
	}
	return out, nil
}

// drawKernel is a direct drawer whose DrawDirect may fail.
type drawKernel struct {
	addKernel
	drawErr error
	draws   *int
}

func (k drawKernel) DrawDirect(_ *effect.FrameContext, dst surface.Surface, src *image.RGBA, _ effect.Erased) error {
	if k.drawErr != nil {
		return k.drawErr
	}
	*k.draws++
	dst.DrawImage(src, image.Point{}, nil)
	return nil
}

// counterKernel is a cache user that counts executions in its slot.
type counterKernel struct {
	n     int
	saved any
}

func (k *counterKernel) LoadCache(v any) {
	k.n, _ = v.(int)
}

func (k *counterKernel) SaveCache() (any, bool) {
	if k.saved != nil {
		return k.saved, true
	}
	return k.n, true
}

func (k *counterKernel) ProcessImage(_ *effect.FrameContext, src *image.RGBA, _ effect.Erased) (*image.RGBA, error) {
	k.n++
	return src, nil
}

// halfProgram is an accelerated program producing half-size output.
type halfProgram struct {
	kind effect.Kind
	err  error
}

func (p halfProgram) Kind() effect.Kind { return p.kind }

func (p halfProgram) Run(_ *effect.FrameContext, src *image.RGBA) (*image.RGBA, error) {
	if p.err != nil {
		return nil, p.err
	}
	b := src.Bounds()
	return image.NewRGBA(image.Rect(0, 0, b.Dx()/2, b.Dy()/2)), nil
}

func kernels(entries map[effect.Kind]effect.Kernel) *effect.Kernels {
	r := effect.NewKernels()
	for k, kern := range entries {
		r.Register(k, func() (effect.Kernel, error) { return kern, nil })
	}
	return r
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func grey() *effect.Composable {
	return effect.New(effect.GreyParams{Coef1: 0.5, Coef2: 0.5})
}

func blur(r float64) *effect.Composable {
	return effect.New(effect.BlurParams{Radius: r})
}

func gradient() *effect.Composable {
	return effect.New(effect.LinearGradientParams{
		X1: 1, StartColor: color.NRGBA{R: 255, A: 255}, EndColor: color.NRGBA{B: 255, A: 255},
	})
}
