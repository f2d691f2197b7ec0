package kernel

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/effect"
)

// runFrame executes one FrameBlend step against slot the way the engine
// does: load, process, save.
func runFrame(t *testing.T, slot *effect.CacheSlot[*image.RGBA], src *image.RGBA, factor float64) *image.RGBA {
	t.Helper()
	kern, err := Defaults().Build(effect.KindFrameBlend)
	if err != nil {
		t.Fatal(err)
	}
	user := kern.(effect.CacheUser)

	v, _ := slot.GetFirst()
	user.LoadCache(v)
	out, err := kern.ProcessImage(fc(4, 4), src, effect.Box(effect.FrameBlendParams{Factor: factor}))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := user.SaveCache(); ok && !slot.Store(v) {
		t.Fatalf("slot rejected %T", v)
	}
	return out
}

// The first frame has nothing to blend with and passes through unchanged.
func TestFrameBlendWarmUp(t *testing.T) {
	slot := effect.NewCacheSlot[*image.RGBA]()
	first := solid(4, 4, color.RGBA{R: 200, A: 255})

	out := runFrame(t, slot, first, 0.5)
	if out != first {
		t.Fatal("first frame should be returned unchanged")
	}
	if stored, ok := slot.Get(); !ok || stored.RGBAAt(2, 2) != first.RGBAAt(2, 2) {
		t.Fatal("first frame should be cached")
	}

	second := solid(4, 4, color.RGBA{B: 100, A: 255})
	out = runFrame(t, slot, second, 0.5)
	if got, want := out.RGBAAt(2, 2), (color.RGBA{R: 100, B: 50, A: 255}); got != want {
		t.Errorf("blended pixel = %v, want %v", got, want)
	}
	if stored, _ := slot.Get(); stored.RGBAAt(2, 2) != second.RGBAAt(2, 2) {
		t.Error("slot should hold the latest input frame")
	}
}

func TestFrameBlendSizeChangeRestarts(t *testing.T) {
	slot := effect.NewCacheSlot[*image.RGBA]()
	runFrame(t, slot, solid(4, 4, color.RGBA{R: 255, A: 255}), 0.5)

	bigger := solid(6, 6, color.RGBA{G: 255, A: 255})
	if out := runFrame(t, slot, bigger, 0.5); out != bigger {
		t.Error("a resized frame should pass through")
	}
}

func TestFrameBlendFreshStatePerBuild(t *testing.T) {
	r := Defaults()
	a, _ := r.Build(effect.KindFrameBlend)
	b, _ := r.Build(effect.KindFrameBlend)
	if a == b {
		t.Error("each build should return a distinct FrameBlend")
	}

	// A cache value of the wrong type is ignored.
	a.(effect.CacheUser).LoadCache("not a frame")
	src := solid(2, 2, color.RGBA{A: 255})
	if out, _ := a.ProcessImage(fc(2, 2), src, effect.Box(effect.FrameBlendParams{Factor: 1})); out != src {
		t.Error("unexpected blend with a foreign cache value")
	}
}

// A compositor may render every frame into the same buffer. The cached
// previous frame must not change when the buffer is rewritten.
func TestFrameBlendReusedBuffer(t *testing.T) {
	slot := effect.NewCacheSlot[*image.RGBA]()
	buf := solid(4, 4, color.RGBA{A: 255})

	runFrame(t, slot, buf, 0.5)
	if stored, _ := slot.Get(); stored == buf {
		t.Fatal("slot should hold a copy, not the caller's buffer")
	}

	white := solid(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	copy(buf.Pix, white.Pix)

	out := runFrame(t, slot, buf, 0.5)
	if got := out.RGBAAt(1, 1); got.R < 126 || got.R > 129 {
		t.Errorf("blended R = %d, want ~128 (black previous, white current)", got.R)
	}
}
