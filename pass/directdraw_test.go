package pass

import (
	"testing"

	"github.com/gogpu/effect"
)

func directDrawFlag(c *effect.Composable) bool {
	v, ok := effect.GetFlag[effect.DirectDraw](c)
	return ok && bool(v)
}

func TestDirectDrawMark(t *testing.T) {
	rounded := func() *effect.Composable {
		return effect.New(effect.RoundedRectParams{Width: 10, Height: 10})
	}

	tests := []struct {
		name    string
		in      effect.Pipeline
		changed bool
	}{
		{"empty", effect.Pipeline{}, false},
		{"single gradient", effect.Pipeline{gradient()}, true},
		{"single rounded rect", effect.Pipeline{rounded()}, true},
		{"single blur", effect.Pipeline{blur(1)}, false},
		{"gradient last of many", effect.Pipeline{blur(1), grey(1, 1), gradient()}, true},
		{"gradient not last", effect.Pipeline{gradient(), blur(1)}, false},
		{"accelerated last", effect.Pipeline{gradient(), accel(effect.KindBlur)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			r := DirectDrawMark{}.Run(&p)
			if r.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", r.Changed, tt.changed)
			}
			for i, c := range p {
				want := tt.changed && i == len(p)-1
				if got := directDrawFlag(c); got != want {
					t.Errorf("[%d] DirectDraw = %v, want %v", i, got, want)
				}
			}
			if r2 := (DirectDrawMark{}).Run(&p); r2.Changed {
				t.Error("re-run should be a no-op")
			}
		})
	}
}

func TestDirectDrawMarkNil(t *testing.T) {
	if r := (DirectDrawMark{}).Run(nil); r.Changed {
		t.Error("nil pipeline reported a change")
	}
}
