package pass

import (
	"testing"

	"github.com/gogpu/effect"
)

func TestUpscale(t *testing.T) {
	B := effect.KindBlur

	tests := []struct {
		name string
		in   effect.Pipeline
		// want is the expected flag per index; nil entries are nodes.
		want []*bool
	}{
		{"empty", effect.Pipeline{}, nil},
		{"only accelerated", effect.Pipeline{accel(B)}, []*bool{ptr(false)}},
		{"accelerated then node", effect.Pipeline{accel(B), grey(1, 1)}, []*bool{ptr(true), nil}},
		{"node then accelerated", effect.Pipeline{grey(1, 1), accel(B)}, []*bool{nil, ptr(false)}},
		{"accelerated chain", effect.Pipeline{accel(B), accel(B), blur(1)}, []*bool{ptr(false), ptr(true), nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			Upscale{}.Run(&p)
			for i, c := range p {
				got, ok := effect.GetFlag[effect.NeedsUpscale](c)
				if tt.want[i] == nil {
					if ok {
						t.Errorf("[%d] node was flagged", i)
					}
					continue
				}
				if !ok || bool(got) != *tt.want[i] {
					t.Errorf("[%d] NeedsUpscale = %v (set %v), want %v", i, got, ok, *tt.want[i])
				}
			}
		})
	}
}

func TestUpscaleReportsCorrections(t *testing.T) {
	a := accel(effect.KindBlur)
	p := effect.Pipeline{a, grey(1, 1)}

	if r := (Upscale{}).Run(&p); !r.Changed {
		t.Error("absent flag should count as a correction")
	}
	if r := (Upscale{}).Run(&p); r.Changed {
		t.Error("re-run should be a no-op")
	}

	effect.SetFlag(a, effect.NeedsUpscale(false))
	if r := (Upscale{}).Run(&p); !r.Changed {
		t.Error("wrong flag value should be corrected")
	}
	if v, _ := effect.GetFlag[effect.NeedsUpscale](a); !bool(v) {
		t.Error("flag was not corrected")
	}
}

func TestUpscaleLeavesParams(t *testing.T) {
	n := blur(4)
	p := effect.Pipeline{accel(effect.KindBlur), n}
	Upscale{}.Run(&p)

	if got, _ := effect.Unbox[effect.BlurParams](n.Node().Params()); got.Radius != 4 {
		t.Errorf("node params changed: %v", got)
	}
	if p[0].Kind() != effect.KindBlur {
		t.Errorf("accelerated kind changed: %v", p[0].Kind())
	}
}

func ptr(b bool) *bool { return &b }
