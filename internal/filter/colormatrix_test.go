package filter

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/effect"
)

// apply runs m over a straight-alpha [0, 255] color.
func apply(m [20]float32, c [4]float32) [4]float32 {
	var out [4]float32
	for row := range 4 {
		out[row] = m[row*5]*c[0] + m[row*5+1]*c[1] + m[row*5+2]*c[2] + m[row*5+3]*c[3] + m[row*5+4]
	}
	return out
}

func matricesNear(a, b [20]float32, tol float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func TestIdentityMatchesParams(t *testing.T) {
	if Identity() != effect.IdentityColorMatrix() {
		t.Error("Identity() differs from effect.IdentityColorMatrix()")
	}
}

func TestMatrixInverses(t *testing.T) {
	tests := []struct {
		name          string
		first, second [20]float32
	}{
		{"invert twice", Invert(), Invert()},
		{"brightness", Brightness(2), Brightness(0.5)},
		{"opacity", Opacity(4), Opacity(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.first, tt.second)
			if !matricesNear(got, Identity(), 1e-3) {
				t.Errorf("Compose = %v, want identity", got)
			}
		})
	}
}

func TestHueRotateFullTurn(t *testing.T) {
	for _, deg := range []float64{0, 360, -720} {
		if m := HueRotate(deg); !matricesNear(m, Identity(), 1e-5) {
			t.Errorf("HueRotate(%v) = %v, want identity", deg, m)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	// Invert first: 55 -> 200, then halve: 100.
	m := Compose(Invert(), Brightness(0.5))
	got := apply(m, [4]float32{55, 55, 55, 255})
	if math.Abs(float64(got[0]-100)) > 1e-3 {
		t.Errorf("R = %v, want 100", got[0])
	}

	// The other order: 27.5 -> 227.5.
	m = Compose(Brightness(0.5), Invert())
	got = apply(m, [4]float32{55, 55, 55, 255})
	if math.Abs(float64(got[0]-227.5)) > 1e-3 {
		t.Errorf("R = %v, want 227.5", got[0])
	}
}

func TestColorAdjustments(t *testing.T) {
	c := [4]float32{200, 100, 50, 255}

	grey := apply(Saturation(0), c)
	if grey[0] != grey[1] || grey[1] != grey[2] {
		t.Errorf("Saturation(0) = %v, want equal channels", grey)
	}
	if flat := apply(Contrast(0), c); flat[0] != 128 || flat[2] != 128 {
		t.Errorf("Contrast(0) = %v, want mid grey", flat)
	}
	if same := apply(Saturation(1), c); same != c {
		t.Errorf("Saturation(1) = %v, want %v", same, c)
	}
	if s := apply(Sepia(), [4]float32{0, 0, 0, 255}); s[3] != 255 || s[0] != 0 {
		t.Errorf("Sepia of black = %v", s)
	}

	tinted := apply(Tint(color.NRGBA{R: 255, A: 255}), c)
	if tinted != [4]float32{255, 0, 0, 255} {
		t.Errorf("full tint = %v, want pure red", tinted)
	}
	if same := apply(Tint(color.NRGBA{R: 255}), c); same != c {
		t.Errorf("transparent tint = %v, want %v", same, c)
	}
}
