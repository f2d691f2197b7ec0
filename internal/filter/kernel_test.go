package filter

import (
	"math"
	"strconv"
	"testing"
)

func sum32(k []float32) float64 {
	var s float64
	for _, v := range k {
		s += float64(v)
	}
	return s
}

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		radius   float64
		wantSize int
	}{
		{-5, 1},
		{0, 1},
		{0.5, 5},
		{1, 7},
		{2, 13},
		{5, 31},
		{10, 61},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.radius, 'g', -1, 64), func(t *testing.T) {
			k := GaussianKernel(tt.radius)
			if len(k) != tt.wantSize {
				t.Fatalf("len = %d, want %d", len(k), tt.wantSize)
			}
			if got := OptimalKernelSize(tt.radius); got != tt.wantSize {
				t.Errorf("OptimalKernelSize = %d, want %d", got, tt.wantSize)
			}
			if s := sum32(k); math.Abs(s-1) > 0.001 {
				t.Errorf("sum = %v, want ~1", s)
			}

			center := len(k) / 2
			for i := 0; i < center; i++ {
				j := len(k) - 1 - i
				if math.Abs(float64(k[i]-k[j])) > 1e-4 {
					t.Errorf("k[%d] = %v != k[%d] = %v", i, k[i], j, k[j])
				}
				if k[i] > k[center] {
					t.Errorf("k[%d] = %v exceeds center %v", i, k[i], k[center])
				}
			}
		})
	}
}

func TestBoxKernel(t *testing.T) {
	if k := BoxKernel(0); len(k) != 1 || k[0] != 1 {
		t.Errorf("BoxKernel(0) = %v, want [1]", k)
	}

	for _, r := range []int{1, 3, 10} {
		k := BoxKernel(r)
		if len(k) != 2*r+1 {
			t.Errorf("BoxKernel(%d) len = %d, want %d", r, len(k), 2*r+1)
		}
		want := float32(1) / float32(2*r+1)
		for i, v := range k {
			if v != want {
				t.Errorf("BoxKernel(%d)[%d] = %v, want %v", r, i, v, want)
			}
		}
		if s := sum32(k); math.Abs(s-1) > 0.001 {
			t.Errorf("BoxKernel(%d) sum = %v, want ~1", r, s)
		}
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	before := KernelCacheStats()

	k1 := CachedGaussianKernel(4.25)
	k2 := CachedGaussianKernel(4.25)

	if &k1[0] != &k2[0] {
		t.Error("second lookup should return the cached slice")
	}
	want := GaussianKernel(4.25)
	if len(k1) != len(want) {
		t.Fatalf("len = %d, want %d", len(k1), len(want))
	}
	for i := range want {
		if k1[i] != want[i] {
			t.Errorf("k[%d] = %v, want %v", i, k1[i], want[i])
		}
	}

	after := KernelCacheStats()
	if after.Hits <= before.Hits {
		t.Errorf("hits did not increase: before %d, after %d", before.Hits, after.Hits)
	}
	if len(CachedGaussianKernel(10)) == len(k1) {
		t.Error("different radii should produce different kernel sizes")
	}
}

func BenchmarkGaussianKernel(b *testing.B) {
	for _, r := range []float64{1, 5, 20} {
		b.Run("r="+strconv.FormatFloat(r, 'g', -1, 64), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = CachedGaussianKernel(r)
			}
		})
	}
}
