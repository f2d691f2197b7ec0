package engine

import (
	"image/color"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/surface"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	e := New(WithMetrics(m), WithKernels(kernels(map[effect.Kind]effect.Kernel{
		effect.KindFusedBlur: addKernel{delta: 1},
	})))
	src := solid(4, 4, color.RGBA{A: 255})
	dst := surface.NewImageSurface(4, 4)

	p := effect.Pipeline{grey(), blur(1), effect.New(effect.EdgeLightParams{})}
	e.Execute(&p, src, dst, nil)
	e.Execute(nil, src, dst, nil)
	e.Execute(nil, nil, dst, nil)

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"fusion runs", m.passRuns.WithLabelValues("fusion"), 2},
		{"fusion changes", m.passChanges.WithLabelValues("fusion"), 1},
		{"directdraw changes", m.passChanges.WithLabelValues("directdraw"), 0},
		{"fused blur image", m.dispatches.WithLabelValues("FusedBlur", "image"), 1},
		{"edge light error", m.dispatches.WithLabelValues("EdgeLight", "error"), 1},
		{"image results", m.executions.WithLabelValues(resultImage), 1},
		{"empty results", m.executions.WithLabelValues(resultEmpty), 1},
		{"rejected results", m.executions.WithLabelValues(resultRejected), 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.c); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}

	if n := testutil.CollectAndCount(m.executeSeconds); n != 1 {
		t.Errorf("latency histogram series = %d, want 1", n)
	}
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatalf("first NewMetrics: %v", err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Error("second registration on the same registry should fail")
	}
}

func TestNilMetricsIsNoOp(t *testing.T) {
	var m *Metrics
	m.observeDispatch(effect.KindBlur, OutcomeError)
	m.observePasses(nil)
}
