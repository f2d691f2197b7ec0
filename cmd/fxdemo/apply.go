package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/config"
	"github.com/gogpu/effect/engine"
	"github.com/gogpu/effect/surface"
)

type applyFlags struct {
	pipeline string
	frames   int
	jobs     int
	out      string
	metrics  bool
}

func newApplyCmd() *cobra.Command {
	var flags applyFlags

	cmd := &cobra.Command{
		Use:   "apply -p pipeline.yaml [flags] images...",
		Short: "Run a pipeline over image files and write PNG results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.pipeline, "pipeline", "p", "", "Pipeline document (.yaml, .yml or .toml)")
	f.IntVar(&flags.frames, "frames", 1, "Number of frames to run per image")
	f.IntVar(&flags.jobs, "jobs", runtime.NumCPU(), "Images processed in parallel")
	f.StringVarP(&flags.out, "out", "o", ".", "Output directory")
	f.BoolVar(&flags.metrics, "metrics", false, "Print engine metrics when done")
	_ = cmd.MarkFlagRequired("pipeline")

	return cmd
}

func runApply(ctx context.Context, stdout, stderr io.Writer, flags applyFlags, images []string) error {
	if flags.frames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", flags.frames)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := config.Load(flags.pipeline)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(flags.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := engine.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	opts := append(doc.EngineOptions(), engine.WithMetrics(metrics))
	e := engine.New(opts...)

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(flags.jobs, 1))
	for _, path := range images {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := processFile(e, doc, path, flags)
			written.Add(int64(n))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	err = g.Wait()

	fmt.Fprintf(stdout, "wrote %d image(s) to %s\n", written.Load(), flags.out)
	if flags.metrics {
		if merr := printMetrics(stderr, reg); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

// processFile runs every frame of doc's pipeline over one image and returns
// the number of files written.
func processFile(e *engine.Engine, doc *config.Document, path string, flags applyFlags) (int, error) {
	src, err := readImage(path)
	if err != nil {
		return 0, err
	}
	p, err := doc.Pipeline()
	if err != nil {
		return 0, err
	}

	caches := newCacheTable()
	b := src.Bounds()
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	written := 0
	for frame := range flags.frames {
		dst := surface.NewImageSurface(b.Dx(), b.Dy())
		fc := &effect.FrameContext{Width: b.Dx(), Height: b.Dy(), Frame: uint64(frame)}

		out, drew := e.ExecuteFrame(fc, &p, src, dst, caches.lookup)
		switch {
		case drew:
			out = dst.Snapshot()
		case out == nil:
			_ = dst.Close()
			return written, errors.New("pipeline produced no image")
		}
		_ = dst.Close()

		name := base + ".png"
		if flags.frames > 1 {
			name = fmt.Sprintf("%s-%03d.png", base, frame)
		}
		if err := writePNG(filepath.Join(flags.out, name), out); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// cacheTable owns one cache slot per pipeline element of one image.
type cacheTable struct {
	slots map[*effect.Composable]*effect.CacheSlot[*image.RGBA]
}

func newCacheTable() *cacheTable {
	return &cacheTable{slots: make(map[*effect.Composable]*effect.CacheSlot[*image.RGBA])}
}

func (t *cacheTable) lookup(c *effect.Composable) effect.CacheProvider {
	s, ok := t.slots[c]
	if !ok {
		s = effect.NewCacheSlot[*image.RGBA]()
		t.slots[c] = s
	}
	return s
}

func readImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return rgba, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// printMetrics writes one line per collected sample.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s{%s} count=%d sum=%gs\n", mf.GetName(), strings.Join(labels, ","), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}
