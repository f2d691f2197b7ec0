package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/effect"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { effect.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestKinds(t *testing.T) {
	out, _, err := execute(t, "kinds")
	if err != nil {
		t.Fatalf("kinds: %v", err)
	}
	for _, want := range []string{"KIND", "fused_blur", "frame_blend", "LinearGradient"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	src := writeTestPNG(t, dir, "photo.png", 16, 12)
	pipeline := writeFile(t, dir, "fx.yaml", `
effects:
  - grey: {coef1: 0.5, coef2: 0.5}
  - blur: {radius: 2}
`)

	stdout, stderr, err := execute(t, "apply", "-p", pipeline, "--out", outDir, "--metrics", src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(stdout, "wrote 1 image(s)") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "effect_executions_total") {
		t.Errorf("metrics missing from stderr: %q", stderr)
	}

	img := readPNG(t, filepath.Join(outDir, "photo.png"))
	if img.Bounds().Size() != image.Pt(16, 12) {
		t.Errorf("output size = %v, want 16x12", img.Bounds().Size())
	}
}

func TestApplyFramesAndDirectDraw(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "clip.png", 8, 8)
	pipeline := writeFile(t, dir, "fx.toml", `
[[effects]]
[effects.frame_blend]
factor = 0.5

[[effects]]
[effects.linear_gradient]
from = [0.0, 0.0]
to = [1.0, 0.0]
start = "#ff000080"
end = "#0000ff80"
`)

	if _, _, err := execute(t, "apply", "-p", pipeline, "--out", dir, "--frames", "3", "--jobs", "1", src); err != nil {
		t.Fatalf("apply: %v", err)
	}
	for _, name := range []string{"clip-000.png", "clip-001.png", "clip-002.png"} {
		img := readPNG(t, filepath.Join(dir, name))
		if img.Bounds().Size() != image.Pt(8, 8) {
			t.Errorf("%s size = %v", name, img.Bounds().Size())
		}
	}
}

func TestApplyLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "fx.log")
	src := writeTestPNG(t, dir, "a.png", 4, 4)
	pipeline := writeFile(t, dir, "fx.yaml", "effects:\n  - blur: {radius: 1}\n")

	_, _, err := execute(t, "--log-level", "debug", "--log-file", logPath,
		"apply", "-p", pipeline, "--out", dir, src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "level=DEBUG") {
		t.Errorf("log file has no debug records:\n%s", data)
	}
}

func TestApplyErrors(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "a.png", 4, 4)
	good := writeFile(t, dir, "fx.yaml", "effects:\n  - blur: {radius: 1}\n")
	bad := writeFile(t, dir, "bad.yaml", "effects:\n  - {}\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing pipeline flag", []string{"apply", src}, "pipeline"},
		{"no images", []string{"apply", "-p", good}, "arg"},
		{"invalid document", []string{"apply", "-p", bad, "--out", dir, src}, "names no kind"},
		{"missing image", []string{"apply", "-p", good, "--out", dir, filepath.Join(dir, "nope.png")}, "nope.png"},
		{"zero frames", []string{"apply", "-p", good, "--frames", "0", src}, "--frames"},
		{"bad log level", []string{"--log-level", "loud", "kinds"}, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
