package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/internal/filter"
)

// EffectSpec is one effects entry. Exactly one field must be set.
type EffectSpec struct {
	Blur           *Blur           `yaml:"blur,omitempty" toml:"blur,omitempty"`
	KawaseBlur     *KawaseBlur     `yaml:"kawase_blur,omitempty" toml:"kawase_blur,omitempty"`
	Grey           *Grey           `yaml:"grey,omitempty" toml:"grey,omitempty"`
	FusedBlur      *FusedBlur      `yaml:"fused_blur,omitempty" toml:"fused_blur,omitempty"`
	ColorMatrix    *ColorMatrix    `yaml:"color_matrix,omitempty" toml:"color_matrix,omitempty"`
	LinearGradient *LinearGradient `yaml:"linear_gradient,omitempty" toml:"linear_gradient,omitempty"`
	Displacement   *Displacement   `yaml:"displacement,omitempty" toml:"displacement,omitempty"`
	WaterRipple    *WaterRipple    `yaml:"water_ripple,omitempty" toml:"water_ripple,omitempty"`
	Magnifier      *Magnifier      `yaml:"magnifier,omitempty" toml:"magnifier,omitempty"`
	EdgeLight      *EdgeLight      `yaml:"edge_light,omitempty" toml:"edge_light,omitempty"`
	RoundedRect    *RoundedRect    `yaml:"rounded_rect,omitempty" toml:"rounded_rect,omitempty"`
	FrameBlend     *FrameBlend     `yaml:"frame_blend,omitempty" toml:"frame_blend,omitempty"`
}

// keys maps every kind to its effects entry key.
var keys = map[effect.Kind]string{
	effect.KindBlur:           "blur",
	effect.KindKawaseBlur:     "kawase_blur",
	effect.KindGrey:           "grey",
	effect.KindFusedBlur:      "fused_blur",
	effect.KindColorMatrix:    "color_matrix",
	effect.KindLinearGradient: "linear_gradient",
	effect.KindDisplacement:   "displacement",
	effect.KindWaterRipple:    "water_ripple",
	effect.KindMagnifier:      "magnifier",
	effect.KindEdgeLight:      "edge_light",
	effect.KindRoundedRect:    "rounded_rect",
	effect.KindFrameBlend:     "frame_blend",
}

// Key returns the effects entry key for k, or "" if k has none.
func Key(k effect.Kind) string {
	return keys[k]
}

// entry is a set field of an EffectSpec.
type entry struct {
	name   string
	params func() (effect.Params, error)
}

func (s *EffectSpec) entries() []entry {
	var out []entry
	add := func(set bool, name string, f func() (effect.Params, error)) {
		if set {
			out = append(out, entry{name, f})
		}
	}
	add(s.Blur != nil, "blur", func() (effect.Params, error) { return s.Blur.params() })
	add(s.KawaseBlur != nil, "kawase_blur", func() (effect.Params, error) { return s.KawaseBlur.params() })
	add(s.Grey != nil, "grey", func() (effect.Params, error) { return s.Grey.params() })
	add(s.FusedBlur != nil, "fused_blur", func() (effect.Params, error) { return s.FusedBlur.params() })
	add(s.ColorMatrix != nil, "color_matrix", func() (effect.Params, error) { return s.ColorMatrix.params() })
	add(s.LinearGradient != nil, "linear_gradient", func() (effect.Params, error) { return s.LinearGradient.params() })
	add(s.Displacement != nil, "displacement", func() (effect.Params, error) { return s.Displacement.params() })
	add(s.WaterRipple != nil, "water_ripple", func() (effect.Params, error) { return s.WaterRipple.params() })
	add(s.Magnifier != nil, "magnifier", func() (effect.Params, error) { return s.Magnifier.params() })
	add(s.EdgeLight != nil, "edge_light", func() (effect.Params, error) { return s.EdgeLight.params() })
	add(s.RoundedRect != nil, "rounded_rect", func() (effect.Params, error) { return s.RoundedRect.params() })
	add(s.FrameBlend != nil, "frame_blend", func() (effect.Params, error) { return s.FrameBlend.params() })
	return out
}

// Params returns the payload named by s.
func (s *EffectSpec) Params() (effect.Params, error) {
	set := s.entries()
	switch len(set) {
	case 0:
		return nil, ErrNoKind
	case 1:
		p, err := set[0].params()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", set[0].name, err)
		}
		return p, nil
	default:
		names := make([]string, len(set))
		for i, e := range set {
			names[i] = e.name
		}
		return nil, fmt.Errorf("%w: %s", ErrMultipleKinds, strings.Join(names, ", "))
	}
}

// Blur is the blur entry.
type Blur struct {
	Radius float64 `yaml:"radius" toml:"radius"`
}

func (b *Blur) params() (effect.Params, error) {
	if b.Radius < 0 {
		return nil, invalid("radius", b.Radius)
	}
	return effect.BlurParams{Radius: b.Radius}, nil
}

// KawaseBlur is the kawase_blur entry.
type KawaseBlur struct {
	Radius int `yaml:"radius" toml:"radius"`
	Passes int `yaml:"passes" toml:"passes"`
}

func (b *KawaseBlur) params() (effect.Params, error) {
	if b.Radius < 0 {
		return nil, invalid("radius", b.Radius)
	}
	return effect.KawaseBlurParams{Radius: b.Radius, Passes: b.Passes}, nil
}

// Grey is the grey entry.
type Grey struct {
	Coef1 float64 `yaml:"coef1" toml:"coef1"`
	Coef2 float64 `yaml:"coef2" toml:"coef2"`
}

func (g *Grey) params() (effect.Params, error) {
	return effect.GreyParams{Coef1: g.Coef1, Coef2: g.Coef2}, nil
}

// FusedBlur is the fused_blur entry. Inset lists the left, top, right and
// bottom offsets.
type FusedBlur struct {
	Radius    float64   `yaml:"radius" toml:"radius"`
	GreyCoef1 float64   `yaml:"grey_coef1" toml:"grey_coef1"`
	GreyCoef2 float64   `yaml:"grey_coef2" toml:"grey_coef2"`
	Inset     []float64 `yaml:"inset" toml:"inset"`
	Width     float64   `yaml:"width" toml:"width"`
	Height    float64   `yaml:"height" toml:"height"`
	TileMode  string    `yaml:"tile_mode" toml:"tile_mode"`
}

func (b *FusedBlur) params() (effect.Params, error) {
	if b.Radius < 0 {
		return nil, invalid("radius", b.Radius)
	}
	var in [4]float64
	switch len(b.Inset) {
	case 0:
	case 4:
		copy(in[:], b.Inset)
	default:
		return nil, fmt.Errorf("%w: inset needs 4 values, got %d", ErrInvalidValue, len(b.Inset))
	}
	mode, err := parseTileMode(b.TileMode)
	if err != nil {
		return nil, err
	}
	return effect.FusedBlurParams{
		Radius:    b.Radius,
		GreyCoef1: b.GreyCoef1,
		GreyCoef2: b.GreyCoef2,
		OffsetX:   in[0],
		OffsetY:   in[1],
		OffsetZ:   in[2],
		OffsetW:   in[3],
		Width:     b.Width,
		Height:    b.Height,
		TileMode:  mode,
	}, nil
}

// ColorMatrix is the color_matrix entry. Matrix is the base matrix, the
// identity when empty. The adjustments that are set apply on top of it in
// field order.
type ColorMatrix struct {
	Matrix     []float32 `yaml:"matrix" toml:"matrix"`
	Brightness *float32  `yaml:"brightness" toml:"brightness"`
	Contrast   *float32  `yaml:"contrast" toml:"contrast"`
	Saturation *float32  `yaml:"saturation" toml:"saturation"`
	HueRotate  float64   `yaml:"hue_rotate" toml:"hue_rotate"`
	Sepia      bool      `yaml:"sepia" toml:"sepia"`
	Invert     bool      `yaml:"invert" toml:"invert"`
	Tint       string    `yaml:"tint" toml:"tint"`
	Opacity    *float32  `yaml:"opacity" toml:"opacity"`
}

func (m *ColorMatrix) params() (effect.Params, error) {
	var p effect.ColorMatrixParams
	switch len(m.Matrix) {
	case 0:
		p.Matrix = filter.Identity()
	case 20:
		copy(p.Matrix[:], m.Matrix)
	default:
		return nil, fmt.Errorf("%w: matrix needs 20 values, got %d", ErrInvalidValue, len(m.Matrix))
	}

	then := func(next [20]float32) {
		p.Matrix = filter.Compose(p.Matrix, next)
	}
	if m.Brightness != nil {
		then(filter.Brightness(*m.Brightness))
	}
	if m.Contrast != nil {
		then(filter.Contrast(*m.Contrast))
	}
	if m.Saturation != nil {
		then(filter.Saturation(*m.Saturation))
	}
	if m.HueRotate != 0 {
		then(filter.HueRotate(m.HueRotate))
	}
	if m.Sepia {
		then(filter.Sepia())
	}
	if m.Invert {
		then(filter.Invert())
	}
	if m.Tint != "" {
		c, err := ParseColor(m.Tint)
		if err != nil {
			return nil, err
		}
		then(filter.Tint(c))
	}
	if m.Opacity != nil {
		if *m.Opacity < 0 {
			return nil, invalid("opacity", *m.Opacity)
		}
		then(filter.Opacity(*m.Opacity))
	}
	return p, nil
}

// LinearGradient is the linear_gradient entry. From and To are normalized
// image coordinates.
type LinearGradient struct {
	From    [2]float64 `yaml:"from" toml:"from"`
	To      [2]float64 `yaml:"to" toml:"to"`
	Start   string     `yaml:"start" toml:"start"`
	End     string     `yaml:"end" toml:"end"`
	Opacity float64    `yaml:"opacity" toml:"opacity"`
}

func (g *LinearGradient) params() (effect.Params, error) {
	start, err := ParseColor(g.Start)
	if err != nil {
		return nil, err
	}
	end, err := ParseColor(g.End)
	if err != nil {
		return nil, err
	}
	return effect.LinearGradientParams{
		X0: g.From[0], Y0: g.From[1],
		X1: g.To[0], Y1: g.To[1],
		StartColor: start,
		EndColor:   end,
		Opacity:    g.Opacity,
	}, nil
}

// Displacement is the displacement entry.
type Displacement struct {
	Amplitude  float64 `yaml:"amplitude" toml:"amplitude"`
	Wavelength float64 `yaml:"wavelength" toml:"wavelength"`
	Phase      float64 `yaml:"phase" toml:"phase"`
	Vertical   bool    `yaml:"vertical" toml:"vertical"`
}

func (d *Displacement) params() (effect.Params, error) {
	if d.Wavelength < 0 {
		return nil, invalid("wavelength", d.Wavelength)
	}
	return effect.DisplacementParams{
		Amplitude:  d.Amplitude,
		Wavelength: d.Wavelength,
		Phase:      d.Phase,
		Vertical:   d.Vertical,
	}, nil
}

// WaterRipple is the water_ripple entry.
type WaterRipple struct {
	CenterX   float64 `yaml:"center_x" toml:"center_x"`
	CenterY   float64 `yaml:"center_y" toml:"center_y"`
	Progress  float64 `yaml:"progress" toml:"progress"`
	WaveCount int     `yaml:"wave_count" toml:"wave_count"`
	Amplitude float64 `yaml:"amplitude" toml:"amplitude"`
}

func (w *WaterRipple) params() (effect.Params, error) {
	if w.WaveCount < 0 {
		return nil, invalid("wave_count", w.WaveCount)
	}
	return effect.WaterRippleParams{
		CenterX:   w.CenterX,
		CenterY:   w.CenterY,
		Progress:  w.Progress,
		WaveCount: w.WaveCount,
		Amplitude: w.Amplitude,
	}, nil
}

// Magnifier is the magnifier entry. A zero zoom means 1.
type Magnifier struct {
	CenterX float64 `yaml:"center_x" toml:"center_x"`
	CenterY float64 `yaml:"center_y" toml:"center_y"`
	Radius  float64 `yaml:"radius" toml:"radius"`
	Zoom    float64 `yaml:"zoom" toml:"zoom"`
}

func (m *Magnifier) params() (effect.Params, error) {
	if m.Radius < 0 {
		return nil, invalid("radius", m.Radius)
	}
	zoom := m.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if zoom < 0 {
		return nil, invalid("zoom", m.Zoom)
	}
	return effect.MagnifierParams{CenterX: m.CenterX, CenterY: m.CenterY, Radius: m.Radius, Zoom: zoom}, nil
}

// EdgeLight is the edge_light entry.
type EdgeLight struct {
	Color    string  `yaml:"color" toml:"color"`
	Strength float64 `yaml:"strength" toml:"strength"`
}

func (e *EdgeLight) params() (effect.Params, error) {
	c, err := ParseColor(e.Color)
	if err != nil {
		return nil, err
	}
	return effect.EdgeLightParams{Color: c, Strength: e.Strength}, nil
}

// RoundedRect is the rounded_rect entry.
type RoundedRect struct {
	X       float64 `yaml:"x" toml:"x"`
	Y       float64 `yaml:"y" toml:"y"`
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Radius  float64 `yaml:"radius" toml:"radius"`
	Feather float64 `yaml:"feather" toml:"feather"`
}

func (r *RoundedRect) params() (effect.Params, error) {
	if r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("%w: size %vx%v", ErrInvalidValue, r.Width, r.Height)
	}
	return effect.RoundedRectParams{
		X: r.X, Y: r.Y,
		Width: r.Width, Height: r.Height,
		Radius:  r.Radius,
		Feather: r.Feather,
	}, nil
}

// FrameBlend is the frame_blend entry.
type FrameBlend struct {
	Factor float64 `yaml:"factor" toml:"factor"`
}

func (f *FrameBlend) params() (effect.Params, error) {
	if f.Factor < 0 || f.Factor > 1 {
		return nil, invalid("factor", f.Factor)
	}
	return effect.FrameBlendParams{Factor: f.Factor}, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The empty string is opaque
// black.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{A: 0xff}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseTileMode(s string) (effect.TileMode, error) {
	switch strings.ToLower(s) {
	case "", "clamp":
		return effect.TileClamp, nil
	case "repeat":
		return effect.TileRepeat, nil
	case "mirror":
		return effect.TileMirror, nil
	case "decal":
		return effect.TileDecal, nil
	default:
		return 0, fmt.Errorf("%w: tile_mode %q", ErrInvalidValue, s)
	}
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s %v", ErrInvalidValue, field, v)
}
