package effect

import "image/color"

// Params is the parameter payload of one effect kind.
//
// The interface is sealed: only the payload types declared in this package
// implement it, so boxing a type that has no kind fails to compile.
// Both T and *T satisfy Params for every payload type T.
type Params interface {
	// Kind returns the kind this payload belongs to.
	Kind() Kind

	value() Params
	pointer() Params
}

// TileMode selects how pixels outside the source are sampled.
type TileMode uint8

// TileMode constants.
const (
	// TileClamp repeats the nearest edge pixel.
	TileClamp TileMode = iota

	// TileRepeat wraps coordinates around.
	TileRepeat

	// TileMirror reflects coordinates at the edges.
	TileMirror

	// TileDecal samples transparent black outside the source.
	TileDecal
)

// String returns the tile mode name.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileRepeat:
		return "Repeat"
	case TileMirror:
		return "Mirror"
	case TileDecal:
		return "Decal"
	default:
		return unknownStr
	}
}

// BlurParams configures KindBlur.
type BlurParams struct {
	// Radius is the Gaussian sigma in pixels. Zero is the identity.
	Radius float64
}

// KawaseBlurParams configures KindKawaseBlur.
type KawaseBlurParams struct {
	Radius int
	// Passes is the number of box passes. Values below 1 mean 3.
	Passes int
}

// GreyParams configures KindGrey.
//
// Each channel moves toward the pixel luminance by Coef1 for dark pixels
// (luminance below one half) and by Coef2 for bright pixels.
type GreyParams struct {
	Coef1 float64
	Coef2 float64
}

// FusedBlurParams configures KindFusedBlur.
//
// The grey step runs first, then the blur. When Width and Height are both
// positive the blurred source, inset by the four offsets (left, top, right,
// bottom), is stretched to Width x Height and pixels outside the inset
// region are sampled with TileMode.
type FusedBlurParams struct {
	Radius    float64
	GreyCoef1 float64
	GreyCoef2 float64
	OffsetX   float64
	OffsetY   float64
	OffsetZ   float64
	OffsetW   float64
	Width     float64
	Height    float64
	TileMode  TileMode
}

// ColorMatrixParams configures KindColorMatrix.
// Matrix is a 4x5 row-major matrix operating on [0, 255] channel values.
type ColorMatrixParams struct {
	Matrix [20]float32
}

// IdentityColorMatrix returns a matrix that leaves colors unchanged.
func IdentityColorMatrix() [20]float32 {
	return [20]float32{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// LinearGradientParams configures KindLinearGradient.
// Points are in normalized [0, 1] image coordinates.
type LinearGradientParams struct {
	X0, Y0     float64
	X1, Y1     float64
	StartColor color.NRGBA
	EndColor   color.NRGBA
	// Opacity scales the gradient alpha. Zero means fully opaque.
	Opacity float64
}

// DisplacementParams configures KindDisplacement.
type DisplacementParams struct {
	Amplitude  float64
	Wavelength float64
	Phase      float64
	// Vertical displaces along Y instead of X.
	Vertical bool
}

// WaterRippleParams configures KindWaterRipple.
type WaterRippleParams struct {
	// CenterX and CenterY are in normalized [0, 1] image coordinates.
	CenterX, CenterY float64
	// Progress runs from 0 (no ripple) to 1 (ripple reached the corners).
	Progress  float64
	WaveCount int
	Amplitude float64
}

// MagnifierParams configures KindMagnifier. Coordinates are in pixels.
type MagnifierParams struct {
	CenterX, CenterY float64
	Radius           float64
	Zoom             float64
}

// EdgeLightParams configures KindEdgeLight.
type EdgeLightParams struct {
	Color    color.NRGBA
	Strength float64
}

// RoundedRectParams configures KindRoundedRect. Coordinates are in pixels.
type RoundedRectParams struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
	// Feather widens the anti-aliased border.
	Feather float64
}

// FrameBlendParams configures KindFrameBlend.
// Factor is the weight of the previous frame in [0, 1].
type FrameBlendParams struct {
	Factor float64
}

func (BlurParams) Kind() Kind           { return KindBlur }
func (KawaseBlurParams) Kind() Kind     { return KindKawaseBlur }
func (GreyParams) Kind() Kind           { return KindGrey }
func (FusedBlurParams) Kind() Kind      { return KindFusedBlur }
func (ColorMatrixParams) Kind() Kind    { return KindColorMatrix }
func (LinearGradientParams) Kind() Kind { return KindLinearGradient }
func (DisplacementParams) Kind() Kind   { return KindDisplacement }
func (WaterRippleParams) Kind() Kind    { return KindWaterRipple }
func (MagnifierParams) Kind() Kind      { return KindMagnifier }
func (EdgeLightParams) Kind() Kind      { return KindEdgeLight }
func (RoundedRectParams) Kind() Kind    { return KindRoundedRect }
func (FrameBlendParams) Kind() Kind     { return KindFrameBlend }

func (p BlurParams) value() Params           { return p }
func (p KawaseBlurParams) value() Params     { return p }
func (p GreyParams) value() Params           { return p }
func (p FusedBlurParams) value() Params      { return p }
func (p ColorMatrixParams) value() Params    { return p }
func (p LinearGradientParams) value() Params { return p }
func (p DisplacementParams) value() Params   { return p }
func (p WaterRippleParams) value() Params    { return p }
func (p MagnifierParams) value() Params      { return p }
func (p EdgeLightParams) value() Params      { return p }
func (p RoundedRectParams) value() Params    { return p }
func (p FrameBlendParams) value() Params     { return p }

func (p BlurParams) pointer() Params           { return &p }
func (p KawaseBlurParams) pointer() Params     { return &p }
func (p GreyParams) pointer() Params           { return &p }
func (p FusedBlurParams) pointer() Params      { return &p }
func (p ColorMatrixParams) pointer() Params    { return &p }
func (p LinearGradientParams) pointer() Params { return &p }
func (p DisplacementParams) pointer() Params   { return &p }
func (p WaterRippleParams) pointer() Params    { return &p }
func (p MagnifierParams) pointer() Params      { return &p }
func (p EdgeLightParams) pointer() Params      { return &p }
func (p RoundedRectParams) pointer() Params    { return &p }
func (p FrameBlendParams) pointer() Params     { return &p }

// Every payload is registered in both value and pointer form.
var (
	_ Params = BlurParams{}
	_ Params = KawaseBlurParams{}
	_ Params = GreyParams{}
	_ Params = FusedBlurParams{}
	_ Params = ColorMatrixParams{}
	_ Params = LinearGradientParams{}
	_ Params = DisplacementParams{}
	_ Params = WaterRippleParams{}
	_ Params = MagnifierParams{}
	_ Params = EdgeLightParams{}
	_ Params = RoundedRectParams{}
	_ Params = FrameBlendParams{}

	_ Params = (*BlurParams)(nil)
	_ Params = (*KawaseBlurParams)(nil)
	_ Params = (*GreyParams)(nil)
	_ Params = (*FusedBlurParams)(nil)
	_ Params = (*ColorMatrixParams)(nil)
	_ Params = (*LinearGradientParams)(nil)
	_ Params = (*DisplacementParams)(nil)
	_ Params = (*WaterRippleParams)(nil)
	_ Params = (*MagnifierParams)(nil)
	_ Params = (*EdgeLightParams)(nil)
	_ Params = (*RoundedRectParams)(nil)
	_ Params = (*FrameBlendParams)(nil)
)
