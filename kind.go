package effect

// Kind identifies one kind of visual effect.
//
// The set of kinds is closed: adding a kind means adding a constant here,
// a payload type in params.go and a row in the kind table in registry.go.
type Kind uint8

// Kind constants.
const (
	// KindNone is the zero Kind. It is never instantiable.
	KindNone Kind = iota

	// KindBlur is the separable Gaussian blur.
	KindBlur

	// KindKawaseBlur is the iterated box blur approximation.
	KindKawaseBlur

	// KindGrey pulls colors toward their luminance.
	KindGrey

	// KindFusedBlur is Grey followed by Blur in a single kernel, with
	// optional inset and stretch of the result.
	KindFusedBlur

	// KindColorMatrix applies a 4x5 color matrix.
	KindColorMatrix

	// KindLinearGradient composites a two-stop linear gradient.
	KindLinearGradient

	// KindDisplacement displaces pixels along a sine wave.
	KindDisplacement

	// KindWaterRipple displaces pixels radially around a center.
	KindWaterRipple

	// KindMagnifier zooms a circular region.
	KindMagnifier

	// KindEdgeLight adds a colored glow along detected edges.
	KindEdgeLight

	// KindRoundedRect masks the image with an anti-aliased rounded rectangle.
	KindRoundedRect

	// KindFrameBlend blends the current frame with the previous one.
	KindFrameBlend

	kindCount
)

const unknownStr = "Unknown"

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k == KindNone {
		return "None"
	}
	if !k.Valid() {
		return unknownStr
	}
	return kindTable[k].name
}

// Valid reports whether k is an instantiable kind.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// IsBlurFamily reports whether k belongs to the blur family. Only blur-family
// kinds are candidates for the accelerated path.
func (k Kind) IsBlurFamily() bool {
	switch k {
	case KindBlur, KindKawaseBlur, KindFusedBlur:
		return true
	default:
		return false
	}
}

// SupportsDirectDraw reports whether the kernel for k may paint straight
// onto the output surface when it is the last element of a pipeline.
func (k Kind) SupportsDirectDraw() bool {
	return k == KindLinearGradient || k == KindRoundedRect
}

// Kinds returns every instantiable kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-1)
	for k := KindNone + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind returns the kind with the given name as reported by String.
func ParseKind(name string) (Kind, bool) {
	for k := KindNone + 1; k < kindCount; k++ {
		if kindTable[k].name == name {
			return k, true
		}
	}
	return KindNone, false
}
