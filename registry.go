package effect

import (
	"fmt"
	"reflect"
)

// kindInfo is one row of the kind table.
type kindInfo struct {
	name string
	zero func() Params
}

// kindTable maps every instantiable kind to its name and payload type.
// The payload returned by zero must report the same kind; registry_test.go
// walks the table to check the mapping is bijective.
var kindTable = [kindCount]kindInfo{
	KindBlur:           {"Blur", func() Params { return BlurParams{} }},
	KindKawaseBlur:     {"KawaseBlur", func() Params { return KawaseBlurParams{} }},
	KindGrey:           {"Grey", func() Params { return GreyParams{} }},
	KindFusedBlur:      {"FusedBlur", func() Params { return FusedBlurParams{} }},
	KindColorMatrix:    {"ColorMatrix", func() Params { return ColorMatrixParams{Matrix: IdentityColorMatrix()} }},
	KindLinearGradient: {"LinearGradient", func() Params { return LinearGradientParams{} }},
	KindDisplacement:   {"Displacement", func() Params { return DisplacementParams{} }},
	KindWaterRipple:    {"WaterRipple", func() Params { return WaterRippleParams{} }},
	KindMagnifier:      {"Magnifier", func() Params { return MagnifierParams{Zoom: 1} }},
	KindEdgeLight:      {"EdgeLight", func() Params { return EdgeLightParams{} }},
	KindRoundedRect:    {"RoundedRect", func() Params { return RoundedRectParams{} }},
	KindFrameBlend:     {"FrameBlend", func() Params { return FrameBlendParams{} }},
}

// NewParams returns the default payload for k in pointer form, ready to be
// filled by a decoder. It returns nil if k is not instantiable.
func NewParams(k Kind) Params {
	if !k.Valid() {
		return nil
	}
	return kindTable[k].zero().pointer()
}

// Erased is a type-erased parameter payload.
//
// The zero Erased is empty: its Kind is KindNone and every Unbox fails.
// Erased values are comparable; two values are equal iff they hold the same
// payload type with equal fields.
type Erased struct {
	p Params
}

// Box wraps a payload. Boxing *T stores a copy of the pointed-to T, so
// Box(&p) and Box(p) produce equal values. A nil pointer boxes to the empty
// Erased.
func Box[P Params](p P) Erased {
	if isNilParams(p) {
		return Erased{}
	}
	return Erased{p: p.value()}
}

// Unbox returns the payload held by e if its type is exactly T, or *T for a
// pointer T. There are no partial or converting matches.
func Unbox[T Params](e Erased) (T, bool) {
	var zero T
	if e.p == nil {
		return zero, false
	}
	if v, ok := e.p.(T); ok {
		return v, true
	}
	if v, ok := e.p.pointer().(T); ok {
		return v, true
	}
	return zero, false
}

// UnboxRef is like Unbox but returns a pointer to a private copy of the
// payload, or nil on mismatch.
func UnboxRef[T Params](e Erased) *T {
	v, ok := Unbox[T](e)
	if !ok {
		return nil
	}
	return &v
}

// Kind returns the kind of the boxed payload, or KindNone if e is empty.
func (e Erased) Kind() Kind {
	if e.p == nil {
		return KindNone
	}
	return e.p.Kind()
}

// IsZero reports whether e holds no payload.
func (e Erased) IsZero() bool {
	return e.p == nil
}

// Params returns a copy of the boxed payload in value form, or nil.
func (e Erased) Params() Params {
	return e.p
}

// String returns the kind and payload fields, for logs.
func (e Erased) String() string {
	if e.p == nil {
		return "None{}"
	}
	return fmt.Sprintf("%s%+v", e.Kind(), e.p)
}

// isNilParams reports whether p is a nil interface or a nil pointer.
func isNilParams(p Params) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
