package effect

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "None"},
		{KindBlur, "Blur"},
		{KindFusedBlur, "FusedBlur"},
		{KindFrameBlend, "FrameBlend"},
		{kindCount, "Unknown"},
		{Kind(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindValid(t *testing.T) {
	if KindNone.Valid() {
		t.Error("KindNone should not be valid")
	}
	if kindCount.Valid() {
		t.Error("kindCount should not be valid")
	}
	for k := KindBlur; k < kindCount; k++ {
		if !k.Valid() {
			t.Errorf("%v should be valid", k)
		}
	}
}

func TestKindIsBlurFamily(t *testing.T) {
	want := map[Kind]bool{KindBlur: true, KindKawaseBlur: true, KindFusedBlur: true}
	for k := KindNone; k <= kindCount; k++ {
		if got := k.IsBlurFamily(); got != want[k] {
			t.Errorf("%v.IsBlurFamily() = %v, want %v", k, got, want[k])
		}
	}
}

func TestTileModeString(t *testing.T) {
	for m, want := range map[TileMode]string{
		TileClamp: "Clamp", TileRepeat: "Repeat", TileMirror: "Mirror", TileDecal: "Decal", TileMode(9): "Unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("TileMode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestKindsAndParseKind(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != int(kindCount)-1 {
		t.Fatalf("len(Kinds()) = %d, want %d", len(kinds), kindCount-1)
	}
	for _, k := range kinds {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("None"); ok {
		t.Error("ParseKind(None) should fail")
	}
	if _, ok := ParseKind("blur"); ok {
		t.Error("ParseKind is case sensitive")
	}
}

func TestSupportsDirectDraw(t *testing.T) {
	for _, k := range Kinds() {
		want := k == KindLinearGradient || k == KindRoundedRect
		if got := k.SupportsDirectDraw(); got != want {
			t.Errorf("%v.SupportsDirectDraw() = %v, want %v", k, got, want)
		}
	}
}
