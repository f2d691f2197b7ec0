package effect

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type identityKernel struct{}

func (identityKernel) ProcessImage(_ *FrameContext, src *image.RGBA, _ Erased) (*image.RGBA, error) {
	return src, nil
}

func TestKernelsBuild(t *testing.T) {
	r := NewKernels()
	r.Register(KindBlur, func() (Kernel, error) { return identityKernel{}, nil })
	r.Register(KindGrey, func() (Kernel, error) { return nil, errors.New("no device") })
	r.Register(KindMagnifier, func() (Kernel, error) { return nil, nil })

	if _, err := r.Build(KindBlur); err != nil {
		t.Errorf("Build(Blur) = %v", err)
	}

	tests := []struct {
		kind Kind
		want error
	}{
		{KindEdgeLight, ErrUnknownKind},
		{KindMagnifier, ErrNilKernel},
	}
	for _, tt := range tests {
		_, err := r.Build(tt.kind)
		var ke *KernelError
		if !errors.As(err, &ke) || ke.Kind != tt.kind {
			t.Errorf("Build(%v) = %v, want *KernelError", tt.kind, err)
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Build(%v) = %v, want %v", tt.kind, err, tt.want)
		}
	}

	_, err := r.Build(KindGrey)
	if err == nil || err.Error() != "effect: kernel Grey: no device" {
		t.Errorf("Build(Grey) = %v", err)
	}
}

func TestKernelsRegister(t *testing.T) {
	r := &Kernels{}
	r.Register(KindFrameBlend, func() (Kernel, error) { return identityKernel{}, nil })
	r.Register(KindBlur, func() (Kernel, error) { return identityKernel{}, nil })

	if diff := cmp.Diff([]Kind{KindBlur, KindFrameBlend}, r.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}

	r.Register(KindBlur, nil)
	if _, ok := r.Lookup(KindBlur); ok {
		t.Error("registering nil should remove the kind")
	}

	var none *Kernels
	if _, ok := none.Lookup(KindBlur); ok {
		t.Error("nil registry has no kernels")
	}
}

func TestFrameContext(t *testing.T) {
	fc := &FrameContext{Width: 4, Height: 3}
	if fc.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", fc.Bounds())
	}
	if fc.EffectiveTransform() != IdentityTransform {
		t.Error("zero transform should be identity")
	}
	fc.Transform[0], fc.Transform[4] = 2, 2
	if fc.EffectiveTransform() != fc.Transform {
		t.Error("non-zero transform should be returned as is")
	}
}
