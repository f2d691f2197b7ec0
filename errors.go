package effect

import "errors"

// Errors.
var (
	// ErrUnknownKind is returned when no kernel is registered for a kind.
	ErrUnknownKind = errors.New("effect: no kernel registered for kind")

	// ErrNilKernel is returned when a kernel factory returns nil.
	ErrNilKernel = errors.New("effect: kernel factory returned nil")

	// ErrParamsMismatch is returned when a kernel receives a payload of
	// another kind.
	ErrParamsMismatch = errors.New("effect: parameter payload does not match kernel")

	// ErrNilImage is returned when a kernel is given or produces no image.
	ErrNilImage = errors.New("effect: nil image")
)

// KernelError reports a failure to resolve or run the kernel of one kind.
type KernelError struct {
	Kind Kind
	Err  error
}

func (e *KernelError) Error() string {
	return "effect: kernel " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *KernelError) Unwrap() error {
	return e.Err
}
