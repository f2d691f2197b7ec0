// Package kernel provides the CPU kernel for every effect kind.
//
// Kernels are stateless except [FrameBlend], which keeps the previous frame
// in the element's cache slot. Use [Defaults] to obtain a registry with every
// kernel installed, or [Register] to add them to an existing one:
//
//	e := engine.New(engine.WithKernels(kernel.Defaults()))
//
// Kernels never modify their input image. A kernel returns its input
// unchanged when the payload makes it the identity (for example a blur of
// radius 0).
package kernel
