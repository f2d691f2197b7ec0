// Package effect is the per-frame visual effect pipeline of a 2D compositor.
//
// # Overview
//
// Callers describe the effects to apply as a [Pipeline] of [Composable]
// elements, each holding a declarative [Node] (a [Kind] plus a boxed
// parameter payload) or a lowered [AcceleratedInstance]. The pass package
// rewrites and annotates the pipeline; the engine package runs the passes
// and then dispatches every element to a [Kernel].
//
//	p := effect.Pipeline{
//	    effect.New(effect.GreyParams{Coef1: 0.5, Coef2: 0.5}),
//	    effect.New(effect.BlurParams{Radius: 2}),
//	}
//	e := engine.New(engine.WithKernels(kernel.Defaults()))
//	out, drewDirect := e.Execute(&p, src, dst, nil)
//
// # Parameters
//
// Every kind has exactly one payload type. [Params] is sealed, so [Box]
// only accepts registered payloads and [Unbox] only succeeds for the exact
// payload type:
//
//	e := effect.Box(effect.BlurParams{Radius: 4})
//	bp, ok := effect.Unbox[effect.BlurParams](e) // ok
//	_, ok = effect.Unbox[effect.GreyParams](e)   // !ok
//
// # Flags
//
// Passes annotate elements through typed flags ([NeedsUpscale],
// [DirectDraw]) with [SetFlag] and [GetFlag]. Flags never change the kind or
// payload of an element.
//
// # Caching
//
// A [CacheSlot] is a single exact-typed value cell owned by a retained
// effect instance. The engine hands it to kernels implementing [CacheUser]
// before and after processing.
package effect
