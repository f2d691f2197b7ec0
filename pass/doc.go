// Package pass rewrites and annotates effect pipelines before execution.
//
// A [Pass] inspects a pipeline and may annotate its elements with flags.
// Only rewriting passes such as [Fusion] change the pipeline length. Every
// pass tolerates an empty pipeline, makes no assumption about which passes
// ran before it and can be run again on its own output.
//
// [Compiler] runs the standard passes in their fixed order:
//
//  1. [Compatibility] records whether the pipeline contains blur-family kinds
//  2. [Fusion] merges adjacent nodes that have a fused kernel
//  3. [Lowering] hands the pipeline to an accelerated builder, when one is
//     configured and the pipeline is compatible
//  4. [Upscale] marks accelerated elements whose output must be upscaled
//  5. [DirectDrawMark] marks a last element that can paint onto the surface
package pass
