// Package engine compiles and executes effect pipelines.
//
// An [Engine] runs the standard passes over a pipeline and then walks the
// result, handing each element to its kernel. Elements whose kernel cannot
// be resolved, constructed or run are logged and skipped: the image flows
// through unchanged. When the last element is marked for direct draw and its
// kernel supports it, the engine lets the kernel paint onto the surface and
// returns no image.
//
//	e := engine.New(
//	    engine.WithBuilder(accel.NewBuilder()),
//	    engine.WithMetrics(metrics),
//	)
//	out, drew := e.Execute(&p, src, dst, lookup)
//
// An Engine is safe for concurrent use as long as concurrent executions do
// not share pipelines or cache slots.
package engine
