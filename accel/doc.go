// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package accel lowers blur-family nodes to reduced-resolution programs.
//
// A [Builder] implements effect.AcceleratedBuilder. It replaces every blur
// node whose radius is at least the configured minimum with a [Program]
// that downsamples its input, blurs at the reduced radius and returns the
// reduced image. The engine upscales the result before the next node.
//
// Programs carry the texture descriptor (format and extent) a GPU executor
// needs to allocate their targets. The format comes from the device
// provider shared with the host application:
//
//	b := accel.NewBuilder(
//	    accel.WithDeviceProvider(provider),
//	    accel.WithDownscale(4),
//	)
//	e := engine.New(engine.WithBuilder(b))
package accel
