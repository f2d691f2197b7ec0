// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the output target abstraction for effect
// pipelines.
//
// A pipeline either produces an image that the caller composites onto a
// Surface, or its last kernel paints straight onto the Surface (direct
// draw). ImageSurface is the CPU implementation backed by *image.RGBA;
// scaled and transformed draws use golang.org/x/image/draw.
//
// # Thread Safety
//
// Surfaces are NOT thread-safe. Use one surface per goroutine.
package surface
