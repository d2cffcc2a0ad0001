// Package genart renders generative art from random expression trees.
//
// # Overview
//
// A 64-bit Seed drives one deterministic random stream that grows three
// expression trees, one per color channel (see package expr). Each tree maps
// a normalized pixel position (x, y) in [-1, 1] and a time t to a value in
// roughly [-1, 1], which Quantize turns into an 8-bit intensity.
//
// Trees are rendered by one of two interchangeable backends:
//   - RenderModeCPU evaluates every pixel with the tree interpreter on a
//     worker pool (SoftwareRenderer) and produces a Pixmap.
//   - RenderModeGPU emits each tree as a WGSL expression, assembles and
//     compiles the artwork shader (package shader) and, when a host device
//     is attached, loads it as a HAL shader module.
//
// # Quick Start
//
//	art, err := genart.New(
//	    genart.WithSeed(42),
//	    genart.WithMode(genart.RenderModeCPU),
//	    genart.WithSize(512, 512),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer art.Close()
//
//	frame, err := art.Render(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame.Pixmap.Save("art.png")
//
// # Determinism
//
// The same seed and depth always produce the same trees on every platform.
// Entropy enters only through NewSeed. Reseed draws a new seed and regrows
// all three trees; Resize keeps them.
//
// # Coordinate System
//
// Pixel (px, py) of a width x height image samples
// x = px/width*2-1 and y = py/height*2-1, with row 0 at the top. The shader
// reproduces the same grid, so both backends agree up to float rounding.
package genart
