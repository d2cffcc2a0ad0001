// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package expr implements the random expression trees behind genart images.
//
// A [Tree] is an immutable arithmetic expression over the pixel coordinates
// x and y and, optionally, time. Trees are grown by [Generate] from a seeded
// generator and a [Grammar], and are consumed by two backends:
//
//   - [Tree.Eval] computes one float32 channel value (CPU rasterization).
//   - [EmitWGSL] produces the equivalent WGSL expression (GPU rendering).
//
// Both backends implement the same semantics for every [Kind]:
//
//	X          x
//	Y          y
//	Time       sin(time)
//	Random(v)  v, sampled once at generation
//	Sqrt(a)    sqrt(abs(a))
//	Abs(a)     abs(a)
//	Sin(a)     sin(a)
//	Add(a, b)  a + b
//	Mult(a, b) a * b
//	Mod(a, b)  truncated remainder, sign of a, NaN when b == 0
//	Gt(a, b)   1 if a > b else 0
//
// NaN and ±Inf produced by Mod or overflow propagate unchanged.
//
// # Determinism
//
// Generate consumes randomness strictly depth-first, left to right. Two
// calls with generators created by [NewRand] from the same seed produce
// identical trees on every platform.
//
// # Concurrency
//
// A Tree is read-only once built. Eval and EmitWGSL may be called from any
// number of goroutines without synchronization. A *rand.Rand is not safe for
// concurrent use, so generation must be serialized by the caller.
package expr
