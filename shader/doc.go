// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader turns three WGSL channel expressions into a complete
// render module and compiles it for a wgpu HAL device.
//
// The expressions are plain WGSL f32 expressions over the locals x and y
// (normalized pixel coordinates in [-1, 1], row 0 at the top) and the
// uniform u.time. Package expr produces them; this package does not depend
// on it.
//
//	src := shader.Assemble(expr.EmitWGSL(r), expr.EmitWGSL(g), expr.EmitWGSL(b))
//	prog, err := shader.Compile(src)
//	if err != nil {
//	    return err
//	}
//	module, err := prog.CreateModule(device, "artwork")
//
// Compilation uses naga (pure Go WGSL to SPIR-V), so no GPU is needed to
// validate a program.
package shader
