// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"encoding/binary"
	"math"
)

// UniformsSize is the byte size of the uniform block.
const UniformsSize = 16

// Uniforms mirrors the WGSL Uniforms struct bound at group 0, binding 0.
type Uniforms struct {
	Time   float32 // seconds
	Width  float32 // render target width in pixels
	Height float32 // render target height in pixels
}

// Bytes returns the uniform block in its GPU layout:
// time, padding, then resolution aligned to 8 bytes.
func (u Uniforms) Bytes() []byte {
	return u.AppendBytes(make([]byte, 0, UniformsSize))
}

// AppendBytes appends the GPU layout of u to b.
func (u Uniforms) AppendBytes(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Time))
	b = binary.LittleEndian.AppendUint32(b, 0)
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Width))
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Height))
}
