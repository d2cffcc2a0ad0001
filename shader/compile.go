// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// ErrInvalidSPIRV is returned when the compiler output is not a SPIR-V module.
var ErrInvalidSPIRV = errors.New("shader: output is not SPIR-V")

// Program is a compiled artwork module.
type Program struct {
	source string
	spirv  []uint32
}

// Compile compiles WGSL source to SPIR-V.
func Compile(source string) (*Program, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	words, err := spirvWords(spirvBytes)
	if err != nil {
		return nil, err
	}
	return &Program{source: source, spirv: words}, nil
}

// spirvWords converts little-endian SPIR-V bytes to 32-bit words.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b) < 4 || len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	if words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: magic 0x%08X", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}

// Source returns the WGSL the program was compiled from.
func (p *Program) Source() string { return p.source }

// SPIRV returns the compiled words. The slice must not be modified.
func (p *Program) SPIRV() []uint32 { return p.spirv }

// Size returns the SPIR-V size in bytes.
func (p *Program) Size() int { return len(p.spirv) * 4 }

// CreateModule creates a HAL shader module from the program on device.
// The caller owns the module and releases it with device.DestroyShaderModule.
func (p *Program) CreateModule(device hal.Device, label string) (hal.ShaderModule, error) {
	if device == nil {
		return nil, errors.New("shader: nil device")
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: p.spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create module %q: %w", label, err)
	}
	return module, nil
}
