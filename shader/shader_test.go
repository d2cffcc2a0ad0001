// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/genart/expr"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

const (
	testR = "(sin((x)))"
	testG = "(genart_mod((y), (f32(0.5))))"
	testB = "(f32(((x) + (y)) > (sin(u.time))))"
)

func TestAssembleSubstitutesChannels(t *testing.T) {
	src := Assemble(testR, testG, testB)

	for _, want := range []string{
		"let r = " + testR + ";",
		"let g = " + testG + ";",
		"let b = " + testB + ";",
		"return vec4<f32>(r, g, b, 1.0);",
		"fn " + VertexEntry + "(",
		"fn " + FragmentEntry + "(",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Assemble() missing %q", want)
		}
	}
	if strings.Contains(src, "{{") {
		t.Error("Assemble() left a placeholder in the module")
	}
}

func TestAssembleLeavesTemplateIntact(t *testing.T) {
	_ = Assemble("1.0", "2.0", "3.0")
	if !strings.Contains(artworkWGSL, "{{R}}") {
		t.Error("Assemble modified the embedded template")
	}
	if n := strings.Count(artworkWGSL, "{{G}}"); n != 1 {
		t.Errorf("template has %d {{G}} slots, want 1", n)
	}
}

// The emitter calls these by name; the template has to declare them.
func TestTemplateDeclaresEmitterHelpers(t *testing.T) {
	for _, fn := range []string{expr.ModFunc, expr.BitsFunc} {
		if !strings.Contains(artworkWGSL, "fn "+fn+"(") {
			t.Errorf("template does not declare %s", fn)
		}
	}
}

func TestUniformsBytes(t *testing.T) {
	b := Uniforms{Time: 1.5, Width: 800, Height: 600}.Bytes()
	if len(b) != UniformsSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), UniformsSize)
	}

	word := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	for i, want := range []float32{1.5, 0, 800, 600} {
		if got := word(i); got != want {
			t.Errorf("word %d = %v, want %v", i, got, want)
		}
	}
}

func TestSPIRVWords(t *testing.T) {
	if _, err := spirvWords([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidSPIRV) {
		t.Errorf("spirvWords(3 bytes) error = %v, want ErrInvalidSPIRV", err)
	}
	if _, err := spirvWords([]byte{0, 0, 0, 0}); !errors.Is(err, ErrInvalidSPIRV) {
		t.Errorf("spirvWords(bad magic) error = %v, want ErrInvalidSPIRV", err)
	}

	words, err := spirvWords([]byte{0x03, 0x02, 0x23, 0x07, 0x01, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("spirvWords() error = %v", err)
	}
	if len(words) != 2 || words[0] != SPIRVMagic || words[1] != 1 {
		t.Errorf("spirvWords() = %#x, want [%#x 0x1]", words, SPIRVMagic)
	}
}

// compileOrSkip compiles src, skipping on naga features that are not
// implemented yet.
func compileOrSkip(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Compile(src)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("failed to compile artwork shader: %v", err)
	}
	return prog
}

func TestCompileArtwork(t *testing.T) {
	prog := compileOrSkip(t, Assemble(testR, testG, testB))

	if len(prog.SPIRV()) == 0 {
		t.Fatal("SPIRV() is empty")
	}
	if prog.SPIRV()[0] != SPIRVMagic {
		t.Errorf("SPIRV()[0] = %#x, want %#x", prog.SPIRV()[0], SPIRVMagic)
	}
	if prog.Size() != len(prog.SPIRV())*4 {
		t.Errorf("Size() = %d, want %d", prog.Size(), len(prog.SPIRV())*4)
	}
	if !strings.Contains(prog.Source(), testB) {
		t.Error("Source() does not contain the blue channel")
	}
	t.Logf("artwork shader compiled to %d bytes of SPIR-V", prog.Size())
}

// A literal divisor that folds to zero must still produce a valid module,
// with the remainder left to run time.
func TestCompileLiteralZeroDivisor(t *testing.T) {
	zero := expr.Mod(expr.Random(0.3), expr.Gt(expr.Random(0.1), expr.Random(0.5)))
	nan := expr.Add(expr.X(), expr.Random(float32(math.NaN())))
	r, g := expr.EmitWGSL(zero), expr.EmitWGSL(nan)
	for _, ch := range []string{r, g} {
		if strings.ContainsAny(ch, "%<") {
			t.Fatalf("channel expression %s uses %% or bitcast inline", ch)
		}
	}
	compileOrSkip(t, Assemble(r, g, "(y)"))
}

func TestCompileRejectsBadSource(t *testing.T) {
	if _, err := Compile(Assemble("(x", "(y)", "(x)")); err == nil {
		t.Error("Compile(unbalanced) error = nil, want error")
	}
}

// createNoopDevice opens a device on the wgpu noop backend.
func createNoopDevice(t *testing.T) hal.Device {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		t.Fatal("noop backend reported no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device
}

func TestCreateModule(t *testing.T) {
	prog := compileOrSkip(t, Assemble(testR, testG, testB))
	device := createNoopDevice(t)

	module, err := prog.CreateModule(device, "artwork")
	if err != nil {
		t.Fatalf("CreateModule() error = %v", err)
	}
	if module == nil {
		t.Fatal("CreateModule() returned nil module")
	}
	device.DestroyShaderModule(module)

	if _, err := prog.CreateModule(nil, "artwork"); err == nil {
		t.Error("CreateModule(nil) error = nil, want error")
	}
}

type halProvider struct {
	NullDevice
	device any
}

func (p halProvider) HalDevice() any { return p.device }

type bgraProvider struct{ NullDevice }

func (bgraProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func TestHalDevice(t *testing.T) {
	if _, err := HalDevice(NullDevice{}); !errors.Is(err, ErrNoHalDevice) {
		t.Errorf("HalDevice(NullDevice) error = %v, want ErrNoHalDevice", err)
	}
	if _, err := HalDevice(halProvider{device: "not a device"}); !errors.Is(err, ErrNoHalDevice) {
		t.Errorf("HalDevice(string) error = %v, want ErrNoHalDevice", err)
	}

	device := createNoopDevice(t)
	got, err := HalDevice(halProvider{device: device})
	if err != nil {
		t.Fatalf("HalDevice() error = %v", err)
	}
	if got != device {
		t.Error("HalDevice() did not return the provider's device")
	}
}

func TestNullDevice(t *testing.T) {
	var p gpucontext.DeviceProvider = NullDevice{}
	if p.Device() != nil || p.Queue() != nil || p.Adapter() != nil {
		t.Error("NullDevice exposes a non-nil GPU handle")
	}
	if f := p.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want undefined", f)
	}
	if info := p.AdapterInfo(); info.Type != gpucontext.AdapterTypeUnknown {
		t.Errorf("AdapterInfo().Type = %v, want %v", info.Type, gpucontext.AdapterTypeUnknown)
	}
}

func TestTargetFor(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     gputypes.TextureFormat
	}{
		{"nil provider", nil, DefaultFormat},
		{"undefined format", NullDevice{}, DefaultFormat},
		{"surface format", bgraProvider{}, gputypes.TextureFormatBGRA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetFor(tt.provider, 320, 200)
			if target.Format != tt.want {
				t.Errorf("Format = %v, want %v", target.Format, tt.want)
			}
			want := gputypes.Extent3D{Width: 320, Height: 200, DepthOrArrayLayers: 1}
			if target.Size != want {
				t.Errorf("Size = %+v, want %+v", target.Size, want)
			}
		})
	}
}

func TestTargetUniforms(t *testing.T) {
	got := TargetFor(nil, 64, 32).Uniforms(2)
	want := Uniforms{Time: 2, Width: 64, Height: 32}
	if got != want {
		t.Errorf("Uniforms(2) = %+v, want %+v", got, want)
	}
}
