package genart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/genart/expr"
	"github.com/gogpu/genart/shader"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// ErrInvalidSize is returned for non-positive render dimensions.
var ErrInvalidSize = errors.New("genart: invalid size")

// moduleLabel labels the HAL shader module for debugging tools.
const moduleLabel = "genart-artwork"

// Frame is the result of one Artwork.Render call.
type Frame struct {
	Mode RenderMode
	Seed Seed
	Time float32

	// Pixmap holds the image in CPU mode. The frame owns it.
	Pixmap *Pixmap

	// Program is the compiled artwork shader in GPU mode.
	Program *shader.Program
	// Module is Program loaded on the shared device, or nil when the
	// artwork has no device. The artwork owns it.
	Module hal.ShaderModule
	// Target and Uniforms describe the draw for the host's render pass.
	Target   shader.Target
	Uniforms shader.Uniforms
}

// Artwork owns a seed and the three channel trees grown from it, and
// renders them with the current render mode.
//
// Reseed, SetSeed and ToggleMode regenerate the trees; Resize and SetTime
// only re-render. All methods are safe for concurrent use; a render holds
// the artwork until it completes.
type Artwork struct {
	mu sync.Mutex

	width    int
	height   int
	depth    uint32 // 0: mode default
	mode     RenderMode
	grammar  *expr.Grammar
	seed     Seed
	time     float32
	channels Channels

	software *SoftwareRenderer

	// GPU state, reset on regeneration.
	program  *shader.Program
	provider any
	device   hal.Device
	module   hal.ShaderModule
}

// New creates an artwork and grows its channel trees.
func New(opts ...Option) (*Artwork, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	if o.mode != RenderModeGPU && o.mode != RenderModeCPU {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(o.mode))
	}
	if o.grammar == nil {
		o.grammar = expr.DefaultGrammar()
	}
	if err := o.grammar.Validate(); err != nil {
		return nil, fmt.Errorf("genart: %w", err)
	}
	if !o.hasSeed {
		o.seed = NewSeed()
	}

	a := &Artwork{
		width:    o.width,
		height:   o.height,
		depth:    o.depth,
		mode:     o.mode,
		grammar:  o.grammar,
		seed:     o.seed,
		time:     o.time,
		software: NewSoftwareRenderer(o.workers),
	}
	if o.provider != nil {
		if err := a.setDeviceProviderLocked(o.provider); err != nil {
			a.software.Close()
			return nil, err
		}
	}
	a.regenerateLocked()
	return a, nil
}

// Seed returns the current seed.
func (a *Artwork) Seed() Seed {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seed
}

// Mode returns the current render mode.
func (a *Artwork) Mode() RenderMode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Size returns the render size in pixels.
func (a *Artwork) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}

// Depth returns the maximum depth the current trees were grown with.
func (a *Artwork) Depth() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.depthLocked()
}

func (a *Artwork) depthLocked() uint32 {
	if a.depth != 0 {
		return a.depth
	}
	return a.mode.DefaultDepth()
}

// Channels returns the current channel trees. Trees are immutable and stay
// valid after the artwork regenerates.
func (a *Artwork) Channels() Channels {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.channels
}

// Reseed draws a fresh seed, regenerates all three trees and returns the
// new seed.
func (a *Artwork) Reseed() Seed {
	return a.SetSeed(NewSeed())
}

// SetSeed replaces the seed and regenerates all three trees.
func (a *Artwork) SetSeed(s Seed) Seed {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seed = s
	a.regenerateLocked()
	return s
}

// ToggleMode switches between GPU and CPU rendering and regenerates the
// trees at the new mode's depth. It returns the new mode.
func (a *Artwork) ToggleMode() RenderMode {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = a.mode.Toggle()
	a.regenerateLocked()
	return a.mode
}

// Resize changes the render size. The trees are kept: the same seed and
// depth reproduce them, so only the next render changes.
func (a *Artwork) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = width, height
	Logger().Info("artwork resized", "width", width, "height", height)
	return nil
}

// SetTime sets the time in seconds passed to time-varying trees.
func (a *Artwork) SetTime(t float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.time = t
}

// Shader returns the assembled WGSL module for the current trees.
func (a *Artwork) Shader() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shaderLocked()
}

func (a *Artwork) shaderLocked() string {
	src := a.channels.WGSL()
	return shader.Assemble(src[ChannelR], src[ChannelG], src[ChannelB])
}

// SetDeviceProvider shares a host GPU device with the artwork. The
// provider must implement HalDevice() any. A nil provider detaches the
// current device.
func (a *Artwork) SetDeviceProvider(provider any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.setDeviceProviderLocked(provider)
}

func (a *Artwork) setDeviceProviderLocked(provider any) error {
	a.releaseModuleLocked()
	if provider == nil {
		a.provider, a.device = nil, nil
		return nil
	}
	device, err := shader.HalDevice(provider)
	if err != nil {
		return fmt.Errorf("genart: %w", err)
	}
	a.provider, a.device = provider, device
	Logger().Info("GPU device attached")
	return nil
}

// Render renders the current trees with the current mode.
//
// In CPU mode the frame carries a freshly rendered Pixmap. In GPU mode it
// carries the compiled shader program and, when a device is attached, the
// shader module, for the host to draw with a full-screen pass.
func (a *Artwork) Render(ctx context.Context) (*Frame, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	frame := &Frame{
		Mode:   a.mode,
		Seed:   a.seed,
		Time:   a.time,
		Target: shader.TargetFor(a.deviceProviderLocked(), a.width, a.height),
	}
	frame.Uniforms = frame.Target.Uniforms(a.time)

	start := time.Now()
	switch a.mode {
	case RenderModeCPU:
		pm := NewPixmap(a.width, a.height)
		if err := a.software.Render(ctx, a.channels, pm, a.time); err != nil {
			return nil, err
		}
		frame.Pixmap = pm
	case RenderModeGPU:
		if err := a.prepareShaderLocked(); err != nil {
			return nil, err
		}
		frame.Program = a.program
		frame.Module = a.module
	}
	Logger().Debug("rendered", "mode", a.mode, "seed", a.seed, "elapsed", time.Since(start))
	return frame, nil
}

// prepareShaderLocked compiles the artwork shader once per tree generation
// and loads it on the attached device.
func (a *Artwork) prepareShaderLocked() error {
	if a.program == nil {
		prog, err := shader.Compile(a.shaderLocked())
		if err != nil {
			return fmt.Errorf("genart: seed %s: %w", a.seed, err)
		}
		a.program = prog
		Logger().Debug("artwork shader compiled", "spirv_bytes", prog.Size())
	}
	if a.device != nil && a.module == nil {
		module, err := a.program.CreateModule(a.device, moduleLabel)
		if err != nil {
			return fmt.Errorf("genart: %w", err)
		}
		a.module = module
	}
	return nil
}

func (a *Artwork) deviceProviderLocked() gpucontext.DeviceProvider {
	if dp, ok := a.provider.(gpucontext.DeviceProvider); ok {
		return dp
	}
	return nil
}

// regenerateLocked grows new channel trees and drops everything derived
// from the previous ones.
func (a *Artwork) regenerateLocked() {
	depth := a.depthLocked()
	a.channels = GenerateChannels(a.seed, depth, a.grammar)
	a.program = nil
	a.releaseModuleLocked()

	log := Logger()
	log.Info("artwork generated", "seed", a.seed, "mode", a.mode, "depth", depth)
	for i, t := range a.channels {
		log.Debug("channel tree", "channel", Channel(i), "nodes", t.Len(), "depth", t.Depth(), "tree", t)
	}
}

func (a *Artwork) releaseModuleLocked() {
	if a.module != nil && a.device != nil {
		a.device.DestroyShaderModule(a.module)
	}
	a.module = nil
}

// Close releases the shader module and stops the render workers.
func (a *Artwork) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.releaseModuleLocked()
	a.software.Close()
}
