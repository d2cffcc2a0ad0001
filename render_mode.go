package genart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a render mode name is not recognized.
var ErrUnknownMode = errors.New("genart: unknown render mode")

// RenderMode selects the backend that turns channel trees into pixels.
type RenderMode int

const (
	// RenderModeGPU emits the trees as WGSL and compiles an artwork shader.
	RenderModeGPU RenderMode = iota

	// RenderModeCPU evaluates the trees per pixel on a worker pool.
	RenderModeCPU
)

// Default tree depth per mode. The shader runs every pixel in parallel on
// the GPU and affords much deeper trees than the interpreter.
const (
	DefaultGPUDepth uint32 = 30
	DefaultCPUDepth uint32 = 10
)

// String returns the render mode name.
func (m RenderMode) String() string {
	switch m {
	case RenderModeGPU:
		return "GPU"
	case RenderModeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Toggle returns the other render mode.
func (m RenderMode) Toggle() RenderMode {
	if m == RenderModeCPU {
		return RenderModeGPU
	}
	return RenderModeCPU
}

// DefaultDepth returns the maximum tree depth used for m when none is set.
func (m RenderMode) DefaultDepth() uint32 {
	if m == RenderModeCPU {
		return DefaultCPUDepth
	}
	return DefaultGPUDepth
}

// ParseRenderMode parses "gpu" or "cpu", ignoring case.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gpu":
		return RenderModeGPU, nil
	case "cpu":
		return RenderModeCPU, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m RenderMode) MarshalText() ([]byte, error) {
	if m != RenderModeGPU && m != RenderModeCPU {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *RenderMode) UnmarshalText(text []byte) error {
	parsed, err := ParseRenderMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
