package genart

import "github.com/gogpu/genart/expr"

// Default artwork dimensions in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Option configures an Artwork during creation.
//
// Example:
//
//	// Default: random seed, 800x800, GPU mode
//	art, err := genart.New()
//
//	// Reproducible CPU render
//	art, err := genart.New(
//	    genart.WithSeed(42),
//	    genart.WithMode(genart.RenderModeCPU),
//	    genart.WithSize(1024, 768),
//	)
type Option func(*options)

// options holds optional configuration for Artwork creation.
type options struct {
	width    int
	height   int
	depth    uint32 // 0: mode default
	mode     RenderMode
	grammar  *expr.Grammar
	workers  int
	seed     Seed
	hasSeed  bool
	time     float32
	provider any
}

// defaultOptions returns the default artwork options.
func defaultOptions() options {
	return options{
		width:  DefaultWidth,
		height: DefaultHeight,
		mode:   RenderModeGPU,
	}
}

// WithSize sets the render size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithDepth fixes the maximum tree depth for both render modes.
// Zero restores the per-mode defaults (DefaultCPUDepth, DefaultGPUDepth).
func WithDepth(depth uint32) Option {
	return func(o *options) {
		o.depth = depth
	}
}

// WithMode sets the initial render mode.
func WithMode(m RenderMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithGrammar sets the grammar used to grow channel trees.
// Nil selects expr.DefaultGrammar.
func WithGrammar(g *expr.Grammar) Option {
	return func(o *options) {
		o.grammar = g
	}
}

// WithWorkers sets the number of CPU render workers.
// If workers <= 0, GOMAXPROCS is used.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithSeed sets the initial seed. Without it a fresh seed is drawn with
// NewSeed.
func WithSeed(s Seed) Option {
	return func(o *options) {
		o.seed = s
		o.hasSeed = true
	}
}

// WithTime sets the time in seconds passed to time-varying trees.
func WithTime(t float32) Option {
	return func(o *options) {
		o.time = t
	}
}

// WithDeviceProvider shares a host GPU device with the artwork. The
// provider must implement HalDevice() any (as gogpu's provider does); it
// may also implement gpucontext.DeviceProvider to report its surface
// format.
func WithDeviceProvider(provider any) Option {
	return func(o *options) {
		o.provider = provider
	}
}
