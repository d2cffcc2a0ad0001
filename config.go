package genart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/genart/expr"
)

// Config is the file form of the artwork options, loaded from TOML or YAML.
//
//	width = 1024
//	height = 768
//	mode = "cpu"
//	seed = "0x2a"
//	terminal_prob = 0.3
type Config struct {
	Width   int     `toml:"width" yaml:"width"`
	Height  int     `toml:"height" yaml:"height"`
	Depth   uint32  `toml:"depth" yaml:"depth"` // 0: mode default
	Mode    string  `toml:"mode" yaml:"mode"`
	Seed    string  `toml:"seed" yaml:"seed"` // empty: random
	Time    float32 `toml:"time" yaml:"time"`
	Workers int     `toml:"workers" yaml:"workers"`

	// Grammar tuning. A nil TerminalProb keeps DefaultTerminalProb.
	TerminalProb *float64 `toml:"terminal_prob" yaml:"terminal_prob"`
	Static       bool     `toml:"static" yaml:"static"`

	// Output is the image path written by the render command.
	Output string `toml:"output" yaml:"output"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mode:   "gpu",
		Output: "genart.png",
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: config %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("genart: config %s: %w", path, err)
	}
	return cfg, nil
}

// Grammar returns the grammar described by the config.
func (c Config) Grammar() *expr.Grammar {
	var opts []expr.GrammarOption
	if c.TerminalProb != nil {
		opts = append(opts, expr.WithTerminalProb(*c.TerminalProb))
	}
	if c.Static {
		opts = append(opts, expr.WithTime(false))
	}
	return expr.DefaultGrammar(opts...)
}

// Options converts the config to artwork options. It validates the values
// New would otherwise reject later with a less specific error.
func (c Config) Options() ([]Option, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	mode, err := ParseRenderMode(c.Mode)
	if err != nil {
		return nil, err
	}
	g := c.Grammar()
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("genart: config: %w", err)
	}
	opts := []Option{
		WithSize(c.Width, c.Height),
		WithDepth(c.Depth),
		WithMode(mode),
		WithGrammar(g),
		WithWorkers(c.Workers),
		WithTime(c.Time),
	}
	if c.Seed != "" {
		seed, err := ParseSeed(c.Seed)
		if err != nil {
			return nil, fmt.Errorf("genart: config seed %q: %w", c.Seed, err)
		}
		opts = append(opts, WithSeed(seed))
	}
	return opts, nil
}
