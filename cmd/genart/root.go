package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/genart"
	"github.com/gogpu/genart/expr"
)

const (
	appName    = "genart"
	appVersion = "0.1.0"
)

// settings collects the persistent flags. Flags the user set override the
// values loaded from --config.
type settings struct {
	configPath   string
	verbose      bool
	seed         string
	width        int
	height       int
	depth        uint32
	mode         string
	static       bool
	terminalProb float64
	time         float32
	workers      int
	output       string
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	defaults := genart.DefaultConfig()

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Generative art from random expression trees",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd.ErrOrStderr(), s.verbose)
		},
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	f := cmd.PersistentFlags()
	f.StringVarP(&s.configPath, "config", "c", "", "TOML or YAML config file")
	f.BoolVarP(&s.verbose, "verbose", "v", false, "log debug output, including the generated trees")
	f.StringVarP(&s.seed, "seed", "s", "", "seed, decimal or 0x-hex (default random)")
	f.IntVar(&s.width, "width", defaults.Width, "image width in pixels")
	f.IntVar(&s.height, "height", defaults.Height, "image height in pixels")
	f.Uint32Var(&s.depth, "depth", 0, "maximum tree depth (default 10 for cpu, 30 for gpu)")
	f.StringVar(&s.mode, "mode", defaults.Mode, "render mode: gpu or cpu")
	f.BoolVar(&s.static, "static", false, "grow trees without the time input")
	f.Float64Var(&s.terminalProb, "terminal-prob", expr.DefaultTerminalProb, "probability of stopping early at each level")
	f.Float32Var(&s.time, "time", 0, "time in seconds for time-varying trees")
	f.IntVar(&s.workers, "workers", 0, "CPU render workers (default GOMAXPROCS)")
	f.StringVarP(&s.output, "output", "o", defaults.Output, "output image (.png, .bmp, .tiff)")

	cmd.AddCommand(
		newRenderCmd(s),
		newShaderCmd(s),
		newTreeCmd(s),
		newWatchCmd(s),
	)
	return cmd
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	genart.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// config loads --config, if any, and applies the flags the user set.
func (s *settings) config(cmd *cobra.Command) (genart.Config, error) {
	cfg := genart.DefaultConfig()
	if s.configPath != "" {
		var err error
		if cfg, err = genart.LoadConfig(s.configPath); err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = s.seed
	}
	if changed("width") {
		cfg.Width = s.width
	}
	if changed("height") {
		cfg.Height = s.height
	}
	if changed("depth") {
		cfg.Depth = s.depth
	}
	if changed("mode") {
		cfg.Mode = s.mode
	}
	if changed("static") {
		cfg.Static = s.static
	}
	if changed("terminal-prob") {
		p := s.terminalProb
		cfg.TerminalProb = &p
	}
	if changed("time") {
		cfg.Time = s.time
	}
	if changed("workers") {
		cfg.Workers = s.workers
	}
	if changed("output") {
		cfg.Output = s.output
	}
	return cfg, nil
}

// artwork builds the artwork described by cfg. extra options are applied
// after the config's own.
func artwork(cfg genart.Config, extra ...genart.Option) (*genart.Artwork, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	art, err := genart.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	genart.Logger().Info("seed", "seed", art.Seed())
	return art, nil
}
