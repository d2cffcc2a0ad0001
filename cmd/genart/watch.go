package main

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/genart"
)

func newWatchCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render the image every time the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if s.configPath == "" {
				return errors.New("watch needs --config")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			load := s.watchConfig(cmd, genart.NewSeed())
			render := func() error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return renderImage(ctx, cmd.OutOrStdout(), cfg)
			}
			if err := render(); err != nil {
				return err
			}
			return watchFile(ctx, s.configPath, func() {
				if err := render(); err != nil {
					// A half-written or invalid file is not fatal; wait for the next save.
					genart.Logger().Warn("render failed", "config", s.configPath, "err", err)
				}
			})
		},
	}
}

// watchConfig returns a loader for the watched config. When neither the
// file nor --seed sets a seed, every load uses fallback, so saves that
// touch other settings redraw the same trees.
func (s *settings) watchConfig(cmd *cobra.Command, fallback genart.Seed) func() (genart.Config, error) {
	return func() (genart.Config, error) {
		cfg, err := s.config(cmd)
		if err != nil {
			return cfg, err
		}
		if cfg.Seed == "" {
			cfg.Seed = fallback.String()
		}
		return cfg, nil
	}
}

// watchFile calls onChange after every write to path until ctx is done.
// It watches the parent directory so editors that save by renaming a
// temporary file over path are seen too.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	genart.Logger().Info("watching", "config", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				genart.Logger().Debug("config changed", "op", event.Op.String())
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			genart.Logger().Warn("watch error", "err", err)
		}
	}
}
