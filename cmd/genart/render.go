package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/genart"
)

func newRenderCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the artwork on the CPU and write an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.config(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return renderImage(ctx, cmd.OutOrStdout(), cfg)
		},
	}
}

// renderImage renders cfg in CPU mode and saves it to cfg.Output.
func renderImage(ctx context.Context, w io.Writer, cfg genart.Config) error {
	art, err := artwork(cfg, genart.WithMode(genart.RenderModeCPU))
	if err != nil {
		return err
	}
	defer art.Close()

	frame, err := art.Render(ctx)
	if err != nil {
		return err
	}
	if err := frame.Pixmap.Save(cfg.Output); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	_, err = p.Fprintf(w, "wrote %s: %dx%d, %d pixels, seed %s\n",
		cfg.Output, frame.Pixmap.Width(), frame.Pixmap.Height(),
		frame.Pixmap.Width()*frame.Pixmap.Height(), frame.Seed)
	return err
}
