package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/genart"
	"github.com/gogpu/genart/expr"
)

func newTreeCmd(s *settings) *cobra.Command {
	var (
		stats bool
		wgsl  bool
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the R, G and B expression trees for the seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.config(cmd)
			if err != nil {
				return err
			}
			art, err := artwork(cfg)
			if err != nil {
				return err
			}
			defer art.Close()
			return printTrees(cmd.OutOrStdout(), art, stats, wgsl)
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print node counts per kind")
	cmd.Flags().BoolVar(&wgsl, "wgsl", false, "print the WGSL expression of each tree")
	return cmd
}

func printTrees(w io.Writer, art *genart.Artwork, stats, wgsl bool) error {
	if _, err := fmt.Fprintf(w, "seed %s, mode %s, max depth %d\n", art.Seed(), art.Mode(), art.Depth()); err != nil {
		return err
	}
	for i, t := range art.Channels() {
		ch := genart.Channel(i)
		fmt.Fprintf(w, "%s: depth %d, %d nodes\n  %s\n", ch, t.Depth(), t.Len(), t)
		if wgsl {
			fmt.Fprintf(w, "  wgsl: %s\n", expr.EmitWGSL(t))
		}
		if stats {
			h := t.Histogram()
			fmt.Fprint(w, " ")
			for _, k := range expr.Kinds() {
				if h[k] > 0 {
					fmt.Fprintf(w, " %s=%d", k, h[k])
				}
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
