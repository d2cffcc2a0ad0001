package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/genart"
	"github.com/gogpu/genart/shader"
)

func newShaderCmd(s *settings) *cobra.Command {
	var (
		compile bool
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "shader",
		Short: "Print the WGSL artwork shader for the seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.config(cmd)
			if err != nil {
				return err
			}
			art, err := artwork(cfg, genart.WithMode(genart.RenderModeGPU))
			if err != nil {
				return err
			}
			defer art.Close()

			src := art.Shader()
			out := cmd.OutOrStdout()
			if err := printWGSL(out, src, !noColor && colorEnabled(out)); err != nil {
				return err
			}
			if !compile {
				return nil
			}
			prog, err := shader.Compile(src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "compiled: %d bytes of SPIR-V\n", prog.Size())
			return err
		},
	}
	cmd.Flags().BoolVar(&compile, "compile", false, "compile the shader to SPIR-V and report its size")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable syntax highlighting")
	return cmd
}

// colorEnabled reports whether w is a terminal that understands ANSI colors.
func colorEnabled(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// chromaFormatter picks the chroma terminal formatter for the color depth
// termenv detected on w.
func chromaFormatter(w io.Writer) string {
	switch termenv.NewOutput(w).EnvColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	default:
		return "terminal"
	}
}

func printWGSL(w io.Writer, src string, color bool) error {
	if !color {
		_, err := io.WriteString(w, src)
		return err
	}
	return quick.Highlight(w, src, "wgsl", chromaFormatter(w), "monokai")
}
