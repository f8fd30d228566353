package main

import (
	"fmt"
	"os"

	"github.com/smasonuk/dodeca"
	"github.com/smasonuk/dodeca/config"
	"github.com/smasonuk/dodeca/view"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "dodeca",
	Short: "A rotating, color-cycling dodecahedron viewer",
	Long: `dodeca opens a portrait window showing a dodecahedron that spins on its own
and follows mouse drags. Background, edge and face colors rotate every three
seconds, and every Nth frame is written to disk as a PNG.

Press W to toggle the wireframe and Esc to quit.`,
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		mesh, _ := dodeca.NewDodecahedron(cfg.Scale)
		return view.Run(cfg, mesh)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Screen width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Screen height in pixels")
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Vertex scale factor of the solid")
	flags.IntVar(&cfg.SaveEvery, "save-every", cfg.SaveEvery, "Save one frame out of every N (0 disables)")
	flags.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for saved frames")
	flags.Float64Var(&cfg.CameraDistance, "distance", cfg.CameraDistance, "Camera distance from the solid")
	rootCmd.Flags().IntVar(&cfg.TPS, "tps", cfg.TPS, "Window ticks per second")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
