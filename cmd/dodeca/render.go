package main

import (
	"fmt"
	"log"
	"time"

	"github.com/smasonuk/dodeca"
	"github.com/smasonuk/dodeca/raster"
	"github.com/smasonuk/dodeca/scene"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render frames headlessly with the software rasterizer",
	Long: `Render draws the animation without opening a window and writes every Nth
frame to the output directory. Simulated time advances by one tick per frame.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&cfg.Frames, "frames", cfg.Frames, "Number of frames to render")
	renderCmd.Flags().IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulated frames per second")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	mesh, _ := dodeca.NewDodecahedron(cfg.Scale)
	s := scene.New(mesh, cfg.CameraDistance)
	r := raster.NewRenderer(cfg.Width, cfg.Height)
	saver := raster.NewFrameSaver(cfg.OutDir, cfg.SaveEvery)
	tick := time.Second / time.Duration(cfg.TPS)

	log.Printf("Rendering %d frames at %dx%d...", cfg.Frames, cfg.Width, cfg.Height)
	for i := 0; i < cfg.Frames; i++ {
		s.Update(time.Duration(i) * tick)
		if _, err := saver.Tick(r.Render(s).Image); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d frames, saved %d to %s\n", saver.Frames(), saver.Saved(), cfg.OutDir)
	return nil
}
