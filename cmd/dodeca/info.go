package main

import (
	"fmt"

	"github.com/smasonuk/dodeca"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display statistics and diagnostics for the dodecahedron mesh",
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	mesh, diags := dodeca.NewDodecahedron(cfg.Scale)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Mesh Information")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "  Vertices: %d\n", mesh.NumVertices())
	fmt.Fprintf(out, "  Indices: %d\n", mesh.NumIndices())
	fmt.Fprintf(out, "  Triangles: %d\n", len(mesh.Triangles()))
	fmt.Fprintf(out, "  Edges: %d\n", len(mesh.Edges()))
	fmt.Fprintf(out, "  Normals: %d\n", mesh.NumNormals())
	fmt.Fprintf(out, "  Surface Area: %.3f square units\n\n", mesh.SurfaceArea())

	min, max := mesh.Bounds()
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: (%.3f, %.3f, %.3f)\n", min[0], min[1], min[2])
	fmt.Fprintf(out, "  Max: (%.3f, %.3f, %.3f)\n\n", max[0], max[1], max[2])

	fmt.Fprintf(out, "Diagnostics: %d errors, %d notices\n", diags.Errors(), diags.Notices())
	for _, d := range diags {
		fmt.Fprintf(out, "  %s\n", d)
	}
}
