package raster

import (
	"github.com/smasonuk/dodeca/scene"
)

// Renderer draws scenes into a Canvas of a fixed size.
type Renderer struct {
	Canvas *Canvas
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Canvas: NewCanvas(width, height)}
}

// Render clears to the background color, fills the front-facing triangles
// with lit face colors and, when enabled, draws the edges on top.
func (r *Renderer) Render(s *scene.Scene) *Canvas {
	c := r.Canvas
	colors := s.Colors()
	c.Clear(colors.Background)

	verts := s.Frame(float64(c.Width()), float64(c.Height()))
	for _, t := range s.Mesh.Triangles() {
		a, b, v := verts[t[0]], verts[t[1]], verts[t[2]]
		if !a.Visible || !b.Visible || !v.Visible {
			continue
		}
		if !scene.FrontFacing(a, b, v) {
			continue
		}
		c.FillTriangle(a, b, v)
	}

	if s.Wireframe {
		for _, e := range s.Mesh.Edges() {
			a, b := verts[e.A], verts[e.B]
			if !a.Visible || !b.Visible {
				continue
			}
			c.DrawLine(a, b, colors.Edge)
		}
	}
	return c
}
