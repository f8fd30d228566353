package view

import (
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/dodeca"
	"github.com/smasonuk/dodeca/scene"
)

const edgeWidth = 1.5

// visibleFaces returns the front-facing triangles with every vertex in
// front of the camera, farthest first.
func visibleFaces(verts []scene.Vertex, tris []dodeca.Triangle) []dodeca.Triangle {
	faces := make([]dodeca.Triangle, 0, len(tris))
	for _, t := range tris {
		a, b, c := verts[t[0]], verts[t[1]], verts[t[2]]
		if !a.Visible || !b.Visible || !c.Visible {
			continue
		}
		if !scene.FrontFacing(a, b, c) {
			continue
		}
		faces = append(faces, t)
	}

	depth := func(t dodeca.Triangle) float64 {
		return verts[t[0]].Depth + verts[t[1]].Depth + verts[t[2]].Depth
	}
	slices.SortStableFunc(faces, func(x, y dodeca.Triangle) int {
		dx, dy := depth(x), depth(y)
		switch {
		case dx > dy:
			return -1
		case dx < dy:
			return 1
		}
		return 0
	})
	return faces
}

// faceEdges returns the unique edges of faces.
func faceEdges(faces []dodeca.Triangle) []dodeca.Edge {
	seen := make(map[dodeca.Edge]bool)
	var edges []dodeca.Edge
	for _, t := range faces {
		for k := 0; k < 3; k++ {
			a, b := t[k], t[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := dodeca.Edge{A: a, B: b}
			if seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
		}
	}
	return edges
}

// triangleBatch collects Gouraud-shaded triangles for a single DrawTriangles
// call.
type triangleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16

	// source is a single white texel sampled by every vertex, so the vertex
	// colors come through unchanged.
	source *ebiten.Image
}

func solidSource() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func (b *triangleBatch) reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *triangleBatch) add(vs ...scene.Vertex) {
	base := uint16(len(b.vertices))
	for i, v := range vs {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(v.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: v.Color.R,
			ColorG: v.Color.G,
			ColorB: v.Color.B,
			ColorA: v.Color.A,
		})
		b.indices = append(b.indices, base+uint16(i))
	}
}

func (b *triangleBatch) draw(screen *ebiten.Image) {
	if len(b.indices) == 0 {
		return
	}
	if b.source == nil {
		b.source = solidSource()
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(b.vertices, b.indices, b.source, op)
}

func strokeEdges(screen *ebiten.Image, verts []scene.Vertex, edges []dodeca.Edge, clr color.RGBA) {
	for _, e := range edges {
		a, b := verts[e.A], verts[e.B]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), edgeWidth, clr, true)
	}
}
