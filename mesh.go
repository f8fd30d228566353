package dodeca

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PrimitiveMode tags how the index list is to be drawn.
type PrimitiveMode int

const PrimitiveTriangles PrimitiveMode = 0

// Mesh holds vertex positions, a flat triangle index list and an
// index-aligned normal list.
type Mesh struct {
	Mode     PrimitiveMode
	Vertices []mgl64.Vec3
	Indices  []int
	Normals  []mgl64.Vec3
	Colors   []color.RGBA
}

func NewMesh() *Mesh {
	return &Mesh{
		Mode:     PrimitiveTriangles,
		Vertices: make([]mgl64.Vec3, 0, 20),
		Indices:  make([]int, 0, 108),
	}
}

func (m *Mesh) NumVertices() int { return len(m.Vertices) }
func (m *Mesh) NumIndices() int  { return len(m.Indices) }
func (m *Mesh) NumNormals() int  { return len(m.Normals) }
func (m *Mesh) NumColors() int   { return len(m.Colors) }

func (m *Mesh) AddVertex(v mgl64.Vec3) {
	m.Vertices = append(m.Vertices, v)
}

func (m *Mesh) AddVertices(vs []mgl64.Vec3) {
	m.Vertices = append(m.Vertices, vs...)
}

func (m *Mesh) AddIndex(i int) {
	m.Indices = append(m.Indices, i)
}

func (m *Mesh) AddIndices(is ...int) {
	m.Indices = append(m.Indices, is...)
}

func (m *Mesh) ClearNormals() {
	m.Normals = m.Normals[:0]
}

func (m *Mesh) AddNormals(ns []mgl64.Vec3) {
	m.Normals = append(m.Normals, ns...)
}

// Triangles returns every complete, in-range index triple. A trailing
// partial triangle is left out.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t := Triangle{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		if !t.inRange(len(m.Vertices)) {
			continue
		}
		tris = append(tris, t)
	}
	return tris
}

// Edge is an undirected vertex pair with A < B.
type Edge struct {
	A, B int
}

func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Edges returns the unique edges of all triangles in first-seen order. Fan
// diagonals are included, matching a triangle wireframe.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for _, t := range m.Triangles() {
		for k := 0; k < 3; k++ {
			e := newEdge(t[k], t[(k+1)%3])
			if seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
		}
	}
	return edges
}

// Scale multiplies every vertex position by factor. Normals are unchanged.
func (m *Mesh) Scale(factor float64) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Mul(factor)
	}
}

func (m *Mesh) AddColors(cs []color.RGBA) {
	m.Colors = append(m.Colors, cs...)
}

func (m *Mesh) SetColor(i int, c color.RGBA) {
	if i < 0 || i >= len(m.Colors) {
		return
	}
	m.Colors[i] = c
}

// UpdateColors assigns colors to the existing per-vertex colors, stopping at
// whichever list is shorter.
func (m *Mesh) UpdateColors(colors []color.RGBA) {
	for i := 0; i < len(colors) && i < m.NumColors(); i++ {
		m.SetColor(i, colors[i])
	}
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (min, max mgl64.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			min[k] = math.Min(min[k], v[k])
			max[k] = math.Max(max[k], v[k])
		}
	}
	return min, max
}

func (m *Mesh) SurfaceArea() float64 {
	area := 0.0
	for _, t := range m.Triangles() {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		area += b.Sub(a).Cross(c.Sub(a)).Len() / 2
	}
	return area
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{Mode: m.Mode}
	c.Vertices = append([]mgl64.Vec3(nil), m.Vertices...)
	c.Indices = append([]int(nil), m.Indices...)
	c.Normals = append([]mgl64.Vec3(nil), m.Normals...)
	c.Colors = append([]color.RGBA(nil), m.Colors...)
	return c
}
