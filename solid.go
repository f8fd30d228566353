package dodeca

import "github.com/go-gl/mathgl/mgl64"

// DefaultScale brings the unit-ish solid up to screen size.
const DefaultScale = 100.0

const (
	DodecahedronVertexCount = 20
	DodecahedronIndexCount  = 108
)

var dodecahedronVertices = [DodecahedronVertexCount]mgl64.Vec3{
	{0, 0.618, 1.618},
	{0, -0.618, 1.618},
	{0, -0.618, -1.618},
	{0, 0.618, -1.618},
	{1.618, 0, 0.618},
	{-1.618, 0, 0.618},
	{-1.618, 0, -0.618},
	{1.618, 0, -0.618},
	{0.618, 1.618, 0},
	{-0.618, 1.618, 0},
	{-0.618, -1.618, 0},
	{0.618, -1.618, 0},
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, -1},
}

var dodecahedronFaces = [12][PentagonSize]int{
	{0, 1, 15, 4, 12},
	{0, 12, 8, 9, 13},
	{0, 13, 5, 14, 1},
	{1, 14, 10, 11, 15},
	{2, 3, 17, 7, 16},
	{2, 16, 11, 10, 19},
	{2, 19, 6, 18, 3},
	{18, 9, 8, 17, 3},
	{15, 11, 16, 7, 4},
	{4, 7, 17, 8, 12},
	{13, 9, 18, 6, 5},
	{5, 6, 19, 10, 14},
}

// DodecahedronVertices returns a fresh copy of the solid's vertices.
func DodecahedronVertices() []mgl64.Vec3 {
	vs := make([]mgl64.Vec3, len(dodecahedronVertices))
	copy(vs, dodecahedronVertices[:])
	return vs
}

// DodecahedronFaces returns a fresh copy of the solid's pentagons, each
// wound counter-clockwise seen from outside.
func DodecahedronFaces() []Face {
	faces := make([]Face, len(dodecahedronFaces))
	for i, f := range dodecahedronFaces {
		faces[i] = append(Face(nil), f[:]...)
	}
	return faces
}

// NewDodecahedron builds the solid, computes its normals and scales it.
func NewDodecahedron(scale float64) (*Mesh, Diagnostics) {
	m, diags := BuildMesh(DodecahedronVertices(), DodecahedronFaces())
	diags = append(diags, ComputeNormals(m)...)
	m.Scale(scale)

	logger.Printf("notice: Total Vertices: %d", m.NumVertices())
	logger.Printf("notice: Indices: %d", m.NumIndices())
	return m, diags
}
