package dodeca

import "github.com/go-gl/mathgl/mgl64"

// PentagonSize is the number of vertex indices in a Face.
const PentagonSize = 5

// Face is a planar pentagon given as vertex indices. The winding order
// determines the outward side by the right-hand rule.
type Face []int

// Triangle is an index triple produced by triangulating a Face.
type Triangle [3]int

func (t Triangle) inRange(n int) bool {
	for _, i := range t {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}

// fan splits a pentagon into three triangles anchored at its first vertex.
// Only valid for convex, planar, consistently wound faces of PentagonSize
// indices.
func (f Face) fan() [3]Triangle {
	return [3]Triangle{
		{f[0], f[1], f[2]},
		{f[0], f[2], f[3]},
		{f[0], f[3], f[4]},
	}
}

// BuildMesh copies vertices into a new mesh and appends the fan
// triangulation of every valid face. Invalid faces are skipped and reported.
func BuildMesh(vertices []mgl64.Vec3, faces []Face) (*Mesh, Diagnostics) {
	m := NewMesh()
	m.AddVertices(vertices)
	return m, m.AddFaces(faces)
}

// AddFaces appends three triangles per pentagon to the index list.
func (m *Mesh) AddFaces(faces []Face) Diagnostics {
	var diags Diagnostics
	for fi, face := range faces {
		if len(face) != PentagonSize {
			diags.errorf(ErrMalformedFace, "face %d has %d", fi, len(face))
			continue
		}
		if bad, ok := firstOutOfRange(face, len(m.Vertices)); ok {
			diags.errorf(ErrIndexOutOfBounds, "face %d references vertex %d of %d", fi, bad, len(m.Vertices))
			continue
		}
		for _, t := range face.fan() {
			m.AddIndices(t[0], t[1], t[2])
		}
	}
	return diags
}

func firstOutOfRange(indices []int, n int) (int, bool) {
	for _, i := range indices {
		if i < 0 || i >= n {
			return i, true
		}
	}
	return 0, false
}
