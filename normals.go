package dodeca

import "github.com/go-gl/mathgl/mgl64"

// ComputeNormals replaces the mesh normals with per-vertex normals: the
// unweighted sum of the unit face normals of every triangle using the
// vertex, normalized. Malformed triangles are skipped and reported; the
// computation always completes.
func ComputeNormals(m *Mesh) Diagnostics {
	var diags Diagnostics
	normals := make([]mgl64.Vec3, len(m.Vertices))
	touched := make([]bool, len(m.Vertices))

	n := len(m.Indices)
	for i := 0; i < n; i += 3 {
		if i+2 >= n {
			diags.errorf(ErrMalformedTriangle, "at indices: %d", i)
			continue
		}

		t := Triangle{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		if !t.inRange(len(m.Vertices)) {
			diags.errorf(ErrIndexOutOfBounds, "%d, %d, %d", t[0], t[1], t[2])
			continue
		}

		faceNormal, ok := FaceNormal(m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]])
		if !ok {
			diags.noticef(ErrDegenerateTriangle, "%d, %d, %d", t[0], t[1], t[2])
			continue
		}

		for _, vi := range t {
			normals[vi] = normals[vi].Add(faceNormal)
			touched[vi] = true
		}
	}

	for i := range normals {
		switch {
		case !touched[i]:
			diags.noticef(ErrUnreferencedVertex, "vertex %d", i)
		case normals[i].Len() < DegenerateEpsilon:
			diags.noticef(ErrCancelledNormal, "vertex %d", i)
			normals[i] = mgl64.Vec3{}
		}
		normals[i] = Normalize(normals[i])
	}

	m.ClearNormals()
	m.AddNormals(normals)
	return diags
}
