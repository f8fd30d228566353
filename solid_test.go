package dodeca

import "testing"

func TestDodecahedronCounts(t *testing.T) {
	m, diags := NewDodecahedron(DefaultScale)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if m.NumVertices() != DodecahedronVertexCount {
		t.Errorf("NumVertices() = %d, want %d", m.NumVertices(), DodecahedronVertexCount)
	}
	if m.NumIndices() != DodecahedronIndexCount {
		t.Errorf("NumIndices() = %d, want %d", m.NumIndices(), DodecahedronIndexCount)
	}
	if got := len(m.Triangles()); got != 36 {
		t.Errorf("len(Triangles()) = %d, want 36", got)
	}
	if m.NumNormals() != DodecahedronVertexCount {
		t.Errorf("NumNormals() = %d, want %d", m.NumNormals(), DodecahedronVertexCount)
	}
}

func TestDodecahedronNormalsPointOutward(t *testing.T) {
	m, _ := NewDodecahedron(DefaultScale)
	for i, n := range m.Normals {
		if !IsUnit(n, 1e-5) {
			t.Errorf("normal %d = %v has length %v", i, n, n.Len())
		}
		if d := n.Dot(Normalize(m.Vertices[i])); d < 0.9 {
			t.Errorf("normal %d = %v points away from vertex %v (dot %v)", i, n, m.Vertices[i], d)
		}
	}
}

func TestDodecahedronScale(t *testing.T) {
	unit, _ := NewDodecahedron(1)
	scaled, _ := NewDodecahedron(DefaultScale)
	for i := range unit.Vertices {
		if !unit.Vertices[i].Mul(DefaultScale).ApproxEqualThreshold(scaled.Vertices[i], float64EqualityThreshold) {
			t.Errorf("vertex %d = %v, want %v", i, scaled.Vertices[i], unit.Vertices[i].Mul(DefaultScale))
		}
		if !unit.Normals[i].ApproxEqualThreshold(scaled.Normals[i], float64EqualityThreshold) {
			t.Errorf("normal %d changed with scale", i)
		}
	}
}

func TestDodecahedronDataIsCopied(t *testing.T) {
	faces := DodecahedronFaces()
	faces[0][0] = 99
	vs := DodecahedronVertices()
	vs[0][0] = 99

	if got := DodecahedronFaces()[0][0]; got != 0 {
		t.Errorf("face data mutated: %d", got)
	}
	if got := DodecahedronVertices()[0][0]; got != 0 {
		t.Errorf("vertex data mutated: %v", got)
	}
}

func TestDodecahedronFacesArePentagons(t *testing.T) {
	for i, f := range DodecahedronFaces() {
		if len(f) != PentagonSize {
			t.Errorf("face %d has %d vertices", i, len(f))
		}
	}
}
