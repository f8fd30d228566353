// Package scene holds the per-frame presentation state of the viewer:
// rotation, mouse drag, color cycling, camera and lighting. It has no
// windowing dependency so it can drive both the ebiten window and the
// headless renderer.
package scene

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/dodeca"
)

// Scene is one mesh plus everything needed to draw a frame of it.
type Scene struct {
	Mesh      *dodeca.Mesh
	Animator  Animator
	Palette   Palette
	Camera    *Camera
	Light     Light
	Wireframe bool

	colors       Colors
	vertexColors []color.RGBA
}

// New copies mesh and gives every vertex the initial face color.
func New(mesh *dodeca.Mesh, cameraDistance float64) *Scene {
	s := &Scene{
		Mesh:      mesh.Copy(),
		Palette:   DefaultPalette(),
		Camera:    NewCamera(cameraDistance),
		Light:     KeyLight(),
		Wireframe: true,
	}
	s.colors = s.Palette.At(0)
	s.vertexColors = make([]color.RGBA, s.Mesh.NumVertices())
	if missing := s.Mesh.NumVertices() - s.Mesh.NumColors(); missing > 0 {
		s.Mesh.AddColors(make([]color.RGBA, missing))
	}
	s.paintVertices()
	return s
}

// paintVertices assigns the current face color to every vertex.
func (s *Scene) paintVertices() {
	for i := range s.vertexColors {
		s.vertexColors[i] = s.colors.Face
	}
	s.Mesh.UpdateColors(s.vertexColors)
}

// Update advances one frame. elapsed is the time since start and selects
// the color assignment.
func (s *Scene) Update(elapsed time.Duration) {
	s.Animator.Step()
	s.colors = s.Palette.At(elapsed)
	s.paintVertices()
}

func (s *Scene) Colors() Colors {
	return s.colors
}

func (s *Scene) Model() mgl64.Mat4 {
	return s.Animator.ModelMatrix()
}

func (s *Scene) MousePressed(x, y int)  { s.Animator.MousePressed(x, y) }
func (s *Scene) MouseDragged(x, y int)  { s.Animator.MouseDragged(x, y) }
func (s *Scene) MouseReleased(x, y int) { s.Animator.MouseReleased(x, y) }

const (
	// OrbitSensitivity is radians of camera orbit per pixel of drag.
	OrbitSensitivity = 0.01
	// ZoomStep is the fraction of orbit distance one wheel notch moves.
	ZoomStep = 0.1
)

// Orbit moves the camera around the solid by a drag of dx, dy pixels.
func (s *Scene) Orbit(dx, dy int) {
	s.Camera.AddAngle(float64(dy)*OrbitSensitivity, -float64(dx)*OrbitSensitivity)
}

// Zoom moves the camera in for positive wheel notches and out for negative.
func (s *Scene) Zoom(notches float64) {
	if notches == 0 {
		return
	}
	s.Camera.Zoom(-notches * ZoomStep)
}

func (s *Scene) ToggleWireframe() {
	s.Wireframe = !s.Wireframe
}

// Vertex is a mesh vertex after the model transform, ready to rasterize.
type Vertex struct {
	X, Y, Depth float64
	Visible     bool
	Color       ColorF
}

// ColorF is a color with float channels in [0, 1].
type ColorF struct {
	R, G, B, A float32
}

// Frame projects and lights every vertex of the mesh for a width x height
// target.
func (s *Scene) Frame(width, height float64) []Vertex {
	model := s.Model()
	vp := s.Camera.Viewport(width, height)
	eye := s.Camera.Position()

	out := make([]Vertex, s.Mesh.NumVertices())
	for i, p := range s.Mesh.Vertices {
		world := TransformPoint(model, p)
		x, y, depth, ok := vp.Project(world)

		base := s.colors.Face
		if i < s.Mesh.NumColors() {
			base = s.Mesh.Colors[i]
		}
		lit := base
		if i < s.Mesh.NumNormals() {
			lit = s.Light.Shade(world, TransformNormal(model, s.Mesh.Normals[i]), eye, base)
		}
		out[i] = Vertex{
			X: x, Y: y, Depth: depth, Visible: ok,
			Color: ColorF{
				R: float32(lit.R) / 255,
				G: float32(lit.G) / 255,
				B: float32(lit.B) / 255,
				A: float32(lit.A) / 255,
			},
		}
	}
	return out
}

// FrontFacing reports whether the screen-space triangle a, b, c winds
// counter-clockwise as seen by the viewer (screen y points down).
func FrontFacing(a, b, c Vertex) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return cross < 0
}
