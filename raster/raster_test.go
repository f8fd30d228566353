package raster

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/smasonuk/dodeca"
	"github.com/smasonuk/dodeca/scene"
)

func TestMain(m *testing.M) {
	dodeca.SetLogger(nil)
	os.Exit(m.Run())
}

func vertex(x, y, depth float64) scene.Vertex {
	return scene.Vertex{X: x, Y: y, Depth: depth, Visible: true, Color: scene.ColorF{R: 1, A: 1}}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 3)
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c.Clear(bg)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := c.Image.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, bg)
			}
			if !math.IsInf(c.Depth(x, y), 1) {
				t.Fatalf("depth (%d, %d) = %v, want +Inf", x, y, c.Depth(x, y))
			}
		}
	}
}

func TestFillTriangle(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(color.RGBA{A: 255})
	c.FillTriangle(vertex(2, 2, 0.5), vertex(18, 2, 0.5), vertex(2, 18, 0.5))

	if got := c.Image.RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := c.Image.RGBAAt(17, 17); got != (color.RGBA{A: 255}) {
		t.Errorf("outside pixel = %v, want background", got)
	}
	if d := c.Depth(5, 5); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("depth = %v, want 0.5", d)
	}
}

func TestFillTriangleDepthTest(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(color.RGBA{A: 255})

	near := vertex(0, 0, 0.1)
	c.FillTriangle(near, vertex(20, 0, 0.1), vertex(0, 20, 0.1))

	far := scene.Vertex{X: 0, Y: 0, Depth: 0.9, Visible: true, Color: scene.ColorF{G: 1, A: 1}}
	farB, farC := far, far
	farB.X, farC.Y = 20, 20
	c.FillTriangle(far, farB, farC)

	if got := c.Image.RGBAAt(3, 3); got.R != 255 || got.G != 0 {
		t.Errorf("far triangle overwrote near one: %v", got)
	}
}

func TestFillDegenerateTriangle(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(color.RGBA{A: 255})
	c.FillTriangle(vertex(1, 1, 0), vertex(5, 5, 0), vertex(9, 9, 0))
	if got := c.Image.RGBAAt(5, 5); got != (color.RGBA{A: 255}) {
		t.Errorf("zero-area triangle drew %v", got)
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(color.RGBA{A: 255})
	blue := color.RGBA{B: 255, A: 255}
	c.DrawLine(vertex(0, 0, 0), vertex(9, 9, 0), blue)
	for i := 0; i < 10; i++ {
		if got := c.Image.RGBAAt(i, i); got != blue {
			t.Errorf("pixel (%d, %d) = %v, want blue", i, i, got)
		}
	}
	// Off-canvas endpoints are clipped rather than panicking.
	c.DrawLine(vertex(-5, 3, 0), vertex(15, 3, 0), blue)
}

func TestRenderDodecahedron(t *testing.T) {
	mesh, _ := dodeca.NewDodecahedron(dodeca.DefaultScale)
	s := scene.New(mesh, scene.DefaultDistance)
	s.Update(0)

	r := NewRenderer(270, 480)
	img := r.Render(s).Image
	bg := s.Colors().Background

	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("corner = %v, want background %v", got, bg)
	}
	if got := img.RGBAAt(135, 240); got == bg {
		t.Errorf("center pixel is background; solid not drawn")
	}

	edge := s.Colors().Edge
	edges := 0
	for y := 0; y < 480; y++ {
		for x := 0; x < 270; x++ {
			if img.RGBAAt(x, y) == edge {
				edges++
			}
		}
	}
	if edges == 0 {
		t.Error("no wireframe pixels drawn")
	}

	s.ToggleWireframe()
	img = r.Render(s).Image
	for y := 0; y < 480; y++ {
		for x := 0; x < 270; x++ {
			if img.RGBAAt(x, y) == edge {
				t.Fatalf("edge color at (%d, %d) with wireframe off", x, y)
			}
		}
	}
}

func TestFrameSaver(t *testing.T) {
	dir := t.TempDir()
	fs := NewFrameSaver(dir, 3)
	c := NewCanvas(8, 8)
	c.Clear(scene.Red)

	var paths []string
	for i := 0; i < 7; i++ {
		path, err := fs.Tick(c.Image)
		if err != nil {
			t.Fatalf("Tick() error: %v", err)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}

	want := []string{filepath.Join(dir, "frame_0000.png"), filepath.Join(dir, "frame_0001.png")}
	if len(paths) != len(want) {
		t.Fatalf("saved %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d = %s, want %s", i, paths[i], want[i])
		}
	}
	if fs.Frames() != 7 || fs.Saved() != 2 {
		t.Errorf("Frames() = %d, Saved() = %d", fs.Frames(), fs.Saved())
	}

	file, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("saved frame is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("saved width = %d, want 8", img.Bounds().Dx())
	}
}

func TestFrameSaverDisabled(t *testing.T) {
	fs := NewFrameSaver(t.TempDir(), 0)
	c := NewCanvas(2, 2)
	for i := 0; i < 120; i++ {
		if path, _ := fs.Tick(c.Image); path != "" {
			t.Fatalf("saved %s with saving disabled", path)
		}
	}
}

func TestFrameSaverBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFrameSaver(filepath.Join(file, "frames"), 1)
	if _, err := fs.Tick(NewCanvas(1, 1).Image); err == nil {
		t.Error("expected an error writing under a regular file")
	}
}
