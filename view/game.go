// Package view opens the viewer window and drives a scene with ebiten.
package view

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/dodeca"
	"github.com/smasonuk/dodeca/config"
	"github.com/smasonuk/dodeca/raster"
	"github.com/smasonuk/dodeca/scene"
)

// EventHandler receives mouse button and motion events in screen
// coordinates.
type EventHandler interface {
	MousePressed(x, y int)
	MouseDragged(x, y int)
	MouseReleased(x, y int)
}

// CameraHandler receives right-button orbit drags and wheel zoom.
type CameraHandler interface {
	Orbit(dx, dy int)
	Zoom(notches float64)
}

// mouseState is one tick's snapshot of the buttons and wheel.
type mouseState struct {
	pressed, held, released bool
	orbitPressed, orbitHeld bool
	wheel                   float64
	x, y                    int
}

func pollMouse() mouseState {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	return mouseState{
		pressed:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		held:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		released:     inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		orbitPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		orbitHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		wheel:        wheel,
		x:            x,
		y:            y,
	}
}

// orbitDrag turns right-button motion into camera orbit deltas.
type orbitDrag struct {
	lastX, lastY int
}

func (o *orbitDrag) dispatch(h CameraHandler, m mouseState) {
	switch {
	case m.orbitPressed:
		o.lastX, o.lastY = m.x, m.y
	case m.orbitHeld:
		if dx, dy := m.x-o.lastX, m.y-o.lastY; dx != 0 || dy != 0 {
			h.Orbit(dx, dy)
		}
		o.lastX, o.lastY = m.x, m.y
	}
	if m.wheel != 0 {
		h.Zoom(m.wheel)
	}
}

func dispatchMouse(h EventHandler, m mouseState) {
	switch {
	case m.pressed:
		h.MousePressed(m.x, m.y)
	case m.released:
		h.MouseReleased(m.x, m.y)
	case m.held:
		h.MouseDragged(m.x, m.y)
	}
}

type Game struct {
	cfg   config.Config
	scene *scene.Scene
	saver *raster.FrameSaver
	start time.Time
	now   func() time.Time

	verts  []scene.Vertex
	faces  triangleBatch
	pixels *image.RGBA

	orbit       orbitDrag
	windowWidth int
	saveErr     error
}

func NewGame(cfg config.Config, mesh *dodeca.Mesh) *Game {
	g := &Game{
		cfg:    cfg,
		scene:  scene.New(mesh, cfg.CameraDistance),
		now:    time.Now,
		pixels: image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	if cfg.SaveEvery > 0 {
		g.saver = raster.NewFrameSaver(cfg.OutDir, cfg.SaveEvery)
	}
	g.start = g.now()
	return g
}

func (g *Game) Scene() *scene.Scene {
	return g.scene
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.scene.ToggleWireframe()
	}

	g.fitWindow()
	mouse := pollMouse()
	dispatchMouse(g.scene, mouse)
	g.orbit.dispatch(g.scene, mouse)
	g.scene.Update(g.now().Sub(g.start))
	return nil
}

// fitWindow keeps the window at the portrait aspect after the user resizes
// it.
func (g *Game) fitWindow() {
	w, h := ebiten.WindowSize()
	if w == g.windowWidth || w <= 0 {
		return
	}
	g.windowWidth = w
	if fw, fh := scene.FitAspect(w); fh != h {
		ebiten.SetWindowSize(fw, fh)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	colors := g.scene.Colors()
	screen.Fill(colors.Background)

	g.verts = g.scene.Frame(float64(g.cfg.Width), float64(g.cfg.Height))
	faces := visibleFaces(g.verts, g.scene.Mesh.Triangles())

	g.faces.reset()
	for _, t := range faces {
		g.faces.add(g.verts[t[0]], g.verts[t[1]], g.verts[t[2]])
	}
	g.faces.draw(screen)

	if g.scene.Wireframe {
		strokeEdges(screen, g.verts, faceEdges(faces), colors.Edge)
	}

	g.saveFrame(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nSaved: %d", ebiten.ActualFPS(), g.saved()))
}

func (g *Game) saveFrame(screen *ebiten.Image) {
	if g.saver == nil || g.saveErr != nil {
		return
	}
	if !g.saver.Due() {
		return
	}
	screen.ReadPixels(g.pixels.Pix)
	if _, err := g.saver.Save(g.pixels); err != nil {
		log.Printf("error: frame saving stopped: %v", err)
		g.saveErr = err
	}
}

func (g *Game) saved() int {
	if g.saver == nil {
		return 0
	}
	return g.saver.Saved()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(cfg config.Config, mesh *dodeca.Mesh) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("dodeca")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Println("Starting window...")
	if err := ebiten.RunGame(NewGame(cfg, mesh)); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
