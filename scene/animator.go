package scene

import "github.com/go-gl/mathgl/mgl64"

const (
	// RotationStep and VerticalStep are degrees added per frame.
	RotationStep = 0.5
	VerticalStep = 0.3
	// DragSensitivity is degrees per pixel of mouse drag.
	DragSensitivity = 0.5
)

// Animator owns the two rotation angles and the mouse drag state.
type Animator struct {
	Rotation float64
	Vertical float64

	dragging     bool
	lastX, lastY int
}

// Step advances the automatic rotation by one frame.
func (a *Animator) Step() {
	a.Rotation += RotationStep
	a.Vertical += VerticalStep
}

func (a *Animator) MousePressed(x, y int) {
	a.dragging = true
	a.lastX, a.lastY = x, y
}

// MouseDragged turns horizontal motion into rotation and vertical motion
// into vertical rotation. Ignored unless a press started a drag.
func (a *Animator) MouseDragged(x, y int) {
	if !a.dragging {
		return
	}
	a.Rotation += float64(x-a.lastX) * DragSensitivity
	a.Vertical += float64(y-a.lastY) * DragSensitivity
	a.lastX, a.lastY = x, y
}

func (a *Animator) MouseReleased(x, y int) {
	a.dragging = false
}

func (a *Animator) Dragging() bool {
	return a.dragging
}

func (a *Animator) ModelMatrix() mgl64.Mat4 {
	return ModelMatrix(a.Rotation, a.Vertical)
}
