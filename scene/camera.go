package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultDistance frames the default-scale solid with some margin.
const DefaultDistance = 650.0

// Camera orbits Target at Distance. Pitch is clamped short of the poles.
type Camera struct {
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Distance float64
	Yaw      float64 // radians around Y
	Pitch    float64 // radians above the XZ plane
	FOV      float64 // vertical field of view, radians
	Near     float64
	Far      float64
}

func NewCamera(distance float64) *Camera {
	return &Camera{
		Up:       mgl64.Vec3{0, 1, 0},
		Distance: distance,
		FOV:      mgl64.DegToRad(60),
		Near:     1,
		Far:      distance * 10,
	}
}

// Position returns the eye position from the orbit angles.
func (c *Camera) Position() mgl64.Vec3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return c.Target.Add(mgl64.Vec3{x, y, z})
}

// AddAngle orbits by the given pitch and yaw deltas in radians.
func (c *Camera) AddAngle(pitch, yaw float64) {
	c.Pitch += pitch
	c.Yaw += yaw

	maxPitch := math.Pi/2 - 0.1
	c.Pitch = mgl64.Clamp(c.Pitch, -maxPitch, maxPitch)
}

// Zoom scales the orbit distance by 1+delta.
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1 + delta
	if c.Distance < 1 {
		c.Distance = 1
	}
	if c.Far < c.Distance*2 {
		c.Far = c.Distance * 10
	}
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Target, c.Up)
}

func (c *Camera) Projection(width, height float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, width/height, c.Near, c.Far)
}

// Viewport maps world space to screen pixels for a width x height target.
type Viewport struct {
	Width, Height float64
	viewProj      mgl64.Mat4
}

func (c *Camera) Viewport(width, height float64) Viewport {
	return Viewport{
		Width:    width,
		Height:   height,
		viewProj: c.Projection(width, height).Mul4(c.View()),
	}
}

// Project returns screen x, y (origin top left) and depth in [-1, 1] for a
// world position. ok is false for points behind the eye.
func (v Viewport) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := v.viewProj.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	x = (ndc[0] + 1) / 2 * v.Width
	y = (1 - ndc[1]) / 2 * v.Height
	return x, y, ndc[2], true
}
