// Package raster is a small z-buffered software rasterizer that draws a
// scene into an *image.RGBA, used for headless rendering and frame dumps.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/smasonuk/dodeca/scene"
)

// lineDepthBias lets edges win the depth test against the faces they lie on.
const lineDepthBias = 1e-4

// Canvas is a color image with a depth buffer of the same size.
type Canvas struct {
	Image   *image.RGBA
	zbuffer []float64
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Image:   image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuffer: make([]float64, width*height),
	}
}

func (c *Canvas) Width() int  { return c.Image.Bounds().Dx() }
func (c *Canvas) Height() int { return c.Image.Bounds().Dy() }

// Clear fills the image with bg and resets the depth buffer to the far plane.
func (c *Canvas) Clear(bg color.RGBA) {
	pix := c.Image.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	for i := range c.zbuffer {
		c.zbuffer[i] = math.Inf(1)
	}
}

// Depth returns the stored depth at x, y, +Inf when nothing was drawn.
func (c *Canvas) Depth(x, y int) float64 {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return math.Inf(1)
	}
	return c.zbuffer[y*c.Width()+x]
}

func (c *Canvas) plot(x, y int, z, bias float64, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	idx := y*c.Width() + x
	if z-bias >= c.zbuffer[idx] {
		return
	}
	c.zbuffer[idx] = z
	c.Image.SetRGBA(x, y, col)
}

// FillTriangle fills a screen-space triangle, interpolating vertex colors
// and depth.
func (c *Canvas) FillTriangle(a, b, v scene.Vertex) {
	minX := int(math.Max(0, math.Floor(min3(a.X, b.X, v.X))))
	maxX := int(math.Min(float64(c.Width()-1), math.Ceil(max3(a.X, b.X, v.X))))
	minY := int(math.Max(0, math.Floor(min3(a.Y, b.Y, v.Y))))
	maxY := int(math.Min(float64(c.Height()-1), math.Ceil(max3(a.Y, b.Y, v.Y))))

	area := edge(a.X, a.Y, b.X, b.Y, v.X, v.Y)
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(b.X, b.Y, v.X, v.Y, px, py) / area
			w1 := edge(v.X, v.Y, a.X, a.Y, px, py) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.Depth + w1*b.Depth + w2*v.Depth
			c.plot(x, y, z, 0, color.RGBA{
				R: mix(a.Color.R, b.Color.R, v.Color.R, w0, w1, w2),
				G: mix(a.Color.G, b.Color.G, v.Color.G, w0, w1, w2),
				B: mix(a.Color.B, b.Color.B, v.Color.B, w0, w1, w2),
				A: mix(a.Color.A, b.Color.A, v.Color.A, w0, w1, w2),
			})
		}
	}
}

// DrawLine draws a depth-tested line between two projected vertices using
// Bresenham's algorithm.
func (c *Canvas) DrawLine(a, b scene.Vertex, col color.RGBA) {
	x1, y1 := int(math.Round(a.X)), int(math.Round(a.Y))
	x2, y2 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		c.plot(x1, y1, a.Depth+t*(b.Depth-a.Depth), lineDepthBias, col)

		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func mix(a, b, c float32, w0, w1, w2 float64) uint8 {
	v := (float64(a)*w0 + float64(b)*w1 + float64(c)*w2) * 255
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
