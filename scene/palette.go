package scene

import (
	"image/color"
	"time"
)

var (
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Red    = color.RGBA{R: 255, A: 255}
)

// ColorPeriod is how long each color assignment lasts.
const ColorPeriod = 3 * time.Second

// Colors is one frame's color assignment.
type Colors struct {
	Background color.RGBA
	Edge       color.RGBA
	Face       color.RGBA
}

// Palette cycles a set of colors through the background, edge and face
// roles.
type Palette struct {
	Sets   []color.RGBA
	Period time.Duration
}

func DefaultPalette() Palette {
	return Palette{
		Sets:   []color.RGBA{Yellow, Blue, Red},
		Period: ColorPeriod,
	}
}

// At returns the assignment for the given elapsed time. Set i is the
// background, i+1 the edges and i+2 the faces, all modulo the set count.
func (p Palette) At(elapsed time.Duration) Colors {
	n := len(p.Sets)
	if n == 0 {
		return Colors{}
	}
	period := p.Period
	if period <= 0 {
		period = ColorPeriod
	}
	i := int(elapsed/period) % n
	if i < 0 {
		i += n
	}
	return Colors{
		Background: p.Sets[i],
		Edge:       p.Sets[(i+1)%n],
		Face:       p.Sets[(i+2)%n],
	}
}
