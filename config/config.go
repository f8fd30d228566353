// Package config holds the viewer settings shared by the window and the
// headless renderer.
package config

import (
	"errors"
	"fmt"

	"github.com/smasonuk/dodeca"
	"github.com/smasonuk/dodeca/raster"
	"github.com/smasonuk/dodeca/scene"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width  int
	Height int

	// Scale multiplies the unit solid's vertex positions.
	Scale float64

	// SaveEvery writes one frame out of every SaveEvery; 0 disables saving.
	SaveEvery int
	OutDir    string

	CameraDistance float64

	// TPS is the window's ticks per second.
	TPS int

	// Frames is how many frames the headless renderer draws.
	Frames int
}

func Default() Config {
	w, h := scene.FitAspect(540)
	return Config{
		Width:          w,
		Height:         h,
		Scale:          dodeca.DefaultScale,
		SaveEvery:      raster.DefaultSaveEvery,
		OutDir:         "frames",
		CameraDistance: scene.DefaultDistance,
		TPS:            60,
		Frames:         180,
	}
}

// Validate returns the first problem found, wrapping ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.Scale)
	case c.SaveEvery < 0:
		return fmt.Errorf("%w: save-every %d must not be negative", ErrInvalid, c.SaveEvery)
	case c.SaveEvery > 0 && c.OutDir == "":
		return fmt.Errorf("%w: an output directory is required when saving frames", ErrInvalid)
	case c.CameraDistance <= c.Scale*2:
		return fmt.Errorf("%w: camera distance %v is inside the solid", ErrInvalid, c.CameraDistance)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, c.TPS)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d must not be negative", ErrInvalid, c.Frames)
	}
	return nil
}
