package raster

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// DefaultSaveEvery is one frame a second at 60 frames per second.
const DefaultSaveEvery = 60

// FrameSaver writes every Nth frame it is given to Dir as a numbered PNG.
type FrameSaver struct {
	Dir   string
	Every int

	frames int
	saved  int
}

func NewFrameSaver(dir string, every int) *FrameSaver {
	return &FrameSaver{Dir: dir, Every: every}
}

// Frames returns how many frames have been counted.
func (f *FrameSaver) Frames() int { return f.frames }

// Saved returns how many frames have been written.
func (f *FrameSaver) Saved() int { return f.saved }

// Due counts a frame and reports whether it should be saved. Every <= 0
// disables saving.
func (f *FrameSaver) Due() bool {
	f.frames++
	return f.Every > 0 && f.frames%f.Every == 0
}

// Tick counts a frame and saves img when it is due. The returned path is
// empty when nothing was written.
func (f *FrameSaver) Tick(img image.Image) (string, error) {
	if !f.Due() {
		return "", nil
	}
	return f.Save(img)
}

// Save writes img to the next frame file regardless of the frame count.
func (f *FrameSaver) Save(img image.Image) (string, error) {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create frame directory %s: %w", f.Dir, err)
	}

	path := filepath.Join(f.Dir, fmt.Sprintf("frame_%04d.png", f.saved))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	f.saved++
	log.Printf("Saved frame %d to %s", f.frames, path)
	return path, nil
}
