package scene

// Portrait frame the window is locked to.
const (
	TargetWidth  = 1080
	TargetHeight = 1920
)

// FitAspect returns the window size for width that keeps the portrait
// TargetWidth:TargetHeight ratio.
func FitAspect(width int) (int, int) {
	aspect := float64(TargetWidth) / float64(TargetHeight)
	return width, int(float64(width) / aspect)
}
