package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a white point light shaded with the Blinn-Phong model.
type Light struct {
	Position  mgl64.Vec3
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

func KeyLight() Light {
	return Light{
		Position:  mgl64.Vec3{300, 300, 300},
		Ambient:   0.2,
		Diffuse:   0.8,
		Specular:  0.3,
		Shininess: 32,
	}
}

// Shade lights base at world position pos with unit normal n seen from eye.
func (l Light) Shade(pos, n, eye mgl64.Vec3, base color.RGBA) color.RGBA {
	toLight := l.Position.Sub(pos)
	if toLight.Len() == 0 {
		return base
	}
	toLight = toLight.Normalize()

	diffuse := math.Max(0, n.Dot(toLight))

	specular := 0.0
	if diffuse > 0 {
		toEye := eye.Sub(pos)
		if toEye.Len() > 0 {
			half := toLight.Add(toEye.Normalize())
			if half.Len() > 0 {
				specular = math.Pow(math.Max(0, n.Dot(half.Normalize())), l.Shininess)
			}
		}
	}

	intensity := l.Ambient + l.Diffuse*diffuse
	highlight := l.Specular * specular * 255
	return color.RGBA{
		R: channel(float64(base.R)*intensity + highlight),
		G: channel(float64(base.G)*intensity + highlight),
		B: channel(float64(base.B)*intensity + highlight),
		A: base.A,
	}
}

func channel(v float64) uint8 {
	return uint8(mgl64.Clamp(math.Round(v), 0, 255))
}
