package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Light is a point light source
type Light struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position, color core.Vec3, intensity float64) Light {
	return Light{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from a point toward the light
func (l Light) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// DistanceFrom returns the distance from a point to the light
func (l Light) DistanceFrom(point core.Vec3) float64 {
	return l.Position.Subtract(point).Length()
}

// Attenuation returns the distance falloff factor 1/(1 + 0.1d + 0.01d²)
func (l Light) Attenuation(distance float64) float64 {
	return 1.0 / (1.0 + 0.1*distance + 0.01*distance*distance)
}
