package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Texture supplies a surface color for a world-space point. Textures are
// purely cosmetic: they replace the material's base color and never
// participate in geometry or lighting.
type Texture interface {
	ColorAt(point core.Vec3) core.Vec3
}

// CheckerTexture is a flat checkerboard pattern laid out in the world XZ
// plane, alternating between two colors every CheckSize units.
type CheckerTexture struct {
	Color1    core.Vec3
	Color2    core.Vec3
	CheckSize float64
}

// NewCheckerTexture creates a checkerboard texture with the given check size
func NewCheckerTexture(color1, color2 core.Vec3, checkSize float64) *CheckerTexture {
	if checkSize <= 0 {
		checkSize = 1.0
	}
	return &CheckerTexture{Color1: color1, Color2: color2, CheckSize: checkSize}
}

// ColorAt returns the check color containing the given point
func (c *CheckerTexture) ColorAt(point core.Vec3) core.Vec3 {
	checkX := int(math.Floor(point.X / c.CheckSize))
	checkZ := int(math.Floor(point.Z / c.CheckSize))

	if (checkX+checkZ)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
