package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong shading coefficients for a surface.
// Materials are plain values, copied into objects at scene construction
// and never mutated afterwards. Transparency and RefractiveIndex are
// carried for scene descriptions that specify them but are not consumed
// by the shading pipeline.
type Material struct {
	Color           core.Vec3 // Base surface color, channels in [0,1]
	Ambient         float64   // Ambient coefficient
	Diffuse         float64   // Lambertian diffuse coefficient
	Specular        float64   // Specular coefficient
	Shininess       float64   // Phong specular exponent
	Reflectivity    float64   // Mirror blend factor in [0,1]
	Transparency    float64   // Stored only, unused by shading
	RefractiveIndex float64   // Stored only, unused by shading
	Texture         Texture   // Optional procedural color override
}

// NewMaterial creates a material with explicit coefficients
func NewMaterial(color core.Vec3, ambient, diffuse, specular, shininess, reflectivity, transparency, refractiveIndex float64) Material {
	return Material{
		Color:           color,
		Ambient:         ambient,
		Diffuse:         diffuse,
		Specular:        specular,
		Shininess:       shininess,
		Reflectivity:    reflectivity,
		Transparency:    transparency,
		RefractiveIndex: refractiveIndex,
	}
}

// DefaultMaterial returns a matte mid-gray material
func DefaultMaterial() Material {
	return NewMaterial(core.NewVec3(0.5, 0.5, 0.5), 0.1, 0.7, 0.2, 200.0, 0.0, 0.0, 1.0)
}

// ReflectiveMaterial returns a mirror-like material with the given blend factor
func ReflectiveMaterial(color core.Vec3, reflectivity float64) Material {
	return NewMaterial(color, 0.1, 0.3, 0.6, 200.0, reflectivity, 0.0, 1.0)
}

// TransparentMaterial returns a glass-like material. The transparency
// attributes are stored with the material but do not affect shading.
func TransparentMaterial(color core.Vec3, transparency, refractiveIndex float64) Material {
	return NewMaterial(color, 0.1, 0.1, 0.8, 200.0, 0.1, transparency, refractiveIndex)
}

// WithTexture returns a copy of the material using the given texture
func (m Material) WithTexture(tex Texture) Material {
	m.Texture = tex
	return m
}

// SurfaceColor returns the base color at a world-space point, consulting
// the texture when one is attached.
func (m Material) SurfaceColor(point core.Vec3) core.Vec3 {
	if m.Texture != nil {
		return m.Texture.ColorAt(point)
	}
	return m.Color
}
