package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// shadowBias is the offset along the surface normal applied to secondary
// ray origins so they do not re-intersect the surface they left.
const shadowBias = 0.001

// hitEpsilon is the minimum intersection distance; hits closer than this
// are treated as self-intersections and discarded.
const hitEpsilon = 0.001

// Config contains shading configuration
type Config struct {
	MaxDepth         int  // Maximum reflection recursion depth
	EnableReflection bool // Gates recursive reflection tracing
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:         5,
		EnableReflection: false,
	}
}

// Raytracer resolves ray colors against a scene using Phong shading
// with shadow rays and optional recursive reflection. It holds no
// mutable state, so a single instance is safe to share across workers.
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(sc *scene.Scene, config Config) *Raytracer {
	return &Raytracer{scene: sc, config: config}
}

// RayColor returns the color seen along the ray. The depth counter
// decrements on each reflection bounce; at zero no more light is
// gathered, which bounds recursion for any scene topology.
func (rt *Raytracer) RayColor(ray core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.Hit(ray, hitEpsilon, math.Inf(1))
	if !isHit {
		return rt.scene.Background
	}

	color := rt.shadeLocal(ray, hit)

	if rt.config.EnableReflection && hit.Material.Reflectivity > 0 {
		reflected := rt.reflectedColor(ray, hit, depth)
		color = color.Lerp(reflected, hit.Material.Reflectivity)
	}

	return color.Clamp(0, 1)
}

// shadeLocal computes the ambient term plus the shadowed diffuse and
// specular contributions from every light.
func (rt *Raytracer) shadeLocal(ray core.Ray, hit *geometry.HitRecord) core.Vec3 {
	mat := hit.Material
	surfaceColor := mat.SurfaceColor(hit.Point)

	// Ambient term is independent of lights and shadows
	color := surfaceColor.Multiply(mat.Ambient)

	for _, light := range rt.scene.Lights {
		lightDir := light.DirectionFrom(hit.Point)
		lightDistance := light.DistanceFrom(hit.Point)

		if rt.inShadow(hit, lightDir, lightDistance) {
			continue
		}

		// Lambertian diffuse
		diffuseStrength := math.Max(0, hit.Normal.Dot(lightDir))
		diffuse := surfaceColor.
			MultiplyVec(light.Color).
			Multiply(mat.Diffuse * diffuseStrength * light.Intensity)

		// Phong specular about the view direction
		viewDir := ray.Direction.Negate()
		reflectDir := lightDir.Negate().Reflect(hit.Normal)
		specStrength := math.Pow(math.Max(0, viewDir.Dot(reflectDir)), mat.Shininess)
		specular := light.Color.Multiply(mat.Specular * specStrength * light.Intensity)

		attenuation := light.Attenuation(lightDistance)
		color = color.Add(diffuse.Add(specular).Multiply(attenuation))
	}

	return color
}

// inShadow casts a shadow ray from the hit point toward the light and
// reports whether any object occludes it before the light.
func (rt *Raytracer) inShadow(hit *geometry.HitRecord, lightDir core.Vec3, lightDistance float64) bool {
	origin := hit.Point.Add(hit.Normal.Multiply(shadowBias))
	shadowRay := core.NewRay(origin, lightDir)

	_, occluded := rt.scene.Hit(shadowRay, hitEpsilon, lightDistance)
	return occluded
}

// reflectedColor traces the mirror bounce for a reflective surface
func (rt *Raytracer) reflectedColor(ray core.Ray, hit *geometry.HitRecord, depth int) core.Vec3 {
	reflectedDir := ray.Direction.Reflect(hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(shadowBias))
	reflectedRay := core.NewRay(origin, reflectedDir)

	return rt.RayColor(reflectedRay, depth-1)
}
