package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Scene aggregates the camera, objects and lights for a render. A scene
// is built once before rendering begins and is read-only afterwards, so
// it can be shared across render workers without locking.
type Scene struct {
	Objects    []geometry.Shape
	Lights     []Light
	Camera     *Camera
	Background core.Vec3
}

// NewScene creates an empty scene with the default sky-blue background
func NewScene() *Scene {
	return &Scene{
		Background: core.NewVec3(0.7, 0.8, 1.0),
	}
}

// AddObject appends an object to the scene
func (s *Scene) AddObject(obj geometry.Shape) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light Light) {
	s.Lights = append(s.Lights, light)
}

// SetCamera sets the scene camera
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Hit returns the nearest intersection along the ray, scanning every
// object in insertion order. When two objects intersect at exactly the
// same distance the first one added wins; that tie-break is an arbitrary
// but deterministic convention, not a physical rule.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord

	for _, obj := range s.Objects {
		if hit, isHit := obj.Hit(ray, tMin, tMax); isHit {
			if closest == nil || hit.T < closest.T {
				closest = hit
				tMax = hit.T
			}
		}
	}

	return closest, closest != nil
}
