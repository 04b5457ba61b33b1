package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Preset scenes. Each builds a complete scene (camera, lights, objects)
// for the given aspect ratio. The textured flag attaches a flat checker
// pattern to ground planes; it changes surface color lookup only.

// defaultCamera is the shared preset camera: at the origin, looking down
// the negative Z axis with a 45 degree vertical field of view.
func defaultCamera(aspectRatio float64) (*Camera, error) {
	return NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		45.0,
		aspectRatio,
	)
}

// groundMaterial optionally wraps a plane material in a checker texture
func groundMaterial(mat material.Material, textured bool) material.Material {
	if !textured {
		return mat
	}
	light := mat.Color
	dark := mat.Color.Multiply(0.4)
	return mat.WithTexture(material.NewCheckerTexture(light, dark, 1.0))
}

// NewSphereScene builds a single large red sphere in front of the camera
func NewSphereScene(aspectRatio float64, textured bool) (*Scene, error) {
	s := NewScene()

	camera, err := defaultCamera(aspectRatio)
	if err != nil {
		return nil, err
	}
	s.SetCamera(camera)

	s.AddLight(NewLight(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1), 1.0))

	sphereMat := material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.2, 0.8, 0.3, 100.0, 0, 0, 1.0)
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 2.0, sphereMat))

	return s, nil
}

// NewPlaneCubeScene builds a cube resting above a ground plane under dim lighting
func NewPlaneCubeScene(aspectRatio float64, textured bool) (*Scene, error) {
	s := NewScene()

	camera, err := defaultCamera(aspectRatio)
	if err != nil {
		return nil, err
	}
	s.SetCamera(camera)

	s.AddLight(NewLight(core.NewVec3(5, 5, 5), core.NewVec3(0.3, 0.3, 0.3), 0.3))

	planeMat := material.NewMaterial(core.NewVec3(0.9, 0.8, 0.95), 0.3, 0.8, 0.3, 200.0, 0, 0, 1.0)
	cubeMat := material.NewMaterial(core.NewVec3(0.7, 0.9, 1.0), 0.3, 0.8, 0.4, 200.0, 0, 0, 1.0)

	s.AddObject(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), groundMaterial(planeMat, textured)))
	s.AddObject(geometry.NewCube(core.NewVec3(0, 0, -5), 1.0, cubeMat))

	return s, nil
}

// NewAllObjectsScene builds one of each primitive over a ground plane
func NewAllObjectsScene(aspectRatio float64, textured bool) (*Scene, error) {
	s := NewScene()

	camera, err := defaultCamera(aspectRatio)
	if err != nil {
		return nil, err
	}
	s.SetCamera(camera)

	s.AddLight(NewLight(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1), 1.0))
	addAllObjects(s, textured)

	return s, nil
}

// NewPerspectiveScene builds the all-objects scene viewed from an
// elevated camera position
func NewPerspectiveScene(aspectRatio float64, textured bool) (*Scene, error) {
	s := NewScene()

	camera, err := NewCamera(
		core.NewVec3(-3, 3, 2),
		core.NewVec3(0, 0, -5),
		core.NewVec3(0, 1, 0),
		45.0,
		aspectRatio,
	)
	if err != nil {
		return nil, err
	}
	s.SetCamera(camera)

	s.AddLight(NewLight(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1), 1.0))
	addAllObjects(s, textured)

	return s, nil
}

// addAllObjects places the shared plane/sphere/cube/cylinder arrangement
func addAllObjects(s *Scene, textured bool) {
	planeMat := material.DefaultMaterial()
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), groundMaterial(planeMat, textured)))

	sphereMat := material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.1, 0.7, 0.2, 200.0, 0, 0, 1.0)
	s.AddObject(geometry.NewSphere(core.NewVec3(-2, 0, -5), 1.0, sphereMat))

	cubeMat := material.NewMaterial(core.NewVec3(0.2, 0.8, 0.2), 0.1, 0.7, 0.2, 200.0, 0, 0, 1.0)
	s.AddObject(geometry.NewCube(core.NewVec3(2, 0, -5), 1.0, cubeMat))

	cylinderMat := material.NewMaterial(core.NewVec3(0.2, 0.2, 0.8), 0.1, 0.7, 0.2, 200.0, 0, 0, 1.0)
	s.AddObject(geometry.NewCylinder(core.NewVec3(0, 0, -7), 0.5, 2.0, cylinderMat))
}
