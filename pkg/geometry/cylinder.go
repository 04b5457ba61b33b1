package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Cylinder represents a finite capped cylinder aligned with the Y axis,
// centered at Center with the given radius and total height.
type Cylinder struct {
	Center   core.Vec3
	Radius   float64
	Height   float64
	Material material.Material
}

// NewCylinder creates a new capped cylinder
func NewCylinder(center core.Vec3, radius, height float64, mat material.Material) *Cylinder {
	return &Cylinder{
		Center:   center,
		Radius:   radius,
		Height:   height,
		Material: mat,
	}
}

// Hit tests if a ray intersects the cylinder. The lateral surface and
// the two end caps are tested independently and the nearest valid
// candidate wins. On an exact tie the lateral hit is kept, matching
// the first-candidate-wins convention of the scene scan.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	closest, ok := c.hitLateral(ray, tMin, tMax)
	if ok {
		tMax = closest.T
	}
	if capHit, capOk := c.hitCaps(ray, tMin, tMax); capOk && (!ok || capHit.T < closest.T) {
		return capHit, true
	}
	return closest, ok
}

// hitLateral solves the 2D quadratic in the XZ plane for the infinite
// lateral surface and clamps candidates to the height range.
func (c *Cylinder) hitLateral(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(c.Center)

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	b := 2.0 * (oc.X*ray.Direction.X + oc.Z*ray.Direction.Z)
	cc := oc.X*oc.X + oc.Z*oc.Z - c.Radius*c.Radius

	// Ray parallel to the axis never crosses the lateral surface
	if a < 1e-8 {
		return nil, false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	halfHeight := c.Height / 2.0

	// Test both roots in near-to-far order; the near root may fall
	// outside the height range while the far one is valid.
	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t < tMin || t > tMax {
			continue
		}
		point := ray.At(t)
		y := point.Y - c.Center.Y
		if y < -halfHeight || y > halfHeight {
			continue
		}

		// Normal is radial, pointing away from the axis
		outwardNormal := core.NewVec3(
			(point.X-c.Center.X)/c.Radius,
			0,
			(point.Z-c.Center.Z)/c.Radius,
		)
		hitRecord := &HitRecord{
			T:        t,
			Point:    point,
			Material: c.Material,
		}
		hitRecord.SetFaceNormal(ray, outwardNormal)
		return hitRecord, true
	}

	return nil, false
}

// hitCaps tests the bottom and top disk caps
func (c *Cylinder) hitCaps(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Rays running parallel to the caps never hit them
	if math.Abs(ray.Direction.Y) < 1e-8 {
		return nil, false
	}

	halfHeight := c.Height / 2.0
	caps := [2]struct {
		y      float64
		normal core.Vec3
	}{
		{y: c.Center.Y - halfHeight, normal: core.NewVec3(0, -1, 0)},
		{y: c.Center.Y + halfHeight, normal: core.NewVec3(0, 1, 0)},
	}

	var closest *HitRecord
	closestT := tMax

	for _, disk := range caps {
		t := (disk.y - ray.Origin.Y) / ray.Direction.Y
		if t < tMin || t > closestT {
			continue
		}
		point := ray.At(t)
		dx := point.X - c.Center.X
		dz := point.Z - c.Center.Z
		if dx*dx+dz*dz > c.Radius*c.Radius {
			continue
		}

		hitRecord := &HitRecord{
			T:        t,
			Point:    point,
			Material: c.Material,
		}
		hitRecord.SetFaceNormal(ray, disk.normal)
		closest = hitRecord
		closestT = t
	}

	return closest, closest != nil
}
