package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Cube represents an axis-aligned cube defined by its center and edge length
type Cube struct {
	Center   core.Vec3
	Size     float64 // Edge length
	Material material.Material
}

// NewCube creates a new axis-aligned cube
func NewCube(center core.Vec3, size float64, mat material.Material) *Cube {
	return &Cube{
		Center:   center,
		Size:     size,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the cube using the slab method.
// Division by a zero direction component yields IEEE infinities, which
// propagate through min/max to reject or accept the slab correctly.
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	halfSize := c.Size / 2.0
	minCorner := c.Center.Subtract(core.NewVec3(halfSize, halfSize, halfSize))
	maxCorner := c.Center.Add(core.NewVec3(halfSize, halfSize, halfSize))

	invDir := core.NewVec3(1.0/ray.Direction.X, 1.0/ray.Direction.Y, 1.0/ray.Direction.Z)

	t1 := (minCorner.X - ray.Origin.X) * invDir.X
	t2 := (maxCorner.X - ray.Origin.X) * invDir.X
	t3 := (minCorner.Y - ray.Origin.Y) * invDir.Y
	t4 := (maxCorner.Y - ray.Origin.Y) * invDir.Y
	t5 := (minCorner.Z - ray.Origin.Z) * invDir.Z
	t6 := (maxCorner.Z - ray.Origin.Z) * invDir.Z

	tNear := math.Max(math.Max(math.Min(t1, t2), math.Min(t3, t4)), math.Min(t5, t6))
	tFar := math.Min(math.Min(math.Max(t1, t2), math.Max(t3, t4)), math.Max(t5, t6))

	// An origin exactly on a face with a zero direction component along
	// that axis yields 0*Inf = NaN, which math.Min/math.Max propagate.
	// Such a grazing ray is degenerate and counts as a miss.
	if math.IsNaN(tNear) || math.IsNaN(tFar) {
		return nil, false
	}

	// Box is behind the ray or the slabs do not overlap
	if tFar < 0 || tNear > tFar {
		return nil, false
	}

	// Use the entry point unless the origin is inside the box
	t := tNear
	if t < tMin {
		t = tFar
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	hitRecord := &HitRecord{
		T:        t,
		Point:    point,
		Material: c.Material,
	}
	hitRecord.SetFaceNormal(ray, c.faceNormal(point))

	return hitRecord, true
}

// faceNormal determines which axis-aligned face contains the hit point:
// the component with the largest offset from the center, signed.
func (c *Cube) faceNormal(point core.Vec3) core.Vec3 {
	offset := point.Subtract(c.Center)
	absX := math.Abs(offset.X)
	absY := math.Abs(offset.Y)
	absZ := math.Abs(offset.Z)

	switch {
	case absX > absY && absX > absZ:
		return core.NewVec3(sign(offset.X), 0, 0)
	case absY > absZ:
		return core.NewVec3(0, sign(offset.Y), 0)
	default:
		return core.NewVec3(0, 0, sign(offset.Z))
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
