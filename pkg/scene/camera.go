package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera maps pixel coordinates to world-space rays through a viewport
// derived from position, look-at target, up vector, vertical field of
// view and aspect ratio. The orthonormal basis is computed once at
// construction and never changes during a render.
type Camera struct {
	Position    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	Fov         float64 // Vertical field of view in degrees
	AspectRatio float64

	u, v, w         core.Vec3 // Orthonormal basis: right, up, backward
	horizontal      core.Vec3
	vertical        core.Vec3
	lowerLeftCorner core.Vec3
}

// NewCamera creates a camera and derives its viewport basis. It returns
// an error for degenerate configurations: a look-at target coinciding
// with the position, or an up vector parallel to the view direction.
func NewCamera(position, lookAt, up core.Vec3, fov, aspectRatio float64) (*Camera, error) {
	forward := position.Subtract(lookAt)
	if forward.Length() < core.MinLength {
		return nil, fmt.Errorf("camera look-at %v coincides with position %v", lookAt, position)
	}

	w := forward.Normalize()
	uCross := up.Cross(w)
	if uCross.Length() < core.MinLength {
		return nil, fmt.Errorf("camera up vector %v is parallel to the view direction", up)
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	theta := fov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := aspectRatio * halfHeight

	horizontal := u.Multiply(2 * halfWidth)
	vertical := v.Multiply(2 * halfHeight)
	lowerLeftCorner := position.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		Position:        position,
		LookAt:          lookAt,
		Up:              up,
		Fov:             fov,
		AspectRatio:     aspectRatio,
		u:               u,
		v:               v,
		w:               w,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// with (0,0) at the lower-left corner of the viewport. Pure: identical
// inputs always produce bit-identical rays.
func (c *Camera) GetRay(s, t float64) core.Ray {
	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))
	return core.NewRay(c.Position, target.Subtract(c.Position))
}

// RayForPixel generates the ray through pixel (i, j) of a width x height
// image, with pixel (0,0) at the top-left corner.
func (c *Camera) RayForPixel(i, j, width, height int) core.Ray {
	s := float64(i) / float64(width-1)
	t := float64(height-1-j) / float64(height-1)
	return c.GetRay(s, t)
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Multiply(-1)
}
