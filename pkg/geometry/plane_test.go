package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestPlane_Hit_StraightDown(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2.0, got t=%f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from above the plane")
	}
}

func TestPlane_Hit_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if hit, isHit := plane.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for parallel ray, but got hit at t=%f", hit.T)
	}
}

func TestPlane_Hit_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := plane.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for plane behind the ray, but got hit at t=%f", hit.T)
	}
}

func TestPlane_Hit_ObliqueAngle(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))

	hit, isHit := plane.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expected := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expected, hit.Point)
	}
	if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestPlane_NormalizesConstructorNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 5, 0), material.DefaultMaterial())

	if math.Abs(plane.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal after construction, got length %f", plane.Normal.Length())
	}
}

func TestPlane_Hit_BackFace(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	hit, isHit := plane.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from below the plane")
	}
	// The shading normal is flipped toward the ray origin
	if hit.Normal.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Errorf("Expected flipped normal (0,-1,0), got %v", hit.Normal)
	}
}
