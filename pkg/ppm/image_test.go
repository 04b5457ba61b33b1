package ppm

import (
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestImage_SetAndGetPixel(t *testing.T) {
	img := NewImage(4, 3)
	color := core.NewVec3(0.5, 0.25, 1.0)

	img.SetPixel(2, 1, color)

	if got := img.PixelAt(2, 1); got != color {
		t.Errorf("Expected %v, got %v", color, got)
	}
	if got := img.PixelAt(0, 0); got != (core.Vec3{}) {
		t.Errorf("Expected zero pixel, got %v", got)
	}
}

func TestImage_OutOfRangeAccess(t *testing.T) {
	img := NewImage(2, 2)

	// Writes outside the image are dropped, reads return zero
	img.SetPixel(-1, 0, core.One())
	img.SetPixel(0, 5, core.One())

	if got := img.PixelAt(-1, 0); got != (core.Vec3{}) {
		t.Errorf("Expected zero for out-of-range read, got %v", got)
	}
	if got := img.PixelAt(0, 5); got != (core.Vec3{}) {
		t.Errorf("Expected zero for out-of-range read, got %v", got)
	}
	for i, p := range img.Pixels {
		if p != (core.Vec3{}) {
			t.Errorf("Expected pixel %d untouched, got %v", i, p)
		}
	}
}

func TestImage_Encode(t *testing.T) {
	img := NewImage(2, 2)
	img.SetPixel(0, 0, core.NewVec3(1, 0, 0))
	img.SetPixel(1, 0, core.NewVec3(0, 1, 0))
	img.SetPixel(0, 1, core.NewVec3(0, 0, 1))
	img.SetPixel(1, 1, core.NewVec3(2, -1, 0.5)) // Out-of-range channels clamp

	var sb strings.Builder
	if err := img.Encode(&sb); err != nil {
		t.Fatalf("Unexpected encode error: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"255 0 127\n"

	if sb.String() != expected {
		t.Errorf("Expected output:\n%s\ngot:\n%s", expected, sb.String())
	}
}

func TestImage_EncodeRowMajorOrder(t *testing.T) {
	// A 3x1 image encodes left to right
	img := NewImage(3, 1)
	img.SetPixel(0, 0, core.NewVec3(0, 0, 0))
	img.SetPixel(1, 0, core.NewVec3(1, 1, 1))
	img.SetPixel(2, 0, core.NewVec3(0, 0, 0))

	var sb strings.Builder
	if err := img.Encode(&sb); err != nil {
		t.Fatalf("Unexpected encode error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(lines))
	}
	if lines[4] != "255 255 255" {
		t.Errorf("Expected middle pixel on line 5, got %q", lines[4])
	}
}
