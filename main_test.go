package main

import (
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/ppm"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

func TestRegisterFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		reflection bool
		textures   bool
	}{
		{name: "long names", args: []string{"-reflection", "-textures"}, reflection: true, textures: true},
		{name: "short names", args: []string{"-r", "-t"}, reflection: true, textures: true},
		{name: "defaults off", args: []string{"-width", "320"}, reflection: false, textures: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			opts := registerFlags(fs)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}
			if opts.reflection != tt.reflection {
				t.Errorf("Expected reflection=%v, got %v", tt.reflection, opts.reflection)
			}
			if opts.textures != tt.textures {
				t.Errorf("Expected textures=%v, got %v", tt.textures, opts.textures)
			}
		})
	}
}

func TestLookupScene(t *testing.T) {
	tests := []struct {
		name       string
		normalized string
	}{
		{name: "scene1", normalized: "scene1"},
		{name: "scene2", normalized: "scene2"},
		{name: "scene3", normalized: "scene3"},
		{name: "scene4", normalized: "scene4"},
		{name: "bogus", normalized: "scene1"},
		{name: "", normalized: "scene1"},
	}

	for _, tt := range tests {
		t.Run("name "+tt.name, func(t *testing.T) {
			build, normalized := lookupScene(tt.name)
			if normalized != tt.normalized {
				t.Errorf("Expected normalized name %q, got %q", tt.normalized, normalized)
			}
			if build == nil {
				t.Fatal("Expected a scene builder")
			}
			s, err := build(4.0/3.0, false)
			if err != nil {
				t.Fatalf("Unexpected scene error: %v", err)
			}
			if s.Camera == nil || len(s.Objects) == 0 {
				t.Error("Expected a populated scene")
			}
		})
	}
}

func TestEndToEndRender(t *testing.T) {
	// A tiny full-pipeline render of every preset must produce a valid
	// PPM stream with one value line per pixel.
	for _, name := range []string{"scene1", "scene2", "scene3", "scene4"} {
		t.Run(name, func(t *testing.T) {
			build, _ := lookupScene(name)
			s, err := build(1.0, true)
			if err != nil {
				t.Fatalf("Unexpected scene error: %v", err)
			}

			r, err := renderer.NewRenderer(s, 8, 8, renderer.Config{MaxDepth: 5, EnableReflection: true})
			if err != nil {
				t.Fatalf("Unexpected renderer error: %v", err)
			}
			img := r.Render(2)

			var sb strings.Builder
			if err := img.Encode(&sb); err != nil {
				t.Fatalf("Unexpected encode error: %v", err)
			}

			lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
			if lines[0] != "P3" || lines[1] != "8 8" || lines[2] != "255" {
				t.Errorf("Unexpected PPM header: %v", lines[:3])
			}
			if len(lines) != 3+8*8 {
				t.Errorf("Expected %d lines, got %d", 3+8*8, len(lines))
			}
		})
	}
}

func TestWriteImageToFile(t *testing.T) {
	img := ppm.NewImage(2, 2)
	path := t.TempDir() + "/out.ppm"

	if err := writeImage(img, path); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	if err := writeImage(img, t.TempDir()+"/missing/out.ppm"); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
