package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/ppm"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// sceneBuilder constructs a preset scene for an aspect ratio and the
// textures flag
type sceneBuilder func(aspectRatio float64, textured bool) (*scene.Scene, error)

// lookupScene maps a scene name to its builder; unknown names fall back
// to the sphere scene.
func lookupScene(name string) (sceneBuilder, string) {
	switch name {
	case "scene1":
		return scene.NewSphereScene, "scene1"
	case "scene2":
		return scene.NewPlaneCubeScene, "scene2"
	case "scene3":
		return scene.NewAllObjectsScene, "scene3"
	case "scene4":
		return scene.NewPerspectiveScene, "scene4"
	default:
		return scene.NewSphereScene, "scene1"
	}
}

// options holds the parsed command line settings.
type options struct {
	width      int
	height     int
	sceneName  string
	reflection bool
	textures   bool
	workers    int
	output     string
	help       bool
}

// registerFlags binds the command line options onto the given flag set.
// The boolean toggles take both a long and a short name.
func registerFlags(fs *flag.FlagSet) *options {
	opts := &options{}
	fs.IntVar(&opts.width, "width", 800, "Image width in pixels")
	fs.IntVar(&opts.height, "height", 600, "Image height in pixels")
	fs.StringVar(&opts.sceneName, "scene", "scene1", "Scene preset: scene1, scene2, scene3 or scene4")
	fs.BoolVar(&opts.reflection, "reflection", false, "Enable recursive reflection")
	fs.BoolVar(&opts.reflection, "r", false, "Shorthand for -reflection")
	fs.BoolVar(&opts.textures, "textures", false, "Enable flat checker textures on ground planes")
	fs.BoolVar(&opts.textures, "t", false, "Shorthand for -textures")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = one per CPU)")
	fs.StringVar(&opts.output, "output", "", "Output PPM file (empty = stdout)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return opts
}

func main() {
	opts := registerFlags(flag.CommandLine)
	flag.Parse()

	if opts.help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  scene1 - Single red sphere")
		fmt.Println("  scene2 - Cube above a ground plane, dim lighting")
		fmt.Println("  scene3 - Sphere, cube and cylinder over a ground plane")
		fmt.Println("  scene4 - scene3 viewed from an elevated camera")
		return
	}

	if opts.width <= 1 || opts.height <= 1 {
		fmt.Fprintf(os.Stderr, "Invalid image size %dx%d\n", opts.width, opts.height)
		os.Exit(1)
	}

	build, normalized := lookupScene(opts.sceneName)
	if normalized != opts.sceneName {
		fmt.Fprintf(os.Stderr, "Unknown scene %q, using %s\n", opts.sceneName, normalized)
	}

	aspectRatio := float64(opts.width) / float64(opts.height)
	selectedScene, err := build(aspectRatio, opts.textures)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.EnableReflection = opts.reflection

	r, err := renderer.NewRenderer(selectedScene, opts.width, opts.height, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	img := r.Render(opts.workers)
	fmt.Fprintf(os.Stderr, "Rendered %s at %dx%d in %v\n", normalized, opts.width, opts.height, time.Since(startTime))

	if err := writeImage(img, opts.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
}

// writeImage encodes the framebuffer to the given file, or to stdout
// when the path is empty.
func writeImage(img *ppm.Image, path string) error {
	if path == "" {
		return img.Encode(os.Stdout)
	}
	if err := img.WriteFile(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Render saved as %s\n", path)
	return nil
}
