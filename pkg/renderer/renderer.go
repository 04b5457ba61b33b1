package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/ppm"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Renderer drives a full-frame render: it partitions the pixel grid
// across a worker pool and assembles the framebuffer in row-major order.
type Renderer struct {
	scene  *scene.Scene
	width  int
	height int
	config Config
}

// NewRenderer creates a renderer for the given scene and image size
func NewRenderer(sc *scene.Scene, width, height int, config Config) (*Renderer, error) {
	if width <= 1 || height <= 1 {
		return nil, fmt.Errorf("image size must be at least 2x2, got %dx%d", width, height)
	}
	if sc.Camera == nil {
		return nil, fmt.Errorf("scene has no camera")
	}
	return &Renderer{
		scene:  sc,
		width:  width,
		height: height,
		config: config,
	}, nil
}

// Render computes every pixel with the given number of parallel workers
// (0 = one per CPU) and returns the finished framebuffer. The scene is
// shared read-only across workers and each worker owns disjoint rows of
// the output, so repeated renders are byte-identical regardless of
// worker count or scheduling.
func (r *Renderer) Render(numWorkers int) *ppm.Image {
	img := ppm.NewImage(r.width, r.height)

	raytracer := NewRaytracer(r.scene, r.config)
	pool := NewWorkerPool(raytracer, numWorkers)
	pool.RenderInto(img)

	return img
}
