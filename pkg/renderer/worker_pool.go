package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-phong-raytracer/pkg/ppm"
)

// WorkerPool renders image rows across a fixed set of goroutines. Each
// row is a disjoint slice of the shared framebuffer, so workers write
// without locking; determinism follows because every pixel's value
// depends only on its own coordinates.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a pool with the given worker count; zero or
// negative means one worker per CPU.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// RenderInto renders every pixel of the image, distributing rows to
// workers through a channel and joining before returning.
func (wp *WorkerPool) RenderInto(img *ppm.Image) {
	rows := make(chan int, img.Height)
	var wg sync.WaitGroup

	for w := 0; w < wp.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				wp.renderRow(img, y)
			}
		}()
	}

	for y := 0; y < img.Height; y++ {
		rows <- y
	}
	close(rows)

	wg.Wait()
}

// renderRow shades one full row of pixels
func (wp *WorkerPool) renderRow(img *ppm.Image, y int) {
	camera := wp.raytracer.scene.Camera
	maxDepth := wp.raytracer.config.MaxDepth

	for x := 0; x < img.Width; x++ {
		ray := camera.RayForPixel(x, y, img.Width, img.Height)
		img.SetPixel(x, y, wp.raytracer.RayColor(ray, maxDepth))
	}
}
