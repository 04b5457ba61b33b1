// Package ppm provides a row-major float framebuffer and plain-text
// PPM (P3) encoding.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Image is a row-major framebuffer with a top-left origin. Pixel values
// are unclamped floats; clamping to [0,1] happens at encode time.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a zeroed framebuffer
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// SetPixel writes a color at (x, y). Out-of-range coordinates are ignored.
func (img *Image) SetPixel(x, y int, color core.Vec3) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = color
}

// PixelAt reads the color at (x, y). Out-of-range coordinates read as zero.
func (img *Image) PixelAt(x, y int) core.Vec3 {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return core.Vec3{}
	}
	return img.Pixels[y*img.Width+x]
}

// Encode writes the image as plain-text PPM (P3): header, then one
// "r g b" line per pixel in row-major order. Channels are clamped to
// [0,1] and scaled to [0,255].
func (img *Image) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pixel := img.PixelAt(x, y).Clamp(0, 1)
			r := int(pixel.X * 255.0)
			g := int(pixel.Y * 255.0)
			b := int(pixel.Z * 255.0)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteFile encodes the image to a file at the given path
func (img *Image) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return img.Encode(file)
}
