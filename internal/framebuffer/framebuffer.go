// Package framebuffer provides the software color and depth buffers a render
// writes into.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
)

// Framebuffer holds a row-major color buffer with a parallel depth buffer.
// Pixel (0, 0) is the top-left corner.
type Framebuffer struct {
	width  int
	height int
	color  []color.RGBA
	depth  []float64
}

// New creates a framebuffer filled with background and with every depth set
// to clearDepth.
func New(width, height int, background color.RGBA, clearDepth float64) (*Framebuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("framebuffer size %dx%d must be positive", width, height)
	}

	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]color.RGBA, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear(background, clearDepth)
	return fb, nil
}

// Clear resets every pixel to c and every depth to d.
func (fb *Framebuffer) Clear(c color.RGBA, d float64) {
	if len(fb.color) == 0 {
		return
	}
	fb.color[0] = c
	fb.depth[0] = d
	for i := 1; i < len(fb.color); i *= 2 {
		copy(fb.color[i:], fb.color[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// InBounds reports whether (x, y) is a pixel of the buffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// At returns the color at (x, y).
func (fb *Framebuffer) At(x, y int) color.RGBA {
	return fb.color[y*fb.width+x]
}

// Depth returns the stored depth at (x, y).
func (fb *Framebuffer) Depth(x, y int) float64 {
	return fb.depth[y*fb.width+x]
}

// Set writes a color without touching depth. Out-of-bounds writes are ignored.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.color[y*fb.width+x] = c
}

// DepthTest writes c at (x, y) if z is nearer than the stored depth, and
// reports whether it did.
func (fb *Framebuffer) DepthTest(x, y int, z float64, c color.RGBA) bool {
	i := y*fb.width + x
	if !(z < fb.depth[i]) {
		return false
	}
	fb.depth[i] = z
	fb.color[i] = c
	return true
}

// Pixels returns the color buffer, row-major from the top-left corner.
// The slice is shared with the framebuffer.
func (fb *Framebuffer) Pixels() []color.RGBA {
	return fb.color
}

// Image copies the color buffer into an RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		row := y * img.Stride
		for x := 0; x < fb.width; x++ {
			c := fb.color[y*fb.width+x]
			o := row + x*4
			img.Pix[o+0] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
		}
	}
	return img
}

// Bytes returns the color buffer packed as RGBA bytes, 4 per pixel.
func (fb *Framebuffer) Bytes() []byte {
	return fb.Image().Pix
}
