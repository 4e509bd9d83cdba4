package framebuffer

import "image/color"

// DrawLine draws a 1-pixel line from (x0, y0) to (x1, y1) with Bresenham's
// algorithm, ignoring depth. Pixels outside the buffer are clipped.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		fb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect outlines the rectangle with corners (x0, y0) and (x1, y1),
// both inclusive.
func (fb *Framebuffer) DrawRect(x0, y0, x1, y1 int, c color.RGBA) {
	fb.DrawLine(x0, y0, x1, y0, c)
	fb.DrawLine(x1, y0, x1, y1, c)
	fb.DrawLine(x1, y1, x0, y1, c)
	fb.DrawLine(x0, y1, x0, y0, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
