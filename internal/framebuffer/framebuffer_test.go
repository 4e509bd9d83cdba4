package framebuffer

import (
	"image/color"
	"testing"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func TestNew(t *testing.T) {
	fb, err := New(7, 5, black, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fb.Width() != 7 || fb.Height() != 5 {
		t.Errorf("size = %dx%d, want 7x5", fb.Width(), fb.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if fb.At(x, y) != black || fb.Depth(x, y) != 100 {
				t.Fatalf("pixel (%d,%d) not cleared: %v depth %v", x, y, fb.At(x, y), fb.Depth(x, y))
			}
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0, 10, black, 1); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestDepthTest(t *testing.T) {
	fb, _ := New(4, 4, black, 10)

	if !fb.DepthTest(1, 2, 5, red) {
		t.Fatal("nearer write rejected")
	}
	if fb.DepthTest(1, 2, 7, blue) {
		t.Error("farther write accepted")
	}
	if fb.DepthTest(1, 2, 5, blue) {
		t.Error("equal depth write accepted")
	}
	if fb.At(1, 2) != red || fb.Depth(1, 2) != 5 {
		t.Errorf("pixel = %v depth %v, want red depth 5", fb.At(1, 2), fb.Depth(1, 2))
	}
	if fb.DepthTest(0, 0, 10, red) {
		t.Error("write at clear depth accepted")
	}
}

func TestSetOutOfBounds(t *testing.T) {
	fb, _ := New(2, 2, black, 1)
	fb.Set(-1, 0, red)
	fb.Set(2, 1, red)
	for _, p := range fb.Pixels() {
		if p != black {
			t.Fatal("out-of-bounds Set modified the buffer")
		}
	}
}

func TestImage(t *testing.T) {
	fb, _ := New(3, 2, black, 1)
	fb.Set(2, 1, red)
	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != red {
		t.Errorf("image pixel (2,1) = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("image pixel (0,0) = %v, want black", got)
	}
	if len(fb.Bytes()) != 3*2*4 {
		t.Errorf("Bytes length = %d, want 24", len(fb.Bytes()))
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 1, 1, 4, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical up", 2, 3, 2, 0, [][2]int{{2, 3}, {2, 2}, {2, 1}, {2, 0}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, _ := New(5, 5, black, 1)
			fb.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, red)

			count := 0
			for _, p := range fb.Pixels() {
				if p == red {
					count++
				}
			}
			if count != len(tt.want) {
				t.Errorf("drew %d pixels, want %d", count, len(tt.want))
			}
			for _, p := range tt.want {
				if fb.At(p[0], p[1]) != red {
					t.Errorf("pixel %v not drawn", p)
				}
			}
		})
	}
}

func TestDrawLineClipped(t *testing.T) {
	fb, _ := New(4, 4, black, 1)
	fb.DrawLine(-10, 1, 10, 1, red)
	for x := 0; x < 4; x++ {
		if fb.At(x, 1) != red {
			t.Errorf("pixel (%d,1) not drawn", x)
		}
	}
}

func TestDrawRect(t *testing.T) {
	fb, _ := New(5, 5, black, 1)
	fb.DrawRect(1, 1, 3, 3, red)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			onBorder := (x == 1 || x == 3) && y >= 1 && y <= 3 || (y == 1 || y == 3) && x >= 1 && x <= 3
			if got := fb.At(x, y) == red; got != onBorder {
				t.Errorf("pixel (%d,%d) drawn = %v, want %v", x, y, got, onBorder)
			}
		}
	}
}
