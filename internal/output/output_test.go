package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(3, 2, color.RGBA{B: 255, A: 255})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"png", PNG, false},
		{"BMP", BMP, false},
		{" png ", PNG, false},
		{"gif", PNG, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.err {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	img := testImage()
	for _, f := range []Format{PNG, BMP} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			var decoded image.Image
			var err error
			if f == PNG {
				decoded, err = png.Decode(&buf)
			} else {
				decoded, err = bmp.Decode(&buf)
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if decoded.Bounds() != img.Bounds() {
				t.Fatalf("bounds %v, want %v", decoded.Bounds(), img.Bounds())
			}
			r, _, _, _ := decoded.At(0, 0).RGBA()
			_, _, b, _ := decoded.At(3, 2).RGBA()
			if r>>8 != 255 || b>>8 != 255 {
				t.Errorf("pixel colors not preserved")
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "frame.bmp")

	if err := WriteFile(path, testImage()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Errorf("expected BMP header, got %q", data[:2])
	}

	if err := WriteFile(filepath.Join(dir, "frame.jpg"), testImage()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestCapture(t *testing.T) {
	dir := t.TempDir()
	c := NewCapture(dir, "frame", PNG)
	c.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	want := filepath.Join(dir, "frame_2024-03-09_14-05-07.png")
	if got := c.Filename(); got != want {
		t.Errorf("Filename = %s, want %s", got, want)
	}

	name, err := c.Save(testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != want {
		t.Errorf("Save wrote %s, want %s", name, want)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("file not written: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected extension in %s", name)
	}
}
