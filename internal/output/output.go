// Package output writes rendered frames to image files.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/pinhole/internal/logger"
)

// ErrUnknownFormat is returned for an image format other than PNG or BMP.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output image encoding.
type Format int

// Supported formats.
const (
	PNG Format = iota
	BMP
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat parses "png" or "bmp", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// WriteFile encodes img to path, creating parent directories. The format
// follows the file extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(file, img, f); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	b := img.Bounds()
	logger.Log.Debug("image written",
		zap.String("path", path),
		zap.Stringer("format", f),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return nil
}

// Capture saves frames under a directory with timestamped names such as
// "frame_2006-01-02_15-04-05.png".
type Capture struct {
	dir    string
	prefix string
	format Format
	now    func() time.Time
}

// NewCapture creates a capture writer.
func NewCapture(dir, prefix string, f Format) *Capture {
	return &Capture{dir: dir, prefix: prefix, format: f, now: time.Now}
}

// Filename returns the name the next frame would be saved under.
func (c *Capture) Filename() string {
	name := fmt.Sprintf("%s_%s%s", c.prefix, c.now().Format("2006-01-02_15-04-05"), c.format.Extension())
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// Save writes img and returns the file name used.
func (c *Capture) Save(img image.Image) (string, error) {
	name := c.Filename()
	if err := WriteFile(name, img); err != nil {
		return "", err
	}
	return name, nil
}
