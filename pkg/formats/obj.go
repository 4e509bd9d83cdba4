// Package formats provides parsers for model files.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Faultbox/pinhole/pkg/math"
	"github.com/Faultbox/pinhole/pkg/scene"
)

// OBJ format errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported model file format")
	ErrMalformedLine     = errors.New("malformed OBJ line")
	ErrFaceIndex         = errors.New("invalid OBJ face index")
)

// OBJ is a parsed Wavefront OBJ file.
type OBJ struct {
	Vertices []math.Vec3 // Vertex positions in declaration order
	Faces    [][3]int    // Zero-based indices into Vertices
	Skipped  int         // Directives ignored (vt, vn, g, usemtl, ...)
}

// Triangles builds one triangle per face, in file order, with the given color.
func (o *OBJ) Triangles(c color.RGBA) scene.Scene {
	s := make(scene.Scene, len(o.Faces))
	for i, f := range o.Faces {
		s[i] = scene.Triangle{
			V0:    o.Vertices[f[0]],
			V1:    o.Vertices[f[1]],
			V2:    o.Vertices[f[2]],
			Color: c,
		}
	}
	return s
}

// ParseOBJ parses OBJ data from bytes.
//
// Supported directives are "v x y z [w]" and "f a b c" with 1-based (or
// negative, relative) indices; anything after a '/' in an index is ignored.
// A face must reference exactly three vertices declared earlier in the file.
// A leading UTF-8 or UTF-16 byte order mark is honoured.
func ParseOBJ(data []byte) (*OBJ, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	r := transform.NewReader(bytes.NewReader(data), decoder)

	obj := &OBJ{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "v":
			err = obj.parseVertex(fields[1:])
		case "f":
			err = obj.parseFace(fields[1:])
		default:
			obj.Skipped++
		}
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	return obj, nil
}

func (o *OBJ) parseVertex(args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d: %w", len(args), ErrMalformedLine)
	}
	var xyz [3]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", a, ErrMalformedLine)
		}
		if i < 3 {
			xyz[i] = f
		}
	}
	o.Vertices = append(o.Vertices, math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	return nil
}

func (o *OBJ) parseFace(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("face must reference 3 vertices, got %d: %w", len(args), ErrMalformedLine)
	}
	var face [3]int
	for i, a := range args {
		ref, _, _ := strings.Cut(a, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("vertex reference %q: %w", a, ErrMalformedLine)
		}
		resolved, err := o.resolveIndex(idx)
		if err != nil {
			return err
		}
		face[i] = resolved
	}
	o.Faces = append(o.Faces, face)
	return nil
}

// resolveIndex converts a 1-based or negative OBJ index to a zero-based one.
func (o *OBJ) resolveIndex(idx int) (int, error) {
	n := len(o.Vertices)
	switch {
	case idx > 0 && idx <= n:
		return idx - 1, nil
	case idx < 0 && -idx <= n:
		return n + idx, nil
	}
	return 0, fmt.Errorf("index %d with %d vertices declared: %w", idx, n, ErrFaceIndex)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	if !strings.EqualFold(filepath.Ext(path), ".obj") {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// LoadScene reads a model file and returns its triangles colored c.
func LoadScene(path string, c color.RGBA) (scene.Scene, error) {
	obj, err := ParseOBJFile(path)
	if err != nil {
		return nil, err
	}
	return obj.Triangles(c), nil
}
