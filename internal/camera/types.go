package camera

import (
	"fmt"
	"strings"
)

// Projection selects how camera space is mapped to NDC.
type Projection int

// Projection modes.
const (
	Perspective Projection = iota
	Orthographic
)

// String returns the lower-case projection name.
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseProjection parses "perspective" or "orthographic" (case-insensitive).
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "persp":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	}
	return 0, fmt.Errorf("projection %q: %w", s, ErrInvalidParameter)
}

// ResolutionGate reconciles the film aspect ratio with the image aspect ratio.
type ResolutionGate int

// Resolution gate policies.
const (
	// Overscan enlarges the under-filled axis so the whole image is covered.
	Overscan ResolutionGate = iota
	// Fill shrinks the over-filled axis so the film fits inside the image.
	Fill
)

// String returns the lower-case gate name.
func (g ResolutionGate) String() string {
	switch g {
	case Overscan:
		return "overscan"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("Unknown(%d)", int(g))
	}
}

// ParseResolutionGate parses "fill" or "overscan" (case-insensitive).
func ParseResolutionGate(s string) (ResolutionGate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overscan":
		return Overscan, nil
	case "fill":
		return Fill, nil
	}
	return 0, fmt.Errorf("resolution gate %q: %w", s, ErrInvalidParameter)
}

// AspectRatio is a preset width:height ratio for film backs and images.
type AspectRatio int

// Aspect ratio presets.
const (
	RatioFree AspectRatio = iota
	Ratio4x3
	Ratio5x3
	Ratio5x4
	Ratio1x1
	Ratio16x9
)

// Ratio returns width/height, or 0 for RatioFree.
func (a AspectRatio) Ratio() float64 {
	switch a {
	case Ratio4x3:
		return 4.0 / 3.0
	case Ratio5x3:
		return 5.0 / 3.0
	case Ratio5x4:
		return 5.0 / 4.0
	case Ratio1x1:
		return 1
	case Ratio16x9:
		return 16.0 / 9.0
	}
	return 0
}

// String returns the ratio as "W:H".
func (a AspectRatio) String() string {
	switch a {
	case Ratio4x3:
		return "4:3"
	case Ratio5x3:
		return "5:3"
	case Ratio5x4:
		return "5:4"
	case Ratio1x1:
		return "1:1"
	case Ratio16x9:
		return "16:9"
	}
	return "free"
}

// ParseAspectRatio parses "4:3", "16:9", ... or "free".
func ParseAspectRatio(s string) (AspectRatio, error) {
	s = strings.TrimSpace(s)
	for a := RatioFree; a <= Ratio16x9; a++ {
		if strings.EqualFold(a.String(), s) {
			return a, nil
		}
	}
	return RatioFree, fmt.Errorf("aspect ratio %q: %w", s, ErrInvalidParameter)
}

// HeightForWidth returns the height matching width under this ratio.
// RatioFree returns current unchanged.
func (a AspectRatio) HeightForWidth(width, current float64) float64 {
	if r := a.Ratio(); r > 0 {
		return width / r
	}
	return current
}

// WidthForHeight returns the width matching height under this ratio.
// RatioFree returns current unchanged.
func (a AspectRatio) WidthForHeight(height, current float64) float64 {
	if r := a.Ratio(); r > 0 {
		return height * r
	}
	return current
}

// Canvas is the image-plane rectangle at the near clipping plane, in
// camera-space units.
type Canvas struct {
	Top, Bottom, Left, Right float64
}

// Width returns Right - Left.
func (c Canvas) Width() float64 { return c.Right - c.Left }

// Height returns Top - Bottom.
func (c Canvas) Height() float64 { return c.Top - c.Bottom }
