package colorspace

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents an sRGB color with 8-bit components.
//
// Each component ranges from 0 to 255. RGB is a comparable value type and
// is used as a map key throughout the matching pipeline, so two colors are
// equal exactly when all three components are equal.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Lab represents a color in the CIE L*a*b* color space (D65 reference white).
//
// L is lightness (0 = black, 100 = white); A and B are the green-red and
// blue-yellow opponent axes. Lab is perceptually more uniform than RGB,
// which is what makes CIEDE2000 distances meaningful.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Hex returns the color in 6-digit uppercase hex form without a leading "#".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ToLab converts the color to CIE L*a*b*.
//
// The conversion is the standard sRGB pipeline: gamma decoding to linear
// RGB, the linear transform to CIE XYZ, then XYZ to Lab using the D65
// reference white. It is pure and deterministic.
func (c RGB) ToLab() Lab {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	l, a, b := col.Lab()
	return Lab{L: l, A: a, B: b}
}

// ToRGB converts the color back to 8-bit sRGB, clamping out-of-gamut
// values to the representable range.
func (c Lab) ToRGB() RGB {
	r, g, b := colorful.Lab(c.L, c.A, c.B).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Distance returns the CIEDE2000 color difference between two Lab colors.
//
// CIEDE2000 weights lightness, chroma and hue differences by human
// sensitivity and includes the empirical blue-region rotation term. The
// result is non-negative and zero for identical inputs.
func Distance(a, b Lab) float64 {
	ca := colorful.Lab(a.L, a.A, a.B)
	cb := colorful.Lab(b.L, b.A, b.B)
	return ca.DistanceCIEDE2000(cb)
}

// ParseHex parses a 6-digit hex color string like "05131D" or "#05131D".
func ParseHex(hex string) (RGB, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", hex)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}, nil
}
