// Package colors provides the BGRA color value used throughout mio.
//
// Colors are stored in BGRA channel order to match the array backend's
// buffer layout (see the array package). Conversions are provided to and
// from hex strings, HSL, CMYK, and the standard library's color types.
//
// # Channel Order
//
// The struct fields are ordered B, G, R, A. Constructors are available for
// both RGB(A) and BGR(A) argument orders; pick the one matching your data
// to avoid accidental channel swaps.
//
// # Value Clamping
//
// Constructors taking int arguments clamp each channel to the 0-255 range
// rather than failing, so arithmetic on channel values can be passed in
// directly.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex string is not 6 or 8 hex digits
// (with an optional leading '#').
var ErrInvalidHex = errors.New("colors: invalid hex string")

// Color is an 8-bit BGRA color.
//
// The zero value is fully transparent black. Use the constructors or the
// named package-level colors for opaque values.
type Color struct {
	B uint8 // Blue channel (0-255)
	G uint8 // Green channel (0-255)
	R uint8 // Red channel (0-255)
	A uint8 // Alpha channel (0 = transparent, 255 = opaque)
}

// clamp8 limits an int channel value to the representable 0-255 range.
func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FromRGB builds an opaque color from red, green and blue channel values.
// Values outside 0-255 are clamped.
func FromRGB(r, g, b int) Color {
	return Color{B: clamp8(b), G: clamp8(g), R: clamp8(r), A: 255}
}

// FromRGBA builds a color from red, green, blue and alpha channel values.
// Values outside 0-255 are clamped.
func FromRGBA(r, g, b, a int) Color {
	return Color{B: clamp8(b), G: clamp8(g), R: clamp8(r), A: clamp8(a)}
}

// FromBGR builds an opaque color from blue, green and red channel values.
// Values outside 0-255 are clamped.
func FromBGR(b, g, r int) Color {
	return Color{B: clamp8(b), G: clamp8(g), R: clamp8(r), A: 255}
}

// FromBGRA builds a color from blue, green, red and alpha channel values.
// Values outside 0-255 are clamped.
func FromBGRA(b, g, r, a int) Color {
	return Color{B: clamp8(b), G: clamp8(g), R: clamp8(r), A: clamp8(a)}
}

// Hex parses a hex color string.
//
// Accepted forms are "RRGGBB" and "RRGGBBAA", each with or without a
// leading '#'. Parsing is case-insensitive. Six-digit strings produce an
// opaque color.
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		c, err := colorful.Hex("#" + strings.ToLower(s))
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		r, g, b := c.RGB255()
		return Color{B: b, G: g, R: r, A: 255}, nil
	case 8:
		c, err := Hex(s[:6])
		if err != nil {
			return Color{}, err
		}
		var a uint8
		if _, err := fmt.Sscanf(strings.ToLower(s[6:]), "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		c.A = a
		return c, nil
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
}

// FromHSL builds an opaque color from hue (0-360 degrees), saturation and
// lightness (both 0-1).
func FromHSL(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return Color{B: b, G: g, R: r, A: 255}
}

// FromCMYK builds an opaque color from cyan, magenta, yellow and key
// channel values (each 0-255).
func FromCMYK(c, m, y, k int) Color {
	r, g, b := color.CMYKToRGB(clamp8(c), clamp8(m), clamp8(y), clamp8(k))
	return Color{B: b, G: g, R: r, A: 255}
}

// HexRGB formats the color as "#RRGGBB", discarding alpha.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexRGBA formats the color as "#RRGGBBAA".
func (c Color) HexRGBA() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// HSL returns the hue (0-360 degrees), saturation and lightness (0-1) of
// the color. Alpha does not participate in the conversion.
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// CMYK returns the cyan, magenta, yellow and key channels (each 0-255).
// Alpha does not participate in the conversion.
func (c Color) CMYK() (cy, m, y, k uint8) {
	return color.RGBToCMYK(c.R, c.G, c.B)
}

// NRGBA converts the color to the standard library's non-premultiplied
// RGBA representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color, returning alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
