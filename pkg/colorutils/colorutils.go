package colorutils

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in hue/saturation/value space. Every component is in [0,1],
// hue being cyclic.
type HSV struct {
	H, S, V float64
}

// RGB is an 8 bit per channel color. It is always derived from an HSV.
type RGB struct {
	R, G, B uint8
}

// Normalize wraps the hue into [0,1) and clamps saturation and value.
func (c HSV) Normalize() HSV {
	return HSV{H: WrapHue(c.H), S: Clamp01(c.S), V: Clamp01(c.V)}
}

// RGB projects the color into 8 bit RGB
func (c HSV) RGB() RGB {
	return HSVToRGB(c.H, c.S, c.V)
}

// Hex returns the color as "#RRGGBB"
func (c RGB) Hex() string {
	return HexString(c.R, c.G, c.B)
}

// Color returns the color as an opaque color.NRGBA
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// WrapHue brings any hue into [0,1).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	// -1e-17 + 1 rounds to 1
	if h >= 1 {
		h = 0
	}
	return h
}

// Helper function to convert an HSV color to RGB, components rounded to the nearest integer
func HSVToRGB(h, s, v float64) RGB {
	c := colorful.Hsv(WrapHue(h)*360, Clamp01(s), Clamp01(v)).Clamped()
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// RGBToHSV is the inverse of HSVToRGB. Grays (r == g == b) get hue and saturation 0.
func RGBToHSV(r, g, b uint8) HSV {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := c.Hsv()
	return HSV{H: WrapHue(h / 360), S: s, V: v}
}

// HexString formats a color as "#RRGGBB" with uppercase digits
func HexString(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HexToRGB parses "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func HexToRGB(hex string) (RGB, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8 & 0xFF),
		B: uint8(rgb & 0xFF),
	}, nil
}

// Helper function to convert hex color to color.Color
func HexToColor(hex string) (color.Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return nil, err
	}
	return rgb.Color(), nil
}
