package colorutils

import (
	"image/color"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestHSVRoundTripKeepsRGB(t *testing.T) {
	for h := 0.0; h < 1; h += 1.0 / 72 {
		for s := 0.0; s <= 1; s += 0.05 {
			for v := 0.0; v <= 1; v += 0.05 {
				first := HSVToRGB(h, s, v)
				hsv := RGBToHSV(first.R, first.G, first.B)
				assert.Equal(t, first, hsv.RGB(), "round trip changed RGB for h=%v s=%v v=%v", h, s, v)
			}
		}
	}
}

func TestAchromaticHasNoSaturation(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := uint8(i)
		hsv := RGBToHSV(c, c, c)
		assert.Zero(t, hsv.S, "gray %d should have saturation 0", i)
		assert.Zero(t, hsv.H, "gray %d should have hue 0", i)
	}
}

func TestHexStringFormat(t *testing.T) {
	edges := []uint8{0, 1, 15, 16, 127, 128, 254, 255}
	for i := 0; i <= 255; i++ {
		for _, g := range edges {
			for _, b := range edges {
				hex := HexString(uint8(i), g, b)
				require.Len(t, hex, 7)
				assert.Regexp(t, hexPattern, hex)
			}
		}
	}
	assert.Equal(t, "#0A0B0C", RGB{R: 10, G: 11, B: 12}.Hex())
}

func TestZeroValueIsBlack(t *testing.T) {
	for _, h := range []float64{0, 0.2, 0.5, 0.99} {
		for _, s := range []float64{0, 0.5, 1} {
			rgb := HSVToRGB(h, s, 0)
			assert.Equal(t, RGB{}, rgb)
			assert.Equal(t, "#000000", rgb.Hex())
		}
	}
}

func TestZeroSaturationIsGray(t *testing.T) {
	for _, h := range []float64{0, 0.1, 0.33, 0.75} {
		for v := 0.0; v <= 1; v += 0.01 {
			want := uint8(math.Round(v * 255))
			assert.Equal(t, RGB{R: want, G: want, B: want}, HSVToRGB(h, 0, v), "h=%v v=%v", h, v)
		}
	}
}

func TestPrimaryColors(t *testing.T) {
	assert.Equal(t, "#FF0000", HSVToRGB(0, 1, 1).Hex())
	assert.Equal(t, "#00FF00", HSVToRGB(1.0/3, 1, 1).Hex())
	assert.Equal(t, "#0000FF", HSVToRGB(2.0/3, 1, 1).Hex())
	// hue 1 is the same as hue 0
	assert.Equal(t, "#FF0000", HSVToRGB(1, 1, 1).Hex())

	green := RGBToHSV(0, 255, 0)
	assert.InDelta(t, 1.0/3, green.H, 1e-9)
	assert.Equal(t, 1.0, green.S)
	assert.Equal(t, 1.0, green.V)
}

func TestWrapHue(t *testing.T) {
	assert.InDelta(t, 0.25, WrapHue(1.25), 1e-12)
	assert.InDelta(t, 0.75, WrapHue(-0.25), 1e-12)
	assert.Equal(t, 0.0, WrapHue(1))
	assert.Equal(t, 0.0, WrapHue(-1e-18))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, HSV{H: 0.5, S: 1, V: 0}, HSV{H: 1.5, S: 3, V: -2}.Normalize())
}

func TestWheelOffsetSaturationNeverExceedsOne(t *testing.T) {
	offsets := [][2]float64{{1000, 0}, {-5000, 3}, {100, 100}, {0, -113.5}, {1e9, -1e9}}
	for _, o := range offsets {
		_, sat := WheelOffsetToPolar(o[0], o[1], 113)
		assert.LessOrEqual(t, sat, 1.0, "offset %v", o)
	}
}

func TestWheelOffsetToPolar(t *testing.T) {
	hue, sat := WheelOffsetToPolar(0, 0, 113)
	assert.Zero(t, hue)
	assert.Zero(t, sat)

	hue, sat = WheelOffsetToPolar(113, 0, 113)
	assert.Zero(t, hue)
	assert.Equal(t, 1.0, sat)

	hue, sat = WheelOffsetToPolar(0, 56.5, 113)
	assert.InDelta(t, 0.25, hue, 1e-12)
	assert.InDelta(t, 0.5, sat, 1e-12)

	hue, _ = WheelOffsetToPolar(-10, 0, 113)
	assert.InDelta(t, 0.5, hue, 1e-12)

	hue, sat = WheelOffsetToPolar(5, 5, 0)
	assert.Zero(t, hue)
	assert.Zero(t, sat)
}

func TestClampOffset(t *testing.T) {
	dx, dy := ClampOffset(300, 400, 100)
	assert.InDelta(t, 60, dx, 1e-9)
	assert.InDelta(t, 80, dy, 1e-9)

	dx, dy = ClampOffset(3, 4, 100)
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, 4.0, dy)
}

func TestPolarRoundTrip(t *testing.T) {
	const radius = 113.0
	for hue := 0.0; hue < 1; hue += 1.0 / 24 {
		for _, sat := range []float64{0.1, 0.5, 1} {
			dx, dy := PolarToWheelOffset(hue, sat, radius)
			h2, s2 := WheelOffsetToPolar(dx, dy, radius)
			assert.InDelta(t, sat, s2, 1e-9)
			// compare on the circle so 0.9999999 and 0 are equal
			assert.InDelta(t, 0, math.Sin(math.Pi*(hue-h2)), 1e-9, "hue %v came back as %v", hue, h2)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	rgb, err := HexToRGB("#1A2b3C")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x1a, G: 0x2b, B: 0x3c}, rgb)

	rgb, err = HexToRGB("f0a")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0xff, G: 0x00, B: 0xaa}, rgb)

	_, err = HexToRGB("#12345")
	assert.Error(t, err)
	_, err = HexToRGB("#GGGGGG")
	assert.Error(t, err)
}

func TestHexToColor(t *testing.T) {
	c, err := HexToColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	c, err = HexToColor("nope")
	assert.Error(t, err)
	assert.Nil(t, c)
}
