package sampler

import (
	"fmt"
	"image"

	"colorpicker/pkg/colorutils"

	"github.com/kbinani/screenshot"
)

// ScreenReader reads pixels by capturing a 1x1 rectangle of the display.
type ScreenReader struct{}

var _ PixelReader = ScreenReader{}

func (ScreenReader) ReadPixel(x, y int) (colorutils.RGB, error) {
	img, err := screenshot.CaptureRect(image.Rect(x, y, x+1, y+1))
	if err != nil {
		return colorutils.RGB{}, fmt.Errorf("capture pixel at %d,%d: %w", x, y, err)
	}
	return pixelAt(img, img.Bounds().Min), nil
}

func pixelAt(img *image.RGBA, p image.Point) colorutils.RGB {
	c := img.RGBAAt(p.X, p.Y)
	return colorutils.RGB{R: c.R, G: c.G, B: c.B}
}
