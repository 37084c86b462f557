// Package valueslider provides the vertical value (brightness) gradient.
package valueslider

import (
	"image"
	"math"

	"colorpicker/pkg/apptheme"
	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/pickerstate"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// RenderGradient draws one row per pixel of height, from value 1 at the top
// down to value 0 at the bottom.
func RenderGradient(hue, sat float64, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := colorutils.HSVToRGB(hue, sat, 1-float64(y)/float64(height))
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < len(row); x += 4 {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = 0xff
		}
	}
	return img
}

// ValueAt maps a y coordinate to a value in [0,1].
func ValueAt(y, height float32) float64 {
	if height <= 0 {
		return 0
	}
	return colorutils.Clamp01(1 - float64(y)/float64(height))
}

// IndicatorY is where the bar for value sits.
func IndicatorY(value float64, height float32) float32 {
	return float32(math.Round((1 - value) * float64(height)))
}

// Slider shows the value gradient for the current hue and saturation.
type Slider struct {
	widget.BaseWidget

	state    *pickerstate.State
	width    int
	height   int
	half     float32 // half height of the indicator bar
	gradient *canvas.Image
	bar      *canvas.Rectangle
	redraws  int

	unsubscribe func()
}

var (
	_ fyne.Tappable     = (*Slider)(nil)
	_ fyne.Draggable    = (*Slider)(nil)
	_ desktop.Mouseable = (*Slider)(nil)
)

func New(state *pickerstate.State, width, height int, barHalfHeight float32) *Slider {
	s := &Slider{
		state:  state,
		width:  width,
		height: height,
		half:   barHalfHeight,
	}
	s.ExtendBaseWidget(s)

	s.gradient = canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, width, height)))
	s.gradient.FillMode = canvas.ImageFillStretch
	s.gradient.ScaleMode = canvas.ImageScaleFastest
	s.gradient.SetMinSize(s.MinSize())

	s.bar = canvas.NewRectangle(apptheme.IndicatorColor())

	hsv := state.HSV()
	s.redraw(hsv.H, hsv.S)
	s.placeBar(hsv.V)
	s.unsubscribe = state.Subscribe(s.onChange)
	return s
}

// Close detaches the slider from the state.
func (s *Slider) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// RedrawCount reports how many times the gradient was rendered.
func (s *Slider) RedrawCount() int {
	return s.redraws
}

// BarY returns the center line of the indicator bar.
func (s *Slider) BarY() float32 {
	return s.bar.Position().Y + s.half
}

func (s *Slider) Tapped(ev *fyne.PointEvent) {
	s.pick(ev.Position.Y)
}

func (s *Slider) Dragged(ev *fyne.DragEvent) {
	s.pick(ev.Position.Y)
}

func (s *Slider) DragEnd() {}

func (s *Slider) MouseDown(me *desktop.MouseEvent) {
	if me.Button == desktop.MouseButtonPrimary {
		s.pick(me.Position.Y)
	}
}

func (s *Slider) MouseUp(_ *desktop.MouseEvent) {}

func (s *Slider) pick(y float32) {
	s.state.SetValueFrom(pickerstate.OriginSlider, ValueAt(y, float32(s.height)))
}

func (s *Slider) onChange(c pickerstate.Change) {
	if c.Fields.Has(pickerstate.FieldHue | pickerstate.FieldSaturation) {
		s.redraw(c.HSV.H, c.HSV.S)
	}
	s.placeBar(c.HSV.V)
}

func (s *Slider) redraw(hue, sat float64) {
	s.gradient.Image = RenderGradient(hue, sat, s.width, s.height)
	s.redraws++
	canvas.Refresh(s.gradient)
}

func (s *Slider) placeBar(value float64) {
	y := IndicatorY(value, float32(s.height))
	s.bar.Move(fyne.NewPos(0, y-s.half))
	s.bar.Resize(fyne.NewSize(float32(s.width), 2*s.half))
	canvas.Refresh(s.bar)
}

func (s *Slider) MinSize() fyne.Size {
	return fyne.NewSize(float32(s.width), float32(s.height))
}

func (s *Slider) CreateRenderer() fyne.WidgetRenderer {
	return &sliderRenderer{slider: s}
}

type sliderRenderer struct {
	slider *Slider
}

func (r *sliderRenderer) Layout(_ fyne.Size) {
	s := r.slider
	s.gradient.Move(fyne.NewPos(0, 0))
	s.gradient.Resize(s.MinSize())
	s.placeBar(s.state.HSV().V)
}

func (r *sliderRenderer) MinSize() fyne.Size {
	return r.slider.MinSize()
}

func (r *sliderRenderer) Refresh() {
	canvas.Refresh(r.slider.gradient)
	canvas.Refresh(r.slider.bar)
}

func (r *sliderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.slider.gradient, r.slider.bar}
}

func (r *sliderRenderer) Destroy() {}
