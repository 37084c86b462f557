// Package wheel provides the hue/saturation disc widget.
package wheel

import (
	"image"
	"image/color"
	"math"

	"colorpicker/pkg/apptheme"
	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/pickerstate"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const indicatorStroke = 2

// Geometry is the fixed center and radius of the disc, in canvas pixels.
type Geometry struct {
	CX, CY int
	Radius int
}

// NewGeometry centers the disc on a size x size canvas, padding pixels away
// from the edges.
func NewGeometry(size, padding int) Geometry {
	center := size / 2
	return Geometry{CX: center, CY: center, Radius: center - padding}
}

// Offset returns the position of p relative to the center.
func (g Geometry) Offset(p fyne.Position) (dx, dy float64) {
	return float64(p.X) - float64(g.CX), float64(p.Y) - float64(g.CY)
}

// Point returns the canvas position of an offset from the center.
func (g Geometry) Point(dx, dy float64) fyne.Position {
	return fyne.NewPos(float32(float64(g.CX)+dx), float32(float64(g.CY)+dy))
}

// RenderDisc draws the disc at full value into a size x size buffer. Pixels
// outside the radius stay transparent.
func RenderDisc(g Geometry, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(g.Radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - g.CX)
			dy := float64(y - g.CY)
			if math.Hypot(dx, dy) > r {
				continue
			}
			hue, sat := colorutils.WheelOffsetToPolar(dx, dy, r)
			c := colorutils.HSVToRGB(hue, sat, 1)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// Wheel shows the disc and lets the user pick hue and saturation on it.
type Wheel struct {
	widget.BaseWidget

	state     *pickerstate.State
	geom      Geometry
	size      float32
	disc      *canvas.Image
	indicator *canvas.Circle
	radius    float32 // indicator radius
	pos       fyne.Position

	unsubscribe func()
}

var (
	_ fyne.Tappable     = (*Wheel)(nil)
	_ fyne.Draggable    = (*Wheel)(nil)
	_ desktop.Mouseable = (*Wheel)(nil)
)

// New creates the wheel for a size x size canvas. The disc is rendered once here.
func New(state *pickerstate.State, geom Geometry, size int, indicatorRadius float32) *Wheel {
	w := &Wheel{
		state:  state,
		geom:   geom,
		size:   float32(size),
		radius: indicatorRadius,
	}
	w.ExtendBaseWidget(w)

	w.disc = canvas.NewImageFromImage(RenderDisc(geom, size))
	w.disc.FillMode = canvas.ImageFillStretch
	w.disc.ScaleMode = canvas.ImageScaleFastest
	w.disc.SetMinSize(fyne.NewSquareSize(w.size))

	w.indicator = canvas.NewCircle(color.Transparent)
	w.indicator.StrokeColor = apptheme.IndicatorColor()
	w.indicator.StrokeWidth = indicatorStroke
	w.indicator.Resize(fyne.NewSquareSize(2 * indicatorRadius))

	w.syncIndicator(state.HSV())
	w.unsubscribe = state.Subscribe(w.onChange)
	return w
}

// Close detaches the wheel from the state.
func (w *Wheel) Close() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}

// Geometry of the disc
func (w *Wheel) Geometry() Geometry {
	return w.geom
}

// IndicatorPosition returns the center of the indicator ring.
func (w *Wheel) IndicatorPosition() fyne.Position {
	return w.pos
}

// Tapped handles a click on the wheel
func (w *Wheel) Tapped(ev *fyne.PointEvent) {
	w.pick(ev.Position)
}

// Dragged follows the pointer while the primary button is held
func (w *Wheel) Dragged(ev *fyne.DragEvent) {
	w.pick(ev.Position)
}

func (w *Wheel) DragEnd() {}

// MouseDown picks immediately on press instead of waiting for the release.
func (w *Wheel) MouseDown(me *desktop.MouseEvent) {
	if me.Button == desktop.MouseButtonPrimary {
		w.pick(me.Position)
	}
}

func (w *Wheel) MouseUp(_ *desktop.MouseEvent) {}

func (w *Wheel) pick(p fyne.Position) {
	r := float64(w.geom.Radius)
	dx, dy := w.geom.Offset(p)
	dx, dy = colorutils.ClampOffset(dx, dy, r)
	hue, sat := colorutils.WheelOffsetToPolar(dx, dy, r)

	w.moveIndicator(w.geom.Point(dx, dy))
	w.state.SetHueSaturationFrom(pickerstate.OriginWheel, hue, sat)
}

func (w *Wheel) onChange(c pickerstate.Change) {
	if c.Origin == pickerstate.OriginWheel {
		return
	}
	if c.Fields.Has(pickerstate.FieldHue | pickerstate.FieldSaturation) {
		w.syncIndicator(c.HSV)
	}
}

func (w *Wheel) syncIndicator(hsv colorutils.HSV) {
	dx, dy := colorutils.PolarToWheelOffset(hsv.H, hsv.S, float64(w.geom.Radius))
	w.moveIndicator(w.geom.Point(dx, dy))
}

func (w *Wheel) moveIndicator(p fyne.Position) {
	w.pos = p
	w.indicator.Move(p.SubtractXY(w.radius, w.radius))
	canvas.Refresh(w.indicator)
}

func (w *Wheel) MinSize() fyne.Size {
	return fyne.NewSquareSize(w.size)
}

func (w *Wheel) CreateRenderer() fyne.WidgetRenderer {
	return &wheelRenderer{wheel: w}
}

type wheelRenderer struct {
	wheel *Wheel
}

func (r *wheelRenderer) Layout(_ fyne.Size) {
	w := r.wheel
	w.disc.Move(fyne.NewPos(0, 0))
	w.disc.Resize(fyne.NewSquareSize(w.size))
	w.indicator.Resize(fyne.NewSquareSize(2 * w.radius))
	w.indicator.Move(w.pos.SubtractXY(w.radius, w.radius))
}

func (r *wheelRenderer) MinSize() fyne.Size {
	return r.wheel.MinSize()
}

// Refresh only touches the indicator, the disc never changes.
func (r *wheelRenderer) Refresh() {
	canvas.Refresh(r.wheel.indicator)
}

func (r *wheelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.wheel.disc, r.wheel.indicator}
}

func (r *wheelRenderer) Destroy() {}
