package main

import (
	"image/color"
	"log"

	"colorpicker/pkg/components/valueslider"
	"colorpicker/pkg/components/wheel"
	"colorpicker/pkg/iconres"
	"colorpicker/pkg/options"
	"colorpicker/pkg/outputpanel"
	"colorpicker/pkg/pickerstate"
	"colorpicker/pkg/uithread"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	xlayout "fyne.io/x/fyne/layout"
)

const appTitle = "Advanced Color Picker"

// picker groups the three views bound to one state.
type picker struct {
	state  *pickerstate.State
	wheel  *wheel.Wheel
	slider *valueslider.Slider
	output *outputpanel.Panel
}

func newPicker(opts *options.Options, state *pickerstate.State, clipboard outputpanel.Clipboard, schedule uithread.Scheduler) *picker {
	geom := wheel.NewGeometry(opts.WheelSize, opts.Padding)
	return &picker{
		state:  state,
		wheel:  wheel.New(state, geom, opts.WheelSize, opts.IndicatorRadius),
		slider: valueslider.New(state, opts.SliderWidth, opts.WheelSize, opts.SliderIndicatorHalf),
		output: outputpanel.New(state, clipboard, schedule, opts.CopiedFor),
	}
}

func (p *picker) content() fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(20, 0))

	left := container.NewCenter(container.NewHBox(p.wheel, gap, p.slider))
	right := container.NewCenter(p.output.Content())

	return xlayout.NewResponsiveLayout(
		xlayout.Responsive(left, 1, 0.5),
		xlayout.Responsive(right, 1, 0.5),
	)
}

func (p *picker) close() {
	p.wheel.Close()
	p.slider.Close()
	p.output.Close()
}

func setupMainWindow(a fyne.App, opts *options.Options, appLogger *log.Logger) fyne.Window {
	w := a.NewWindow(appTitle)
	w.Resize(fyne.NewSize(opts.WindowWidth, opts.WindowHeight))
	w.SetFixedSize(true)

	icon, err := iconres.LoadFirst(opts.IconSize, opts.IconPaths...)
	if err != nil {
		appLogger.Println("Failed to load icon:", err)
		return w
	}
	a.SetIcon(icon)
	w.SetIcon(icon)

	return w
}
