package outputpanel

import (
	"strconv"
	"sync"
	"time"

	"colorpicker/pkg/apptheme"
	"colorpicker/pkg/pickerstate"
	"colorpicker/pkg/uithread"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	DefaultPrompt = "Right-click anywhere on screen"
	CopiedPrompt  = "Copied ✔"
)

// Clipboard is the part of fyne.Clipboard the panel needs.
type Clipboard interface {
	SetContent(content string)
}

// Panel shows the current color as swatch, hex and decimal RGB, and copies
// the hex string to the clipboard.
type Panel struct {
	Prompt  *widget.Label
	Swatch  *canvas.Rectangle
	HexText *widget.Label
	Copy    *widget.Button
	R, G, B *widget.Entry

	state     *pickerstate.State
	clipboard Clipboard
	schedule  uithread.Scheduler
	copiedFor time.Duration

	mu         sync.Mutex
	revert     *time.Timer
	generation int

	unsubscribe func()
}

func New(state *pickerstate.State, clipboard Clipboard, schedule uithread.Scheduler, copiedFor time.Duration) *Panel {
	p := &Panel{
		state:     state,
		clipboard: clipboard,
		schedule:  schedule,
		copiedFor: copiedFor,
	}

	p.Prompt = widget.NewLabelWithStyle(DefaultPrompt, fyne.TextAlignCenter, fyne.TextStyle{})

	p.Swatch = canvas.NewRectangle(state.RGB().Color())
	p.Swatch.StrokeColor = apptheme.SwatchBorderColor()
	p.Swatch.StrokeWidth = 2
	p.Swatch.SetMinSize(fyne.NewSize(150, 50))

	p.HexText = widget.NewLabelWithStyle(state.Hex(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	p.Copy = widget.NewButton("Copy HEX", p.CopyHex)

	p.R, p.G, p.B = readOnlyEntry(), readOnlyEntry(), readOnlyEntry()

	p.refresh(state.Current())
	p.unsubscribe = state.Subscribe(func(c pickerstate.Change) { p.refresh(c.Snapshot) })
	return p
}

func readOnlyEntry() *widget.Entry {
	e := widget.NewEntry()
	e.Disable()
	return e
}

// Content lays the widgets out top to bottom.
func (p *Panel) Content() fyne.CanvasObject {
	channel := func(name string, e *widget.Entry) fyne.CanvasObject {
		label := widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		return container.NewVBox(label, container.NewGridWrap(fyne.NewSize(56, e.MinSize().Height), e))
	}
	return container.NewVBox(
		p.Prompt,
		container.NewCenter(p.Swatch),
		p.HexText,
		container.NewCenter(p.Copy),
		container.NewCenter(container.NewHBox(
			channel("R", p.R),
			channel("G", p.G),
			channel("B", p.B),
		)),
	)
}

// Close detaches the panel from the state and cancels a pending revert.
func (p *Panel) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.revert != nil {
		p.revert.Stop()
	}
	p.generation++
}

func (p *Panel) refresh(s pickerstate.Snapshot) {
	p.Swatch.FillColor = s.RGB.Color()
	p.Swatch.Refresh()
	p.HexText.SetText(s.Hex)
	p.R.SetText(strconv.Itoa(int(s.RGB.R)))
	p.G.SetText(strconv.Itoa(int(s.RGB.G)))
	p.B.SetText(strconv.Itoa(int(s.RGB.B)))
}

// CopyHex puts the current hex string on the clipboard and shows a
// confirmation. The prompt returns copiedFor after the latest copy.
func (p *Panel) CopyHex() {
	p.clipboard.SetContent(p.state.Hex())
	p.Prompt.SetText(CopiedPrompt)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.revert != nil {
		p.revert.Stop()
	}
	p.generation++
	gen := p.generation
	p.revert = time.AfterFunc(p.copiedFor, func() {
		p.schedule(func() { p.restorePrompt(gen) })
	})
}

// restorePrompt runs on the UI goroutine. A timer that fired just before
// being stopped finds a newer generation and does nothing.
func (p *Panel) restorePrompt(gen int) {
	p.mu.Lock()
	current := gen == p.generation
	p.mu.Unlock()
	if current {
		p.Prompt.SetText(DefaultPrompt)
	}
}
