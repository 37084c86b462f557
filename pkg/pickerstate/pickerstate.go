// Package pickerstate holds the currently selected color. It is the single
// source of truth every view of the picker derives from.
package pickerstate

import (
	"colorpicker/pkg/colorutils"
)

// Field identifies an HSV component.
type Field uint8

const (
	FieldHue Field = 1 << iota
	FieldSaturation
	FieldValue
)

// Has reports whether any of the given fields are set.
func (f Field) Has(other Field) bool {
	return f&other != 0
}

// Origin identifies the input that caused a change.
type Origin int

const (
	OriginProgram Origin = iota
	OriginWheel
	OriginSlider
	OriginScreen
)

func (o Origin) String() string {
	switch o {
	case OriginWheel:
		return "wheel"
	case OriginSlider:
		return "slider"
	case OriginScreen:
		return "screen"
	default:
		return "program"
	}
}

// Snapshot is the current color in all of its representations.
type Snapshot struct {
	HSV colorutils.HSV
	RGB colorutils.RGB
	Hex string
}

// Change is passed to listeners after every setter call. Fields lists the
// components whose value actually changed, it is empty when the setter stored
// the same color again.
type Change struct {
	Snapshot
	Fields Field
	Origin Origin
}

// Listener is called synchronously after the state changed.
type Listener func(Change)

// State holds the current color. It is not safe for concurrent use; the UI
// goroutine is its only writer.
type State struct {
	hsv       colorutils.HSV
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// New creates the state with the default color: white (hue 0, saturation 0, value 1).
func New() *State {
	return &State{hsv: colorutils.HSV{H: 0, S: 0, V: 1}}
}

// Subscribe registers a listener and returns a function removing it again.
func (s *State) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *State) HSV() colorutils.HSV {
	return s.hsv
}

func (s *State) RGB() colorutils.RGB {
	return s.hsv.RGB()
}

func (s *State) Hex() string {
	return s.RGB().Hex()
}

// Current returns the color as HSV, RGB and hex string.
func (s *State) Current() Snapshot {
	rgb := s.RGB()
	return Snapshot{HSV: s.hsv, RGB: rgb, Hex: rgb.Hex()}
}

func (s *State) SetHue(h float64) {
	s.SetHueFrom(OriginProgram, h)
}

func (s *State) SetHueFrom(origin Origin, h float64) {
	next := s.hsv
	next.H = h
	s.store(origin, next)
}

func (s *State) SetSaturation(sat float64) {
	s.SetSaturationFrom(OriginProgram, sat)
}

func (s *State) SetSaturationFrom(origin Origin, sat float64) {
	next := s.hsv
	next.S = sat
	s.store(origin, next)
}

func (s *State) SetValue(v float64) {
	s.SetValueFrom(OriginProgram, v)
}

func (s *State) SetValueFrom(origin Origin, v float64) {
	next := s.hsv
	next.V = v
	s.store(origin, next)
}

// SetHueSaturation updates hue and saturation with a single notification.
func (s *State) SetHueSaturation(h, sat float64) {
	s.SetHueSaturationFrom(OriginProgram, h, sat)
}

func (s *State) SetHueSaturationFrom(origin Origin, h, sat float64) {
	next := s.hsv
	next.H, next.S = h, sat
	s.store(origin, next)
}

func (s *State) SetHSV(c colorutils.HSV) {
	s.SetHSVFrom(OriginProgram, c)
}

func (s *State) SetHSVFrom(origin Origin, c colorutils.HSV) {
	s.store(origin, c)
}

// SetFromRGB replaces the whole color with the HSV equivalent of r, g, b.
func (s *State) SetFromRGB(r, g, b uint8) {
	s.SetFromRGBFrom(OriginProgram, colorutils.RGB{R: r, G: g, B: b})
}

func (s *State) SetFromRGBFrom(origin Origin, c colorutils.RGB) {
	s.store(origin, colorutils.RGBToHSV(c.R, c.G, c.B))
}

func (s *State) store(origin Origin, next colorutils.HSV) {
	next = next.Normalize()

	var fields Field
	if next.H != s.hsv.H {
		fields |= FieldHue
	}
	if next.S != s.hsv.S {
		fields |= FieldSaturation
	}
	if next.V != s.hsv.V {
		fields |= FieldValue
	}
	s.hsv = next

	change := Change{Snapshot: s.Current(), Fields: fields, Origin: origin}
	// copy so listeners may unsubscribe while being notified
	listeners := append([]subscription(nil), s.listeners...)
	for _, sub := range listeners {
		sub.fn(change)
	}
}
