package apptheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PickerTheme is a plain light theme so the sampled colors are judged against
// a neutral background regardless of the desktop's dark mode.
type PickerTheme struct{}

var _ fyne.Theme = PickerTheme{}

func (PickerTheme) Color(c fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch c {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	case theme.ColorNameDisabled:
		// read-only RGB fields stay readable
		return color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x20, G: 0x6b, B: 0xd6, A: 0xff}
	default:
		return theme.DefaultTheme().Color(c, theme.VariantLight)
	}
}

func (PickerTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (PickerTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (PickerTheme) Size(s fyne.ThemeSizeName) float32 {
	switch s {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameInputBorder:
		return 1
	default:
		return theme.DefaultTheme().Size(s)
	}
}

// IndicatorColor is used for the wheel ring and the slider bar.
func IndicatorColor() color.Color {
	return color.Black
}

// SwatchBorderColor outlines the preview swatch.
func SwatchBorderColor() color.Color {
	return color.Black
}
