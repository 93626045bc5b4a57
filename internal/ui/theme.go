package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme is the application's dark theme with compact padding
type DarkTheme struct{}

// NewDarkTheme creates a new dark theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors. The palette is dark regardless of the OS variant.
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorExempt
	case theme.ColorNameError:
		return ColorAtRisk
	case theme.ColorNameWarning:
		return ColorInProgress
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0x29, G: 0x62, B: 0xff, A: 0xff}
	case theme.ColorNameButton:
		return color.RGBA{R: 0x29, G: 0x62, B: 0xff, A: 0xff}
	case theme.ColorNameHover:
		return color.RGBA{R: 0x00, G: 0x39, B: 0xcb, A: 0xff}
	case theme.ColorNameBackground:
		return color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	case theme.ColorNameForeground:
		return color.White
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 18
	}

	return theme.DefaultTheme().Size(name)
}
