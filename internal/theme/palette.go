package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colours a Mode renders with.
type Palette struct {
	Background lipgloss.Color // page background
	Surface    lipgloss.Color // header, cards, chips
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color // titles
	Highlight  lipgloss.Color // selection
	Border     lipgloss.Color
}

var (
	lightPalette = Palette{
		Background: lipgloss.Color("255"),
		Surface:    lipgloss.Color("254"),
		Text:       lipgloss.Color("235"),
		Muted:      lipgloss.Color("244"),
		Accent:     lipgloss.Color("24"),
		Highlight:  lipgloss.Color("161"),
		Border:     lipgloss.Color("250"),
	}
	darkPalette = Palette{
		Background: lipgloss.Color("234"),
		Surface:    lipgloss.Color("237"),
		Text:       lipgloss.Color("255"),
		Muted:      lipgloss.Color("245"),
		Accent:     lipgloss.Color("86"),
		Highlight:  lipgloss.Color("205"),
		Border:     lipgloss.Color("240"),
	}
)

// PaletteFor returns the palette for m.
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return darkPalette
	}
	return lightPalette
}

// ToggleLabel is the label of the control that switches away from m.
func ToggleLabel(m Mode) string {
	if m == Dark {
		return "☀ Light Mode"
	}
	return "☾ Dark Mode"
}
