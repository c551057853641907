package ui

import (
	"github.com/charmbracelet/lipgloss"

	"countryexplorer/internal/theme"
)

// Styles contains shared style definitions used across views.
// Views hold a pointer to one Styles value; App rewrites it in place when
// the theme changes, so every view picks up the new palette at once.
type Styles struct {
	Mode    theme.Mode
	Palette theme.Palette

	// Page chrome
	Page   lipgloss.Style // full-screen background + foreground
	Header lipgloss.Style // top bar
	Brand  lipgloss.Style // "Where in the world?"
	Toggle lipgloss.Style // theme button label
	Hint   lipgloss.Style // footer key hints

	// Text
	Title   lipgloss.Style // country names
	Label   lipgloss.Style // "Population:" etc.
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Empty   lipgloss.Style // empty state text (muted, italic)
	Loading lipgloss.Style

	// Directory
	Input        lipgloss.Style // search box frame
	InputFocused lipgloss.Style
	Region       lipgloss.Style // region selector
	Card         lipgloss.Style
	CardSelected lipgloss.Style

	// Detail
	Button       lipgloss.Style // "← Back"
	Chip         lipgloss.Style // border country
	ChipSelected lipgloss.Style

	// Leader help box
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpBox  lipgloss.Style
}

// NewStyles builds the style set for mode.
func NewStyles(mode theme.Mode) *Styles {
	p := theme.PaletteFor(mode)
	base := lipgloss.NewStyle().Foreground(p.Text)
	return &Styles{
		Mode:    mode,
		Palette: p,

		Page: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text),
		Header: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 2),
		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Surface),
		Toggle: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface),
		Hint: lipgloss.NewStyle().
			Foreground(p.Muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Label:   base.Bold(true),
		Normal:  base,
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Empty:   lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Loading: lipgloss.NewStyle().Foreground(p.Muted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Highlight).
			Padding(0, 1),
		Region: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(p.Highlight).
			PaddingLeft(1),

		Button: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 2),
		Chip: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		ChipSelected: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Highlight).
			Bold(true).
			Padding(0, 1),

		HelpKey:  lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Muted),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1).
			MarginTop(1),
	}
}
