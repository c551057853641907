package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"countryexplorer/internal/country"
	"countryexplorer/internal/nav"
	"countryexplorer/internal/ui/textutil"
)

// DetailView shows one country and its bordering countries.
// Detail stays nil until the load completes; nothing about the country is
// rendered before that.
type DetailView struct {
	Name           string          // route name being loaded
	Detail         *country.Detail // nil while loading
	SelectedBorder int             // index into Detail.Borders

	spinner spinner.Model
	styles  *Styles
	width   int
}

// Ensure DetailView implements View.
var _ View = (*DetailView)(nil)

// NewDetailView creates a loading detail view for name.
func NewDetailView(name string, styles *Styles) *DetailView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &DetailView{
		Name:    name,
		spinner: s,
		styles:  styles,
	}
}

// Init implements View.
func (v *DetailView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Loading reports whether the detail is still being fetched.
func (v *DetailView) Loading() bool { return v.Detail == nil }

// SetDetail installs a completed load.
func (v *DetailView) SetDetail(d country.Detail) {
	v.Detail = &d
	v.SelectedBorder = 0
}

// SelectedBorderName returns the highlighted border country, if any.
func (v *DetailView) SelectedBorderName() (string, bool) {
	if v.Detail == nil || len(v.Detail.Borders) == 0 {
		return "", false
	}
	return v.Detail.Borders[v.SelectedBorder], true
}

// Update implements View.
func (v *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case spinner.TickMsg:
		if v.Detail != nil {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "b":
			return v, func() tea.Msg { return BackMsg{} }
		}
		if v.Detail == nil {
			return v, nil
		}
		n := len(v.Detail.Borders)
		switch msg.String() {
		case "l", "right", "tab":
			if n > 0 {
				v.SelectedBorder = (v.SelectedBorder + 1) % n
			}
		case "h", "left", "shift+tab":
			if n > 0 {
				v.SelectedBorder = (v.SelectedBorder - 1 + n) % n
			}
		case "enter":
			if name, ok := v.SelectedBorderName(); ok {
				return v, navigateCmd(NavigateMsg{Route: nav.Detail(name)})
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *DetailView) View() string {
	st := v.styles
	var b strings.Builder
	b.WriteString(st.Button.Render("← Back") + "\n\n")

	if v.Detail == nil {
		b.WriteString(st.Loading.Render(v.spinner.View() + " Loading country details..."))
		b.WriteString("\n")
		return b.String()
	}

	d := v.Detail
	title := d.DisplayName()
	if d.FlagEmoji != "" {
		title = d.FlagEmoji + "  " + title
	}
	b.WriteString(st.Title.Render(title) + "\n\n")

	fields := d.Fields()
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, len(f.Label)+1)
	}
	for _, f := range fields {
		value := f.Value
		if v.width > 0 {
			value = textutil.Truncate(value, v.width-labelWidth-4)
		}
		label := st.Label.Width(labelWidth).Render(f.Label + ":")
		b.WriteString(label + " " + st.Normal.Render(value) + "\n")
	}
	if d.FlagURL != "" {
		b.WriteString(st.Muted.Render("Flag: "+d.FlagURL) + "\n")
	}

	b.WriteString("\n" + st.Label.Render("Bordering Countries:") + " ")
	if len(d.Borders) == 0 {
		b.WriteString(st.Empty.Render("None"))
		b.WriteString("\n")
		return b.String()
	}
	chips := make([]string, len(d.Borders))
	for i, name := range d.Borders {
		style := st.Chip
		if i == v.SelectedBorder {
			style = st.ChipSelected
		}
		chips[i] = style.Render(name)
	}
	b.WriteString(v.wrapChips(chips))
	b.WriteString("\n")
	return b.String()
}

// wrapChips lays chips out left to right, wrapping at the view width.
func (v *DetailView) wrapChips(chips []string) string {
	if v.width <= 0 {
		return strings.Join(chips, " ")
	}
	var rows []string
	var row []string
	used := len("Bordering Countries: ")
	for _, c := range chips {
		w := lipgloss.Width(c) + 1
		if used+w > v.width && len(row) > 0 {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		row = append(row, c)
		used += w
	}
	rows = append(rows, strings.Join(row, " "))
	return strings.Join(rows, "\n")
}
