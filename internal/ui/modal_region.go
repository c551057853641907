package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/country"
)

// RegionPickerModal lists "all regions" followed by each selectable region.
type RegionPickerModal struct {
	list   list.Model
	styles *Styles
}

// regionItem is one picker row. index -1 is "all regions".
type regionItem struct {
	index int
	label string
}

func (r regionItem) FilterValue() string { return r.label }
func (r regionItem) Title() string       { return r.label }
func (r regionItem) Description() string { return "" }

// Ensure RegionPickerModal implements View.
var _ View = (*RegionPickerModal)(nil)

// NewRegionPickerModal creates a picker with current (-1 = all) preselected.
func NewRegionPickerModal(current int, styles *Styles) *RegionPickerModal {
	items := make([]list.Item, 0, len(country.Regions)+1)
	items = append(items, regionItem{index: -1, label: "All regions"})
	for i, r := range country.Regions {
		items = append(items, regionItem{index: i, label: r.Label})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.NormalTitle = styles.Normal.PaddingLeft(2)
	delegate.Styles.SelectedTitle = styles.Title.
		Border(styles.CardSelected.GetBorderStyle(), false, false, false, true).
		BorderForeground(styles.Palette.Highlight).
		PaddingLeft(1)

	l := list.New(items, delegate, 28, len(items)+6)
	l.Title = "Filter by Region"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Title
	l.Select(current + 1)
	return &RegionPickerModal{list: l, styles: styles}
}

// Selected returns the highlighted region index (-1 = all).
func (m *RegionPickerModal) Selected() int {
	if it, ok := m.list.SelectedItem().(regionItem); ok {
		return it.index
	}
	return -1
}

// Init implements View.
func (m *RegionPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *RegionPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			idx := m.Selected()
			return m, func() tea.Msg { return SelectRegionMsg{Index: idx} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *RegionPickerModal) View() string {
	help := m.styles.HelpDesc.Render("enter: select  esc: cancel")
	return m.styles.HelpBox.Render(m.list.View() + "\n" + help)
}
