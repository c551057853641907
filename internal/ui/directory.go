package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/country"
	"countryexplorer/internal/nav"
	"countryexplorer/internal/ui/textutil"
)

// cardHeight is the number of rows one country card occupies.
const cardHeight = 3

// directoryChromeRows is the space taken by the search row and status line.
const directoryChromeRows = 6

// DirectoryView lists every country as a card, narrowed by the search text
// and the selected region.
type DirectoryView struct {
	Countries []country.Country // full collection, in API order
	Visible   []country.Country // Filter(Countries, search, region)
	Selected  int               // index into Visible
	Region    int               // index into country.Regions, -1 = all

	search  textinput.Model
	spinner spinner.Model
	loading bool
	styles  *Styles
	width   int
	height  int
	offset  int // first visible card
}

// Ensure DirectoryView implements View.
var _ View = (*DirectoryView)(nil)

// NewDirectoryView creates an empty, loading directory.
func NewDirectoryView(styles *Styles) *DirectoryView {
	ti := textinput.New()
	ti.Prompt = "🔎 "
	ti.Placeholder = "Search for a country..."
	ti.CharLimit = 64
	ti.Width = 32

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &DirectoryView{
		Region:  -1,
		search:  ti,
		spinner: s,
		loading: true,
		styles:  styles,
	}
}

// Init implements View.
func (d *DirectoryView) Init() tea.Cmd {
	if d.loading {
		return d.spinner.Tick
	}
	return nil
}

// Loading reports whether the directory is still being fetched.
func (d *DirectoryView) Loading() bool { return d.loading }

// SetCountries installs the fetched collection and stops the spinner.
func (d *DirectoryView) SetCountries(cs []country.Country) {
	d.Countries = cs
	d.loading = false
	d.refilter()
}

// SearchText returns the current search text.
func (d *DirectoryView) SearchText() string { return d.search.Value() }

// SetSearchText replaces the search text and refilters.
func (d *DirectoryView) SetSearchText(s string) {
	d.search.SetValue(s)
	d.refilter()
}

// RegionKey returns the selected region key, or "" for all regions.
func (d *DirectoryView) RegionKey() string {
	if d.Region < 0 || d.Region >= len(country.Regions) {
		return ""
	}
	return country.Regions[d.Region].Key
}

// SetRegion selects country.Regions[idx]; any out-of-range idx selects all.
func (d *DirectoryView) SetRegion(idx int) {
	if idx < 0 || idx >= len(country.Regions) {
		idx = -1
	}
	d.Region = idx
	d.refilter()
}

// CapturingInput reports whether the search field has focus.
func (d *DirectoryView) CapturingInput() bool { return d.search.Focused() }

// SelectedCountry returns the highlighted card, if any.
func (d *DirectoryView) SelectedCountry() (country.Country, bool) {
	if d.Selected >= 0 && d.Selected < len(d.Visible) {
		return d.Visible[d.Selected], true
	}
	return country.Country{}, false
}

// Update implements View.
func (d *DirectoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		d.search.Width = max(16, min(48, msg.Width/3))
		d.clampOffset()
		return d, nil
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case tea.KeyMsg:
		if d.search.Focused() {
			return d, d.updateSearch(msg)
		}
		switch msg.String() {
		case "/":
			return d, d.search.Focus()
		case "j", "down":
			d.move(1)
		case "k", "up":
			d.move(-1)
		case "g", "home":
			d.Selected = 0
			d.clampOffset()
		case "G", "end":
			d.Selected = max(0, len(d.Visible)-1)
			d.clampOffset()
		case "r":
			d.cycleRegion(1)
		case "R":
			d.cycleRegion(-1)
		case "enter":
			if c, ok := d.SelectedCountry(); ok && c.CommonName != "" {
				return d, navigateCmd(NavigateMsg{Route: nav.Detail(c.CommonName)})
			}
		case "x":
			d.Region = -1
			d.search.SetValue("")
			d.refilter()
		}
		return d, nil
	}
	return d, nil
}

// updateSearch feeds a key to the focused search field.
func (d *DirectoryView) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "tab":
		d.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.refilter()
	return cmd
}

func (d *DirectoryView) move(delta int) {
	if len(d.Visible) == 0 {
		return
	}
	d.Selected = min(max(d.Selected+delta, 0), len(d.Visible)-1)
	d.clampOffset()
}

// cycleRegion steps through "all regions" followed by each region.
func (d *DirectoryView) cycleRegion(delta int) {
	n := len(country.Regions) + 1
	slot := (d.Region + 1 + delta + n) % n
	d.Region = slot - 1
	d.refilter()
}

// refilter recomputes Visible and keeps the selection in range.
func (d *DirectoryView) refilter() {
	d.Visible = country.Filter(d.Countries, d.search.Value(), d.RegionKey())
	if d.Selected >= len(d.Visible) {
		d.Selected = max(0, len(d.Visible)-1)
	}
	d.clampOffset()
}

// pageSize is how many cards fit on screen.
func (d *DirectoryView) pageSize() int {
	h := d.height
	if h == 0 {
		h = 24
	}
	return max(1, (h-directoryChromeRows-headerRows-footerRows)/cardHeight)
}

func (d *DirectoryView) clampOffset() {
	page := d.pageSize()
	if d.Selected < d.offset {
		d.offset = d.Selected
	}
	if d.Selected >= d.offset+page {
		d.offset = d.Selected - page + 1
	}
	d.offset = max(0, min(d.offset, max(0, len(d.Visible)-page)))
}

// View implements View.
func (d *DirectoryView) View() string {
	st := d.styles
	var b strings.Builder

	inputStyle := st.Input
	if d.search.Focused() {
		inputStyle = st.InputFocused
	}
	regionLabel := country.RegionLabel(d.RegionKey()) + " ▾"
	b.WriteString(textutil.Spread(inputStyle.Render(d.search.View()), st.Region.Render(regionLabel), d.width))
	b.WriteString("\n")

	if d.loading {
		b.WriteString("\n" + st.Loading.Render(d.spinner.View()+" Loading countries...") + "\n")
		return b.String()
	}

	b.WriteString(st.Muted.Render(fmt.Sprintf("%d of %d countries", len(d.Visible), len(d.Countries))) + "\n\n")

	if len(d.Visible) == 0 {
		b.WriteString(st.Empty.Render("No countries match.") + "\n")
		return b.String()
	}

	end := min(len(d.Visible), d.offset+d.pageSize())
	for i := d.offset; i < end; i++ {
		b.WriteString(d.renderCard(d.Visible[i], i == d.Selected))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DirectoryView) renderCard(c country.Country, selected bool) string {
	st := d.styles
	title := c.DisplayName()
	if c.FlagEmoji != "" {
		title = c.FlagEmoji + "  " + title
	}
	if d.width > 0 {
		title = textutil.Truncate(title, d.width-4)
	}
	info := st.Label.Render("Population: ") + st.Normal.Render(c.DisplayPopulation()) + "   " +
		st.Label.Render("Region: ") + st.Normal.Render(c.DisplayRegion()) + "   " +
		st.Label.Render("Capital: ") + st.Normal.Render(c.DisplayCapital())

	card := st.Card
	if selected {
		card = st.CardSelected
	}
	return card.Render(st.Title.Render(title) + "\n" + info)
}
