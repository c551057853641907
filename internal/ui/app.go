package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/logging"
	"countryexplorer/internal/nav"
	"countryexplorer/internal/theme"
	"countryexplorer/internal/ui/textutil"
)

// Rows reserved around the active view.
const (
	headerRows = 2
	footerRows = 2
)

// Options configures NewAppModel.
type Options struct {
	Source  CountrySource
	Theme   *theme.Store    // nil = fresh store in Light mode
	Log     *logging.Logger // nil = discard
	Context context.Context // parent of every fetch; nil = Background
	Start   nav.Route       // initial route; zero value = Root
}

// AppModel is the root model. The current history entry decides which view
// is active; every route change re-runs the loads that route needs.
type AppModel struct {
	Mode       AppMode
	Directory  *DirectoryView
	Detail     *DetailView // nil unless a detail route is current
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	History    *nav.History
	Theme      *theme.Store
	Styles     *Styles
	Source     CountrySource
	Log        *logging.Logger

	ctx          context.Context
	detailGen    uint64
	cancelDetail context.CancelFunc
	unsubscribe  func()
	width        int
	height       int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	store := opts.Theme
	if store == nil {
		store = theme.NewStore()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	start := opts.Start
	if start.Kind == nav.KindDetail && start.Name == "" {
		start = nav.Root()
	}

	styles := NewStyles(store.Mode())
	a := &AppModel{
		Mode:      modeFor(start),
		Directory: NewDirectoryView(styles),
		History:   nav.NewHistory(start),
		Theme:     store,
		Styles:    styles,
		Source:    opts.Source,
		Log:       opts.Log,
		ctx:       ctx,
	}
	a.KeyHandler = NewKeyHandler(newRegistry())
	a.unsubscribe = store.Subscribe(func(m theme.Mode) {
		*a.Styles = *NewStyles(m)
	})
	return a
}

// newRegistry binds the app-wide keys.
func newRegistry() *KeybindRegistry {
	toggle := func() tea.Msg { return ToggleThemeMsg{} }
	back := func() tea.Msg { return BackMsg{} }
	forward := func() tea.Msg { return ForwardMsg{} }
	home := navigateCmd(NavigateMsg{Route: nav.Root()})
	region := func() tea.Msg { return OpenRegionPickerMsg{} }

	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("t", toggle, "Toggle theme")
	reg.Bind("f", region, "Filter by region", ModeDirectory)
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("SPC f", region, "Filter by region", ModeDirectory)
	reg.Bind("SPC t", toggle, "Toggle theme")
	reg.Bind("SPC [", back, "Back")
	reg.Bind("SPC ]", forward, "Forward")
	reg.Bind("SPC g b", back, "Back")
	reg.Bind("SPC g f", forward, "Forward")
	reg.Bind("SPC g h", home, "Home", ModeDetail)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close cancels any in-flight detail load and drops the theme subscription.
func (a *AppModel) Close() {
	if a.cancelDetail != nil {
		a.cancelDetail()
		a.cancelDetail = nil
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadDirectoryCmd(a.ctx, a.Source),
		a.Directory.Init(),
	}
	if a.Mode == ModeDetail {
		cmds = append(cmds, a.syncRoute())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(0, msg.Height-headerRows-footerRows)}
		a.Directory.Update(inner)
		if a.Detail != nil {
			a.Detail.Update(inner)
		}
		return a, nil

	case DirectoryLoadedMsg:
		a.Directory.SetCountries(msg.Countries)
		a.Log.WithFields(map[string]any{"count": len(msg.Countries)}).Debug("directory loaded")
		return a, nil

	case DetailLoadedMsg:
		return a, a.handleDetailLoaded(msg)

	case NavigateMsg:
		a.History.Push(msg.Route)
		return a, a.syncRoute()

	case BackMsg:
		if _, ok := a.History.Back(); ok {
			return a, a.syncRoute()
		}
		return a, nil

	case ForwardMsg:
		if _, ok := a.History.Forward(); ok {
			return a, a.syncRoute()
		}
		return a, nil

	case ToggleThemeMsg:
		a.Theme.Toggle()
		return a, nil

	case OpenRegionPickerMsg:
		if a.Mode == ModeDirectory && a.Overlays.Len() == 0 {
			a.Overlays.Push(NewRegionPickerModal(a.Directory.Region, a.Styles))
		}
		return a, nil

	case SelectRegionMsg:
		a.Overlays.Pop()
		a.Directory.SetRegion(msg.Index)
		return a, nil

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case spinner.TickMsg:
		// Each spinner ignores ticks carrying another spinner's ID.
		_, c1 := a.Directory.Update(msg)
		var c2 tea.Cmd
		if a.Detail != nil {
			_, c2 = a.Detail.Update(msg)
		}
		return a, tea.Batch(c1, c2)

	case tea.KeyMsg:
		if a.Overlays.Len() > 0 {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.capturingInput() {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
		} else if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, cmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// handleDetailLoaded applies a finished load if it is still the current one.
// A failed load replaces the detail entry with Root.
func (a *AppModel) handleDetailLoaded(msg DetailLoadedMsg) tea.Cmd {
	log := a.Log.WithFields(map[string]any{"country": msg.Name, "gen": msg.Gen})
	if msg.Gen != a.detailGen || a.Mode != ModeDetail || a.Detail == nil {
		log.Debug("dropping stale detail result")
		return nil
	}
	if a.cancelDetail != nil {
		a.cancelDetail()
		a.cancelDetail = nil
	}
	if msg.Err != nil {
		log.Warn(msg.Err, "detail load failed, returning to directory")
		a.History.Replace(nav.Root())
		return a.syncRoute()
	}
	a.Detail.SetDetail(msg.Detail)
	return nil
}

// syncRoute makes the active view match the current history entry.
// Any in-flight detail load is abandoned.
func (a *AppModel) syncRoute() tea.Cmd {
	if a.cancelDetail != nil {
		a.cancelDetail()
		a.cancelDetail = nil
	}
	a.detailGen++
	a.KeyHandler.Reset()
	a.Overlays.Clear()

	route := a.History.Current()
	a.Mode = modeFor(route)
	if a.Mode != ModeDetail {
		a.Detail = nil
		return nil
	}

	ctx, cancel := context.WithCancel(a.ctx)
	a.cancelDetail = cancel
	a.Detail = NewDetailView(route.Name, a.Styles)
	if a.width > 0 {
		a.Detail.Update(tea.WindowSizeMsg{Width: a.width, Height: max(0, a.height-headerRows-footerRows)})
	}
	a.Log.WithFields(map[string]any{"route": route.Path(), "gen": a.detailGen}).Debug("loading detail")
	return tea.Batch(a.Detail.Init(), loadDetailCmd(ctx, a.Source, route.Name, a.detailGen))
}

func (a *AppModel) capturingInput() bool {
	c, ok := a.currentView().(inputCapturer)
	return ok && c.CapturingInput()
}

func (a *AppModel) currentView() View {
	if a.Mode == ModeDetail && a.Detail != nil {
		return a.Detail
	}
	return a.Directory
}

func (a *AppModel) setCurrentView(v View) {
	switch v := v.(type) {
	case *DirectoryView:
		a.Directory = v
	case *DetailView:
		if a.Mode == ModeDetail {
			a.Detail = v
		}
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	st := a.Styles
	var b strings.Builder

	width := a.width
	if width == 0 {
		width = 80
	}
	brand := st.Brand.Render("Where in the world?")
	toggle := st.Toggle.Render(theme.ToggleLabel(a.Theme.Mode()))
	b.WriteString(st.Header.Width(width).Render(textutil.Spread(brand, toggle, width-4)))
	b.WriteString("\n\n")

	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View() + "\n")
	} else {
		b.WriteString(a.currentView().View())
	}

	if help := RenderKeybindHelp(a.KeyHandler, a.Mode, st); help != "" {
		b.WriteString(help + "\n")
	}
	footer := st.Hint.Render(a.History.Current().Path()) + "  " +
		RenderFooter(a.Mode, a.capturingInput(), a.History, st)
	b.WriteString("\n" + footer)

	page := st.Page
	if a.width > 0 {
		page = page.Width(a.width)
	}
	if a.height > 0 {
		page = page.Height(a.height)
	}
	return page.Render(b.String())
}
