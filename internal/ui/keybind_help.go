package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"countryexplorer/internal/nav"
)

// newHelpModel returns a bubbles/help model using st.
func newHelpModel(st *Styles) help.Model {
	m := help.New()
	m.Styles.ShortKey = st.HelpKey
	m.Styles.ShortDesc = st.HelpDesc
	m.Styles.ShortSeparator = st.HelpDesc
	return m
}

// RenderKeybindHelp produces the box shown while a leader sequence is
// pending. It lists the keys that can follow the current sequence in mode.
func RenderKeybindHelp(h *KeyHandler, mode AppMode, st *Styles) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(seq, mode)
	if len(hints) == 0 {
		return ""
	}
	content := newHelpModel(st).ShortHelpView(hintBindings(hints))
	return st.HelpBox.Render(st.HelpDesc.Render(seq) + " " + content)
}

// footerKeys lists the plain keys available in each mode, followed by
// the history moves hist currently allows.
func footerKeys(mode AppMode, searching bool, hist *nav.History) []key.Binding {
	kb := func(k, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	}
	if searching {
		return []key.Binding{kb("enter/esc", "done")}
	}
	var keys []key.Binding
	switch mode {
	case ModeDetail:
		keys = []key.Binding{
			kb("h/l", "border"),
			kb("enter", "open"),
			kb("esc", "back"),
		}
	default:
		keys = []key.Binding{
			kb("/", "search"),
			kb("f", "region"),
			kb("j/k", "move"),
			kb("enter", "open"),
		}
	}
	if hist != nil && hist.CanBack() {
		keys = append(keys, kb("SPC [", "prev"))
	}
	if hist != nil && hist.CanForward() {
		keys = append(keys, kb("SPC ]", "next"))
	}
	return append(keys,
		kb("t", "theme"),
		kb("SPC", "menu"),
		kb("q", "quit"),
	)
}

// RenderFooter renders the one-line key hints for mode.
func RenderFooter(mode AppMode, searching bool, hist *nav.History, st *Styles) string {
	return newHelpModel(st).ShortHelpView(footerKeys(mode, searching, hist))
}
