package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// inputCapturer is implemented by views that sometimes need raw keys, such
// as a focused text field. While it reports true, keybinds are bypassed.
type inputCapturer interface {
	CapturingInput() bool
}
