package ui

import "countryexplorer/internal/nav"

// AppMode is the top-level screen, derived from the current route.
type AppMode int

const (
	ModeDirectory AppMode = iota
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeDirectory:
		return "Directory"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// modeFor maps a route to the screen that renders it.
func modeFor(r nav.Route) AppMode {
	if r.Kind == nav.KindDetail {
		return ModeDetail
	}
	return ModeDirectory
}
