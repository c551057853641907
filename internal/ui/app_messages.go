package ui

import (
	"countryexplorer/internal/country"
	"countryexplorer/internal/nav"
)

// DirectoryLoadedMsg carries the session's country collection.
// A failed fetch arrives as an empty collection.
type DirectoryLoadedMsg struct {
	Countries []country.Country
}

// DetailLoadedMsg is the outcome of one detail load. Gen identifies the
// load; results from superseded loads are discarded.
type DetailLoadedMsg struct {
	Gen    uint64
	Name   string
	Detail country.Detail
	Err    error
}

// NavigateMsg pushes a route onto the history.
type NavigateMsg struct {
	Route nav.Route
}

// BackMsg moves one entry back in the history.
type BackMsg struct{}

// ForwardMsg moves one entry forward in the history.
type ForwardMsg struct{}

// ToggleThemeMsg flips between light and dark.
type ToggleThemeMsg struct{}

// OpenRegionPickerMsg opens the region picker over the directory.
type OpenRegionPickerMsg struct{}

// SelectRegionMsg applies a region chosen in the picker. Index -1 clears
// the region filter.
type SelectRegionMsg struct {
	Index int
}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}
