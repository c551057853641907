package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/country"
)

// CountrySource is what the UI needs from the country service.
type CountrySource interface {
	// LoadDirectory returns the full collection, or an empty one on failure.
	LoadDirectory(ctx context.Context) []country.Country
	// LoadDetail returns one country with resolved border names.
	LoadDetail(ctx context.Context, name string) (country.Detail, error)
}

// loadDirectoryCmd fetches the directory once on mount.
func loadDirectoryCmd(ctx context.Context, src CountrySource) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return DirectoryLoadedMsg{Countries: []country.Country{}}
		}
		return DirectoryLoadedMsg{Countries: src.LoadDirectory(ctx)}
	}
}

// loadDetailCmd runs one detail load tagged with gen. The context is
// cancelled by App when the route changes before the load finishes.
func loadDetailCmd(ctx context.Context, src CountrySource, name string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return DetailLoadedMsg{Gen: gen, Name: name, Err: context.Canceled}
		}
		d, err := src.LoadDetail(ctx, name)
		return DetailLoadedMsg{Gen: gen, Name: name, Detail: d, Err: err}
	}
}

// navigateCmd wraps a route push as a command.
func navigateCmd(msg NavigateMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
