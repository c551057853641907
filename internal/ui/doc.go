// Package ui is the Bubble Tea front-end of the country explorer.
//
// Core pieces:
//   - View: a screen with its own update and view (Elm-style)
//   - App: the root model; owns route history, the theme subscription and
//     the in-flight detail load
//   - DirectoryView: searchable, region-filterable country cards
//   - DetailView: one country with navigable border countries
//   - RegionPickerModal: list overlay for choosing the region filter
//   - KeybindRegistry / KeyHandler: leader-key (SPC) command dispatch
package ui
