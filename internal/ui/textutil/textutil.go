// Package textutil measures and fits text to terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text to at most maxWidth columns, appending an
// ellipsis when anything was cut. Wide runes (flags, CJK native names) count
// as two columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Spread places left and right on one line of the given width, separated by
// spaces. When the line is too narrow the two are joined by a single space.
func Spread(left, right string, width int) string {
	gap := width - Width(left) - Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
