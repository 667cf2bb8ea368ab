package ui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given display width, adding an ellipsis
// if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || xansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return xansi.Truncate(value, limit, "")
	}
	return xansi.Truncate(value, limit, "...")
}

// singleLine collapses newlines and runs of whitespace so a multi-line
// description fits in one table cell.
func singleLine(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	w := xansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// pluralize returns "n noun" with a trailing s unless n is 1.
func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
