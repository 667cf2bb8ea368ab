package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bar assembles a one-line strip of styled segments on a solid background.
// lipgloss resets the background at every space inside a rendered string, so
// words are painted one at a time and the gaps are painted separately.
type bar struct {
	bg    lipgloss.Color
	gap   string
	parts []string
}

func newBar(bgColor string, gap int) *bar {
	bg := lipgloss.Color(bgColor)
	return &bar{
		bg:  bg,
		gap: lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap)),
	}
}

// paint renders text in style without losing the bar background on spaces.
func (b *bar) paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	space := lipgloss.NewStyle().Background(b.bg).Render(" ")
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, space)
}

// add appends one segment.
func (b *bar) add(text string, style lipgloss.Style) *bar {
	if s := b.paint(text, style); s != "" {
		b.parts = append(b.parts, s)
	}
	return b
}

// hint appends a "key:desc" pair.
func (b *bar) hint(key, desc string, keyStyle, descStyle lipgloss.Style) *bar {
	b.parts = append(b.parts, b.paint(key, keyStyle)+b.paint(":", lipgloss.NewStyle())+b.paint(desc, descStyle))
	return b
}

func (b *bar) String() string {
	return strings.Join(b.parts, b.gap)
}
