package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/annotate/annotation"
)

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Title  lipgloss.Style
	Status lipgloss.Style
	Notice lipgloss.Style

	// Preview styles per kind. Overlapping kinds are combined.
	Bold   lipgloss.Style
	Italic lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
	}
}

func (s Style) forKinds(kinds []annotation.Kind) lipgloss.Style {
	st := s.Text
	for _, k := range kinds {
		switch k {
		case annotation.Bold:
			st = st.Inherit(s.Bold)
		case annotation.Italic:
			st = st.Inherit(s.Italic)
		}
	}
	return st
}
