package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/annotate/annotation"
	"github.com/iw2rmb/annotate/internal/highlight"
	"github.com/iw2rmb/annotate/markup"
)

func (m Model) View() string {
	_, previewH, markupH := m.paneHeights()
	if m.height == 1 {
		return m.renderStatus()
	}

	input := m.viewport.View()
	if m.height == 0 {
		input = m.renderInput()
	}
	parts := []string{input, m.renderStatus()}
	if m.height == 0 || previewH > 0 {
		parts = append(parts, m.pane("Preview:", m.renderPreview(), previewH))
	}
	if m.height == 0 || markupH > 0 {
		parts = append(parts, m.pane("Markup:", m.renderMarkup(), markupH))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// paneHeights splits the height between the input pane, the preview, and the
// markup pane. One line is reserved for the status line. A zero height means
// the host never sized the model; panes then take their natural height.
func (m Model) paneHeights() (input, preview, markupH int) {
	rest := m.height - 1
	if rest <= 0 {
		return 0, 0, 0
	}
	input = clampInt(int(float64(rest)*m.cfg.inputRatio()), 1, rest)
	lower := rest - input
	preview = lower / 2
	return input, preview, lower - preview
}

func (m Model) inputHeight() int {
	h, _, _ := m.paneHeights()
	return h
}

func (m Model) pane(title, body string, height int) string {
	content := m.cfg.Style.Title.Render(title)
	if body != "" {
		content += "\n" + body
	}
	st := lipgloss.NewStyle()
	if m.width > 0 {
		st = st.Width(m.width)
	}
	if height > 0 {
		st = st.Height(height).MaxHeight(height)
	}
	return st.Render(content)
}

// renderInput renders the plain text with selection and cursor. Control
// characters render as one blank cell each, matching hit-testing.
func (m *Model) renderInput() string {
	cursor := m.buf.Cursor()
	selStart, selEnd, selOK := m.buf.SelectionOffsets()
	st := m.cfg.Style

	out := make([]string, 0, m.buf.LineCount())
	off := 0
	for row := 0; row < m.buf.LineCount(); row++ {
		line := []rune(m.buf.Line(row))
		var sb strings.Builder
		for col, r := range line {
			s := st.Text
			if selOK && off >= selStart && off < selEnd {
				s = st.Selection
			}
			if m.focused && cursor.Row == row && cursor.Col == col {
				s = st.Cursor
			}
			sb.WriteString(s.Render(string(displayRune(r))))
			off++
		}
		if m.focused && cursor.Row == row && cursor.Col == len(line) {
			sb.WriteString(st.Cursor.Render(" "))
		}
		out = append(out, sb.String())
		off++ // newline
	}
	return strings.Join(out, "\n")
}

func (m Model) renderPreview() string {
	var sb strings.Builder
	for _, seg := range markup.Segments(m.store.Text(), m.store.Ranges()) {
		sb.WriteString(m.cfg.Style.forKinds(seg.Kinds).Render(seg.Text))
	}
	return sb.String()
}

func (m Model) renderMarkup() string {
	out := m.Markup()
	if m.cfg.Highlight {
		return highlight.Markup(out, m.cfg.Theme)
	}
	return out
}

func (m Model) renderStatus() string {
	var parts []string
	if last, ok := m.LastAction(); ok {
		parts = append(parts, fmt.Sprintf("Selected index range: %d to %d (%s)", last.Range.Start, last.Range.End, last.Range.Kind))
	} else {
		parts = append(parts, "Select text, then "+m.formatHelp())
	}
	if kinds := m.store.KindsAt(m.buf.CursorOffset()); len(kinds) > 0 {
		parts = append(parts, "at cursor: "+joinKinds(kinds))
	}

	line := m.cfg.Style.Status.Render(strings.Join(parts, " · "))
	if m.notice != "" {
		line += m.cfg.Style.Status.Render(" · ") + m.cfg.Style.Notice.Render(m.notice)
	}
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func (m Model) formatHelp() string {
	km := m.cfg.KeyMap
	var help []string
	for _, b := range []struct{ key, desc string }{
		{km.Bold.Help().Key, "bold"},
		{km.Italic.Help().Key, "italic"},
		{km.ClearFormat.Help().Key, "clear"},
	} {
		if b.key != "" {
			help = append(help, b.key+" "+b.desc)
		}
	}
	return strings.Join(help, ", ")
}

func joinKinds(kinds []annotation.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, "+")
}
