package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/annotate/annotation"
)

// updateKey dispatches one key press. Order matters: pastes are always
// literal text, formatting keys win over editing keys, and anything left
// that carries runes is typed.
func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	for _, kind := range annotation.Kinds() {
		if key.Matches(msg, km.formatBinding(kind)) {
			m.applyFormat(kind)
			return m, nil
		}
	}
	if key.Matches(msg, km.ClearFormat) {
		m.clearFormat()
		return m, nil
	}

	for _, mo := range km.motions() {
		if key.Matches(msg, mo.binding) {
			m.buf.Move(mo.move)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	case msg.Type == tea.KeyTab:
		m.buf.InsertRune('\t')
	case msg.Type == tea.KeySpace:
		m.buf.InsertRune(' ')
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.buf.InsertText(string(msg.Runes))
	}
	return m, nil
}

func normalizeNewlines(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}
