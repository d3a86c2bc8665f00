package editor

import tea "github.com/charmbracelet/bubbletea"

// updateMouse handles wheel scrolling anywhere and left-button selection
// inside the input pane. A drag keeps its anchor even when the pointer leaves
// the pane; the head is clamped to the pane edge.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused || m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inInputPane(msg.X, msg.Y) {
			return m, nil
		}
		off := m.offsetAt(msg.X, msg.Y)
		if msg.Shift {
			anchor, ok := m.buf.SelectionAnchor()
			if !ok {
				anchor = m.buf.CursorOffset()
			}
			m.mouseAnchor = anchor
			m.buf.Select(anchor, off)
		} else {
			m.mouseAnchor = off
			m.buf.ClearSelection()
			m.buf.SetCursorOffset(off)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if m.mouseDragging {
			x := clampInt(msg.X, 0, m.viewport.Width-1)
			y := clampInt(msg.Y, 0, m.viewport.Height-1)
			m.buf.Select(m.mouseAnchor, m.offsetAt(x, y))
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func (m Model) inInputPane(x, y int) bool {
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) offsetAt(x, y int) int {
	return m.buf.OffsetFromPos(m.screenToDocPos(x, y))
}
