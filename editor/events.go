package editor

import (
	"github.com/iw2rmb/annotate/annotation"
	"github.com/iw2rmb/annotate/buffer"
)

// ChangeEvent describes the editor state after an effective mutation.
type ChangeEvent struct {
	Version      uint64 // buffer version
	StoreVersion uint64 // bumps whenever the text was replaced
	Cursor       buffer.Pos
	Selection    struct {
		Start, End int // rune offsets
		Active     bool
	}

	Text   string
	Ranges []annotation.Range
	Markup string

	// Last is the last applied format since the text was replaced, if any.
	Last *LastAction
}

type changeKey struct {
	bufVersion    uint64
	formatVersion uint64
}

func (m Model) changeKey() changeKey {
	return changeKey{bufVersion: m.buf.Version(), formatVersion: m.formatVersion}
}

func (m *Model) emitChange() {
	key := m.changeKey()
	if key == m.lastEmitted {
		return
	}
	m.lastEmitted = key
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(m.buildChangeEvent())
}

func (m Model) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version:      m.buf.Version(),
		StoreVersion: m.store.Version(),
		Cursor:       m.buf.Cursor(),
		Text:         m.store.Text(),
		Ranges:       m.store.Ranges(),
		Markup:       m.Markup(),
	}
	if start, end, ok := m.buf.SelectionOffsets(); ok {
		ev.Selection.Start, ev.Selection.End, ev.Selection.Active = start, end, true
	}
	if last, ok := m.LastAction(); ok {
		ev.Last = &last
	}
	return ev
}
