package editor

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/annotate/annotation"
)

func (m *Model) applyFormat(kind annotation.Kind) bool {
	start, end, ok := m.buf.SelectionOffsets()
	if !ok {
		return false
	}
	r := annotation.Range{Start: start, End: end, Kind: kind}

	err := m.store.Insert(r)
	switch {
	case err == nil:
		m.formatVersion++
		m.last = &LastAction{Range: r}
		m.notice = ""
		log.Debug().Stringer("range", r).Int("count", m.store.Count()).Msg("format applied")
	case errors.Is(err, annotation.ErrOverlap):
		m.notice = fmt.Sprintf("%s already covers part of [%d, %d)", kind, start, end)
		log.Debug().Err(err).Msg("format rejected")
	default:
		// Selection offsets always come from the current text, so this is a
		// buffer/store desync.
		log.Error().Err(err).Uint64("store_version", m.store.Version()).Msg("format insert failed")
		return false
	}

	// Caret goes to the selection end, as after a toolbar click.
	m.buf.SetCursorOffset(end)
	m.buf.ClearSelection()
	return err == nil
}

func (m *Model) clearFormat() int {
	start, end, ok := m.buf.SelectionOffsets()
	if !ok {
		return 0
	}
	n := m.store.RemoveOverlapping(start, end)
	if n > 0 {
		m.formatVersion++
		if m.last != nil && m.last.Range.Intersects(start, end) {
			m.last = nil
		}
	}
	m.notice = fmt.Sprintf("cleared %d range(s) in [%d, %d)", n, start, end)
	log.Debug().Int("start", start).Int("end", end).Int("removed", n).Msg("formatting cleared")
	return n
}
