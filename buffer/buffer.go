package buffer

import "slices"

// Buffer holds text, a cursor, and an optional selection.
//
// The selection runs from anchor to head; head is normally the cursor, but
// callers may place them independently (a mouse drag keeps the anchor fixed).
type Buffer struct {
	text       []rune
	lineStarts []int // offset of the first rune of every line; lineStarts[0] == 0

	// version changes on every effective mutation, textVersion only when the
	// text itself changes.
	version     uint64
	textVersion uint64

	cursor       int
	anchor, head int
	selecting    bool
}

func New(text string) *Buffer {
	b := &Buffer{}
	b.setRunes([]rune(text))
	return b
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the text length in runes, newlines included.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// Line returns the text of row without its newline, or "" when row is out of
// range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[row]
	return string(b.text[start : start+b.lineLen(row)])
}

func (b *Buffer) Cursor() Pos { return b.PosFromOffset(b.cursor) }

func (b *Buffer) CursorOffset() int { return b.cursor }

func (b *Buffer) SetCursor(p Pos) { b.SetCursorOffset(b.OffsetFromPos(p)) }

func (b *Buffer) SetCursorOffset(off int) {
	off = clampInt(off, 0, len(b.text))
	if off == b.cursor {
		return
	}
	b.cursor = off
	b.version++
}

// Selection returns the selected span in document order. An empty selection
// is reported as none.
func (b *Buffer) Selection() (Span, bool) {
	if !b.selecting || b.anchor == b.head {
		return Span{}, false
	}
	return spanOf(b.anchor, b.head), true
}

// SelectionOffsets is Selection unpacked.
func (b *Buffer) SelectionOffsets() (start, end int, ok bool) {
	s, ok := b.Selection()
	return s.Start, s.End, ok
}

// SelectionAnchor returns the fixed end of the active selection, so callers
// can keep its direction when extending it.
func (b *Buffer) SelectionAnchor() (int, bool) {
	if _, ok := b.Selection(); !ok {
		return 0, false
	}
	return b.anchor, true
}

// Select selects from anchor to head and moves the cursor to head. Both are
// clamped into the text; anchor == head clears the selection.
func (b *Buffer) Select(anchor, head int) {
	anchor = clampInt(anchor, 0, len(b.text))
	head = clampInt(head, 0, len(b.text))

	prev, prevOK := b.Selection()
	prevCursor := b.cursor

	b.anchor, b.head, b.selecting = anchor, head, anchor != head
	b.cursor = head

	next, nextOK := b.Selection()
	if prevOK == nextOK && prev == next && prevCursor == b.cursor {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	_, had := b.Selection()
	b.selecting = false
	b.anchor, b.head = 0, 0
	if had {
		b.version++
	}
}

// SetText replaces the whole text, moves the cursor to the end, and clears
// the selection.
func (b *Buffer) SetText(text string) {
	next := []rune(text)
	if slices.Equal(next, b.text) {
		return
	}
	b.setRunes(next)
	b.cursor = len(b.text)
	b.selecting = false
	b.version++
	b.textVersion++
}

func (b *Buffer) setRunes(text []rune) {
	b.text = text
	b.lineStarts = append(b.lineStarts[:0], 0)
	for i, r := range text {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lineStarts) {
		return 0
	}
	end := len(b.text)
	if row+1 < len(b.lineStarts) {
		end = b.lineStarts[row+1] - 1
	}
	return end - b.lineStarts[row]
}
