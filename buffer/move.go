package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or document start for MoveDoc
	DirEnd  // line end, or document end for MoveDoc
)

// Move describes one cursor motion. With Extend the selection grows from its
// anchor (or from the old cursor) to the new cursor; without it the selection
// is dropped.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := clampInt(b.target(from, m), 0, len(b.text))

	if m.Extend {
		anchor := from
		if a, ok := b.SelectionAnchor(); ok {
			anchor = a
		}
		b.Select(anchor, to)
		return
	}

	_, had := b.Selection()
	if !had && to == from {
		return
	}
	b.selecting = false
	b.cursor = to
	b.version++
}

func (b *Buffer) target(off int, m Move) int {
	switch m.Unit {
	case MoveRune:
		switch m.Dir {
		case DirLeft:
			return off - 1
		case DirRight:
			return off + 1
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return b.prevWordStart(off)
		case DirRight:
			return b.nextWordEnd(off)
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return 0
		default:
			return len(b.text)
		}
	}
	return b.lineTarget(off, m.Dir)
}

// lineTarget handles vertical motion and line home/end. Moving up from the
// first line goes to the document start, down from the last to its end.
func (b *Buffer) lineTarget(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	last := len(b.lineStarts) - 1

	switch dir {
	case DirHome:
		p.Col = 0
	case DirEnd:
		p.Col = b.lineLen(p.Row)
	case DirUp:
		if p.Row == 0 {
			return 0
		}
		p.Row--
	case DirDown:
		if p.Row == last {
			return len(b.text)
		}
		p.Row++
	default:
		return off
	}
	return b.OffsetFromPos(p)
}

// Word motion skips whitespace, then a run of non-whitespace. It never
// crosses a newline.
func (b *Buffer) prevWordStart(off int) int {
	lineStart := b.lineStarts[b.PosFromOffset(off).Row]
	for off > lineStart && unicode.IsSpace(b.text[off-1]) {
		off--
	}
	for off > lineStart && !unicode.IsSpace(b.text[off-1]) {
		off--
	}
	return off
}

func (b *Buffer) nextWordEnd(off int) int {
	row := b.PosFromOffset(off).Row
	lineEnd := b.lineStarts[row] + b.lineLen(row)
	for off < lineEnd && unicode.IsSpace(b.text[off]) {
		off++
	}
	for off < lineEnd && !unicode.IsSpace(b.text[off]) {
		off++
	}
	return off
}
