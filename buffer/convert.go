package buffer

import "sort"

// OffsetFromPos converts p into a rune offset. p is clamped into the
// document first: rows to existing lines, columns to the line length.
func (b *Buffer) OffsetFromPos(p Pos) int {
	row := clampInt(p.Row, 0, len(b.lineStarts)-1)
	return b.lineStarts[row] + clampInt(p.Col, 0, b.lineLen(row))
}

// PosFromOffset converts a rune offset into a position. Offsets outside
// [0, Len()] are clamped. An offset on a newline maps to the end of its line.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = clampInt(off, 0, len(b.text))
	row := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > off }) - 1
	return Pos{Row: row, Col: off - b.lineStarts[row]}
}
