package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/annotate/buffer"
)

// screenToDocPos maps input-pane-local mouse coordinates to a document
// position. (0,0) is the top-left of the visible input pane. Clicks past the
// end of a line land at the line end; clicks on the right half of a wide rune
// land after it.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	line := []rune(m.buf.Line(row))

	x = max(x, 0)
	cell := 0
	for col, r := range line {
		w := cellWidth(r)
		if x < cell+w {
			if w > 1 && x-cell >= (w+1)/2 {
				return buffer.Pos{Row: row, Col: col + 1}
			}
			return buffer.Pos{Row: row, Col: col}
		}
		cell += w
	}
	return buffer.Pos{Row: row, Col: len(line)}
}

// cellWidth is the number of terminal cells displayRune(r) occupies;
// combining marks take none.
func cellWidth(r rune) int {
	return runewidth.RuneWidth(displayRune(r))
}

// displayRune maps control characters (tabs included) to a single visible cell.
func displayRune(r rune) rune {
	if r == '\t' || r < 0x20 || r == 0x7f {
		return ' '
	}
	return r
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
