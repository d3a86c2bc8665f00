// Package buffer is the editable text behind the annotate editor.
//
// The text is kept as a flat rune slice with a line index, and the cursor and
// selection are rune offsets into it: the same coordinate space package
// annotation uses. (Row, Col) positions are derived on demand for rendering,
// vertical movement, and mouse hit-testing. Newlines count as one rune.
package buffer
