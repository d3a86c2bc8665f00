package buffer

import "slices"

// InsertText inserts s at the cursor, replacing the selection if there is
// one. Inserting "" only deletes the selection.
func (b *Buffer) InsertText(s string) {
	span, ok := b.Selection()
	if !ok {
		span = Span{Start: b.cursor, End: b.cursor}
	}
	b.replace(span, []rune(s))
}

func (b *Buffer) InsertRune(r rune) { b.replace(b.insertionSpan(), []rune{r}) }

func (b *Buffer) InsertNewline() { b.InsertRune('\n') }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if b.DeleteSelection() {
		return
	}
	if b.cursor > 0 {
		b.replace(Span{Start: b.cursor - 1, End: b.cursor}, nil)
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.DeleteSelection() {
		return
	}
	if b.cursor < len(b.text) {
		b.replace(Span{Start: b.cursor, End: b.cursor + 1}, nil)
	}
}

// DeleteSelection deletes the selected text and reports whether there was
// any. Backspace and delete go through it before touching single runes.
func (b *Buffer) DeleteSelection() bool {
	span, ok := b.Selection()
	if !ok {
		return false
	}
	b.replace(span, nil)
	return true
}

func (b *Buffer) insertionSpan() Span {
	if span, ok := b.Selection(); ok {
		return span
	}
	return Span{Start: b.cursor, End: b.cursor}
}

// replace swaps span for rs, leaves the cursor after the inserted runes, and
// clears the selection. Replacing nothing with nothing is a no-op.
func (b *Buffer) replace(span Span, rs []rune) {
	if span.IsEmpty() && len(rs) == 0 {
		return
	}
	next := slices.Concat(b.text[:span.Start], rs, b.text[span.End:])
	b.setRunes(next)
	b.cursor = span.Start + len(rs)
	b.selecting = false
	b.version++
	b.textVersion++
}
