package buffer

import "testing"

func TestInsertText_AtCursorAndOverSelection(t *testing.T) {
	b := New("hello")
	b.SetCursor(Pos{Col: 5})
	b.InsertText(" world")
	if got, want := b.Text(), "hello world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 11}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.Select(0, 5)
	b.InsertText("goodbye")
	if got, want := b.Text(), "goodbye world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared after insert")
	}
	if got := b.TextVersion(); got != 2 {
		t.Fatalf("text version=%d, want 2", got)
	}
}

func TestInsertNewline_SplitsLine(t *testing.T) {
	b := New("ab")
	b.SetCursor(Pos{Col: 1})
	b.InsertNewline()
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteBackward_JoinsLinesAndStopsAtStart(t *testing.T) {
	b := New("a\nb")
	b.SetCursor(Pos{Row: 1, Col: 0})
	b.DeleteBackward()
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{})
	tv := b.TextVersion()
	b.DeleteBackward()
	if b.TextVersion() != tv {
		t.Fatalf("backspace at start must not change text")
	}
}

func TestDeleteForward_AndSelection(t *testing.T) {
	b := New("abc")
	b.SetCursor(Pos{Col: 1})
	b.DeleteForward()
	if got, want := b.Text(), "ac"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.SetCursor(Pos{Col: 2})
	tv := b.TextVersion()
	b.DeleteForward()
	if b.TextVersion() != tv {
		t.Fatalf("delete at end must not change text")
	}

	b.Select(0, 2)
	b.DeleteForward()
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestInsertText_EmptyDeletesSelection(t *testing.T) {
	b := New("abc")
	b.Select(1, 3)
	b.InsertText("")
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsertRune_ReplacesSelection(t *testing.T) {
	b := New("a\nbcd")
	b.Select(4, 1)
	b.InsertRune('X')
	if got, want := b.Text(), "aXd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
}

func TestDeleteSelection(t *testing.T) {
	b := New("hello world")
	if b.DeleteSelection() {
		t.Fatalf("expected no deletion without a selection")
	}
	if got := b.TextVersion(); got != 0 {
		t.Fatalf("text version=%d, want 0", got)
	}

	b.Select(6, 0)
	if !b.DeleteSelection() {
		t.Fatalf("expected selection deleted")
	}
	if got, want := b.Text(), "world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.CursorOffset(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}
