package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/annotate/annotation"
	"github.com/iw2rmb/annotate/buffer"
)

// KeyMap defines the editor key bindings.
//
// ctrl+i is indistinguishable from tab in most terminals, so Italic defaults
// to ctrl+t with alt+i as a fallback.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete, Enter key.Binding

	Bold, Italic key.Binding
	ClearFormat  key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  bind("←", "left", "left"),
		Right: bind("→", "right", "right"),
		Up:    bind("↑", "up", "up"),
		Down:  bind("↓", "down", "down"),

		ShiftLeft:  bind("shift+←", "select left", "shift+left"),
		ShiftRight: bind("shift+→", "select right", "shift+right"),
		ShiftUp:    bind("shift+↑", "select up", "shift+up"),
		ShiftDown:  bind("shift+↓", "select down", "shift+down"),

		WordLeft:  bind("alt+←", "word left", "alt+left", "ctrl+left"),
		WordRight: bind("alt+→", "word right", "alt+right", "ctrl+right"),
		Home:      bind("home", "line start", "home", "ctrl+a"),
		End:       bind("end", "line end", "end", "ctrl+e"),
		DocStart:  bind("ctrl+home", "text start", "ctrl+home"),
		DocEnd:    bind("ctrl+end", "text end", "ctrl+end"),

		Backspace: bind("backspace", "delete left", "backspace", "ctrl+h"),
		Delete:    bind("del", "delete right", "delete"),
		Enter:     bind("enter", "newline", "enter"),

		Bold:        bind("ctrl+b", "bold", "ctrl+b"),
		Italic:      bind("ctrl+t", "italic", "ctrl+t", "alt+i"),
		ClearFormat: bind("ctrl+x", "clear", "ctrl+x", "alt+c"),
	}
}

type motion struct {
	binding key.Binding
	move    buffer.Move
}

func (km KeyMap) motions() []motion {
	mv := func(b key.Binding, unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) motion {
		return motion{binding: b, move: buffer.Move{Unit: unit, Dir: dir, Extend: extend}}
	}
	return []motion{
		mv(km.Left, buffer.MoveRune, buffer.DirLeft, false),
		mv(km.Right, buffer.MoveRune, buffer.DirRight, false),
		mv(km.Up, buffer.MoveLine, buffer.DirUp, false),
		mv(km.Down, buffer.MoveLine, buffer.DirDown, false),
		mv(km.ShiftLeft, buffer.MoveRune, buffer.DirLeft, true),
		mv(km.ShiftRight, buffer.MoveRune, buffer.DirRight, true),
		mv(km.ShiftUp, buffer.MoveLine, buffer.DirUp, true),
		mv(km.ShiftDown, buffer.MoveLine, buffer.DirDown, true),
		mv(km.WordLeft, buffer.MoveWord, buffer.DirLeft, false),
		mv(km.WordRight, buffer.MoveWord, buffer.DirRight, false),
		mv(km.Home, buffer.MoveLine, buffer.DirHome, false),
		mv(km.End, buffer.MoveLine, buffer.DirEnd, false),
		mv(km.DocStart, buffer.MoveDoc, buffer.DirHome, false),
		mv(km.DocEnd, buffer.MoveDoc, buffer.DirEnd, false),
	}
}

// formatBinding returns the binding that applies kind.
func (km KeyMap) formatBinding(kind annotation.Kind) key.Binding {
	switch kind {
	case annotation.Bold:
		return km.Bold
	case annotation.Italic:
		return km.Italic
	}
	return key.Binding{}
}
