package editor

import "github.com/iw2rmb/annotate/annotation"

// Config configures the editor Model.
type Config struct {
	// Initial text and ranges. Ranges that are invalid for Text or overlap an
	// earlier range of the same kind are dropped.
	Text   string
	Ranges []annotation.Range

	Style  Style
	KeyMap KeyMap

	// Escape escapes user text in the markup pane and in ChangeEvent.Markup.
	Escape bool
	// Highlight colors the markup pane with the given Chroma theme.
	Highlight bool
	Theme     string

	// InputRatio is the share of the height used by the input pane.
	// Default: 0.5.
	InputRatio float64

	// OnChange is called after every effective text, cursor, selection, or
	// formatting change.
	OnChange func(ChangeEvent)
}

func (c Config) inputRatio() float64 {
	if c.InputRatio <= 0 || c.InputRatio >= 1 {
		return 0.5
	}
	return c.InputRatio
}
