package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/annotate/editor"
	"github.com/iw2rmb/annotate/internal/config"
	"github.com/iw2rmb/annotate/markdown"
)

type model struct {
	editor editor.Model
}

func newModel(cfg *config.Config, seed markdown.Document) model {
	ecfg := editor.Config{
		Text:       seed.Text,
		Ranges:     seed.Ranges,
		Style:      editor.DefaultStyle(),
		Escape:     cfg.Render.Escape,
		Highlight:  cfg.Render.Highlight,
		Theme:      cfg.Render.Theme,
		InputRatio: cfg.Editor.InputRatio,
		OnChange:   logChange,
	}
	return model{editor: editor.New(ecfg)}
}

func logChange(ev editor.ChangeEvent) {
	log.Debug().
		Uint64("version", ev.Version).
		Uint64("store_version", ev.StoreVersion).
		Int("ranges", len(ev.Ranges)).
		Str("markup", ev.Markup).
		Msg("change")
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }
