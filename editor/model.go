package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/annotate/annotation"
	"github.com/iw2rmb/annotate/buffer"
	"github.com/iw2rmb/annotate/markup"
)

// LastAction records the most recent successfully applied format.
type LastAction struct {
	Range annotation.Range
}

// Model is a Bubble Tea component that edits a text and its formatting.
type Model struct {
	cfg      Config
	buf      *buffer.Buffer
	store    *annotation.Store
	renderer markup.Renderer

	focused bool

	width, height int
	viewport      viewport.Model // input pane

	last   *LastAction
	notice string

	// formatVersion changes on every effective store mutation.
	formatVersion uint64

	lastTextVersion uint64
	lastEmitted     changeKey

	mouseAnchor   int // rune offset
	mouseDragging bool
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Bold.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		renderer: markup.Renderer{Escape: cfg.Escape},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.store = annotation.New(m.buf.Text())
	for _, r := range cfg.Ranges {
		if err := m.store.Insert(r); err != nil {
			log.Debug().Err(err).Stringer("range", r).Msg("dropping initial range")
		}
	}
	m.lastTextVersion = m.buf.TextVersion()
	m.lastEmitted = m.changeKey()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Store() *annotation.Store { return m.store }

// Markup renders the current text and ranges with the configured renderer.
func (m Model) Markup() string {
	return m.renderer.Render(m.store.Text(), m.store.Ranges())
}

// LastAction returns the last applied format, if any since the last edit.
func (m Model) LastAction() (LastAction, bool) {
	if m.last == nil {
		return LastAction{}, false
	}
	return *m.last, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = m.inputHeight()

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	m.syncStore()
	m.rebuildContent()
	if _, ok := msg.(tea.KeyMsg); ok && m.focused {
		m.followCursor()
	}
	m.emitChange()
	return m, cmd
}

// ApplyFormat formats the current selection with kind, as a format key does.
// It reports whether a range was inserted.
func (m *Model) ApplyFormat(kind annotation.Kind) bool {
	ok := m.applyFormat(kind)
	m.rebuildContent()
	m.emitChange()
	return ok
}

// ClearFormat removes every range touching the current selection and returns
// how many were removed.
func (m *Model) ClearFormat() int {
	n := m.clearFormat()
	m.rebuildContent()
	m.emitChange()
	return n
}

// syncStore replaces the store text whenever the buffer text changed:
// offsets computed against the old text are meaningless afterwards.
func (m *Model) syncStore() {
	if m.buf.TextVersion() == m.lastTextVersion {
		return
	}
	m.lastTextVersion = m.buf.TextVersion()
	dropped := m.store.Count()
	m.store.Replace(m.buf.Text())
	m.last = nil
	m.notice = ""
	if dropped > 0 {
		m.formatVersion++
	}
	log.Debug().Int("dropped", dropped).Uint64("store_version", m.store.Version()).Msg("text replaced")
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderInput())
}

func (m *Model) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
