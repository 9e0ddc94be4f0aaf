package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/gridlayout/internal/config"
	"github.com/henri123lemoine/gridlayout/internal/debug"
	"github.com/henri123lemoine/gridlayout/internal/grid"
	"github.com/henri123lemoine/gridlayout/internal/session"
	"github.com/henri123lemoine/gridlayout/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateAdd
	StateFilter
	StateHelp
)

// Measure modes.
const (
	ModeAtMost = "atmost"
	ModeExact  = "exact"
)

// statusTimeout is how long a status or error message stays visible.
const statusTimeout = 4 * time.Second

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config

	// Data
	grid     *grid.Grid
	tiles    []*ui.Tile
	pinned   []bool // hidden by the user, independent of the filter
	cursor   int
	resolved grid.Resolved
	mode     string

	// State
	state     State
	err       error
	status    string
	statusSeq int

	// Inputs
	addInput    textinput.Model
	filterInput textinput.Model

	// UI
	width  int
	height int
	keys   KeyMap
	help   help.Model

	shouldQuit bool
}

// New creates a new Model from cfg. It fails if the configured geometry or
// tiles are invalid.
func New(cfg *config.Config) (Model, error) {
	g, err := grid.New(append(cfg.GridOptions(),
		grid.WithLogger(debug.Scoped("grid")),
		grid.WithDirtyHook(func() { debug.Log("grid invalidated") }),
	)...)
	if err != nil {
		return Model{}, fmt.Errorf("grid: %w", err)
	}

	m := Model{
		config: cfg,
		grid:   g,
		mode:   cfg.UI.Mode,
		state:  StateBrowse,
		keys:   KeyMapFromConfig(&cfg.Keys),
		help:   help.New(),
	}
	if m.mode != ModeExact {
		m.mode = ModeAtMost
	}

	for _, tc := range cfg.Tiles {
		tile, err := tileFromConfig(tc)
		if err != nil {
			return Model{}, err
		}
		if err := m.appendTile(tile, tc.Hidden); err != nil {
			return Model{}, fmt.Errorf("tile %q: %w", tc.Label, err)
		}
	}

	m.addInput = textinput.New()
	m.addInput.Placeholder = "tile label"
	m.addInput.CharLimit = 40

	m.filterInput = textinput.New()
	m.filterInput.Placeholder = "filter..."
	m.filterInput.CharLimit = 40

	ui.SetTheme(cfg.UI.Theme)
	return m, nil
}

func tileFromConfig(tc config.TileConfig) (*ui.Tile, error) {
	w, h, err := tc.Dimensions()
	if err != nil {
		return nil, err
	}
	tile := ui.NewTile(tc.Label)
	tile.Width, tile.Height = w, h
	return tile, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.err = nil
		}
		return m, nil

	case tea.KeyMsg:
		// Handle quit globally
		if key.Matches(msg, m.keys.Quit) && m.state == StateBrowse {
			m.shouldQuit = true
			return m, tea.Quit
		}
		var next tea.Model
		next, cmd = m.handleKeyPress(msg)
		m = next.(Model)
	}

	if m.grid.NeedsLayout() {
		m.relayout()
	}
	return m, cmd
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAdd:
		return m.handleAddKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		// Any key closes help
		m.state = StateBrowse
		return m, nil
	}
	return m.handleBrowseKeys(msg)
}

// handleBrowseKeys handles key presses on the grid view.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.grid

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.tiles)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		if g.IsFull() {
			return m.fail(fmt.Errorf("%w: grid %dx%d is full", grid.ErrCapacityExceeded, g.Rows(), g.Columns()))
		}
		m.state = StateAdd
		m.addInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Remove):
		return m.removeTile()
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.tiles) {
			m.pinned[m.cursor] = !m.pinned[m.cursor]
			m.applyVisibility()
		}
	case key.Matches(msg, m.keys.AddRow):
		return m.mutate(g.SetRows(g.Rows()+1))
	case key.Matches(msg, m.keys.RemoveRow):
		return m.mutate(g.SetRows(g.Rows()-1))
	case key.Matches(msg, m.keys.AddColumn):
		return m.mutate(g.SetColumns(g.Columns()+1))
	case key.Matches(msg, m.keys.RemoveColumn):
		return m.mutate(g.SetColumns(g.Columns()-1))
	case key.Matches(msg, m.keys.WidenSpacing):
		return m.mutate(g.SetHorizontalSpacing(g.HorizontalSpacing()+1))
	case key.Matches(msg, m.keys.NarrowSpacing):
		return m.mutate(g.SetHorizontalSpacing(g.HorizontalSpacing()-1))
	case key.Matches(msg, m.keys.GrowSpacing):
		return m.mutate(g.SetVerticalSpacing(g.VerticalSpacing()+1))
	case key.Matches(msg, m.keys.ShrinkSpacing):
		return m.mutate(g.SetVerticalSpacing(g.VerticalSpacing()-1))
	case key.Matches(msg, m.keys.Fill):
		if m.mode == ModeExact {
			m.mode = ModeAtMost
		} else {
			m.mode = ModeExact
		}
		m.relayout()
		return m.notify("mode %s", m.mode)
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil
	}
	return m, nil
}

// handleAddKeys handles key presses while typing a new tile label.
func (m Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateBrowse
		m.addInput.Reset()
		m.addInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		label := m.addInput.Value()
		if label == "" {
			return m, nil
		}
		m.state = StateBrowse
		m.addInput.Reset()
		m.addInput.Blur()
		if err := m.appendTile(ui.NewTile(label), false); err != nil {
			return m.fail(err)
		}
		m.cursor = len(m.tiles) - 1
		m.applyVisibility()
		return m.notify("added %q", label)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateBrowse
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.applyVisibility()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.state = StateBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyVisibility()
	return m, cmd
}

// appendTile adds tile to the grid first so a full grid leaves the tile
// list untouched.
func (m *Model) appendTile(tile *ui.Tile, hidden bool) error {
	if err := m.grid.AddChild(tile); err != nil {
		return err
	}
	m.tiles = append(m.tiles, tile)
	m.pinned = append(m.pinned, hidden)
	tile.Hidden = hidden
	return nil
}

func (m Model) removeTile() (tea.Model, tea.Cmd) {
	if len(m.tiles) == 0 {
		return m, nil
	}
	if _, err := m.grid.RemoveChild(m.cursor); err != nil {
		return m.fail(err)
	}
	label := m.tiles[m.cursor].Label
	m.tiles = append(m.tiles[:m.cursor:m.cursor], m.tiles[m.cursor+1:]...)
	m.pinned = append(m.pinned[:m.cursor:m.cursor], m.pinned[m.cursor+1:]...)
	if m.cursor >= len(m.tiles) && m.cursor > 0 {
		m.cursor--
	}
	return m.notify("removed %q", label)
}

// tileSource implements fuzzy.Source for tile label matching.
type tileSource []*ui.Tile

func (t tileSource) String(i int) string {
	return t[i].Label
}

func (t tileSource) Len() int {
	return len(t)
}

// applyVisibility hides tiles the user pinned hidden and tiles that do not
// match the current filter. Hidden tiles keep their cell.
func (m *Model) applyVisibility() {
	matched := make([]bool, len(m.tiles))
	filter := m.filterInput.Value()
	if filter == "" {
		for i := range matched {
			matched[i] = true
		}
	} else {
		for _, match := range fuzzy.FindFrom(filter, tileSource(m.tiles)) {
			matched[match.Index] = true
		}
	}

	changed := false
	for i, t := range m.tiles {
		hidden := m.pinned[i] || !matched[i]
		if t.Hidden != hidden {
			t.Hidden = hidden
			changed = true
		}
	}
	if changed {
		m.grid.Invalidate()
	}
}

// relayout measures the grid against the terminal and lays it out.
func (m *Model) relayout() {
	defer debug.Timed("relayout")()

	w, h := ui.CanvasSize(m.width, m.height)
	width, height := grid.AtMostSpec(w), grid.AtMostSpec(h)
	if m.mode == ModeExact {
		width, height = grid.ExactSpec(w), grid.ExactSpec(h)
	}
	m.resolved = m.grid.Measure(width, height)
	m.grid.Layout(m.resolved.Width, m.resolved.Height)
}

// mutate reports the outcome of a grid setter.
func (m Model) mutate(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		return m.fail(err)
	}
	g := m.grid
	return m.notify("%dx%d, spacing %d/%d", g.Rows(), g.Columns(), g.HorizontalSpacing(), g.VerticalSpacing())
}

func (m Model) notify(format string, args ...interface{}) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = fmt.Sprintf(format, args...)
	cmd := m.clearStatusLater()
	return m, cmd
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	debug.Log("rejected: %v", err)
	m.err = err
	cmd := m.clearStatusLater()
	return m, cmd
}

func (m *Model) clearStatusLater() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(ui.RenderParams{
		State:       int(m.state),
		Width:       m.width,
		Height:      m.height,
		Grid:        m.grid,
		Tiles:       m.tiles,
		Cursor:      m.cursor,
		Resolved:    m.resolved,
		Mode:        m.mode,
		ShowRulers:  m.config.UI.ShowRulers,
		Status:      m.status,
		Err:         m.err,
		AddInput:    m.addInput.View(),
		FilterInput: m.filterInput.View(),
		FilterValue: m.filterInput.Value(),
		Help:        m.help.ShortHelpView(m.keys.ShortHelp()),
		FullHelp:    m.help.FullHelpView(m.keys.FullHelp()),
	})
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Grid returns the arranger backing the playground.
func (m Model) Grid() *grid.Grid {
	return m.grid
}

// Snapshot captures the current geometry and tiles for the session file.
func (m Model) Snapshot(configPath string) session.Snapshot {
	snap := session.Snapshot{
		ConfigPath:        configPath,
		Rows:              m.grid.Rows(),
		Columns:           m.grid.Columns(),
		HorizontalSpacing: m.grid.HorizontalSpacing(),
		VerticalSpacing:   m.grid.VerticalSpacing(),
	}
	for i, t := range m.tiles {
		snap.Tiles = append(snap.Tiles, config.TileConfig{
			Label:  t.Label,
			Width:  t.Width.String(),
			Height: t.Height.String(),
			Hidden: m.pinned[i],
		})
	}
	return snap
}
