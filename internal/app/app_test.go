package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/gridlayout/internal/config"
	"github.com/henri123lemoine/gridlayout/internal/grid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, cfg *config.Config) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func smallConfig(rows, columns int, labels ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Grid = config.GridConfig{Rows: rows, Columns: columns}
	cfg.Tiles = nil
	for _, l := range labels {
		cfg.Tiles = append(cfg.Tiles, config.TileConfig{Label: l})
	}
	return cfg
}

func TestNewModel(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if m.state != StateBrowse {
		t.Errorf("Expected initial state StateBrowse, got %d", m.state)
	}
	if len(m.tiles) != 3 || m.grid.ChildCount() != 3 {
		t.Errorf("Expected 3 tiles, got %d (grid %d)", len(m.tiles), m.grid.ChildCount())
	}
	if m.grid.Rows() != 2 || m.grid.Columns() != 3 {
		t.Errorf("Expected 2x3 grid, got %dx%d", m.grid.Rows(), m.grid.Columns())
	}
	if m.mode != ModeAtMost {
		t.Errorf("Expected mode %q, got %q", ModeAtMost, m.mode)
	}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	if _, err := New(smallConfig(1, 1, "a", "b")); !errors.Is(err, grid.ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded for too many tiles, got %v", err)
	}

	cfg := smallConfig(1, 1, "a")
	cfg.Tiles[0].Width = "enormous"
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for invalid tile dimension")
	}

	cfg = smallConfig(1, 1)
	cfg.Grid.HorizontalSpacing = -1
	if _, err := New(cfg); !errors.Is(err, grid.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative spacing, got %v", err)
	}
}

func TestWindowSizeLaysOutTiles(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	if m.resolved.Width == 0 || m.resolved.Height == 0 {
		t.Fatalf("Expected a resolved size, got %+v", m.resolved)
	}
	for i, tile := range m.tiles {
		if !tile.Placed {
			t.Errorf("Expected tile %d to be placed", i)
		}
	}
	if m.grid.NeedsLayout() {
		t.Error("Expected grid to be laid out")
	}
}

func TestStateTransitions(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	m = press(m, runes("?"))
	if m.state != StateHelp {
		t.Errorf("Expected StateHelp after '?', got %d", m.state)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != StateBrowse {
		t.Errorf("Expected StateBrowse after closing help, got %d", m.state)
	}

	m = press(m, runes("/"))
	if m.state != StateFilter {
		t.Errorf("Expected StateFilter after '/', got %d", m.state)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateBrowse {
		t.Errorf("Expected StateBrowse after exiting filter, got %d", m.state)
	}

	m = press(m, runes("a"))
	if m.state != StateAdd {
		t.Errorf("Expected StateAdd after 'a', got %d", m.state)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateBrowse {
		t.Errorf("Expected StateBrowse after cancelling add, got %d", m.state)
	}
}

func TestAddTile(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	m = press(m, runes("a"), runes("n"), runes("e"), runes("w"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != StateBrowse {
		t.Errorf("Expected StateBrowse after adding, got %d", m.state)
	}
	if len(m.tiles) != 4 || m.grid.ChildCount() != 4 {
		t.Fatalf("Expected 4 tiles, got %d (grid %d)", len(m.tiles), m.grid.ChildCount())
	}
	if m.tiles[3].Label != "new" {
		t.Errorf("Expected new tile label 'new', got %q", m.tiles[3].Label)
	}
	if m.cursor != 3 {
		t.Errorf("Expected cursor on the new tile, got %d", m.cursor)
	}
	if !m.tiles[3].Placed {
		t.Error("Expected the new tile to be laid out")
	}
}

func TestAddWhenFull(t *testing.T) {
	m := newTestModel(t, smallConfig(1, 1, "only"))

	m = press(m, runes("a"))
	if m.state != StateBrowse {
		t.Errorf("Expected to stay in StateBrowse, got %d", m.state)
	}
	if !errors.Is(m.err, grid.ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded, got %v", m.err)
	}
}

func TestShrinkingGeometryIsRejected(t *testing.T) {
	m := newTestModel(t, smallConfig(1, 2, "a", "b"))

	m = press(m, runes("c"))
	if !errors.Is(m.err, grid.ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded, got %v", m.err)
	}
	if m.grid.Columns() != 2 {
		t.Errorf("Expected columns to stay 2, got %d", m.grid.Columns())
	}

	m = press(m, runes("h"))
	if !errors.Is(m.err, grid.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative spacing, got %v", m.err)
	}
	if m.grid.HorizontalSpacing() != 0 {
		t.Errorf("Expected spacing to stay 0, got %d", m.grid.HorizontalSpacing())
	}

	m = press(m, runes("C"), runes("H"), runes("V"), runes("R"))
	if m.err != nil {
		t.Errorf("Expected growth to succeed, got %v", m.err)
	}
	g := m.grid
	if g.Columns() != 3 || g.Rows() != 2 || g.HorizontalSpacing() != 1 || g.VerticalSpacing() != 1 {
		t.Errorf("Unexpected geometry %dx%d spacing %d/%d", g.Rows(), g.Columns(), g.HorizontalSpacing(), g.VerticalSpacing())
	}
}

func TestRemoveTile(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	m = press(m, runes("x"))
	if len(m.tiles) != 2 || m.grid.ChildCount() != 2 {
		t.Fatalf("Expected 2 tiles, got %d (grid %d)", len(m.tiles), m.grid.ChildCount())
	}
	if m.tiles[0].Label != "two" {
		t.Errorf("Expected 'two' to move into the first cell, got %q", m.tiles[0].Label)
	}

	m = press(m, runes("x"), runes("x"), runes("x"))
	if len(m.tiles) != 0 || m.cursor != 0 {
		t.Errorf("Expected empty grid with cursor 0, got %d tiles cursor %d", len(m.tiles), m.cursor)
	}
}

func TestToggleKeepsCell(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, runes(" "))
	if !m.tiles[1].Hidden {
		t.Fatal("Expected second tile to be hidden")
	}
	if m.grid.ChildCount() != 3 {
		t.Errorf("Expected hidden tile to stay in the grid, got %d children", m.grid.ChildCount())
	}
	third := m.tiles[2].Rect
	if row, col := m.grid.Cell(2); row != 0 || col != 2 {
		t.Errorf("Expected third tile at (0,2), got (%d,%d)", row, col)
	}
	if third.Left <= m.tiles[0].Rect.Right {
		t.Errorf("Expected third tile to keep its cell after a hidden sibling, got %v", third)
	}

	m = press(m, runes(" "))
	if m.tiles[1].Hidden {
		t.Error("Expected second tile to be visible again")
	}
}

func TestFilterHidesNonMatching(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	m = press(m, runes("/"), runes("t"), runes("h"), runes("r"))
	want := []bool{true, true, false}
	for i, tile := range m.tiles {
		if tile.Hidden != want[i] {
			t.Errorf("tile %q hidden = %v, want %v", tile.Label, tile.Hidden, want[i])
		}
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	for _, tile := range m.tiles {
		if tile.Hidden {
			t.Errorf("Expected %q to be visible after clearing the filter", tile.Label)
		}
	}
}

func TestFillMode(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	before := m.resolved

	m = press(m, runes("f"))
	if m.mode != ModeExact {
		t.Fatalf("Expected mode %q, got %q", ModeExact, m.mode)
	}
	if m.resolved.Width != 80 || m.resolved.Height != 19 {
		t.Errorf("Expected exact resolve to fill the canvas, got %+v", m.resolved)
	}
	if before.Width >= m.resolved.Width {
		t.Errorf("Expected at-most mode to shrink to content, got %+v", before)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	next, cmd := m.Update(runes("q"))
	if !next.(Model).ShouldQuit() {
		t.Error("Expected ShouldQuit after 'q'")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestClearStatus(t *testing.T) {
	m := newTestModel(t, smallConfig(1, 1, "only"))
	m = press(m, runes("a"))
	if m.err == nil {
		t.Fatal("Expected an error")
	}

	m = press(m, ClearStatusMsg{Seq: m.statusSeq - 1})
	if m.err == nil {
		t.Error("Expected a stale clear to be ignored")
	}
	m = press(m, ClearStatusMsg{Seq: m.statusSeq})
	if m.err != nil {
		t.Errorf("Expected error to be cleared, got %v", m.err)
	}
}

func TestSnapshot(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	m = press(m, runes(" "))

	snap := m.Snapshot("/tmp/config.toml")
	if snap.Rows != 2 || snap.Columns != 3 || snap.HorizontalSpacing != 1 {
		t.Errorf("Unexpected geometry in snapshot: %+v", snap)
	}
	if len(snap.Tiles) != 3 || !snap.Tiles[0].Hidden || snap.Tiles[1].Width != "match" {
		t.Errorf("Unexpected tiles in snapshot: %+v", snap.Tiles)
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Keys
	cfg.Add = "n, +"
	cfg.Quit = ""

	km := KeyMapFromConfig(&cfg)
	if keys := km.Add.Keys(); len(keys) != 2 || keys[0] != "n" || keys[1] != "+" {
		t.Errorf("Expected add keys [n +], got %v", keys)
	}
	if keys := km.Quit.Keys(); len(keys) != 2 || keys[0] != "q" {
		t.Errorf("Expected quit to fall back to defaults, got %v", keys)
	}
	if h := km.Toggle.Help().Key; h != "space" {
		t.Errorf("Expected toggle help key 'space', got %q", h)
	}
}
