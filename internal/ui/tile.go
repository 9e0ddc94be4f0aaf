package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/gridlayout/internal/grid"
)

// Tile is a bordered text label that takes part in grid layout.
type Tile struct {
	Label  string
	Width  grid.Dimension
	Height grid.Dimension
	Hidden bool

	// Rect is the rectangle from the most recent layout pass. Placed is
	// false until the tile has been laid out at least once.
	Rect   grid.Rect
	Placed bool
}

// NewTile returns a content-sized tile.
func NewTile(label string) *Tile {
	return &Tile{Label: label, Width: grid.Wrap(), Height: grid.Wrap()}
}

// IntrinsicSize returns the size the label needs including its border.
func (t *Tile) IntrinsicSize() (width, height int) {
	return lipgloss.Width(t.Label) + 2, lipgloss.Height(t.Label) + 2
}

// Measure implements grid.Child.
func (t *Tile) Measure(width, height grid.Spec) (int, int, grid.State) {
	iw, ih := t.IntrinsicSize()
	w, ws := measureAxis(iw, width, grid.WidthTooSmall)
	h, hs := measureAxis(ih, height, grid.HeightTooSmall)
	return w, h, ws | hs
}

// Place implements grid.Child.
func (t *Tile) Place(r grid.Rect) {
	t.Rect = r
	t.Placed = true
}

// Visible implements grid.Child.
func (t *Tile) Visible() bool { return !t.Hidden }

// PreferredSize implements grid.Child.
func (t *Tile) PreferredSize() (grid.Dimension, grid.Dimension) {
	return t.Width, t.Height
}

func measureAxis(intrinsic int, s grid.Spec, tooSmall grid.State) (int, grid.State) {
	switch s.Mode {
	case grid.Exact:
		return s.Size, 0
	case grid.AtMost:
		if intrinsic > s.Size {
			return s.Size, tooSmall
		}
		return intrinsic, 0
	default:
		return intrinsic, 0
	}
}
