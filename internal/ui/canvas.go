package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/henri123lemoine/gridlayout/internal/grid"
)

// cell is one terminal column. A zero rune marks the second column of a
// wide rune and renders as nothing.
type cell struct {
	r     rune
	style *lipgloss.Style
}

// Canvas is a fixed-size grid of styled terminal cells.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// Set writes r at (x, y). Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// DrawBox draws the outline of r with border b.
func (c *Canvas) DrawBox(r grid.Rect, b lipgloss.Border, style *lipgloss.Style) {
	if r.Empty() {
		return
	}
	right, bottom := r.Right-1, r.Bottom-1
	if r.Width() == 1 || r.Height() == 1 {
		for y := r.Top; y <= bottom; y++ {
			for x := r.Left; x <= right; x++ {
				c.Set(x, y, firstRune(b.Top), style)
			}
		}
		return
	}
	for x := r.Left + 1; x < right; x++ {
		c.Set(x, r.Top, firstRune(b.Top), style)
		c.Set(x, bottom, firstRune(b.Bottom), style)
	}
	for y := r.Top + 1; y < bottom; y++ {
		c.Set(r.Left, y, firstRune(b.Left), style)
		c.Set(right, y, firstRune(b.Right), style)
	}
	c.Set(r.Left, r.Top, firstRune(b.TopLeft), style)
	c.Set(right, r.Top, firstRune(b.TopRight), style)
	c.Set(r.Left, bottom, firstRune(b.BottomLeft), style)
	c.Set(right, bottom, firstRune(b.BottomRight), style)
}

// Fill fills the interior of r with ch.
func (c *Canvas) Fill(r grid.Rect, ch rune, style *lipgloss.Style) {
	for y := r.Top + 1; y < r.Bottom-1; y++ {
		for x := r.Left + 1; x < r.Right-1; x++ {
			c.Set(x, y, ch, style)
		}
	}
}

// WriteText writes text inside the border of r, clipped to its interior.
func (c *Canvas) WriteText(r grid.Rect, text string, style *lipgloss.Style) {
	for i, line := range strings.Split(text, "\n") {
		y := r.Top + 1 + i
		if y >= r.Bottom-1 {
			return
		}
		x := r.Left + 1
		for _, ch := range line {
			w := runewidth.RuneWidth(ch)
			if x+w > r.Right-1 {
				break
			}
			c.Set(x, y, ch, style)
			if w == 2 {
				c.Set(x+1, y, 0, style)
			}
			x += max(1, w)
		}
	}
}

// DrawTile draws a placed tile.
func (c *Canvas) DrawTile(t *Tile, selected bool) {
	if !t.Placed {
		return
	}
	style, border := &TileStyle, TileBorder
	if selected {
		style, border = &SelectedStyle, SelectedBorder
	}
	c.DrawBox(t.Rect, border, style)
	c.WriteText(t.Rect, t.Label, style)
}

// DrawHiddenCell shades the cell of a hidden tile.
func (c *Canvas) DrawHiddenCell(r grid.Rect, selected bool) {
	style := &HiddenStyle
	if selected {
		style = &SelectedStyle
	}
	c.DrawBox(r, RulerBorder, style)
	c.Fill(r, []rune(SymbolHidden)[0], &HiddenStyle)
}

// String renders the canvas, applying styles to runs of equally styled cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			if cl.r != 0 {
				run.WriteRune(cl.r)
			}
		}
		flush()
	}
	return b.String()
}

// Plain renders the canvas without styles.
func (c *Canvas) Plain() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		rs := make([]rune, 0, len(row))
		for _, cl := range row {
			if cl.r != 0 {
				rs = append(rs, cl.r)
			}
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
