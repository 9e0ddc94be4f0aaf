package ui

import (
	"fmt"
	"strings"

	"github.com/henri123lemoine/gridlayout/internal/grid"
)

// State constants (matching app.State)
const (
	StateBrowse = iota
	StateAdd
	StateFilter
	StateHelp
)

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State       int
	Width       int
	Height      int
	Grid        *grid.Grid
	Tiles       []*Tile
	Cursor      int
	Resolved    grid.Resolved
	Mode        string
	ShowRulers  bool
	Status      string
	Err         error
	AddInput    string
	FilterInput string
	FilterValue string
	Help        string
	FullHelp    string
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// Lines used above and below the canvas.
const (
	headerLines = 2
	footerLines = 3
)

// CanvasSize returns the area available to the grid in a terminal of the
// given size.
func CanvasSize(width, height int) (int, int) {
	width = max(width, MinWidth)
	height = max(height, MinHeight)
	return width, height - headerLines - footerLines
}

// Paint draws the grid's tiles onto a canvas of the given size. The grid
// must already have been measured and laid out.
func Paint(g *grid.Grid, tiles []*Tile, cursor, width, height int, rulers bool) *Canvas {
	c := NewCanvas(width, height)
	if g == nil {
		return c
	}

	size := g.MeasuredSize()
	if rulers {
		for i := len(tiles); i < g.Capacity(); i++ {
			c.DrawBox(g.CellRect(i, size.Width, size.Height), RulerBorder, &RulerStyle)
		}
	}
	for i, t := range tiles {
		if t.Hidden {
			c.DrawHiddenCell(g.CellRect(i, size.Width, size.Height), i == cursor)
			continue
		}
		c.DrawTile(t, i == cursor)
	}
	return c
}

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	if p.State == StateHelp {
		return renderHelp(p)
	}

	var b strings.Builder
	b.WriteString(renderHeader(p) + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, p.Width)) + "\n")

	cw, ch := CanvasSize(p.Width, p.Height)
	b.WriteString(Paint(p.Grid, p.Tiles, p.Cursor, cw, ch, p.ShowRulers).String() + "\n")

	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, p.Width)) + "\n")
	b.WriteString(renderStatus(p) + "\n")
	b.WriteString(HelpStyle.Render(p.Help))
	return b.String()
}

func renderHeader(p RenderParams) string {
	if p.Grid == nil {
		return TitleStyle.Render("GRID")
	}
	g := p.Grid
	geometry := fmt.Sprintf("%dx%d  spacing %d/%d  %d/%d tiles  %s → %dx%d",
		g.Rows(), g.Columns(),
		g.HorizontalSpacing(), g.VerticalSpacing(),
		g.ChildCount(), g.Capacity(),
		p.Mode, p.Resolved.Width, p.Resolved.Height)
	if p.Resolved.State != 0 {
		geometry += "  " + ErrorStyle.Render(p.Resolved.State.String())
	}
	return TitleStyle.Render("GRID") + "  " + HeaderStyle.Render(geometry)
}

func renderStatus(p RenderParams) string {
	switch p.State {
	case StateAdd:
		return "label: " + p.AddInput
	case StateFilter:
		return "filter: " + p.FilterInput
	}
	if p.Err != nil {
		return ErrorStyle.Render("Error: " + p.Err.Error())
	}
	if p.FilterValue != "" {
		return StatusStyle.Render(fmt.Sprintf("filter %q", p.FilterValue))
	}
	return StatusStyle.Render(p.Status)
}

func renderHelp(p RenderParams) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("KEYS") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, p.Width)) + "\n\n")
	b.WriteString(p.FullHelp + "\n\n")
	b.WriteString(HelpStyle.Render("press any key to return"))
	return InputStyle.Width(p.Width - 4).Render(b.String())
}
