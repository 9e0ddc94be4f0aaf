package grid

// Layout places every visible child inside the final width and height
// granted by the parent. Children measured larger than their cell keep their
// measured size and overflow the cell rather than being clipped.
func (g *Grid) Layout(width, height int) {
	cellW := cellSize(width, g.padding.Horizontal(), g.hSpacing, g.columns)
	cellH := cellSize(height, g.padding.Vertical(), g.vSpacing, g.rows)

	placed := 0
	for i, c := range g.children {
		if !c.Visible() {
			continue
		}
		row, column := g.Cell(i)
		left := g.padding.Left + column*(cellW+g.hSpacing)
		top := g.padding.Top + row*(cellH+g.vSpacing)

		var s size
		if i < len(g.sizes) {
			s = g.sizes[i]
		}
		c.Place(Rect{
			Left:   left,
			Top:    top,
			Right:  left + max(cellW, s.w),
			Bottom: top + max(cellH, s.h),
		})
		placed++
	}
	g.dirty = false
	g.log("grid layout %dx%d: cell %dx%d, placed %d of %d", width, height, cellW, cellH, placed, len(g.children))
}

// CellRect returns the cell that index i occupies for the given final size,
// whether or not a child is there. It does not call Place.
func (g *Grid) CellRect(i, width, height int) Rect {
	cellW := cellSize(width, g.padding.Horizontal(), g.hSpacing, g.columns)
	cellH := cellSize(height, g.padding.Vertical(), g.vSpacing, g.rows)
	row, column := g.Cell(i)
	return NewRect(
		g.padding.Left+column*(cellW+g.hSpacing),
		g.padding.Top+row*(cellH+g.vSpacing),
		cellW, cellH,
	)
}

// Rects returns the cell of every child, hidden children included.
func (g *Grid) Rects(width, height int) []Rect {
	out := make([]Rect, len(g.children))
	for i := range g.children {
		out[i] = g.CellRect(i, width, height)
	}
	return out
}
