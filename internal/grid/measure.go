package grid

// Resolved is the outcome of a Measure pass.
type Resolved struct {
	Width  int
	Height int
	State  State
}

// Measure computes the grid's desired size under the parent's constraints.
//
// A first pass measures children against cells derived from the parent's
// bounds. When either axis is not Exact the cells cannot be known until
// children report their content size, so a second pass measures them again
// against cells sized to the largest child on each axis. The maxima and state
// are recomputed from scratch by that pass.
func (g *Grid) Measure(width, height Spec) Resolved {
	cellW := cellSize(width.Bound(), g.padding.Horizontal(), g.hSpacing, g.columns)
	cellH := cellSize(height.Bound(), g.padding.Vertical(), g.vSpacing, g.rows)

	g.sizes = make([]size, len(g.children))
	maxW, maxH, state := g.measureChildren(Spec{Mode: width.Mode, Size: cellW}, Spec{Mode: height.Mode, Size: cellH})
	passes := 1

	if width.Mode != Exact || height.Mode != Exact {
		// Both axes take the largest child as their cell, so siblings of a
		// child that overflows an Exact cell are measured at its size.
		maxW, maxH, state = g.measureChildren(Spec{Mode: width.Mode, Size: maxW}, Spec{Mode: height.Mode, Size: maxH})
		passes++
	}

	contentW := maxW*g.columns + g.hSpacing*gaps(g.columns) + g.padding.Horizontal()
	contentH := maxH*g.rows + g.vSpacing*gaps(g.rows) + g.padding.Vertical()

	w, wState := Resolve(max(contentW, g.minWidth), width, state, WidthTooSmall)
	h, hState := Resolve(max(contentH, g.minHeight), height, state, HeightTooSmall)

	g.measured = Resolved{Width: w, Height: h, State: wState | hState}
	g.log("grid measure %s x %s: %d pass(es), max child %dx%d, resolved %dx%d (%s)",
		width, height, passes, maxW, maxH, w, h, g.measured.State)
	return g.measured
}

// MeasuredSize returns the result of the last Measure, or the zero value if
// the grid was mutated since.
func (g *Grid) MeasuredSize() Resolved { return g.measured }

// measureChildren measures every visible child against the given cell
// constraints and returns the largest extents and the combined state.
func (g *Grid) measureChildren(cellW, cellH Spec) (maxW, maxH int, state State) {
	for i, c := range g.children {
		if !c.Visible() {
			g.sizes[i] = size{}
			continue
		}
		pw, ph := c.PreferredSize()
		w, h, s := c.Measure(ChildSpec(cellW, pw), ChildSpec(cellH, ph))
		g.sizes[i] = size{w: w, h: h}
		maxW = max(maxW, w)
		maxH = max(maxH, h)
		state |= s
	}
	return maxW, maxH, state
}

// cellSize splits the space left after padding and gaps evenly across n
// cells. Zero cells yield zero.
func cellSize(bound, padding, spacing, n int) int {
	if n <= 0 {
		return 0
	}
	return max(0, (bound-padding-spacing*(n-1))/n)
}

func gaps(n int) int {
	if n <= 1 {
		return 0
	}
	return n - 1
}
