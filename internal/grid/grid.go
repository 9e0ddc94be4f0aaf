package grid

import "fmt"

// Grid arranges children into rows*columns uniform cells.
//
// A Grid is not safe for concurrent use. Mutations are expected between
// rendering passes, and Measure must precede Layout in every pass.
type Grid struct {
	rows     int
	columns  int
	hSpacing int
	vSpacing int

	padding   Edges
	minWidth  int
	minHeight int

	children []Child

	// Per-child sizes from the last Measure, indexed like children.
	sizes    []size
	measured Resolved
	dirty    bool

	onDirty func()
	logf    Logger
}

type size struct{ w, h int }

// New returns a 1x1 grid with no spacing, then applies opts in order.
func New(opts ...Option) (*Grid, error) {
	g := &Grid{
		rows:    1,
		columns: 1,
		dirty:   true,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// WithRows sets the initial row count.
func WithRows(n int) Option {
	return func(g *Grid) error { return g.SetRows(n) }
}

// WithColumns sets the initial column count.
func WithColumns(n int) Option {
	return func(g *Grid) error { return g.SetColumns(n) }
}

// WithSpacing sets the initial horizontal and vertical spacing.
func WithSpacing(horizontal, vertical int) Option {
	return func(g *Grid) error {
		if err := g.SetHorizontalSpacing(horizontal); err != nil {
			return err
		}
		return g.SetVerticalSpacing(vertical)
	}
}

// WithPadding sets the host container's padding.
func WithPadding(p Edges) Option {
	return func(g *Grid) error { return g.SetPadding(p) }
}

// WithMinimumSize sets the host's suggested minimum size.
func WithMinimumSize(width, height int) Option {
	return func(g *Grid) error { return g.SetMinimumSize(width, height) }
}

// WithDirtyHook registers fn to be called after every successful mutation
// that invalidates measurement or layout.
func WithDirtyHook(fn func()) Option {
	return func(g *Grid) error {
		g.onDirty = fn
		return nil
	}
}

// WithLogger routes pass traces to logf.
func WithLogger(logf Logger) Option {
	return func(g *Grid) error {
		g.logf = logf
		return nil
	}
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the column count.
func (g *Grid) Columns() int { return g.columns }

// HorizontalSpacing returns the gap between columns.
func (g *Grid) HorizontalSpacing() int { return g.hSpacing }

// VerticalSpacing returns the gap between rows.
func (g *Grid) VerticalSpacing() int { return g.vSpacing }

// Padding returns the host padding.
func (g *Grid) Padding() Edges { return g.padding }

// Capacity returns rows*columns.
func (g *Grid) Capacity() int { return g.rows * g.columns }

// ChildCount returns the number of children, hidden ones included.
func (g *Grid) ChildCount() int { return len(g.children) }

// IsFull reports whether no more children can be added.
func (g *Grid) IsFull() bool { return len(g.children) >= g.Capacity() }

// Children returns a copy of the child list in cell order.
func (g *Grid) Children() []Child {
	out := make([]Child, len(g.children))
	copy(out, g.children)
	return out
}

// ChildAt returns the child at index i, or nil if i is out of range.
func (g *Grid) ChildAt(i int) Child {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// Cell returns the row and column that index i maps to.
func (g *Grid) Cell(i int) (row, column int) {
	if g.columns <= 0 {
		return 0, 0
	}
	return i / g.columns, i % g.columns
}

// NeedsLayout reports whether a mutation happened since the last Layout.
func (g *Grid) NeedsLayout() bool { return g.dirty }

// SetHorizontalSpacing sets the gap between columns.
func (g *Grid) SetHorizontalSpacing(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: horizontal spacing %d should not be less than 0", ErrInvalidArgument, n)
	}
	g.hSpacing = n
	g.invalidate()
	return nil
}

// SetVerticalSpacing sets the gap between rows.
func (g *Grid) SetVerticalSpacing(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: vertical spacing %d should not be less than 0", ErrInvalidArgument, n)
	}
	g.vSpacing = n
	g.invalidate()
	return nil
}

// SetRows sets the row count. It fails if the current children would no
// longer fit.
func (g *Grid) SetRows(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: rows %d should not be less than 0", ErrInvalidArgument, n)
	}
	if len(g.children) > n*g.columns {
		return fmt.Errorf("%w: %d children do not fit %dx%d", ErrCapacityExceeded, len(g.children), n, g.columns)
	}
	g.rows = n
	g.invalidate()
	return nil
}

// SetColumns sets the column count. It fails if the current children would
// no longer fit.
func (g *Grid) SetColumns(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: columns %d should not be less than 0", ErrInvalidArgument, n)
	}
	if len(g.children) > g.rows*n {
		return fmt.Errorf("%w: %d children do not fit %dx%d", ErrCapacityExceeded, len(g.children), g.rows, n)
	}
	g.columns = n
	g.invalidate()
	return nil
}

// SetPadding replaces the host padding.
func (g *Grid) SetPadding(p Edges) error {
	if !p.valid() {
		return fmt.Errorf("%w: padding %+v has a negative side", ErrInvalidArgument, p)
	}
	g.padding = p
	g.invalidate()
	return nil
}

// SetMinimumSize replaces the host's suggested minimum size.
func (g *Grid) SetMinimumSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: minimum size %dx%d is negative", ErrInvalidArgument, width, height)
	}
	g.minWidth, g.minHeight = width, height
	g.invalidate()
	return nil
}

// AddChild appends c to the next free cell.
func (g *Grid) AddChild(c Child) error {
	return g.InsertChild(len(g.children), c)
}

// InsertChild inserts c at index i, shifting later children one cell on.
func (g *Grid) InsertChild(i int, c Child) error {
	if c == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidArgument)
	}
	if g.IsFull() {
		return fmt.Errorf("%w: grid %dx%d is full", ErrCapacityExceeded, g.rows, g.columns)
	}
	if i < 0 || i > len(g.children) {
		return fmt.Errorf("%w: index %d out of range [0,%d]", ErrInvalidArgument, i, len(g.children))
	}
	g.children = append(g.children, nil)
	copy(g.children[i+1:], g.children[i:])
	g.children[i] = c
	g.invalidate()
	return nil
}

// RemoveChild removes the child at index i and returns it.
func (g *Grid) RemoveChild(i int) (Child, error) {
	if i < 0 || i >= len(g.children) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidArgument, i, len(g.children))
	}
	c := g.children[i]
	g.children = append(g.children[:i], g.children[i+1:]...)
	g.invalidate()
	return c, nil
}

// Invalidate marks the geometry dirty. Hosts call it when a child's content
// changed in a way that affects its measurement.
func (g *Grid) Invalidate() { g.invalidate() }

func (g *Grid) invalidate() {
	g.sizes = nil
	g.measured = Resolved{}
	g.dirty = true
	if g.onDirty != nil {
		g.onDirty()
	}
}

func (g *Grid) log(format string, args ...interface{}) {
	if g.logf != nil {
		g.logf(format, args...)
	}
}
