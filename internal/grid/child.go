package grid

// Child is an element the grid can measure and place.
type Child interface {
	// Measure returns the child's size for the given constraints together
	// with any WidthTooSmall/HeightTooSmall flags.
	Measure(width, height Spec) (w, h int, state State)

	// Place assigns the child its rectangle in the grid's coordinate space.
	Place(r Rect)

	// Visible reports whether the child takes part in measure and layout.
	// Hidden children keep their cell.
	Visible() bool

	// PreferredSize returns the child's size preference per axis.
	PreferredSize() (width, height Dimension)
}

// Logger receives trace output from measure and layout passes.
type Logger func(format string, args ...interface{})

// Option configures a Grid at construction.
type Option func(*Grid) error
