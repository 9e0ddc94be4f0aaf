package grid

import "fmt"

// Mode is the way a parent bounds a size on one axis.
type Mode uint8

const (
	Unspecified Mode = iota // No bound
	AtMost                  // Size may not exceed the bound
	Exact                   // Size is the bound
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case AtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// Spec is a one-axis size constraint.
type Spec struct {
	Mode Mode
	Size int
}

// ExactSpec returns a constraint that fixes the size to n.
func ExactSpec(n int) Spec { return Spec{Mode: Exact, Size: clampZero(n)} }

// AtMostSpec returns a constraint bounding the size by n.
func AtMostSpec(n int) Spec { return Spec{Mode: AtMost, Size: clampZero(n)} }

// UnspecifiedSpec returns a constraint with no bound.
func UnspecifiedSpec() Spec { return Spec{Mode: Unspecified} }

// Bound returns the numeric bound, 0 for Unspecified.
func (s Spec) Bound() int {
	if s.Mode == Unspecified {
		return 0
	}
	return s.Size
}

func (s Spec) String() string {
	if s.Mode == Unspecified {
		return s.Mode.String()
	}
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}

// State carries the measurement flags a child or the grid reports.
type State uint8

const (
	// WidthTooSmall is set when the measured width did not fit an AtMost bound.
	WidthTooSmall State = 1 << iota
	// HeightTooSmall is the vertical counterpart of WidthTooSmall.
	HeightTooSmall
)

// Has reports whether all flags in f are set.
func (s State) Has(f State) bool { return s&f == f }

func (s State) String() string {
	switch s {
	case 0:
		return "ok"
	case WidthTooSmall:
		return "width-too-small"
	case HeightTooSmall:
		return "height-too-small"
	default:
		return "width-too-small|height-too-small"
	}
}

// DimensionKind selects how a child wants to be sized on one axis.
type DimensionKind uint8

const (
	WrapContent DimensionKind = iota // As large as the content
	MatchParent                      // As large as the cell
	FixedSize                        // A fixed number of pixels
)

// Dimension is a child's size preference on one axis.
type Dimension struct {
	Kind DimensionKind
	Size int
}

// Wrap returns a content-sized dimension.
func Wrap() Dimension { return Dimension{Kind: WrapContent} }

// Match returns a cell-sized dimension.
func Match() Dimension { return Dimension{Kind: MatchParent} }

// Fixed returns a dimension of n pixels.
func Fixed(n int) Dimension { return Dimension{Kind: FixedSize, Size: clampZero(n)} }

func (d Dimension) String() string {
	switch d.Kind {
	case MatchParent:
		return "match"
	case FixedSize:
		return fmt.Sprintf("%d", d.Size)
	default:
		return "wrap"
	}
}

// ChildSpec derives the constraint a child receives from the cell constraint
// and the child's preferred dimension. A fixed preference always wins; the
// other kinds follow the cell's mode.
func ChildSpec(cell Spec, d Dimension) Spec {
	if d.Kind == FixedSize {
		return ExactSpec(d.Size)
	}
	switch cell.Mode {
	case Exact:
		if d.Kind == MatchParent {
			return ExactSpec(cell.Size)
		}
		return AtMostSpec(cell.Size)
	case AtMost:
		return AtMostSpec(cell.Size)
	default:
		return Spec{Mode: Unspecified, Size: cell.Size}
	}
}

// Resolve reconciles a desired size with the constraint. Exact returns the
// bound, AtMost clamps to the bound and raises tooSmall when the desired size
// did not fit, Unspecified returns the desired size. Flags already present in
// childState are carried into the result.
func Resolve(size int, s Spec, childState, tooSmall State) (int, State) {
	state := childState & tooSmall
	switch s.Mode {
	case Exact:
		return s.Size, state
	case AtMost:
		if size > s.Size {
			return s.Size, state | tooSmall
		}
		return size, state
	default:
		return size, state
	}
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
