package grid

import "fmt"

// Rect is a placed rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns Right-Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Edges holds per-side insets such as padding.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns equal insets on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns Left+Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns Top+Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

func (e Edges) valid() bool {
	return e.Top >= 0 && e.Right >= 0 && e.Bottom >= 0 && e.Left >= 0
}
