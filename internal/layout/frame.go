package layout

// Frame is an axis-aligned rectangular tile of the canvas.
// Coordinates are canvas units with the origin at the top-left.
type Frame struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the x coordinate one past the frame's right edge.
func (f Frame) Right() int { return f.X + f.Width }

// Bottom returns the y coordinate one past the frame's bottom edge.
func (f Frame) Bottom() int { return f.Y + f.Height }

// CenterX returns the x coordinate of the frame's center.
func (f Frame) CenterX() int { return f.X + f.Width/2 }

// CenterY returns the y coordinate of the frame's center.
func (f Frame) CenterY() int { return f.Y + f.Height/2 }

// Contains reports whether the point (px, py) lies inside the frame.
func (f Frame) Contains(px, py int) bool {
	return px >= f.X && px < f.Right() && py >= f.Y && py < f.Bottom()
}

// Intersects reports whether the interiors of two frames overlap.
func (f Frame) Intersects(other Frame) bool {
	return f.X < other.Right() && other.X < f.Right() &&
		f.Y < other.Bottom() && other.Y < f.Bottom()
}

// Union returns the smallest frame covering both f and other.
func (f Frame) Union(other Frame) Frame {
	minX := min(f.X, other.X)
	minY := min(f.Y, other.Y)
	maxX := max(f.Right(), other.Right())
	maxY := max(f.Bottom(), other.Bottom())
	return Frame{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// covers reports whether f fully contains other.
func (f Frame) covers(other Frame) bool {
	return f.X <= other.X && f.Y <= other.Y &&
		f.Right() >= other.Right() && f.Bottom() >= other.Bottom()
}

// overlapX returns the horizontal overlap extent between two frames,
// clamped to zero.
func (f Frame) overlapX(other Frame) int {
	overlap := min(f.Right(), other.Right()) - max(f.X, other.X)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// overlapY returns the vertical overlap extent between two frames,
// clamped to zero.
func (f Frame) overlapY(other Frame) int {
	overlap := min(f.Bottom(), other.Bottom()) - max(f.Y, other.Y)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// Direction identifies a navigation direction on the canvas.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}
