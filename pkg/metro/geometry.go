package metro

// Point is a position in map coordinate space.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle in map coordinate space.
//
// Right and Bottom are exclusive edges for intersection tests, so a
// rectangle with Left == Right is degenerate (zero width) but still
// participates in queries along its other axis.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Center returns the rectangle center in floating point coordinates.
func (r Rect) Center() (float64, float64) {
	return float64(r.Left+r.Right) / 2, float64(r.Top+r.Bottom) / 2
}

// Intersects reports whether the two rectangles overlap.
//
// The test is strict on every edge: rectangles that only touch do not
// intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Contains returns true if the point (x, y) lies inside the rectangle,
// edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.Left) && x <= float64(r.Right) &&
		y >= float64(r.Top) && y <= float64(r.Bottom)
}

// Inset returns a new Rect grown by margin on all sides.
// A negative margin shrinks the rectangle.
func (r Rect) Inset(margin int) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// RectF is a floating point rectangle, typically a viewport expressed in
// map coordinates.
type RectF struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r RectF) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r RectF) Height() float64 { return r.Bottom - r.Top }

// expand grows the viewport by margin and truncates it to integer map
// coordinates.
func (r RectF) expand(margin int) Rect {
	m := float64(margin)
	return Rect{
		Left:   int(r.Left - m),
		Top:    int(r.Top - m),
		Right:  int(r.Right + m),
		Bottom: int(r.Bottom + m),
	}
}

// boundsOf calculates the bounding rectangle of a polyline.
func boundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	first := points[0]
	bounds := Rect{Left: first.X, Top: first.Y, Right: first.X, Bottom: first.Y}

	for _, p := range points[1:] {
		if p.X < bounds.Left {
			bounds.Left = p.X
		}
		if p.X > bounds.Right {
			bounds.Right = p.X
		}
		if p.Y < bounds.Top {
			bounds.Top = p.Y
		}
		if p.Y > bounds.Bottom {
			bounds.Bottom = p.Y
		}
	}

	return bounds
}
