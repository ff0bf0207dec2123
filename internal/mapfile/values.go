package mapfile

import (
	"strconv"
	"strings"
)

// Point is a decoded x,y pair.
type Point struct {
	X, Y int
}

// Rect is a decoded rectangle with exclusive right and bottom edges.
type Rect struct {
	Left, Top, Right, Bottom int
}

// splitValues splits a comma separated list and trims each part.
func splitValues(value string) []string {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseInts converts every part to an integer.
func parseInts(field, value string) ([]int, error) {
	parts := splitValues(value)
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, &ErrInvalidValue{Field: field, Value: value, Reason: "not an integer list"}
		}
		values[i] = v
	}
	return values, nil
}

// ParsePoint parses "x,y".
func ParsePoint(value string) (Point, error) {
	v, err := parseInts("point", value)
	if err != nil {
		return Point{}, err
	}
	if len(v) != 2 {
		return Point{}, &ErrInvalidValue{Field: "point", Value: value, Reason: "want 2 values"}
	}
	return Point{X: v[0], Y: v[1]}, nil
}

// ParseRect parses "x,y,width,height" into a rectangle spanning
// (x, y) to (x+width, y+height).
func ParseRect(value string) (Rect, error) {
	v, err := parseInts("rect", value)
	if err != nil {
		return Rect{}, err
	}
	if len(v) != 4 {
		return Rect{}, &ErrInvalidValue{Field: "rect", Value: value, Reason: "want 4 values"}
	}
	return Rect{Left: v[0], Top: v[1], Right: v[0] + v[2], Bottom: v[1] + v[3]}, nil
}

// ParsePoints parses a flat "x1,y1,x2,y2,..." list. A trailing odd value
// is ignored.
func ParsePoints(value string) ([]Point, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	v, err := parseInts("nodes", value)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(v)/2)
	for i := 0; i+1 < len(v); i += 2 {
		points = append(points, Point{X: v[i], Y: v[i+1]})
	}
	return points, nil
}
