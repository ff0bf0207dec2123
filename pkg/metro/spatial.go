package metro

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// spatialIndex provides O(log n) hit testing over element bounding boxes
// using an R-tree. Per-frame visibility does not go through the tree: it
// scans the program's parallel arrays, which is cheaper for a full pass.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedElement wraps an element for R-tree storage.
type indexedElement struct {
	element *Element
	order   int // position in the program's sorted element array
}

// epsilon inflates degenerate boxes; the R-tree requires non-zero lengths.
const epsilon = 0.0001

// rectToRtree converts an integer rectangle to an R-tree rectangle.
func rectToRtree(left, top, right, bottom float64) rtreego.Rect {
	point := rtreego.Point{left, top}

	width := right - left
	height := bottom - top
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// Bounds implements rtreego.Spatial.
func (ie *indexedElement) Bounds() rtreego.Rect {
	b := ie.element.bounds
	return rectToRtree(float64(b.Left), float64(b.Top), float64(b.Right), float64(b.Bottom))
}

// newSpatialIndex indexes elements in their draw order.
func newSpatialIndex(elements []*Element) *spatialIndex {
	// 2D, min=25 children, max=50 children
	rtree := rtreego.NewTree(2, 25, 50)
	for i, e := range elements {
		rtree.Insert(&indexedElement{element: e, order: i})
	}
	return &spatialIndex{rtree: rtree}
}

// search returns the elements intersecting the query rectangle in draw
// order, topmost last.
func (idx *spatialIndex) search(query rtreego.Rect) []*Element {
	spatials := idx.rtree.SearchIntersect(query)

	hits := make([]*indexedElement, 0, len(spatials))
	for _, spatial := range spatials {
		hits = append(hits, spatial.(*indexedElement))
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].order < hits[j].order
	})

	result := make([]*Element, len(hits))
	for i, hit := range hits {
		result[i] = hit.element
	}
	return result
}
