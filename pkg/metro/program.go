package metro

import (
	"sort"
)

// Program is the render pipeline for one map.
//
// A program turns a map into a flat list of drawable elements sorted in
// draw order and keeps, next to it, three index-aligned arrays (visibility,
// bounding box, type) that per-frame viewport queries scan. The arrays are
// always rebuilt together.
//
// Program is not safe for concurrent use. Construction, filter, visibility,
// selection and drawing must all run on the goroutine that owns it.
//
// Example:
//
//	program := metro.NewProgram(m)
//	program.RecomputeVisible(metro.RectF{Left: 0, Top: 0, Right: 800, Bottom: 600})
//	program.Draw(gg.NewContext(800, 600))
type Program struct {
	m    *Map
	opts RenderOptions

	elements   []*Element
	visibility []bool
	bounds     []Rect
	types      []ElementType

	renderFilter ElementType

	// Entity to element lookups used by UpdateSelection.
	segmentIndex            map[int]*Element // segment ID
	stationIndex            []*Element       // station index
	stationNameIndex        []*Element       // station index
	transferBackgroundIndex []*Element       // transfer index
	transferIndex           []*Element       // transfer index

	spatial *spatialIndex
	extent  Rect
}

// NewProgram builds the render program of m with default options.
func NewProgram(m *Map) *Program {
	return NewProgramWithOptions(m, DefaultRenderOptions())
}

// NewProgramWithOptions builds the render program of m.
//
// Elements are built in three passes (lines, transfers, stations), stably
// sorted by type and snapshotted. Nothing is visible until the first
// viewport query. The render filter starts as All.
//
// Segments or transfers referencing station indices out of range are a
// broken map and cause a panic.
func NewProgramWithOptions(m *Map, opts RenderOptions) *Program {
	p := &Program{
		m:                       m,
		opts:                    opts,
		segmentIndex:            make(map[int]*Element),
		stationIndex:            make([]*Element, len(m.Stations)),
		stationNameIndex:        make([]*Element, len(m.Stations)),
		transferBackgroundIndex: make([]*Element, len(m.Transfers)),
		transferIndex:           make([]*Element, len(m.Transfers)),
	}

	s := newStyle(m, opts)
	queue := make([]*Element, 0, len(m.Segments)+2*len(m.Transfers)+2*len(m.Stations))
	queue = p.buildLines(s, queue)
	queue = p.buildTransfers(s, queue)
	queue = p.buildStations(s, queue)

	// Equal types keep their build order.
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].typ < queue[j].typ
	})
	p.elements = queue
	p.snapshot()
	p.renderFilter = All

	p.spatial = newSpatialIndex(p.elements)
	p.extent = p.computeExtent()

	Logger().Debug("render program built",
		"map", m.Name,
		"elements", len(p.elements),
		"stations", len(m.Stations),
		"segments", len(m.Segments),
		"transfers", len(m.Transfers))

	return p
}

// buildLines creates one line element per drawable segment. For a pair of
// opposite segments only one element is built: the direction that carries
// routing nodes wins, otherwise the first one visited.
func (p *Program) buildLines(s *style, queue []*Element) []*Element {
	m := p.m
	exclusions := make(map[int]struct{})

	for i := range m.Segments {
		segment := &m.Segments[i]
		if _, excluded := exclusions[segment.ID]; excluded {
			continue
		}
		if !segment.Visible() {
			continue
		}
		from := &m.Stations[segment.From]
		to := &m.Stations[segment.To]
		if from.Point == nil || to.Point == nil {
			continue
		}

		opposite := m.Segment(segment.To, segment.From)
		nodes := m.SegmentNodes(segment.ID)
		var reverseNodes []Point
		if opposite != nil {
			reverseNodes = m.SegmentNodes(opposite.ID)
		}

		if nodes == nil && reverseNodes != nil {
			// The opposite direction carries the routed path.
			continue
		}

		element := newSegmentElement(s, m, segment, nodes)
		queue = append(queue, element)
		p.segmentIndex[segment.ID] = element
		if opposite != nil {
			exclusions[opposite.ID] = struct{}{}
		}
	}

	return queue
}

// buildTransfers creates a background and a foreground element per visible
// transfer whose stations are both placed on the schematic.
func (p *Program) buildTransfers(s *style, queue []*Element) []*Element {
	m := p.m
	for i := range m.Transfers {
		transfer := &m.Transfers[i]
		if !transfer.Visible() {
			continue
		}
		if m.Stations[transfer.From].Point == nil || m.Stations[transfer.To].Point == nil {
			continue
		}

		background := newTransferBackgroundElement(s, m, i)
		element := newTransferElement(s, m, i)
		queue = append(queue, background, element)

		p.transferBackgroundIndex[i] = background
		p.transferIndex[i] = element
	}
	return queue
}

// buildStations creates a dot per placed station and a label for stations
// that also carry a label rectangle and a name.
func (p *Program) buildStations(s *style, queue []*Element) []*Element {
	m := p.m

	working := make([]bool, len(m.Stations))
	for i := range m.Segments {
		segment := &m.Segments[i]
		if segment.Working() {
			working[segment.From] = true
			working[segment.To] = true
		}
	}

	for i := range m.Stations {
		station := &m.Stations[i]
		if station.Point == nil {
			continue
		}

		element := newStationElement(s, m, i, working[i])
		queue = append(queue, element)
		p.stationIndex[i] = element

		if station.Label != nil && station.Name != "" {
			name := newStationNameElement(s, m, i)
			queue = append(queue, name)
			p.stationNameIndex[i] = name
		}
	}
	return queue
}

// snapshot rebuilds the parallel arrays from the element list and resets
// visibility.
func (p *Program) snapshot() {
	count := len(p.elements)
	visibility := make([]bool, count)
	bounds := make([]Rect, count)
	types := make([]ElementType, count)

	for i, e := range p.elements {
		bounds[i] = e.bounds
		types[i] = e.typ
	}

	p.visibility = visibility
	p.bounds = bounds
	p.types = types
}

func (p *Program) computeExtent() Rect {
	if len(p.bounds) == 0 {
		return Rect{}
	}
	extent := p.bounds[0]
	for _, b := range p.bounds[1:] {
		extent = extent.Union(b)
	}
	return extent
}

// Map returns the map the program was built from.
func (p *Program) Map() *Map { return p.m }

// Len returns the number of elements.
func (p *Program) Len() int { return len(p.elements) }

// Element returns the i-th element in draw order.
func (p *Program) Element(i int) *Element { return p.elements[i] }

// Elements returns all elements in draw order.
// The slice is owned by the program and must not be modified.
func (p *Program) Elements() []*Element { return p.elements }

// Extent returns the union of all element bounding boxes.
func (p *Program) Extent() Rect { return p.extent }

// RenderFilter returns the active type filter.
func (p *Program) RenderFilter() ElementType { return p.renderFilter }

// SetRenderFilter replaces the type filter. It applies from the next
// RecomputeVisible call on; current visibility is left untouched.
func (p *Program) SetRenderFilter(filter ElementType) {
	p.renderFilter = filter
}

// RecomputeVisible marks as visible exactly the elements whose type passes
// the render filter and whose bounding box intersects the viewport grown by
// Margin.
func (p *Program) RecomputeVisible(viewport RectF) {
	v := viewport.expand(Margin)
	bounds := p.bounds
	visibility := p.visibility
	types := p.types
	filter := p.renderFilter

	for i := range bounds {
		visibility[i] = types[i]&filter != 0 && v.Intersects(bounds[i])
	}
}

// AccumulateVisible additionally marks the elements intersecting the
// viewport grown by Margin. Previously visible elements stay visible and
// the render filter is not applied.
func (p *Program) AccumulateVisible(viewport RectF) {
	v := viewport.expand(Margin)
	bounds := p.bounds
	visibility := p.visibility

	for i := range bounds {
		if !visibility[i] {
			visibility[i] = v.Intersects(bounds[i])
		}
	}
}

// AccumulateVisible2 is AccumulateVisible over two viewports in a single
// pass, used by dual-pane displays.
func (p *Program) AccumulateVisible2(viewport1, viewport2 RectF) {
	v1 := viewport1.expand(Margin)
	v2 := viewport2.expand(Margin)
	bounds := p.bounds
	visibility := p.visibility

	for i := range bounds {
		if !visibility[i] {
			box := bounds[i]
			visibility[i] = v1.Intersects(box) || v2.Intersects(box)
		}
	}
}

// ClearVisibility hides every element.
func (p *Program) ClearVisibility() {
	clear(p.visibility)
}

// Visible reports whether the i-th element is visible.
func (p *Program) Visible(i int) bool { return p.visibility[i] }

// VisibleCount returns the number of visible elements.
func (p *Program) VisibleCount() int {
	count := 0
	for _, v := range p.visibility {
		if v {
			count++
		}
	}
	return count
}

// UpdateSelection highlights the given stations, segments and transfers.
//
// Stations and transfers are addressed by index, segments by ID. A nil
// slice means the category is absent; when all three are nil every element
// is selected. Otherwise all selections are cleared first and only the
// listed entities are highlighted: a station lights its dot and label, a
// transfer both of its elements, a segment its line or, when the line was
// merged into the opposite direction, the opposite line. Unknown ids are
// ignored.
func (p *Program) UpdateSelection(stations, segments, transfers []int) {
	if stations == nil && segments == nil && transfers == nil {
		for _, e := range p.elements {
			e.SetSelected(true)
		}
		p.refresh()
		return
	}

	for _, e := range p.elements {
		e.SetSelected(false)
	}

	for _, station := range stations {
		selectAt(p.stationIndex, station)
		selectAt(p.stationNameIndex, station)
	}

	for _, transfer := range transfers {
		selectAt(p.transferBackgroundIndex, transfer)
		selectAt(p.transferIndex, transfer)
	}

	for _, id := range segments {
		if e, ok := p.segmentIndex[id]; ok {
			e.SetSelected(true)
			continue
		}
		segment := p.m.SegmentByID(id)
		if segment == nil {
			continue
		}
		opposite := p.m.Segment(segment.To, segment.From)
		if opposite == nil {
			continue
		}
		if e, ok := p.segmentIndex[opposite.ID]; ok {
			e.SetSelected(true)
		}
	}

	p.refresh()
}

// refresh re-derives the bounds and type arrays after a selection change.
// Selection never changes draw order, so elements are not re-sorted and
// visibility is kept.
func (p *Program) refresh() {
	for i, e := range p.elements {
		p.bounds[i] = e.bounds
		p.types[i] = e.typ
	}
}

// selectAt selects index[i] when i is in range and has an element.
func selectAt(index []*Element, i int) {
	if i < 0 || i >= len(index) {
		return
	}
	if e := index[i]; e != nil {
		e.SetSelected(true)
	}
}

// Draw paints the background and then every visible element in draw order,
// so later elements cover earlier ones.
func (p *Program) Draw(c Canvas) {
	c.Push()
	defer c.Pop()

	c.ClearWithColor(p.opts.Background)

	elements := p.elements
	visibility := p.visibility
	for i, e := range elements {
		if visibility[i] {
			e.Draw(c)
		}
	}
}

// ElementsAt returns the elements whose bounding box contains the point
// (x, y), in draw order with the topmost element last.
func (p *Program) ElementsAt(x, y float64) []*Element {
	return p.spatial.search(rectToRtree(x, y, x, y))
}

// ElementsIn returns the elements whose bounding box intersects r, in draw
// order.
func (p *Program) ElementsIn(r Rect) []*Element {
	return p.spatial.search(rectToRtree(float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom)))
}

// StationAt returns the index of the topmost station whose dot or label
// contains the point (x, y).
func (p *Program) StationAt(x, y float64) (int, bool) {
	hits := p.ElementsAt(x, y)
	for i := len(hits) - 1; i >= 0; i-- {
		switch hits[i].typ {
		case TypeStation, TypeStationName:
			return hits[i].source, true
		}
	}
	return 0, false
}
