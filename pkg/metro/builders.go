package metro

// style carries the map-wide scalars every builder needs.
type style struct {
	lineWidth float64
	radius    int
	opts      RenderOptions
}

func newStyle(m *Map, opts RenderOptions) *style {
	return &style{
		lineWidth: float64(m.LinesWidth),
		radius:    m.StationDiameter / 2,
		opts:      opts,
	}
}

// newStationElement builds the station dot. The station must have a point.
// Stations without any working segment get a hollow center.
func newStationElement(s *style, m *Map, station int, working bool) *Element {
	pt := *m.Stations[station].Point
	r := s.radius
	line := m.StationLine(station)

	e := &Element{
		typ:       TypeStation,
		bounds:    Rect{Left: pt.X - r, Top: pt.Y - r, Right: pt.X + r, Bottom: pt.Y + r},
		source:    station,
		normal:    paint{color: line.Color},
		highlight: paint{color: s.opts.Selection},
		points:    []Point{pt},
		radius:    float64(r),
	}
	if !working {
		e.inner = float64(r) * 0.5
	}
	return e
}

// newStationNameElement builds the station label. The station must have a
// point, a label rectangle and a name.
func newStationNameElement(s *style, m *Map, station int) *Element {
	st := &m.Stations[station]
	line := m.StationLine(station)

	return &Element{
		typ:       TypeStationName,
		bounds:    *st.Label,
		source:    station,
		normal:    paint{color: line.LabelColor},
		highlight: paint{color: s.opts.Selection},
		text:      st.Name,
	}
}

// newSegmentElement builds a line stretch. Both endpoint stations must have
// points; nodes are the optional intermediate routing points.
func newSegmentElement(s *style, m *Map, seg *Segment, nodes []Point) *Element {
	from := *m.Stations[seg.From].Point
	to := *m.Stations[seg.To].Point

	points := make([]Point, 0, len(nodes)+2)
	points = append(points, from)
	points = append(points, nodes...)
	points = append(points, to)

	var dash []float64
	if !seg.Working() {
		dash = []float64{s.lineWidth * 2, s.lineWidth}
	}
	line := m.SegmentLine(seg)

	return &Element{
		typ:       TypeLine,
		bounds:    boundsOf(points),
		source:    seg.ID,
		normal:    paint{color: line.Color, width: s.lineWidth, dash: dash},
		highlight: paint{color: s.opts.Selection, width: s.lineWidth, dash: dash},
		points:    points,
	}
}

// transferBounds covers both transfer ends plus the station radius.
func transferBounds(from, to Point, r int) Rect {
	return Rect{
		Left:   min(from.X, to.X) - r,
		Top:    min(from.Y, to.Y) - r,
		Right:  max(from.X, to.X) + r,
		Bottom: max(from.Y, to.Y) + r,
	}
}

// newTransferElement builds the foreground transfer mark.
func newTransferElement(s *style, m *Map, transfer int) *Element {
	t := &m.Transfers[transfer]
	from := *m.Stations[t.From].Point
	to := *m.Stations[t.To].Point
	width := s.lineWidth + 1.5

	return &Element{
		typ:       TypeTransfer,
		bounds:    transferBounds(from, to, s.radius),
		source:    transfer,
		normal:    paint{color: s.opts.TransferColor, width: width},
		highlight: paint{color: s.opts.Selection, width: width},
		points:    []Point{from, to},
		radius:    float64(s.radius) + 2.5,
	}
}

// newTransferBackgroundElement builds the halo drawn beneath a transfer
// mark. Its radius and stroke are wider than the mark so the mark always
// sits on a clean background. The halo keeps its color when selected.
func newTransferBackgroundElement(s *style, m *Map, transfer int) *Element {
	t := &m.Transfers[transfer]
	from := *m.Stations[t.From].Point
	to := *m.Stations[t.To].Point
	p := paint{color: s.opts.TransferBackgroundColor, width: s.lineWidth + 3.5}

	return &Element{
		typ:       TypeTransferBackground,
		bounds:    transferBounds(from, to, s.radius),
		source:    transfer,
		normal:    p,
		highlight: p,
		points:    []Point{from, to},
		radius:    float64(s.radius) + 3.5,
	}
}
