package metro

import (
	"sync"

	"github.com/gogpu/gg"
)

// Map is a parsed transit map schematic.
//
// A map holds ordered stations, directed segments between them, transfers
// (interchanges) and the map-wide style scalars used by the renderer.
// Entities are addressed by stable integer ids: a station by its index in
// Stations, a segment by its ID field, a transfer by its index in Transfers.
//
// A Map is consumed read-only by NewProgram and may be shared between
// programs and goroutines once built.
type Map struct {
	Name string

	Stations  []Station
	Segments  []Segment
	Transfers []Transfer
	Lines     []Line

	// Nodes holds intermediate routing points keyed by segment ID.
	Nodes map[int][]Point

	LinesWidth      int
	StationDiameter int

	indexOnce  sync.Once
	byStations map[[2]int]int // (from, to) -> position in Segments
	byID       map[int]int    // segment ID -> position in Segments
}

// Station is a stop on the schematic.
type Station struct {
	Name string

	// Point is the station position; nil when the station is not drawn on
	// this schematic.
	Point *Point

	// Label is the pre-assigned label rectangle; nil when the name is not drawn.
	Label *Rect

	// Line is the index of the owning line in Map.Lines.
	Line int
}

// SegmentFlags describe how a segment is rendered.
type SegmentFlags int

const (
	// SegmentInvisible suppresses the segment entirely.
	SegmentInvisible SegmentFlags = 1 << iota

	// SegmentPlanned marks a stretch that is not yet in service.
	SegmentPlanned
)

// Segment is a directed stretch of a line between two stations.
type Segment struct {
	ID    int
	From  int     // station index
	To    int     // station index
	Line  int     // line index
	Delay float64 // travel time in minutes, informational
	Flags SegmentFlags
}

// Visible reports whether the segment should produce a line element.
func (s *Segment) Visible() bool {
	return s.Flags&SegmentInvisible == 0
}

// Working reports whether the segment is in service.
func (s *Segment) Working() bool {
	return s.Flags&SegmentPlanned == 0
}

// TransferFlags describe how a transfer is rendered.
type TransferFlags int

const (
	// TransferInvisible suppresses the transfer entirely.
	TransferInvisible TransferFlags = 1 << iota
)

// Transfer is an undirected interchange between two stations.
type Transfer struct {
	From  int // station index
	To    int // station index
	Flags TransferFlags
}

// Visible reports whether the transfer should produce elements.
func (t *Transfer) Visible() bool {
	return t.Flags&TransferInvisible == 0
}

// Line is a transit line with its display colors.
type Line struct {
	Name       string
	Color      gg.RGBA
	LabelColor gg.RGBA
}

// Segment returns the segment running from station from to station to,
// or nil if the map has none.
func (m *Map) Segment(from, to int) *Segment {
	m.buildIndex()
	if i, ok := m.byStations[[2]int{from, to}]; ok {
		return &m.Segments[i]
	}
	return nil
}

// SegmentByID returns the segment with the given ID, or nil.
func (m *Map) SegmentByID(id int) *Segment {
	m.buildIndex()
	if i, ok := m.byID[id]; ok {
		return &m.Segments[i]
	}
	return nil
}

// SegmentNodes returns the intermediate routing points of a segment, or nil
// when the segment is drawn as a straight line.
func (m *Map) SegmentNodes(id int) []Point {
	nodes := m.Nodes[id]
	if len(nodes) == 0 {
		return nil
	}
	return nodes
}

// StationLine returns the line a station belongs to.
// Stations referencing an unknown line fall back to a black line.
func (m *Map) StationLine(station int) Line {
	idx := m.Stations[station].Line
	if idx >= 0 && idx < len(m.Lines) {
		return m.Lines[idx]
	}
	return Line{Color: gg.Black, LabelColor: gg.Black}
}

// SegmentLine returns the line a segment belongs to.
func (m *Map) SegmentLine(s *Segment) Line {
	if s.Line >= 0 && s.Line < len(m.Lines) {
		return m.Lines[s.Line]
	}
	return Line{Color: gg.Black, LabelColor: gg.Black}
}

// buildIndex prepares segment lookup tables once. The first segment wins
// when the map carries duplicates.
func (m *Map) buildIndex() {
	m.indexOnce.Do(func() {
		m.byStations = make(map[[2]int]int, len(m.Segments))
		m.byID = make(map[int]int, len(m.Segments))
		for i, s := range m.Segments {
			key := [2]int{s.From, s.To}
			if _, ok := m.byStations[key]; !ok {
				m.byStations[key] = i
			}
			if _, ok := m.byID[s.ID]; !ok {
				m.byID[s.ID] = i
			}
		}
	})
}
