package metro

import (
	"fmt"
	"io"

	"github.com/beetlebugorg/metromap/internal/mapfile"
	"github.com/gogpu/gg"
)

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// Validate checks field constraints and cross references (station and
	// line indices, unique segment ids) before the map is returned.
	// A map that skipped validation may panic in NewProgram.
	Validate bool
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Validate: true,
	}
}

// Parser reads transit map files.
//
// Create a parser with NewParser and use Parse or ParseWithOptions to read maps.
type Parser interface {
	// Parse reads a YAML map file and returns the map.
	Parse(filename string) (*Map, error)

	// ParseWithOptions parses a map file with custom options.
	ParseWithOptions(filename string, opts ParseOptions) (*Map, error)

	// Decode reads a YAML map document from r with default options.
	Decode(r io.Reader) (*Map, error)
}

// NewParser creates a new map parser with default settings.
//
// Example:
//
//	parser := metro.NewParser()
//	m, err := parser.Parse("moscow.yaml")
func NewParser() Parser {
	return &yamlParser{}
}

// yamlParser wraps the internal document decoder and converts types
type yamlParser struct{}

func (p *yamlParser) Parse(filename string) (*Map, error) {
	return p.ParseWithOptions(filename, DefaultParseOptions())
}

func (p *yamlParser) ParseWithOptions(filename string, opts ParseOptions) (*Map, error) {
	doc, err := mapfile.ReadFile(filename, mapfile.Options{Validate: opts.Validate})
	if err != nil {
		return nil, err
	}
	return convertMap(doc)
}

func (p *yamlParser) Decode(r io.Reader) (*Map, error) {
	doc, err := mapfile.Decode(r, mapfile.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return convertMap(doc)
}

// convertMap converts a decoded document to the public map model.
func convertMap(doc *mapfile.Document) (*Map, error) {
	m := &Map{
		Name:            doc.Name,
		Stations:        make([]Station, len(doc.Stations)),
		Segments:        make([]Segment, len(doc.Segments)),
		Transfers:       make([]Transfer, len(doc.Transfers)),
		Lines:           make([]Line, len(doc.Lines)),
		Nodes:           make(map[int][]Point),
		LinesWidth:      doc.LinesWidth,
		StationDiameter: doc.StationDiameter,
	}

	for i, l := range doc.Lines {
		line := Line{Name: l.Name, Color: gg.Hex(l.Color), LabelColor: gg.Black}
		if l.LabelColor != "" {
			line.LabelColor = gg.Hex(l.LabelColor)
		}
		m.Lines[i] = line
	}

	for i, st := range doc.Stations {
		station := Station{Name: st.Name, Line: st.Line}
		if st.Point != "" {
			pt, err := mapfile.ParsePoint(st.Point)
			if err != nil {
				return nil, fmt.Errorf("station %d: %w", i, err)
			}
			station.Point = &Point{X: pt.X, Y: pt.Y}
		}
		if st.Rect != "" {
			r, err := mapfile.ParseRect(st.Rect)
			if err != nil {
				return nil, fmt.Errorf("station %d: %w", i, err)
			}
			station.Label = &Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
		}
		m.Stations[i] = station
	}

	for i, seg := range doc.Segments {
		segment := Segment{
			ID:    seg.ID,
			From:  seg.From,
			To:    seg.To,
			Line:  seg.Line,
			Delay: seg.Delay,
		}
		if seg.Invisible {
			segment.Flags |= SegmentInvisible
		}
		if seg.Planned {
			segment.Flags |= SegmentPlanned
		}
		m.Segments[i] = segment

		nodes, err := mapfile.ParsePoints(seg.Nodes)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", seg.ID, err)
		}
		if len(nodes) > 0 {
			points := make([]Point, len(nodes))
			for j, n := range nodes {
				points[j] = Point{X: n.X, Y: n.Y}
			}
			m.Nodes[seg.ID] = points
		}
	}

	for i, t := range doc.Transfers {
		transfer := Transfer{From: t.From, To: t.To}
		if t.Invisible {
			transfer.Flags |= TransferInvisible
		}
		m.Transfers[i] = transfer
	}

	return m, nil
}
