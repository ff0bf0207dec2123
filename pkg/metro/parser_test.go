package metro

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beetlebugorg/metromap/internal/mapfile"
	"github.com/gogpu/gg"
)

func TestParseSmallMap(t *testing.T) {
	parser := NewParser()
	m, err := parser.Parse(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	if m.Name != "Small" {
		t.Errorf("Expected name 'Small', got '%s'", m.Name)
	}
	if m.LinesWidth != 4 || m.StationDiameter != 10 {
		t.Errorf("Expected width 4 and diameter 10, got %d and %d", m.LinesWidth, m.StationDiameter)
	}
	if len(m.Stations) != 4 || len(m.Segments) != 5 || len(m.Transfers) != 2 || len(m.Lines) != 2 {
		t.Fatalf("Unexpected entity counts: %d stations, %d segments, %d transfers, %d lines",
			len(m.Stations), len(m.Segments), len(m.Transfers), len(m.Lines))
	}

	if m.Lines[0].Color != gg.Hex("#E42313") {
		t.Errorf("Unexpected line color %+v", m.Lines[0].Color)
	}
	if m.Lines[0].LabelColor != gg.Black {
		t.Errorf("Expected default black label color, got %+v", m.Lines[0].LabelColor)
	}
	if m.Lines[1].LabelColor != gg.Hex("#0072BA") {
		t.Errorf("Unexpected label color %+v", m.Lines[1].LabelColor)
	}

	alpha := m.Stations[0]
	if alpha.Point == nil || *alpha.Point != (Point{X: 0, Y: 0}) {
		t.Errorf("Unexpected Alpha point %v", alpha.Point)
	}
	wantLabel := Rect{Left: 5, Top: -20, Right: 55, Bottom: -8}
	if alpha.Label == nil || *alpha.Label != wantLabel {
		t.Errorf("Expected Alpha label %+v, got %v", wantLabel, alpha.Label)
	}
	if m.Stations[3].Point != nil {
		t.Error("Expected Delta without point")
	}

	if nodes := m.SegmentNodes(4); len(nodes) != 1 || nodes[0] != (Point{X: 150, Y: 50}) {
		t.Errorf("Unexpected nodes for segment 4: %v", nodes)
	}
	if m.SegmentNodes(1) != nil {
		t.Error("Expected no nodes for segment 1")
	}

	if m.Segments[4].Working() {
		t.Error("Expected segment 5 to be planned")
	}
	if m.Segments[0].Delay != 2.5 {
		t.Errorf("Expected delay 2.5, got %v", m.Segments[0].Delay)
	}
	if m.Transfers[1].Visible() {
		t.Error("Expected transfer 1 to be invisible")
	}
}

func TestParsedMapProgram(t *testing.T) {
	m, err := NewParser().Parse(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	p := NewProgram(m)
	if p.Len() != 9 {
		t.Errorf("Expected 9 elements, got %d", p.Len())
	}

	want := Rect{Left: -5, Top: -20, Right: 150, Bottom: 105}
	if p.Extent() != want {
		t.Errorf("Expected extent %+v, got %+v", want, p.Extent())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name: "station out of range",
			input: `
name: Bad
lines_width: 2
station_diameter: 4
lines: [{name: A, color: "#000000"}]
stations: [{name: S, point: "0,0"}]
segments: [{id: 1, from: 0, to: 3}]
`,
			wantErr: &mapfile.ErrStationIndex{},
		},
		{
			name: "duplicate segment",
			input: `
name: Bad
lines_width: 2
station_diameter: 4
stations: [{name: S}, {name: T}]
segments: [{id: 1, from: 0, to: 1}, {id: 1, from: 1, to: 0}]
`,
			wantErr: &mapfile.ErrDuplicateSegment{},
		},
		{
			name: "malformed point",
			input: `
name: Bad
lines_width: 2
station_diameter: 4
stations: [{name: S, point: "0;0"}]
`,
			wantErr: &mapfile.ErrInvalidValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected error")
			}
			switch tt.wantErr.(type) {
			case *mapfile.ErrStationIndex:
				var target *mapfile.ErrStationIndex
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrStationIndex, got %v", err)
				}
			case *mapfile.ErrDuplicateSegment:
				var target *mapfile.ErrDuplicateSegment
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrDuplicateSegment, got %v", err)
				}
			case *mapfile.ErrInvalidValue:
				var target *mapfile.ErrInvalidValue
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrInvalidValue, got %v", err)
				}
			}
		})
	}
}

func TestParseWithoutValidation(t *testing.T) {
	// Missing name and zero widths fail validation only.
	path := filepath.Join(t.TempDir(), "loose.yaml")
	writeFile(t, path, "stations: [{name: S, point: \"1,2\"}]\n")

	if _, err := NewParser().Parse(path); err == nil {
		t.Error("Expected validation error")
	}

	m, err := NewParser().ParseWithOptions(path, ParseOptions{Validate: false})
	if err != nil {
		t.Fatalf("Expected unvalidated parse to succeed: %v", err)
	}
	if len(m.Stations) != 1 || *m.Stations[0].Point != (Point{X: 1, Y: 2}) {
		t.Errorf("Unexpected stations %+v", m.Stations)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to open file") {
		t.Errorf("Unexpected error: %v", err)
	}
}
