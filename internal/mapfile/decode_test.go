package mapfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validMap = `
name: Test
lines_width: 3
station_diameter: 8
lines:
  - {name: Red, color: "#FF0000"}
  - {name: Green, color: "#00FF00", label_color: "#003300"}
stations:
  - {name: A, line: 0, point: "0,0", rect: "4,4,30,10"}
  - {name: B, line: 1, point: "50,0"}
  - {name: C, line: 1}
segments:
  - {id: 7, from: 0, to: 1, line: 0, delay: 1.5, nodes: "25,10"}
  - {id: 8, from: 1, to: 2, line: 1, planned: true}
transfers:
  - {from: 0, to: 1}
`

func TestDecodeValid(t *testing.T) {
	doc, err := Decode(strings.NewReader(validMap), DefaultOptions())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.Name != "Test" || doc.LinesWidth != 3 || doc.StationDiameter != 8 {
		t.Errorf("Unexpected header: %+v", doc)
	}
	if len(doc.Lines) != 2 || doc.Lines[1].LabelColor != "#003300" {
		t.Errorf("Unexpected lines: %+v", doc.Lines)
	}
	if len(doc.Stations) != 3 || doc.Stations[0].Rect != "4,4,30,10" {
		t.Errorf("Unexpected stations: %+v", doc.Stations)
	}
	seg := doc.Segments[0]
	if seg.ID != 7 || seg.Delay != 1.5 || seg.Nodes != "25,10" {
		t.Errorf("Unexpected segment: %+v", seg)
	}
	if !doc.Segments[1].Planned {
		t.Error("Expected segment 8 planned")
	}
	if len(doc.Transfers) != 1 {
		t.Errorf("Expected 1 transfer, got %d", len(doc.Transfers))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *Document)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "missing name",
			mutate: func(doc *Document) { doc.Name = "" },
			check: func(t *testing.T, err error) {
				if err == nil || !strings.Contains(err.Error(), "invalid map") {
					t.Errorf("Expected field validation error, got %v", err)
				}
			},
		},
		{
			name:   "bad color",
			mutate: func(doc *Document) { doc.Lines[0].Color = "red" },
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Error("Expected hexcolor validation error")
				}
			},
		},
		{
			name:   "station line out of range",
			mutate: func(doc *Document) { doc.Stations[0].Line = 5 },
			check: func(t *testing.T, err error) {
				var target *ErrLineIndex
				if !errors.As(err, &target) || target.Entity != "station" || target.Ref != 5 {
					t.Errorf("Expected ErrLineIndex for station, got %v", err)
				}
			},
		},
		{
			name:   "segment station out of range",
			mutate: func(doc *Document) { doc.Segments[1].To = 3 },
			check: func(t *testing.T, err error) {
				var target *ErrStationIndex
				if !errors.As(err, &target) || target.Index != 1 || target.Count != 3 {
					t.Errorf("Expected ErrStationIndex for segment 1, got %v", err)
				}
			},
		},
		{
			name:   "transfer station out of range",
			mutate: func(doc *Document) { doc.Transfers[0].From = 9 },
			check: func(t *testing.T, err error) {
				var target *ErrStationIndex
				if !errors.As(err, &target) || target.Entity != "transfer" {
					t.Errorf("Expected ErrStationIndex for transfer, got %v", err)
				}
			},
		},
		{
			name:   "duplicate segment id",
			mutate: func(doc *Document) { doc.Segments[1].ID = 7 },
			check: func(t *testing.T, err error) {
				var target *ErrDuplicateSegment
				if !errors.As(err, &target) || target.ID != 7 {
					t.Errorf("Expected ErrDuplicateSegment, got %v", err)
				}
			},
		},
		{
			name:   "malformed rect",
			mutate: func(doc *Document) { doc.Stations[0].Rect = "1,2" },
			check: func(t *testing.T, err error) {
				var target *ErrInvalidValue
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrInvalidValue, got %v", err)
				}
			},
		},
		{
			name:   "malformed nodes",
			mutate: func(doc *Document) { doc.Segments[0].Nodes = "1,?" },
			check: func(t *testing.T, err error) {
				var target *ErrInvalidValue
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrInvalidValue, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(validMap), Options{Validate: false})
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			tt.mutate(doc)
			tt.check(t, Validate(doc))
		})
	}
}

func TestDecodeSkipsValidation(t *testing.T) {
	input := "name: x\nsegments: [{id: 1, from: 0, to: 9}]\n"

	if _, err := Decode(strings.NewReader(input), DefaultOptions()); err == nil {
		t.Error("Expected validation error")
	}
	if _, err := Decode(strings.NewReader(input), Options{Validate: false}); err != nil {
		t.Errorf("Expected decode without validation to succeed: %v", err)
	}
}

func TestDecodeMalformedYAML(t *testing.T) {
	_, err := Decode(strings.NewReader("name: [oops\n"), DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "failed to decode map") {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(validMap), 0o644); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}

	doc, err := ReadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if doc.Name != "Test" {
		t.Errorf("Expected name 'Test', got '%s'", doc.Name)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"), DefaultOptions()); err == nil {
		t.Error("Expected error for missing file")
	}
}
