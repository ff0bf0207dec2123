// Package metro renders schematic transit maps.
//
// A Map (stations, segments, transfers and the map-wide style scalars) is
// turned into a Program: a flat, draw-ordered list of elements with a
// visibility bitmap that follows the viewport as the user scrolls and
// zooms.
//
// # Basic Usage
//
//	parser := metro.NewParser()
//	m, err := parser.Parse("moscow.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	program := metro.NewProgram(m)
//
// # Rendering Workflow
//
// Nothing is visible right after construction. Each frame recomputes
// visibility for the current viewport, expressed in map coordinates, and
// then draws:
//
//	dc := gg.NewContext(800, 600)
//	program.RecomputeVisible(metro.RectF{Left: 0, Top: 0, Right: 800, Bottom: 600})
//	program.Draw(dc)
//
// The viewport is grown by Margin on every side so that elements just
// outside the frame do not pop in during small scrolls.
//
// # Element Types
//
// Elements are painted in type order: lines, transfer backgrounds,
// transfers, stations, station names. Types are bit flags; a render filter
// restricts which types RecomputeVisible may show:
//
//	program.SetRenderFilter(metro.OnlyTransport) // hide station names
//	program.RecomputeVisible(viewport)
//
// AccumulateVisible and AccumulateVisible2 add visibility on top of the
// current bitmap without applying the filter, for overview and detail
// panes sharing one program.
//
// # Selection
//
// UpdateSelection highlights stations, segments and transfers by id.
// Passing three nil slices selects everything:
//
//	program.UpdateSelection([]int{12, 13}, nil, nil) // two stations
//	program.UpdateSelection(nil, nil, nil)           // everything
//
// # Hit Testing
//
// Element bounding boxes are kept in an R-tree:
//
//	if station, ok := program.StationAt(x, y); ok {
//	    fmt.Println(m.Stations[station].Name)
//	}
//
// # Concurrency
//
// A Program is single-threaded: build it anywhere, then use it from one
// goroutine only. ProgramCache and LoadMapsParallel are safe for
// concurrent use and hand finished programs to the caller.
package metro
