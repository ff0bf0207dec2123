package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/metromap/pkg/metro"
)

func main() {
	// Parse map
	parser := metro.NewParser()
	m, err := parser.Parse("../../../pkg/metro/testdata/small.yaml")
	if err != nil {
		log.Fatal(err)
	}
	program := metro.NewProgram(m)

	// Define viewport (top left corner of the map)
	viewport := metro.RectF{Left: -20, Top: -30, Right: 60, Bottom: 30}

	// Only lines and stations, no names
	program.SetRenderFilter(metro.OnlyTransport)
	program.RecomputeVisible(viewport)
	fmt.Printf("Visible elements: %d of %d\n", program.VisibleCount(), program.Len())

	for i, e := range program.Elements() {
		if program.Visible(i) {
			b := e.Bounds()
			fmt.Printf("  %s #%d: [%d,%d]-[%d,%d]\n",
				e.Type(), e.Source(), b.Left, b.Top, b.Right, b.Bottom)
		}
	}

	// Hit test a tap at Gamma
	if station, ok := program.StationAt(100, 100); ok {
		fmt.Printf("Tapped: %s\n", m.Stations[station].Name)

		// Highlight it
		program.UpdateSelection([]int{station}, nil, nil)
	}
}
