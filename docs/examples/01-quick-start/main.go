package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/metromap/pkg/metro"
	"github.com/gogpu/gg"
)

func main() {
	// Create parser
	parser := metro.NewParser()

	// Parse map file
	m, err := parser.Parse("../../../pkg/metro/testdata/small.yaml")
	if err != nil {
		log.Fatal(err)
	}

	// Build the render program
	program := metro.NewProgram(m)

	fmt.Printf("Map: %s\n", m.Name)
	fmt.Printf("Stations: %d, segments: %d\n", len(m.Stations), len(m.Segments))
	fmt.Printf("Elements: %d\n", program.Len())

	extent := program.Extent()
	fmt.Printf("Extent: [%d,%d] to [%d,%d]\n",
		extent.Left, extent.Top, extent.Right, extent.Bottom)

	// Render the whole map, shifted so the extent starts at the origin
	dc := gg.NewContext(extent.Width()+40, extent.Height()+40)
	dc.Translate(float64(20-extent.Left), float64(20-extent.Top))

	program.RecomputeVisible(metro.RectF{
		Left:   float64(extent.Left),
		Top:    float64(extent.Top),
		Right:  float64(extent.Right),
		Bottom: float64(extent.Bottom),
	})
	program.Draw(dc)

	if err := dc.SavePNG("small.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved small.png")
}
