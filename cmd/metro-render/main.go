// Command metro-render draws a transit map file to a PNG image.
//
// Usage:
//
//	metro-render -map moscow.yaml -out moscow.png
//	metro-render -map moscow.yaml -viewport 0,0,400,300 -filter transport
//	metro-render -map moscow.yaml -select "Lubyanka,Chistye Prudy"
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/beetlebugorg/metromap/pkg/metro"
)

func main() {
	var (
		mapPath    = flag.String("map", "", "map file (YAML)")
		configPath = flag.String("config", "", "render config file (YAML)")
		output     = flag.String("out", "map.png", "output file")
		width      = flag.Int("width", 0, "image width (overrides config)")
		height     = flag.Int("height", 0, "image height (overrides config)")
		viewport   = flag.String("viewport", "", "visible area x,y,width,height in map coordinates (default: whole map)")
		filter     = flag.String("filter", "", "comma separated element types: all, transport, lines, transfers, stations, names")
		selection  = flag.String("select", "", "comma separated station names to highlight")
		fontPath   = flag.String("font", "", "TTF font for station names (default: Go Regular)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		metro.SetLogger(slog.New(handler))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *fontPath != "" {
		cfg.Font = *fontPath
	}
	if *filter != "" {
		cfg.Filter = strings.Split(*filter, ",")
	}

	mask, err := parseFilter(cfg.Filter)
	if err != nil {
		log.Fatal(err)
	}

	m, err := metro.NewParser().Parse(*mapPath)
	if err != nil {
		log.Fatalf("Failed to parse map: %v", err)
	}

	opts := metro.DefaultRenderOptions()
	if cfg.Background != "" {
		opts.Background = gg.Hex(cfg.Background)
	}
	if cfg.Selection != "" {
		opts.Selection = gg.Hex(cfg.Selection)
	}
	program := metro.NewProgramWithOptions(m, opts)

	view := extentViewport(program.Extent())
	if *viewport != "" {
		if view, err = parseViewport(*viewport); err != nil {
			log.Fatal(err)
		}
	}

	if *selection != "" {
		program.UpdateSelection(stationsByName(m, strings.Split(*selection, ",")), nil, nil)
	}

	program.SetRenderFilter(mask)
	program.RecomputeVisible(view)

	dc := gg.NewContext(cfg.Width, cfg.Height)
	if err := setFont(dc, cfg); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	scale := math.Min(float64(cfg.Width)/view.Width(), float64(cfg.Height)/view.Height())
	dc.Scale(scale, scale)
	dc.Translate(-view.Left, -view.Top)
	program.Draw(dc)

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s saved to %s (%dx%d, %d of %d elements visible)\n",
		m.Name, *output, cfg.Width, cfg.Height, program.VisibleCount(), program.Len())
}

// extentViewport returns the whole map with a small border.
func extentViewport(extent metro.Rect) metro.RectF {
	r := extent.Inset(metro.Margin)
	if r.Width() <= 0 || r.Height() <= 0 {
		return metro.RectF{Right: 1, Bottom: 1}
	}
	return metro.RectF{
		Left:   float64(r.Left),
		Top:    float64(r.Top),
		Right:  float64(r.Right),
		Bottom: float64(r.Bottom),
	}
}

// stationsByName resolves station names to indices. Unknown names are
// reported and skipped.
func stationsByName(m *metro.Map, names []string) []int {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.TrimSpace(name)] = true
	}

	stations := []int{}
	found := make(map[string]bool, len(names))
	for i, st := range m.Stations {
		if wanted[st.Name] {
			stations = append(stations, i)
			found[st.Name] = true
		}
	}
	for name := range wanted {
		if !found[name] {
			log.Printf("Station %q not found", name)
		}
	}
	return stations
}

// setFont loads the label font sized in map units.
func setFont(dc *gg.Context, cfg Config) error {
	var (
		source *text.FontSource
		err    error
	)
	if cfg.Font != "" {
		source, err = text.NewFontSourceFromFile(cfg.Font)
	} else {
		source, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return err
	}
	dc.SetFont(source.Face(cfg.FontSize))
	return nil
}
