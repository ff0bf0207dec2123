package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beetlebugorg/metromap/pkg/metro"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   []string
		want    metro.ElementType
		wantErr bool
	}{
		{[]string{"all"}, metro.All, false},
		{[]string{"transport"}, metro.OnlyTransport, false},
		{[]string{"lines", " names"}, metro.TypeLine | metro.TypeStationName, false},
		{[]string{"transfers"}, metro.TypeTransfer | metro.TypeTransferBackground, false},
		{[]string{"stations", "bogus"}, 0, true},
	}

	for _, tt := range tests {
		got, err := parseFilter(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFilter(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFilter(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseViewport(t *testing.T) {
	got, err := parseViewport("10,20,300,200.5")
	if err != nil {
		t.Fatalf("parseViewport failed: %v", err)
	}
	want := metro.RectF{Left: 10, Top: 20, Right: 310, Bottom: 220.5}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	for _, bad := range []string{"1,2,3", "0,0,0,10", "a,b,c,d"} {
		if _, err := parseViewport(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.FontSize != 10 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	content := "width: 640\nbackground: \"#101010\"\nfilter: [transport]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 768 {
		t.Errorf("Expected file values over defaults, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Background != "#101010" || len(cfg.Filter) != 1 || cfg.Filter[0] != "transport" {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: -1\nfilter: [everything]\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := loadConfig(bad); err == nil {
		t.Error("Expected validation error")
	}
}

func TestStationsByName(t *testing.T) {
	m := &metro.Map{Stations: []metro.Station{{Name: "A"}, {Name: "B"}, {Name: "C"}}}

	got := stationsByName(m, []string{"C", " A", "missing"})
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Expected [0 2], got %v", got)
	}

	if got := stationsByName(m, []string{"missing"}); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil selection, got %v", got)
	}
}
