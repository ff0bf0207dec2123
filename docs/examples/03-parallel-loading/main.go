package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/beetlebugorg/metromap/pkg/metro"
)

// Load every map of a directory with a worker pool
func loadDirectory(dir string) []*metro.LoadedMap {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	opts := metro.DefaultLoadOptions()
	opts.ErrorLog = os.Stderr
	opts.Progress = func(loaded, total int) {
		fmt.Printf("\rLoading: %d/%d", loaded, total)
	}

	maps, errs := metro.LoadMapsParallel(paths, metro.NewParser(), opts)
	fmt.Println()
	if len(errs) > 0 {
		fmt.Printf("%d maps failed\n", len(errs))
	}
	return maps
}

func main() {
	fmt.Println("=== Parallel loading ===")
	maps := loadDirectory("../../../pkg/metro/testdata")
	for _, lm := range maps {
		fmt.Printf("%s: %d elements\n", lm.Map.Name, lm.Program.Len())
	}

	// Cache programs by map name (16MB)
	fmt.Println("\n=== Program cache ===")
	cache := metro.NewProgramCache(16 * 1024 * 1024)
	parser := metro.NewParser()

	for i := 0; i < 3; i++ {
		_, err := cache.Get("small", func() (*metro.Program, error) {
			fmt.Println("cache miss, building program")
			m, err := parser.Parse("../../../pkg/metro/testdata/small.yaml")
			if err != nil {
				return nil, err
			}
			return metro.NewProgram(m), nil
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	stats := cache.Stats()
	fmt.Printf("Programs: %d, memory: %d bytes, accesses: %d\n",
		stats.ProgramCount, stats.UsedMemory, stats.TotalAccess)
}
