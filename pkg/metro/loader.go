package metro

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Parallel enables concurrent map loading.
	Parallel bool

	// Workers specifies the number of loader goroutines.
	// If 0, defaults to runtime.NumCPU(). Only used when Parallel is true.
	Workers int

	// SkipErrors continues loading when individual maps fail.
	// When false, the first error stops loading and is returned alone.
	SkipErrors bool

	// Progress is called after each map is processed with (loaded, total).
	Progress func(loaded, total int)

	// ErrorLog receives one line per failed map.
	ErrorLog io.Writer

	// Render configures the programs built for each map.
	Render RenderOptions
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Render:     DefaultRenderOptions(),
	}
}

// LoadedMap is a parsed map together with its render program.
type LoadedMap struct {
	Path    string
	Map     *Map
	Program *Program
}

// LoadMap parses one map file and builds its program.
func LoadMap(path string, parser Parser, render RenderOptions) (*LoadedMap, error) {
	m, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}
	return &LoadedMap{
		Path:    path,
		Map:     m,
		Program: NewProgramWithOptions(m, render),
	}, nil
}

// LoadMapsParallel parses maps and builds their programs with a worker pool.
//
// Results keep the order of paths; failed maps are left out. Each program
// is built on a worker goroutine and handed back through a channel, after
// which it belongs to the caller.
//
// Example:
//
//	parser := metro.NewParser()
//	maps, errs := metro.LoadMapsParallel(paths, parser, metro.LoadOptions{
//	    Parallel:   true,
//	    SkipErrors: true,
//	    Progress: func(loaded, total int) {
//	        fmt.Printf("\rLoading: %d/%d", loaded, total)
//	    },
//	    Render: metro.DefaultRenderOptions(),
//	})
func LoadMapsParallel(paths []string, parser Parser, opts LoadOptions) ([]*LoadedMap, []error) {
	if len(paths) == 0 {
		return []*LoadedMap{}, nil
	}

	if !opts.Parallel {
		return loadMapsSerial(paths, parser, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index  int
		loaded *LoadedMap
		err    error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				loaded, err := LoadMap(paths[index], parser, opts.Render)
				results <- loadResult{index: index, loaded: loaded, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	byIndex := make(map[int]*LoadedMap)
	var errs []error
	processed := 0

	for result := range results {
		processed++
		if opts.Progress != nil {
			opts.Progress(processed, len(paths))
		}

		if result.err != nil {
			err := fmt.Errorf("%s: %w", paths[result.index], result.err)
			reportLoadError(opts, paths[result.index], err)

			if !opts.SkipErrors {
				// Remaining workers drain into the buffered channel.
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}

		byIndex[result.index] = result.loaded
	}

	loaded := make([]*LoadedMap, 0, len(byIndex))
	for i := range paths {
		if m, ok := byIndex[i]; ok {
			loaded = append(loaded, m)
		}
	}

	return loaded, errs
}

// loadMapsSerial loads maps one at a time (fallback when Parallel=false).
func loadMapsSerial(paths []string, parser Parser, opts LoadOptions) ([]*LoadedMap, []error) {
	loaded := make([]*LoadedMap, 0, len(paths))
	var errs []error

	for i, path := range paths {
		m, err := LoadMap(path, parser, opts.Render)
		if opts.Progress != nil {
			opts.Progress(i+1, len(paths))
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
			reportLoadError(opts, path, err)

			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		loaded = append(loaded, m)
	}

	return loaded, errs
}

func reportLoadError(opts LoadOptions, path string, err error) {
	if opts.ErrorLog != nil {
		fmt.Fprintf(opts.ErrorLog, "Error loading map: %v\n", err)
	}
	Logger().Warn("map skipped", "path", path, "err", err)
}
