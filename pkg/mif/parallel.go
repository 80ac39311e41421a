package mif

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ParallelOptions controls loading several layers at once.
type ParallelOptions struct {
	// Workers is the number of concurrent loads. If 0, defaults to
	// runtime.NumCPU().
	Workers int

	// SkipErrors keeps loading when a layer fails. Failed layers are left
	// out of the result and their errors are collected. When false, the
	// first failure stops loading and is the only error returned.
	SkipErrors bool

	// Progress is called after each layer is processed, successfully or
	// not, with the number processed so far and the total.
	Progress func(loaded, total int)

	// ErrorLog receives one line per failed layer.
	ErrorLog io.Writer

	// Load is applied to every layer.
	Load LoadOptions
}

// DefaultParallelOptions returns options that use every CPU and skip
// layers that fail to load.
func DefaultParallelOptions() ParallelOptions {
	return ParallelOptions{
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// DiscoverLayers walks root and returns the base path, without extension,
// of every file whose extension is one Load opens (.mif, .MIF or .Mif).
// Paths are sorted.
func DiscoverLayers(root string) ([]string, error) {
	var bases []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := filepath.Ext(path)
		if !entry.IsDir() && slices.Contains(mifExtensions, strings.TrimPrefix(ext, ".")) {
			bases = append(bases, strings.TrimSuffix(path, ext))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	sort.Strings(bases)
	return bases, nil
}

// LoadLayers loads each base path with its own independent Load. Datasets
// are returned in input order, without the layers that failed.
//
// Example:
//
//	bases, _ := mif.DiscoverLayers("data")
//	layers, errs := mif.LoadLayers(bases, mif.DefaultParallelOptions())
//	for _, err := range errs {
//	    log.Println(err)
//	}
func LoadLayers(bases []string, opts ParallelOptions) ([]*Dataset, []error) {
	if len(bases) == 0 {
		return []*Dataset{}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu      sync.Mutex
		loaded  int
		errs    []error
		results = make([]*Dataset, len(bases))
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, base := range bases {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			ds, err := LoadWithOptions(base, opts.Load)

			mu.Lock()
			defer mu.Unlock()
			loaded++
			if opts.Progress != nil {
				opts.Progress(loaded, len(bases))
			}
			if err != nil {
				err = fmt.Errorf("%s: %w", base, err)
				if opts.ErrorLog != nil {
					fmt.Fprintf(opts.ErrorLog, "Error loading layer: %v\n", err)
				}
				if !opts.SkipErrors {
					return err
				}
				errs = append(errs, err)
				return nil
			}
			results[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, []error{err}
	}

	datasets := make([]*Dataset, 0, len(results))
	for _, ds := range results {
		if ds != nil {
			datasets = append(datasets, ds)
		}
	}
	return datasets, errs
}
