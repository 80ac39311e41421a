package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/mif/pkg/mif"
)

func main() {
	// Find every layer under ./data
	bases, err := mif.DiscoverLayers("data")
	if err != nil {
		log.Fatal(err)
	}

	// Attribute tables only, four layers at a time
	opts := mif.DefaultParallelOptions()
	opts.Workers = 4
	opts.ErrorLog = os.Stderr
	opts.Load.AttributesOnly = true
	opts.Progress = func(loaded, total int) {
		fmt.Printf("\rLoaded %d/%d", loaded, total)
	}

	datasets, errs := mif.LoadLayers(bases, opts)
	fmt.Println()

	total := 0
	for _, ds := range datasets {
		total += ds.Len()
	}
	fmt.Printf("Layers: %d, records: %d, failed: %d\n", len(datasets), total, len(errs))
}
