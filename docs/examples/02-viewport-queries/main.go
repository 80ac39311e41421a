package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mif/pkg/mif"
	"github.com/paulmach/orb"
)

func main() {
	ds, err := mif.Load("roads")
	if err != nil {
		log.Fatal(err)
	}

	// Build the R-tree once, then query it many times
	ds.BuildIndex()

	viewport := orb.Bound{
		Min: orb.Point{118.50, 37.70},
		Max: orb.Point{118.60, 37.80},
	}

	records := ds.RecordsInBounds(viewport)

	fmt.Printf("Visible records: %d\n", len(records))

	for _, rec := range records {
		name, _ := rec.Attr("name")
		fmt.Printf("  %s: %s\n",
			name.Text(),
			rec.Geometry().GeoJSONType())
	}
}
