package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mif/pkg/mif"
)

func main() {
	// Load roads.mif + roads.mid
	ds, err := mif.Load("roads")
	if err != nil {
		log.Fatal(err)
	}

	// Print layer info
	h := ds.Header()
	fmt.Printf("CoordSys: %s\n", h.CoordSys)
	fmt.Printf("Columns: %d\n", h.ColumnCount())
	fmt.Printf("Records: %d\n", ds.Len())

	// Get layer bounds
	bounds := ds.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.Min.X(), bounds.Min.Y(),
		bounds.Max.X(), bounds.Max.Y())
}
