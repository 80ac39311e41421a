package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/mif/pkg/mif"
	"github.com/paulmach/orb"
)

func main() {
	ds, err := mif.Load("landuse")
	if err != nil {
		log.Fatal(err)
	}

	// Count geometry kinds
	var polygons, rings int
	for _, rec := range ds.Records() {
		switch g := rec.Geometry().(type) {
		case orb.Polygon:
			polygons++
			rings += len(g)
		case orb.MultiPolygon:
			polygons += len(g)
			rings += len(g)
		}
	}
	fmt.Fprintf(os.Stderr, "Polygons: %d, rings: %d\n", polygons, rings)

	data, err := json.MarshalIndent(ds.FeatureCollection(), "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
}
