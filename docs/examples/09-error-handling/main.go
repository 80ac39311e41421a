package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/mif/pkg/mif"
)

func safeLoadLayer(base string) (*mif.Dataset, error) {
	ds, err := mif.Load(base)
	if err != nil {
		var notFound *mif.ErrFileNotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("layer not found: %s", base)
		}

		var fields *mif.ErrFieldCount
		if errors.As(err, &fields) {
			log.Printf("Attribute line %d has %d fields, want %d", fields.Line, fields.Actual, fields.Expected)
		}

		var geom *mif.ErrGeometryGrammar
		if errors.As(err, &geom) {
			log.Printf("Bad %s geometry near line %d", geom.Keyword, geom.Line)
		}
		return nil, err
	}

	if ds.Len() == 0 {
		log.Printf("Warning: %s contains no records", base)
	}

	return ds, nil
}

func main() {
	ds, err := safeLoadLayer("roads")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	fmt.Printf("Successfully loaded layer with %d records\n", ds.Len())

	// Try to load a layer that does not exist
	_, err = safeLoadLayer("NONEXISTENT")
	if err != nil {
		log.Printf("Expected error: %v", err)
	}
}
