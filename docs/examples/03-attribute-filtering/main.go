package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mif/pkg/mif"
)

// Select records whose attribute is at least min.
func filterAtLeast(ds *mif.Dataset, column string, min mif.AttrValue) []*mif.Record {
	var out []*mif.Record
	for _, rec := range ds.Records() {
		v, ok := rec.Attr(column)
		if !ok {
			continue
		}
		if !v.Less(min) {
			out = append(out, rec)
		}
	}
	return out
}

func main() {
	ds, err := mif.Load("roads")
	if err != nil {
		log.Fatal(err)
	}

	// Numbers and numeric text compare by value
	long := filterAtLeast(ds, "length", mif.FloatValue(10))
	fmt.Printf("Roads of 10 or more: %d\n", len(long))

	// Text codes compare as strings
	coded := filterAtLeast(ds, "code", mif.TextValue("120100"))
	fmt.Printf("Roads with code >= 120100: %d\n", len(coded))

	for _, rec := range coded {
		fmt.Println(rec)
	}
}
