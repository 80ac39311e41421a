package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mif/pkg/mif"
	"github.com/paulmach/orb"
)

func main() {
	h := mif.NewHeader()
	h.Delimiter = ','
	h.AddColumn("id", "Integer")
	h.AddColumn("name", "Char(32)")
	h.AddColumn("area", "Decimal(12,2)")

	ds := mif.New(h)

	park := mif.NewRecord()
	park.SetGeometry(orb.Polygon{{
		{118.50, 37.70}, {118.52, 37.70}, {118.52, 37.72}, {118.50, 37.72}, {118.50, 37.70},
	}})
	park.SetAttr("id", mif.IntValue(1))
	park.SetAttr("name", mif.TextValue("Riverside Park"))
	park.SetAttr("area", mif.FloatValue(4.25))
	ds.Append(park)

	well := mif.NewRecord()
	well.SetGeometry(orb.Point{118.51, 37.71})
	well.SetAttr("id", mif.IntValue(2))
	well.SetAttr("name", mif.TextValue("Well"))
	ds.Append(well)

	// Inspect attributes before writing
	for _, rec := range ds.Records() {
		for _, name := range rec.AttrNames() {
			v, _ := rec.Attr(name)
			fmt.Printf("  %s = %s (%s)\n", name, v, v.Repr())
		}
	}

	opts := mif.DefaultDumpOptions()
	opts.CoordPrecision = 4
	if err := ds.DumpWithOptions("parks", opts); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d records to parks.mif/parks.mid\n", ds.Len())
}
