// Package mif reads and writes MapInfo Interchange Format layers.
//
// A layer is a pair of text files sharing a base name: the .mif file holds
// the header and one geometry record per feature, and the .mid file holds
// one delimited attribute line per feature. Geometry is returned as
// github.com/paulmach/orb values.
//
// # Basic Usage
//
//	ds, err := mif.Load("data/roads")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h := ds.Header()
//	fmt.Printf("%d records, %d columns, delimiter %q\n", ds.Len(), h.ColumnCount(), h.Delimiter)
//
// # Attributes
//
// Attribute values hold text, a number, or both, and convert on demand:
//
//	rec, _ := ds.Record(0)
//	if v, ok := rec.Attr("length"); ok {
//	    fmt.Println(v.Float(), v.Text())
//	}
//
// # Geometry
//
// POINT decodes to orb.Point, LINE and PLINE to orb.LineString, PLINE
// MULTIPLE to orb.MultiLineString, REGION 1 and RECT to orb.Polygon, and
// REGION k to an orb.MultiPolygon of k single-ring polygons. Region rings
// are closed and wound clockwise. Style lines (Pen, Brush, Symbol, Font,
// Center, Smooth) are skipped.
//
// # Writing
//
//	h := mif.NewHeader()
//	h.AddColumn("id", "Integer")
//	h.AddColumn("name", "Char(32)")
//
//	ds := mif.New(h)
//	rec := mif.NewRecord()
//	rec.SetGeometry(orb.Point{116.39, 39.91})
//	rec.SetAttr("id", mif.IntValue(1))
//	rec.SetAttr("name", mif.TextValue("Tiananmen"))
//	ds.Append(rec)
//
//	if err := ds.Dump("out/poi"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Streaming
//
// Reader and Writer process one record at a time over any io.Reader or
// io.Writer pair, for layers too large to hold in memory.
//
// # Spatial Queries
//
//	ds.BuildIndex()
//	visible := ds.RecordsInBounds(orb.Bound{Min: orb.Point{116, 39}, Max: orb.Point{117, 40}})
package mif
