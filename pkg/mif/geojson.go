package mif

import (
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts the dataset to GeoJSON. Header columns become
// typed properties by column kind; other attributes keep their text form,
// or their number when they have no text. Records with a nil geometry
// become features with a null geometry, and nil record slots are skipped.
func (d *Dataset) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, rec := range d.records {
		if rec == nil {
			continue
		}
		fc.Append(d.feature(rec))
	}
	return fc
}

func (d *Dataset) feature(rec *Record) *geojson.Feature {
	f := geojson.NewFeature(rec.geometry)
	for name, v := range rec.attrs {
		f.Properties[name] = propertyValue(d.header, name, v)
	}
	return f
}

func propertyValue(h *Header, name string, v AttrValue) interface{} {
	if v.IsEmpty() {
		return nil
	}
	if i := h.ColumnIndex(name); i >= 0 {
		switch h.columns[i].Kind() {
		case KindInteger:
			return v.Int()
		case KindDecimal:
			return v.Float()
		default:
			return v.Text()
		}
	}
	if v.repr.hasText() {
		return v.text
	}
	return v.num
}
