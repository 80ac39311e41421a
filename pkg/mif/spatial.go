package mif

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// minExtent is the smallest side length given to an indexed box. The R-tree
// rejects zero-size rectangles, so points and axis-parallel lines are padded.
const minExtent = 1e-9

// spatialIndex is an R-tree over record geometry bounds.
type spatialIndex struct {
	rtree *rtreego.Rtree
	stale bool
}

// indexedRecord wraps a record for R-tree storage.
type indexedRecord struct {
	record   *Record
	position int
	bounds   orb.Bound
}

// Bounds implements rtreego.Spatial.
func (r *indexedRecord) Bounds() rtreego.Rect {
	return boundRect(r.bounds)
}

func boundRect(b orb.Bound) rtreego.Rect {
	lengths := []float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
	for i := range lengths {
		if lengths[i] < minExtent {
			lengths[i] = minExtent
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, lengths)
	return rect
}

// BuildIndex builds a spatial index over the bounds of every record that
// has a geometry. Append and SetRecord mark the index stale; call BuildIndex
// again after changing records or their geometry in place.
func (d *Dataset) BuildIndex() {
	tree := rtreego.NewTree(2, 25, 50)
	for i, rec := range d.records {
		if rec == nil || rec.geometry == nil {
			continue
		}
		tree.Insert(&indexedRecord{
			record:   rec,
			position: i,
			bounds:   rec.geometry.Bound(),
		})
	}
	d.index = &spatialIndex{rtree: tree}
}

func (d *Dataset) invalidateIndex() {
	if d.index != nil {
		d.index.stale = true
	}
}

// RecordsInBounds returns the records whose geometry bounds intersect b, in
// file order. Records without geometry never match. Without a current index
// the records are scanned linearly.
func (d *Dataset) RecordsInBounds(b orb.Bound) []*Record {
	if d.index == nil || d.index.stale {
		return d.recordsInBoundsLinear(b)
	}

	query := b.Pad(minExtent)
	spatials := d.index.rtree.SearchIntersect(boundRect(query))
	hits := make([]*indexedRecord, 0, len(spatials))
	for _, s := range spatials {
		ir := s.(*indexedRecord)
		if ir.bounds.Intersects(b) {
			hits = append(hits, ir)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].position < hits[j].position
	})

	result := make([]*Record, len(hits))
	for i, ir := range hits {
		result[i] = ir.record
	}
	return result
}

func (d *Dataset) recordsInBoundsLinear(b orb.Bound) []*Record {
	var result []*Record
	for _, rec := range d.records {
		if rec == nil || rec.geometry == nil {
			continue
		}
		if rec.geometry.Bound().Intersects(b) {
			result = append(result, rec)
		}
	}
	return result
}

// Bounds returns the union of all record geometry bounds, or the zero
// Bound when no record has a geometry.
func (d *Dataset) Bounds() orb.Bound {
	var (
		out   orb.Bound
		found bool
	)
	for _, rec := range d.records {
		if rec == nil || rec.geometry == nil {
			continue
		}
		b := rec.geometry.Bound()
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	return out
}
