package mif

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"
)

// Record is one feature of a layer: an optional geometry and its attributes.
//
// Attribute names are case-insensitive and stored lowercase. A record may
// carry attributes that are not header columns; only header columns are
// written when the record is encoded.
type Record struct {
	geometry orb.Geometry
	attrs    map[string]AttrValue
}

// NewRecord returns a record with no geometry and no attributes.
func NewRecord() *Record {
	return &Record{attrs: make(map[string]AttrValue)}
}

// Geometry returns the record geometry, or nil for NONE.
func (r *Record) Geometry() orb.Geometry {
	return r.geometry
}

// SetGeometry replaces the record geometry. A nil geometry encodes as NONE.
func (r *Record) SetGeometry(g orb.Geometry) {
	r.geometry = g
}

// Attr returns the named attribute.
func (r *Record) Attr(name string) (AttrValue, bool) {
	v, ok := r.attrs[strings.ToLower(name)]
	return v, ok
}

// SetAttr sets the named attribute.
func (r *Record) SetAttr(name string, v AttrValue) {
	if r.attrs == nil {
		r.attrs = make(map[string]AttrValue)
	}
	r.attrs[strings.ToLower(name)] = v
}

// DeleteAttr removes the named attribute and reports whether it existed.
func (r *Record) DeleteAttr(name string) bool {
	key := strings.ToLower(name)
	if _, ok := r.attrs[key]; !ok {
		return false
	}
	delete(r.attrs, key)
	return true
}

// HasAttr reports whether the named attribute is set.
func (r *Record) HasAttr(name string) bool {
	_, ok := r.attrs[strings.ToLower(name)]
	return ok
}

// AttrNames returns the attribute names in sorted order.
func (r *Record) AttrNames() []string {
	names := make([]string, 0, len(r.attrs))
	for k := range r.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Attrs returns a copy of the attribute map.
func (r *Record) Attrs() map[string]AttrValue {
	out := make(map[string]AttrValue, len(r.attrs))
	for k, v := range r.attrs {
		out[k] = v
	}
	return out
}

// String renders the geometry as WKT followed by the attributes.
func (r *Record) String() string {
	return FormatGeometry(r.geometry) + " " + FormatAttrs(r.attrs)
}
