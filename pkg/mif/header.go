package mif

import (
	"strings"
)

// Header defaults and well-known values.
const (
	DefaultVersion   = 300
	DefaultDelimiter = '\t'

	// CharsetNeutral declares no particular character set.
	CharsetNeutral = "Neutral"
	// CharsetChinese is the default declared character set.
	CharsetChinese = "WindowsSimChinese"

	// CoordSysLL is a longitude/latitude coordinate system.
	CoordSysLL = "CoordSys Earth Projection 1, 0"
	// CoordSysMC is a non-earth Mercator metre coordinate system.
	CoordSysMC = `CoordSys NonEarth Units "m" Bounds (-40075452.7386, -19928981.8896) (40075452.7386, 19928981.8896)`
)

// ColumnKind classifies a column type for attribute encoding.
type ColumnKind int

const (
	// KindText is any type not recognized as numeric.
	KindText ColumnKind = iota
	// KindInteger covers integer and smallint.
	KindInteger
	// KindDecimal covers decimal(w,d) and float.
	KindDecimal
)

// String returns the name of the column kind.
func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	default:
		return "Text"
	}
}

// KindOf classifies a column type declaration by its case-insensitive prefix.
func KindOf(typ string) ColumnKind {
	t := strings.ToLower(strings.TrimSpace(typ))
	switch {
	case strings.HasPrefix(t, "integer"), strings.HasPrefix(t, "smallint"):
		return KindInteger
	case strings.HasPrefix(t, "decimal"), strings.HasPrefix(t, "float"):
		return KindDecimal
	default:
		return KindText
	}
}

// Column is one attribute column declaration.
type Column struct {
	Name string
	Type string
}

// Kind returns the column's classification.
func (c Column) Kind() ColumnKind {
	return KindOf(c.Type)
}

// Header is the schema and metadata of a MIF/MID layer.
//
// Columns are ordered; their position is the field position in every
// attribute record. Names are unique ignoring case and are looked up
// through a lowercase index.
type Header struct {
	Version   int
	Charset   string
	Delimiter byte
	CoordSys  string
	Transform string
	Unique    []int
	Index     []int

	columns []Column
	byName  map[string]int
}

// NewHeader returns a header with default metadata and no columns.
func NewHeader() *Header {
	return &Header{
		Version:   DefaultVersion,
		Charset:   CharsetChinese,
		Delimiter: DefaultDelimiter,
		CoordSys:  CoordSysLL,
		byName:    make(map[string]int),
	}
}

// ColumnCount returns the number of columns.
func (h *Header) ColumnCount() int {
	return len(h.columns)
}

// Columns returns a copy of the ordered column list.
func (h *Header) Columns() []Column {
	out := make([]Column, len(h.columns))
	copy(out, h.columns)
	return out
}

// ColumnIndex returns the position of the named column, or -1.
// The lookup is case-insensitive.
func (h *Header) ColumnIndex(name string) int {
	if i, ok := h.byName[strings.ToLower(name)]; ok {
		return i
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (h *Header) HasColumn(name string) bool {
	return h.ColumnIndex(name) >= 0
}

// Column returns the column at position i.
func (h *Header) Column(i int) (Column, error) {
	if i < 0 || i >= len(h.columns) {
		return Column{}, &ErrIndexOutOfRange{Index: i, Len: len(h.columns)}
	}
	return h.columns[i], nil
}

// ColumnName returns the name of the column at position i.
func (h *Header) ColumnName(i int) (string, error) {
	c, err := h.Column(i)
	return c.Name, err
}

// ColumnType returns the type declaration of the column at position i.
func (h *Header) ColumnType(i int) (string, error) {
	c, err := h.Column(i)
	return c.Type, err
}

// ColumnKind returns the classification of the column at position i.
func (h *Header) ColumnKind(i int) (ColumnKind, error) {
	c, err := h.Column(i)
	if err != nil {
		return KindText, err
	}
	return c.Kind(), nil
}

// AddColumn appends a column. It returns false, leaving the header
// unchanged, if a column of that name already exists in any case.
func (h *Header) AddColumn(name, typ string) bool {
	key := strings.ToLower(name)
	if h.byName == nil {
		h.byName = make(map[string]int)
	}
	if _, ok := h.byName[key]; ok {
		return false
	}
	h.byName[key] = len(h.columns)
	h.columns = append(h.columns, Column{Name: name, Type: typ})
	return true
}

// DeleteColumnByName removes the named column. It returns false if no such
// column exists.
func (h *Header) DeleteColumnByName(name string) bool {
	i := h.ColumnIndex(name)
	if i < 0 {
		return false
	}
	return h.DeleteColumnByIndex(i)
}

// DeleteColumnByIndex removes the column at position i. It returns false if
// i is out of range.
func (h *Header) DeleteColumnByIndex(i int) bool {
	if i < 0 || i >= len(h.columns) {
		return false
	}
	h.columns = append(h.columns[:i], h.columns[i+1:]...)
	h.reindex()
	return true
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	c := *h
	c.Unique = append([]int(nil), h.Unique...)
	c.Index = append([]int(nil), h.Index...)
	c.columns = h.Columns()
	c.reindex()
	return &c
}

func (h *Header) reindex() {
	h.byName = make(map[string]int, len(h.columns))
	for i, c := range h.columns {
		h.byName[strings.ToLower(c.Name)] = i
	}
}
