package mif

import (
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// FormatGeometry renders g as WKT, or NONE when g is nil.
func FormatGeometry(g orb.Geometry) string {
	if g == nil {
		return "NONE"
	}
	return wkt.MarshalString(g)
}

// FormatAttrs renders an attribute map as {name: value, ...} with names
// sorted. Text is quoted, numbers use their shortest form and empty values
// print as null.
func FormatAttrs(attrs map[string]AttrValue) string {
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(formatAttrValue(attrs[name]))
	}
	b.WriteByte('}')
	return b.String()
}

func formatAttrValue(v AttrValue) string {
	switch {
	case v.repr.hasText():
		return strconv.Quote(v.text)
	case v.repr.hasNumber():
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return "null"
	}
}
