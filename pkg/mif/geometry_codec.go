package mif

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beetlebugorg/mif/internal/parser"
	"github.com/paulmach/orb"
)

// styleKeywords are the prefixes of presentation lines that may follow a
// geometry. They are recognized and discarded.
var styleKeywords = []string{"pen", "brush", "symbol", "font", "center"}

func isStyleKeyword(lower string) bool {
	if lower == "smooth" {
		return true
	}
	for _, prefix := range styleKeywords {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// decodeGeometry reads the next geometry record, skipping style lines.
// NONE yields a nil geometry. It returns io.EOF when the stream ends before
// a geometry keyword.
func decodeGeometry(s *parser.Scanner) (orb.Geometry, error) {
	for {
		line, err := s.Line()
		if err != nil {
			return nil, err
		}

		fields := strings.Fields(line)
		keyword := strings.ToLower(fields[0])

		var g orb.Geometry
		switch keyword {
		case "none":
			return nil, nil
		case "point":
			g, err = decodePoint(fields)
		case "line":
			g, err = decodeLine(fields)
		case "pline":
			g, err = decodePline(s, fields)
		case "region":
			g, err = decodeRegion(s, fields)
		case "rect":
			g, err = decodeRect(fields)
		default:
			if isStyleKeyword(keyword) {
				continue
			}
			return nil, &ErrGeometryGrammar{Line: s.LineNo(), Keyword: fields[0], Reason: "unsupported keyword"}
		}
		if err != nil {
			return nil, geometryError(s, fields[0], err)
		}
		return g, nil
	}
}

func geometryError(s *parser.Scanner, keyword string, err error) error {
	reason := err.Error()
	if errors.Is(err, io.EOF) {
		reason = "unexpected end of input: " + reason
	}
	return &ErrGeometryGrammar{Line: s.LineNo(), Keyword: strings.ToUpper(keyword), Reason: reason}
}

func expectFields(fields []string, n int) error {
	if len(fields) != n {
		return fmt.Errorf("expected %d values on the keyword line, got %d", n-1, len(fields)-1)
	}
	return nil
}

func decodePoint(fields []string) (orb.Geometry, error) {
	if err := expectFields(fields, 3); err != nil {
		return nil, err
	}
	return parser.ParsePoint(fields[1], fields[2])
}

func decodeLine(fields []string) (orb.Geometry, error) {
	if err := expectFields(fields, 5); err != nil {
		return nil, err
	}
	a, err := parser.ParsePoint(fields[1], fields[2])
	if err != nil {
		return nil, err
	}
	b, err := parser.ParsePoint(fields[3], fields[4])
	if err != nil {
		return nil, err
	}
	return orb.LineString{a, b}, nil
}

// decodePline handles the three PLINE forms: a bare keyword with the point
// count on the next line, an inline count, and PLINE MULTIPLE k.
func decodePline(s *parser.Scanner, fields []string) (orb.Geometry, error) {
	switch len(fields) {
	case 1:
		n, err := parser.ReadCount(s)
		if err != nil {
			return nil, err
		}
		return readLineString(s, n)
	case 2:
		n, err := parser.ParseCount(fields[1])
		if err != nil {
			return nil, err
		}
		return readLineString(s, n)
	case 3:
		if !strings.EqualFold(fields[1], "multiple") {
			return nil, fmt.Errorf("expected MULTIPLE, got %q", fields[1])
		}
		k, err := parser.ParseCount(fields[2])
		if err != nil {
			return nil, err
		}
		if k < 1 {
			return nil, fmt.Errorf("multiple line needs at least 1 member, got %d", k)
		}
		mls := make(orb.MultiLineString, 0, k)
		for i := 0; i < k; i++ {
			n, err := parser.ReadCount(s)
			if err != nil {
				return nil, fmt.Errorf("member %d of %d: %w", i+1, k, err)
			}
			ls, err := readLineString(s, n)
			if err != nil {
				return nil, fmt.Errorf("member %d of %d: %w", i+1, k, err)
			}
			mls = append(mls, ls)
		}
		return mls, nil
	default:
		return nil, fmt.Errorf("malformed PLINE line with %d values", len(fields)-1)
	}
}

func readLineString(s *parser.Scanner, n int) (orb.LineString, error) {
	if n < parser.MinLineStringPoints {
		return nil, fmt.Errorf("line string needs at least %d points, got %d", parser.MinLineStringPoints, n)
	}
	points, err := parser.ReadPoints(s, n)
	if err != nil {
		return nil, err
	}
	return orb.LineString(points), nil
}

// decodeRegion reads REGION k. Each ring becomes its own polygon: one ring
// yields a Polygon, several yield a MultiPolygon of single-ring polygons.
func decodeRegion(s *parser.Scanner, fields []string) (orb.Geometry, error) {
	if err := expectFields(fields, 2); err != nil {
		return nil, err
	}
	k, err := parser.ParseCount(fields[1])
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("region needs at least 1 ring, got %d", k)
	}

	polygons := make(orb.MultiPolygon, 0, k)
	for i := 0; i < k; i++ {
		n, err := parser.ReadCount(s)
		if err != nil {
			return nil, fmt.Errorf("ring %d of %d: %w", i+1, k, err)
		}
		ring, err := readRing(s, n)
		if err != nil {
			return nil, fmt.Errorf("ring %d of %d: %w", i+1, k, err)
		}
		polygons = append(polygons, orb.Polygon{ring})
	}
	if k == 1 {
		return polygons[0], nil
	}
	return polygons, nil
}

func readRing(s *parser.Scanner, n int) (orb.Ring, error) {
	if n < parser.MinRingPoints {
		return nil, fmt.Errorf("ring needs at least %d points, got %d", parser.MinRingPoints, n)
	}
	points, err := parser.ReadPoints(s, n)
	if err != nil {
		return nil, err
	}
	return parser.NormalizeRing(orb.Ring(points)), nil
}

func decodeRect(fields []string) (orb.Geometry, error) {
	if err := expectFields(fields, 5); err != nil {
		return nil, err
	}
	var c [4]float64
	for i := range c {
		v, err := parser.ParseCoord(fields[i+1])
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	return orb.Polygon{parser.RectRing(c[0], c[1], c[2], c[3])}, nil
}

// formatGeometry renders g as one geometry record, including the trailing
// newline. Coordinates are fixed-point with prec fraction digits; a negative
// prec uses the shortest exact representation.
func formatGeometry(g orb.Geometry, prec int) (string, error) {
	var b strings.Builder
	writePoint := func(p orb.Point) {
		b.WriteString(parser.FormatFixed(p[0], prec))
		b.WriteByte(' ')
		b.WriteString(parser.FormatFixed(p[1], prec))
		b.WriteByte('\n')
	}
	writeRing := func(r orb.Ring) {
		fmt.Fprintf(&b, "  %d\n", len(r))
		for _, p := range r {
			writePoint(p)
		}
	}

	switch g := g.(type) {
	case nil:
		b.WriteString("NONE\n")
	case orb.Point:
		b.WriteString("POINT ")
		writePoint(g)
	case orb.LineString:
		switch {
		case len(g) < parser.MinLineStringPoints:
			return "", unsupported(g, fmt.Sprintf("line string has %d points", len(g)))
		case len(g) == 2:
			fmt.Fprintf(&b, "LINE %s %s %s %s\n",
				parser.FormatFixed(g[0][0], prec), parser.FormatFixed(g[0][1], prec),
				parser.FormatFixed(g[1][0], prec), parser.FormatFixed(g[1][1], prec))
		default:
			fmt.Fprintf(&b, "PLINE %d\n", len(g))
			for _, p := range g {
				writePoint(p)
			}
		}
	case orb.MultiLineString:
		if len(g) == 0 {
			return "", unsupported(g, "no members")
		}
		fmt.Fprintf(&b, "PLINE MULTIPLE %d\n", len(g))
		for i, ls := range g {
			if len(ls) < parser.MinLineStringPoints {
				return "", unsupported(g, fmt.Sprintf("member %d has %d points", i, len(ls)))
			}
			fmt.Fprintf(&b, "  %d\n", len(ls))
			for _, p := range ls {
				writePoint(p)
			}
		}
	case orb.Ring:
		if err := checkRings(g, []orb.Ring{g}); err != nil {
			return "", err
		}
		b.WriteString("REGION 1\n")
		writeRing(g)
	case orb.Polygon:
		if err := checkRings(g, g); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "REGION %d\n", len(g))
		for _, r := range g {
			writeRing(r)
		}
	case orb.MultiPolygon:
		var rings []orb.Ring
		for _, p := range g {
			rings = append(rings, p...)
		}
		if err := checkRings(g, rings); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "REGION %d\n", len(rings))
		for _, r := range rings {
			writeRing(r)
		}
	case orb.Bound:
		fmt.Fprintf(&b, "RECT %s %s %s %s\n",
			parser.FormatFixed(g.Min[0], prec), parser.FormatFixed(g.Min[1], prec),
			parser.FormatFixed(g.Max[0], prec), parser.FormatFixed(g.Max[1], prec))
	default:
		return "", unsupported(g, "")
	}
	return b.String(), nil
}

func checkRings(g orb.Geometry, rings []orb.Ring) error {
	if len(rings) == 0 {
		return unsupported(g, "no rings")
	}
	for i, r := range rings {
		if len(r) < parser.MinRingPoints {
			return unsupported(g, fmt.Sprintf("ring %d has %d points", i, len(r)))
		}
	}
	return nil
}

func unsupported(g orb.Geometry, reason string) error {
	return &ErrUnsupportedGeometry{Type: fmt.Sprintf("%T", g), Reason: reason}
}
