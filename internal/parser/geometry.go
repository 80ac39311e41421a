package parser

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
)

// Minimum point counts accepted by the geometry grammar.
const (
	MinLineStringPoints = 2
	MinRingPoints       = 3
)

// ReadCount reads a non-negative point or member count token.
func ReadCount(s *Scanner) (int, error) {
	tok, err := s.Token()
	if err != nil {
		return 0, err
	}
	return ParseCount(tok)
}

// ParseCount parses a non-negative count written as a plain integer.
func ParseCount(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("illegal count %q", tok)
	}
	if n < 0 {
		return 0, fmt.Errorf("illegal count %d", n)
	}
	return n, nil
}

// ParseCoord parses a single coordinate value.
func ParseCoord(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("illegal coordinate %q", tok)
	}
	return v, nil
}

// ParsePoint parses an x y token pair.
func ParsePoint(xTok, yTok string) (orb.Point, error) {
	x, err := ParseCoord(xTok)
	if err != nil {
		return orb.Point{}, err
	}
	y, err := ParseCoord(yTok)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

// ReadPoints reads n x y pairs from the token stream. The pairs may be laid
// out one per line or spread freely across lines.
func ReadPoints(s *Scanner, n int) ([]orb.Point, error) {
	points := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		xTok, err := s.Token()
		if err != nil {
			return nil, fmt.Errorf("point %d of %d: %w", i+1, n, err)
		}
		yTok, err := s.Token()
		if err != nil {
			return nil, fmt.Errorf("point %d of %d: %w", i+1, n, err)
		}
		p, err := ParsePoint(xTok, yTok)
		if err != nil {
			return nil, fmt.Errorf("point %d of %d: %w", i+1, n, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// CloseRing ensures the ring is closed (first coordinate == last).
func CloseRing(ring orb.Ring) orb.Ring {
	if len(ring) == 0 || ring.Closed() {
		return ring
	}
	return append(ring, ring[0])
}

// NormalizeRing closes the ring and reverses it in place when it winds
// counter-clockwise, so every decoded ring is clockwise. Rings with no area
// have no orientation and are left as they are.
func NormalizeRing(ring orb.Ring) orb.Ring {
	ring = CloseRing(ring)
	if ring.Orientation() == orb.CCW {
		ring.Reverse()
	}
	return ring
}

// RectRing builds the closed ring of an axis-aligned rectangle from two
// opposite corners, in the fixed order (x1,y1) (x2,y1) (x2,y2) (x1,y2).
func RectRing(x1, y1, x2, y2 float64) orb.Ring {
	return orb.Ring{
		{x1, y1},
		{x2, y1},
		{x2, y2},
		{x1, y2},
		{x1, y1},
	}
}
