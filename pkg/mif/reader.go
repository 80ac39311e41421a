package mif

import (
	"fmt"
	"io"

	"github.com/beetlebugorg/mif/internal/parser"
)

// Reader decodes records from a MIF stream and its MID companion.
//
// The header is decoded by NewReader. Each Read pairs the next attribute
// line with the next geometry record. A layer without columns has no
// attribute lines, so its records are counted off the geometry stream.
type Reader struct {
	header *Header
	mif    *parser.Scanner
	mid    *parser.Scanner
	opts   LoadOptions
	count  int
}

// NewReader decodes the MIF header and returns a Reader positioned at the
// first record.
func NewReader(mif, mid io.Reader, opts LoadOptions) (*Reader, error) {
	s := parser.NewScanner(mif)
	h, err := decodeHeader(s)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return &Reader{
		header: h,
		mif:    s,
		mid:    parser.NewScanner(mid),
		opts:   opts,
	}, nil
}

// Header returns the decoded header.
func (r *Reader) Header() *Header {
	return r.header
}

// Count returns the number of records read so far.
func (r *Reader) Count() int {
	return r.count
}

// Read returns the next record. It returns io.EOF when the attribute stream
// is exhausted and a non-nil error for a corrupt record. A record whose
// attributes decode but whose geometry does not is an error.
func (r *Reader) Read() (*Record, error) {
	rec := NewRecord()

	if len(r.header.columns) == 0 {
		g, err := decodeGeometry(r.mif)
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("record %d geometry: %w", r.count, err)
		}
		if !r.opts.AttributesOnly {
			rec.geometry = g
		}
		r.count++
		return rec, nil
	}

	attrs, err := decodeAttrs(r.mid, r.header)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("record %d attributes: %w", r.count, err)
	}
	rec.attrs = attrs

	if !r.opts.AttributesOnly {
		g, err := decodeGeometry(r.mif)
		if err == io.EOF {
			err = &ErrGeometryGrammar{Line: r.mif.LineNo(), Reason: "geometry stream ended before attribute stream"}
		}
		if err != nil {
			return nil, fmt.Errorf("record %d geometry: %w", r.count, err)
		}
		rec.geometry = g
	}

	r.count++
	return rec, nil
}
