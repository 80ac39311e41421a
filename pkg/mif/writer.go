package mif

import (
	"bufio"
	"fmt"
	"io"
)

// Writer encodes records as a MIF stream and its MID companion.
type Writer struct {
	header *Header
	mif    *bufio.Writer
	mid    *bufio.Writer
	opts   DumpOptions
	count  int
}

// NewWriter validates h and writes the MIF header. Nothing is written when
// the header is invalid. Unset precisions in opts take their defaults.
func NewWriter(mif, mid io.Writer, h *Header, opts DumpOptions) (*Writer, error) {
	if err := ValidateHeader(h); err != nil {
		return nil, err
	}
	w := &Writer{
		header: h,
		mif:    bufio.NewWriter(mif),
		mid:    bufio.NewWriter(mid),
		opts:   opts.withDefaults(),
	}
	if _, err := w.mif.WriteString(formatHeader(h)); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return w, nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}

// Write encodes one record. The record's attribute line and geometry are
// both rendered before either is written, so a record that cannot be
// encoded leaves no trace in the output.
func (w *Writer) Write(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("record %d: %w", w.count, ErrNilRecord)
	}
	geom, err := formatGeometry(rec.geometry, w.opts.CoordPrecision)
	if err != nil {
		return fmt.Errorf("record %d: %w", w.count, err)
	}
	line := formatAttrLine(w.header, rec.attrs, w.opts.DecimalPrecision)

	if _, err := w.mid.WriteString(line); err != nil {
		return fmt.Errorf("record %d attributes: %w", w.count, err)
	}
	if _, err := w.mif.WriteString(geom); err != nil {
		return fmt.Errorf("record %d geometry: %w", w.count, err)
	}
	w.count++
	return nil
}

// Flush writes buffered data to both underlying writers.
func (w *Writer) Flush() error {
	if err := w.mif.Flush(); err != nil {
		return err
	}
	return w.mid.Flush()
}
