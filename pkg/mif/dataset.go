package mif

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// File extension variants tried, in order, when opening a layer.
var (
	mifExtensions = []string{"mif", "MIF", "Mif"}
	midExtensions = []string{"mid", "MID", "Mid"}
)

// Dataset is a MIF/MID layer held in memory: a header and an ordered list
// of records. Record order is file order and dump order.
//
// A Dataset is not safe for concurrent use.
type Dataset struct {
	header  *Header
	records []*Record
	index   *spatialIndex
}

// New returns an empty dataset with the given header. A nil header is
// replaced by NewHeader().
func New(h *Header) *Dataset {
	if h == nil {
		h = NewHeader()
	}
	return &Dataset{header: h}
}

// Load reads the layer at base, a path without extension.
//
// Example:
//
//	ds, err := mif.Load("data/roads")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range ds.Records() {
//	    fmt.Println(rec)
//	}
func Load(base string) (*Dataset, error) {
	return LoadWithOptions(base, DefaultLoadOptions())
}

// LoadWithOptions reads the layer at base with custom options.
//
// The first of base.mif, base.MIF and base.Mif that opens is used, and
// likewise for the .mid file. Any corrupt record aborts the load and no
// dataset is returned.
func LoadWithOptions(base string, opts LoadOptions) (*Dataset, error) {
	log := loggerOrNoop(opts.Logger)

	mifFile, err := openVariant(base, mifExtensions)
	if err != nil {
		log.LogLoad(base, 0, err)
		return nil, err
	}
	defer mifFile.Close()

	midFile, err := openVariant(base, midExtensions)
	if err != nil {
		log.LogLoad(base, 0, err)
		return nil, err
	}
	defer midFile.Close()

	ds, err := decode(mifFile, midFile, opts, log)
	if err != nil {
		log.LogLoad(base, 0, err)
		return nil, fmt.Errorf("load %s: %w", base, err)
	}
	log.LogLoad(base, ds.Len(), nil)
	return ds, nil
}

// Decode reads a layer from a MIF stream and its MID companion.
func Decode(mif, mid io.Reader, opts LoadOptions) (*Dataset, error) {
	return decode(mif, mid, opts, loggerOrNoop(opts.Logger))
}

func decode(mif, mid io.Reader, opts LoadOptions, log *Logger) (*Dataset, error) {
	r, err := NewReader(mif, mid, opts)
	if err != nil {
		return nil, err
	}
	ds := New(r.Header())
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return ds, nil
		}
		if err != nil {
			log.LogRecordError(r.Count(), err)
			return nil, err
		}
		ds.records = append(ds.records, rec)
	}
}

func openVariant(base string, exts []string) (*os.File, error) {
	for _, ext := range exts {
		f, err := os.Open(base + "." + ext)
		if err == nil {
			return f, nil
		}
	}
	return nil, &ErrFileNotFound{Base: base, Extensions: exts}
}

// Dump writes the dataset to base.mif and base.mid, creating or truncating
// both files.
func (d *Dataset) Dump(base string) error {
	return d.DumpWithOptions(base, DefaultDumpOptions())
}

// DumpWithOptions writes the dataset with custom options.
//
// The header is validated before either file is opened. A nil record or a
// geometry that cannot be encoded aborts the dump and leaves the records
// written so far on disk.
func (d *Dataset) DumpWithOptions(base string, opts DumpOptions) (err error) {
	log := loggerOrNoop(opts.Logger)
	defer func() {
		if err != nil {
			log.LogDump(base, 0, err)
		}
	}()

	if err := ValidateHeader(d.header); err != nil {
		return err
	}

	mifFile, err := os.Create(base + ".mif")
	if err != nil {
		return fmt.Errorf("create mif file: %w", err)
	}
	defer func() {
		err = errors.Join(err, mifFile.Close())
	}()

	midFile, err := os.Create(base + ".mid")
	if err != nil {
		return fmt.Errorf("create mid file: %w", err)
	}
	defer func() {
		err = errors.Join(err, midFile.Close())
	}()

	if err := d.encode(mifFile, midFile, opts, log); err != nil {
		return fmt.Errorf("dump %s: %w", base, err)
	}
	log.LogDump(base, len(d.records), nil)
	return nil
}

// Encode writes the dataset to a MIF stream and its MID companion.
func (d *Dataset) Encode(mif, mid io.Writer, opts DumpOptions) error {
	return d.encode(mif, mid, opts, loggerOrNoop(opts.Logger))
}

func (d *Dataset) encode(mif, mid io.Writer, opts DumpOptions, log *Logger) error {
	w, err := NewWriter(mif, mid, d.header, opts)
	if err != nil {
		return err
	}
	for i, rec := range d.records {
		if err := w.Write(rec); err != nil {
			log.LogRecordError(i, err)
			return errors.Join(err, w.Flush())
		}
	}
	return w.Flush()
}

// Header returns the dataset header. Changes to it apply to later dumps.
func (d *Dataset) Header() *Header {
	return d.header
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the records in file order.
func (d *Dataset) Records() []*Record {
	return d.records
}

// Record returns the record at position i.
func (d *Dataset) Record(i int) (*Record, error) {
	if i < 0 || i >= len(d.records) {
		return nil, &ErrIndexOutOfRange{Index: i, Len: len(d.records)}
	}
	return d.records[i], nil
}

// SetRecord replaces the record at position i.
func (d *Dataset) SetRecord(i int, rec *Record) error {
	if i < 0 || i >= len(d.records) {
		return &ErrIndexOutOfRange{Index: i, Len: len(d.records)}
	}
	d.records[i] = rec
	d.invalidateIndex()
	return nil
}

// Append adds a record at the end.
func (d *Dataset) Append(rec *Record) {
	d.records = append(d.records, rec)
	d.invalidateIndex()
}
