package mif

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderRead(t *testing.T) {
	mif := "Delimiter \",\"\nColumns 2\n  id Integer\n  name Char(10)\nData\nPOINT 1 2\nNONE\n"
	mid := "1,\"first\"\n\n2,\"second\"\n"

	r, err := NewReader(strings.NewReader(mif), strings.NewReader(mid), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Header().ColumnCount())

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, orb.Point{1, 2}, rec.Geometry())
	name, _ := rec.Attr("name")
	assert.Equal(t, "first", name.Text())

	rec, err = r.Read()
	require.NoError(t, err)
	assert.Nil(t, rec.Geometry())

	rec, err = r.Read()
	assert.Nil(t, rec)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 2, r.Count())
}

func TestNewReaderHeaderError(t *testing.T) {
	_, err := NewReader(strings.NewReader("Version 300\n"), strings.NewReader(""), DefaultLoadOptions())
	var grammar *ErrHeaderGrammar
	assert.True(t, errors.As(err, &grammar))
}

func TestWriterWrite(t *testing.T) {
	h := NewHeader()
	h.AddColumn("id", "Integer")

	var mif, mid bytes.Buffer
	w, err := NewWriter(&mif, &mid, h, DefaultDumpOptions())
	require.NoError(t, err)

	rec := NewRecord()
	rec.SetAttr("id", IntValue(9))
	rec.SetGeometry(orb.Point{1, 2})
	require.NoError(t, w.Write(rec))

	bad := NewRecord()
	bad.SetAttr("id", IntValue(10))
	bad.SetGeometry(orb.LineString{{0, 0}})
	assert.Error(t, w.Write(bad))

	assert.ErrorIs(t, w.Write(nil), ErrNilRecord)
	require.NoError(t, w.Flush())

	assert.Equal(t, 1, w.Count())
	assert.Equal(t, "9\n", mid.String())
	assert.True(t, strings.HasSuffix(mif.String(), "Data\nPOINT 1.000000 2.000000\n"))
}

func TestNewWriterInvalidHeader(t *testing.T) {
	var mif, mid bytes.Buffer
	_, err := NewWriter(&mif, &mid, nil, DefaultDumpOptions())
	var invalid *ErrInvalidHeader
	assert.True(t, errors.As(err, &invalid))
	assert.Zero(t, mif.Len())
}
