package mif

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beetlebugorg/mif/internal/parser"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkDemoHeader(t *testing.T, h *Header) {
	t.Helper()
	assert.Equal(t, 300, h.Version)
	assert.Equal(t, byte(','), h.Delimiter)
	assert.Equal(t, 4, h.ColumnCount())
	assert.Equal(t, 0, h.ColumnIndex("id"))
	assert.Equal(t, 3, h.ColumnIndex("kind"))
	assert.Equal(t, -1, h.ColumnIndex("no-exist"))

	name, err := h.ColumnName(2)
	require.NoError(t, err)
	assert.Equal(t, "length", name)

	typ, err := h.ColumnType(1)
	require.NoError(t, err)
	assert.Equal(t, "char(6)", typ)
}

func checkDemoRecords(t *testing.T, ds *Dataset) {
	t.Helper()
	require.Equal(t, 4, ds.Len())

	rec, err := ds.Record(3)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.HasAttr("id"))

	id, _ := rec.Attr("id")
	assert.Equal(t, int64(1237), id.Int())
	code, _ := rec.Attr("code")
	assert.Equal(t, "120100", code.Text())
	length, ok := rec.Attr("length")
	require.True(t, ok)
	assert.Equal(t, 10.12, length.Float())

	_, ok = rec.Attr("no-exist")
	assert.False(t, ok)

	empty, _ := ds.Records()[2].Attr("length")
	assert.Equal(t, 0.0, empty.Float())

	rec.SetAttr("new-col", TextValue("new-value"))
	v, _ := rec.Attr("new-col")
	assert.Equal(t, "new-value", v.Text())

	rec.SetAttr("code", TextValue("update-value"))
	v, _ = rec.Attr("code")
	assert.Equal(t, "update-value", v.Text())
}

func TestLoadPointDemo(t *testing.T) {
	ds, err := Load("testdata/point_demo")
	require.NoError(t, err)

	checkDemoHeader(t, ds.Header())
	checkDemoRecords(t, ds)

	assert.Equal(t, orb.Point{118.539272792, 37.7776621352}, ds.Records()[0].Geometry())
	assert.Equal(t, orb.Point{118.547544479, 37.7993319101}, ds.Records()[3].Geometry())

	require.NoError(t, ds.Dump(filepath.Join(t.TempDir(), "point_demo_dump")))
}

func TestLoadLineDemo(t *testing.T) {
	ds, err := Load("testdata/line_demo")
	require.NoError(t, err)

	checkDemoHeader(t, ds.Header())
	checkDemoRecords(t, ds)

	mls, ok := ds.Records()[0].Geometry().(orb.MultiLineString)
	require.True(t, ok)
	require.Len(t, mls, 2)
	assert.Len(t, mls[0], 3)
	assert.Equal(t, 118.7574625, mls[0][0][0])
	assert.Equal(t, 37.733215, mls[1][1][1])

	ls, ok := ds.Records()[1].Geometry().(orb.LineString)
	require.True(t, ok)
	require.Len(t, ls, 4)
	assert.Equal(t, 118.760968, ls[0][0])
	assert.Equal(t, 37.7389595, ls[3][1])

	line, ok := ds.Records()[2].Geometry().(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{118.7614015, 37.7388}, {118.7615, 37.738903}}, line)

	spread, ok := ds.Records()[3].Geometry().(orb.LineString)
	require.True(t, ok)
	require.Len(t, spread, 3)
	assert.Equal(t, 118.7406065, spread[0][0])
	assert.Equal(t, 37.7342243333, spread[2][1])
}

func TestLoadRegionDemo(t *testing.T) {
	ds, err := Load("testdata/region_demo")
	require.NoError(t, err)

	checkDemoHeader(t, ds.Header())
	checkDemoRecords(t, ds)

	poly, ok := ds.Records()[0].Geometry().(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	ring := poly[0]
	require.Len(t, ring, 5)
	assert.Equal(t, orb.Point{118.55544, 37.879157}, ring[0])
	assert.Equal(t, ring[0], ring[4])
	assert.Equal(t, orb.CW, ring.Orientation())

	multi, ok := ds.Records()[1].Geometry().(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, multi, 2)
	require.Len(t, multi[0][0], 5)
	require.Len(t, multi[1][0], 4)
	assert.Equal(t, 118.810769, multi[0][0][0][0])
	assert.Equal(t, orb.Point{118.734481, 37.799084}, multi[1][0][0])
	for _, p := range multi {
		assert.Equal(t, orb.CW, p[0].Orientation())
		assert.Equal(t, p[0][0], p[0][len(p[0])-1])
	}

	closed, ok := ds.Records()[2].Geometry().(orb.Polygon)
	require.True(t, ok)
	require.Len(t, closed[0], 6)
	assert.Equal(t, 118.743614, closed[0][0][0])
	assert.Equal(t, orb.Point{118.743, 37.801476}, closed[0][1])
	assert.Equal(t, closed[0][0], closed[0][5])

	rect, ok := ds.Records()[3].Geometry().(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, orb.Ring{{118.70, 37.70}, {118.80, 37.70}, {118.80, 37.75}, {118.70, 37.75}, {118.70, 37.70}}, rect[0])
}

func TestLoadAttributesOnly(t *testing.T) {
	ds, err := LoadWithOptions("testdata/region_demo", LoadOptions{AttributesOnly: true})
	require.NoError(t, err)
	require.Equal(t, 4, ds.Len())
	for _, rec := range ds.Records() {
		assert.Nil(t, rec.Geometry())
	}
}

func TestLoadExtensionVariants(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "Layer")
	writeLayer(t, base, "MIF", "Mid",
		"Columns 1\n  a Integer\nData\nPOINT 1 2\n",
		"5\n")

	ds, err := Load(base)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, orb.Point{1, 2}, ds.Records()[0].Geometry())
}

func TestLoadFileNotFound(t *testing.T) {
	base := filepath.Join(t.TempDir(), "missing")

	_, err := Load(base)
	var notFound *ErrFileNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, base, notFound.Base)
	assert.Equal(t, []string{"mif", "MIF", "Mif"}, notFound.Extensions)

	writeLayer(t, base, "mif", "", "Columns 0\nData\n", "")
	_, err = Load(base)
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, []string{"mid", "MID", "Mid"}, notFound.Extensions)
}

func TestLoadAbortsOnCorruptRecord(t *testing.T) {
	tests := []struct {
		name string
		mif  string
		mid  string
		want interface{}
	}{
		{
			name: "field count",
			mif:  "Columns 2\n a Integer\n b Integer\nData\nPOINT 1 2\nPOINT 3 4\n",
			mid:  "1,2\n3\n",
			want: &ErrFieldCount{},
		},
		{
			name: "geometry grammar",
			mif:  "Columns 1\n a Integer\nData\nPOINT 1 2\nARC 1 2\n",
			mid:  "1\n2\n",
			want: &ErrGeometryGrammar{},
		},
		{
			name: "geometry stream ends first",
			mif:  "Columns 1\n a Integer\nData\nPOINT 1 2\n",
			mid:  "1\n2\n",
			want: &ErrGeometryGrammar{},
		},
		{
			name: "header",
			mif:  "Columns 2\n a Integer\nData\n",
			mid:  "",
			want: &ErrHeaderGrammar{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := filepath.Join(t.TempDir(), "layer")
			mif := strings.Replace(tt.mif, "Columns", "Delimiter \",\"\nColumns", 1)
			writeLayer(t, base, "mif", "mid", mif, tt.mid)

			ds, err := Load(base)
			assert.Nil(t, ds)
			require.Error(t, err)
			switch tt.want.(type) {
			case *ErrFieldCount:
				var target *ErrFieldCount
				assert.True(t, errors.As(err, &target), "got %v", err)
			case *ErrGeometryGrammar:
				var target *ErrGeometryGrammar
				assert.True(t, errors.As(err, &target), "got %v", err)
			case *ErrHeaderGrammar:
				var target *ErrHeaderGrammar
				assert.True(t, errors.As(err, &target), "got %v", err)
			}
		})
	}
}

func TestLoadEmptyAfterHeader(t *testing.T) {
	base := filepath.Join(t.TempDir(), "empty")
	writeLayer(t, base, "mif", "mid", "Columns 1\n a Char(2)\n", "")

	ds, err := Load(base)
	require.NoError(t, err)
	assert.Zero(t, ds.Len())
}

func TestDumpLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"point_demo", "line_demo", "region_demo"} {
		t.Run(name, func(t *testing.T) {
			orig, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			out := filepath.Join(t.TempDir(), name)
			require.NoError(t, orig.Dump(out))

			got, err := Load(out)
			require.NoError(t, err)
			assertDatasetsEqual(t, orig, got)
		})
	}
}

func TestDumpLoadRoundTripBuiltDataset(t *testing.T) {
	h := NewHeader()
	h.AddColumn("ID", "Integer")
	h.AddColumn("name", "Char(20)")
	h.AddColumn("score", "Float")
	h.Index = []int{1}

	ds := New(h)
	rec := NewRecord()
	rec.SetGeometry(orb.Point{116.391234, 39.907654})
	rec.SetAttr("id", IntValue(1))
	rec.SetAttr("name", TextValue("with\ttab"))
	rec.SetAttr("score", FloatValue(0.5))
	ds.Append(rec)

	noGeom := NewRecord()
	noGeom.SetAttr("name", TextValue("no geometry"))
	ds.Append(noGeom)

	ring := NewRecord()
	ring.SetGeometry(orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}})
	ds.Append(ring)

	out := filepath.Join(t.TempDir(), "built")
	require.NoError(t, ds.Dump(out))

	got, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.Header().Index)
	assertDatasetsEqual(t, ds, got)

	missing, _ := got.Records()[1].Attr("id")
	assert.Equal(t, int64(0), missing.Int())
}

func TestDumpNoColumns(t *testing.T) {
	ds := New(nil)
	for _, g := range []orb.Geometry{orb.Point{1, 1}, nil, orb.Point{2, 2}} {
		rec := NewRecord()
		rec.SetGeometry(g)
		ds.Append(rec)
	}

	out := filepath.Join(t.TempDir(), "geom_only")
	require.NoError(t, ds.Dump(out))

	got, err := Load(out)
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, orb.Point{2, 2}, got.Records()[2].Geometry())
	assert.Nil(t, got.Records()[1].Geometry())
}

func TestDumpNilRecord(t *testing.T) {
	ds := New(demoHeader())
	rec := NewRecord()
	rec.SetAttr("id", IntValue(1))
	ds.Append(rec)
	ds.Append(nil)

	out := filepath.Join(t.TempDir(), "partial")
	err := ds.Dump(out)
	require.True(t, errors.Is(err, ErrNilRecord), "got %v", err)

	mid, readErr := os.ReadFile(out + ".mid")
	require.NoError(t, readErr)
	assert.Equal(t, "1,\"\",0.000000,\"\"\n", string(mid))
}

func TestDumpUnsupportedGeometry(t *testing.T) {
	ds := New(demoHeader())
	rec := NewRecord()
	rec.SetGeometry(orb.MultiPoint{{0, 0}})
	ds.Append(rec)

	err := ds.Dump(filepath.Join(t.TempDir(), "bad"))
	var unsupported *ErrUnsupportedGeometry
	assert.True(t, errors.As(err, &unsupported), "got %v", err)
}

func TestDumpInvalidHeaderWritesNothing(t *testing.T) {
	h := demoHeader()
	h.Delimiter = '"'
	ds := New(h)

	out := filepath.Join(t.TempDir(), "invalid")
	err := ds.Dump(out)

	var invalid *ErrInvalidHeader
	require.True(t, errors.As(err, &invalid))
	_, statErr := os.Stat(out + ".mif")
	assert.True(t, os.IsNotExist(statErr))
}

func TestDecodeEncodeStreams(t *testing.T) {
	ds := New(demoHeader())
	rec := NewRecord()
	rec.SetGeometry(orb.LineString{{0, 0}, {1, 1}, {2, 2}})
	rec.SetAttr("code", TextValue("A1"))
	ds.Append(rec)

	var mif, mid bytes.Buffer
	require.NoError(t, ds.Encode(&mif, &mid, DumpOptions{CoordPrecision: 1, DecimalPrecision: 2}))
	assert.Contains(t, mif.String(), "PLINE 3\n0.0 0.0\n")
	assert.Equal(t, "0,\"A1\",0.00,\"\"\n", mid.String())

	got, err := Decode(&mif, &mid, DefaultLoadOptions())
	require.NoError(t, err)
	assertDatasetsEqual(t, ds, got)
}

func TestEncodeDecodeEscapedText(t *testing.T) {
	h := NewHeader()
	h.AddColumn("path", "Char(64)")
	h.AddColumn("code", "Integer")

	texts := []string{`C:\data\`, "say \"hi\",\tnow", "two\nlines", ""}
	ds := New(h)
	for i, text := range texts {
		rec := NewRecord()
		rec.SetGeometry(orb.Point{float64(i), float64(i)})
		rec.SetAttr("path", TextValue(text))
		rec.SetAttr("code", IntValue(int64(i)))
		ds.Append(rec)
	}

	var mif, mid bytes.Buffer
	require.NoError(t, ds.Encode(&mif, &mid, DefaultDumpOptions()))
	assert.Equal(t, len(texts), strings.Count(mid.String(), "\n"))

	got, err := Decode(&mif, &mid, DefaultLoadOptions())
	require.NoError(t, err)
	require.Equal(t, len(texts), got.Len())
	for i, text := range texts {
		rec, _ := got.Record(i)
		path, _ := rec.Attr("path")
		code, _ := rec.Attr("code")
		assert.Equal(t, text, path.Text())
		assert.Equal(t, int64(i), code.Int())
	}
}

func TestDecodeEmptyTabFields(t *testing.T) {
	h := "Columns 2\n  a Integer\n  b Char(4)\nData\nPOINT 1 1\nPOINT 2 2\nPOINT 3 3\n"
	mid := "1\t\"x\"\n\t\n3\t\"z\"\n"

	ds, err := Decode(strings.NewReader(h), strings.NewReader(mid), DefaultLoadOptions())
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	second, _ := ds.Record(1)
	assert.Equal(t, orb.Point{2, 2}, second.Geometry())
	a, _ := second.Attr("a")
	b, _ := second.Attr("b")
	assert.Equal(t, int64(0), a.Int())
	assert.Equal(t, "", b.Text())

	third, _ := ds.Record(2)
	assert.Equal(t, orb.Point{3, 3}, third.Geometry())
	a, _ = third.Attr("a")
	assert.Equal(t, int64(3), a.Int())
}

func TestEncodeZeroDumpOptions(t *testing.T) {
	h := NewHeader()
	h.AddColumn("length", "Decimal(10,6)")
	ds := New(h)
	rec := NewRecord()
	rec.SetGeometry(orb.Point{116.397128, 39.916527})
	rec.SetAttr("length", FloatValue(1.234567))
	ds.Append(rec)

	var mif, mid bytes.Buffer
	require.NoError(t, ds.Encode(&mif, &mid, DumpOptions{}))
	assert.Contains(t, mif.String(), "POINT 116.397128 39.916527\n")
	assert.Equal(t, "1.234567\n", mid.String())

	mif.Reset()
	mid.Reset()
	require.NoError(t, ds.Encode(&mif, &mid, DumpOptions{CoordPrecision: -1, DecimalPrecision: -1}))
	assert.Contains(t, mif.String(), "POINT 116.397128 39.916527\n")
	assert.Equal(t, "1.234567\n", mid.String())
}

func TestDatasetRecordAccess(t *testing.T) {
	ds := New(nil)
	assert.Equal(t, CoordSysLL, ds.Header().CoordSys)

	_, err := ds.Record(0)
	var rangeErr *ErrIndexOutOfRange
	require.True(t, errors.As(err, &rangeErr))

	first := NewRecord()
	ds.Append(first)
	got, err := ds.Record(0)
	require.NoError(t, err)
	assert.Same(t, first, got)

	second := NewRecord()
	require.NoError(t, ds.SetRecord(0, second))
	got, _ = ds.Record(0)
	assert.Same(t, second, got)

	assert.Error(t, ds.SetRecord(1, first))
	assert.Error(t, ds.SetRecord(-1, first))
	_, err = ds.Record(-1)
	assert.Error(t, err)
}

func writeLayer(t *testing.T, base, mifExt, midExt, mif, mid string) {
	t.Helper()
	if mifExt != "" {
		require.NoError(t, os.WriteFile(base+"."+mifExt, []byte(mif), 0o644))
	}
	if midExt != "" {
		require.NoError(t, os.WriteFile(base+"."+midExt, []byte(mid), 0o644))
	}
}

// assertGeometryNear compares geometry kinds and coordinates within tol.
// Polygon rings are compared after closure and winding normalization.
func assertGeometryNear(t *testing.T, want, got orb.Geometry, tol float64) {
	t.Helper()
	if want == nil || got == nil {
		assert.Equal(t, want, got)
		return
	}
	wantKind, gotKind := want.GeoJSONType(), got.GeoJSONType()
	if _, ok := want.(orb.Bound); ok {
		wantKind = "Polygon"
	}
	if _, ok := want.(orb.Ring); ok {
		wantKind = "Polygon"
	}
	require.Equal(t, wantKind, gotKind)

	wp, gp := normalizedPoints(want), normalizedPoints(got)
	require.Equal(t, len(wp), len(gp))
	for i := range wp {
		assert.InDelta(t, wp[i][0], gp[i][0], tol, "point %d x", i)
		assert.InDelta(t, wp[i][1], gp[i][1], tol, "point %d y", i)
	}
}

func normalizedPoints(g orb.Geometry) []orb.Point {
	normalized := func(r orb.Ring) []orb.Point {
		return parser.NormalizeRing(append(orb.Ring(nil), r...))
	}
	switch g := g.(type) {
	case orb.Point:
		return []orb.Point{g}
	case orb.LineString:
		return g
	case orb.MultiLineString:
		var out []orb.Point
		for _, ls := range g {
			out = append(out, ls...)
		}
		return out
	case orb.Ring:
		return normalized(g)
	case orb.Bound:
		return normalized(g.ToRing())
	case orb.Polygon:
		var out []orb.Point
		for _, r := range g {
			out = append(out, normalized(r)...)
		}
		return out
	case orb.MultiPolygon:
		var out []orb.Point
		for _, p := range g {
			out = append(out, normalizedPoints(p)...)
		}
		return out
	}
	return nil
}

// assertDatasetsEqual compares headers by columns and delimiter, attributes
// by ValueEqual over header columns, and geometry by coordinates.
func assertDatasetsEqual(t *testing.T, want, got *Dataset) {
	t.Helper()
	wh, gh := want.Header(), got.Header()
	assert.Equal(t, wh.Delimiter, gh.Delimiter)
	require.Equal(t, wh.ColumnCount(), gh.ColumnCount())
	for i, c := range wh.Columns() {
		gc, err := gh.Column(i)
		require.NoError(t, err)
		assert.True(t, strings.EqualFold(c.Name, gc.Name), "column %d name", i)
		assert.True(t, strings.EqualFold(c.Type, gc.Type), "column %d type", i)
	}

	require.Equal(t, want.Len(), got.Len())
	for i := range want.Records() {
		w, g := want.Records()[i], got.Records()[i]
		assertGeometryNear(t, w.Geometry(), g.Geometry(), 1e-6)
		for _, c := range wh.Columns() {
			wv, _ := w.Attr(c.Name)
			gv, ok := g.Attr(c.Name)
			require.True(t, ok, "record %d column %s", i, c.Name)
			if !wv.ValueEqual(gv) {
				// A missing attribute is written as the column's zero value.
				assert.True(t, wv.IsEmpty(), "record %d column %s: %v != %v", i, c.Name, wv, gv)
			}
		}
	}
}
