package mif

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilRecord indicates a dataset slot holds no record at dump time.
var ErrNilRecord = errors.New("mif: nil record")

// ErrFileNotFound indicates no extension variant of a layer file could be opened
type ErrFileNotFound struct {
	Base       string
	Extensions []string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("can't open file %q with any extension [%s]",
		e.Base, strings.Join(e.Extensions, "|"))
}

// ErrHeaderGrammar indicates the MIF header block is malformed
type ErrHeaderGrammar struct {
	Line   int
	Reason string
	Err    error
}

func (e *ErrHeaderGrammar) Error() string {
	msg := "header grammar error"
	if e.Line > 0 {
		msg = fmt.Sprintf("header grammar error at line %d", e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Reason)
}

func (e *ErrHeaderGrammar) Unwrap() error {
	return e.Err
}

// ErrColumnCount indicates the Columns directive disagrees with the column lines that follow it
type ErrColumnCount struct {
	Expected int
	Actual   int
}

func (e *ErrColumnCount) Error() string {
	return fmt.Sprintf("column count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrFieldCount indicates an attribute record has a different field count than the header
type ErrFieldCount struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrFieldCount) Error() string {
	return fmt.Sprintf("attribute record at line %d: header has %d columns, record has %d fields",
		e.Line, e.Expected, e.Actual)
}

// ErrGeometryGrammar indicates a geometry record violates the MIF grammar
type ErrGeometryGrammar struct {
	Line    int
	Keyword string
	Reason  string
}

func (e *ErrGeometryGrammar) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("invalid geometry (%s) at line %d: %s", e.Keyword, e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid geometry at line %d: %s", e.Line, e.Reason)
}

// ErrUnsupportedGeometry indicates a geometry type that has no MIF encoding
type ErrUnsupportedGeometry struct {
	Type   string
	Reason string
}

func (e *ErrUnsupportedGeometry) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("can't encode geometry %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("can't encode geometry %s", e.Type)
}

// ErrInvalidHeader indicates a header that fails validation before it is written
type ErrInvalidHeader struct {
	Reason string
}

func (e *ErrInvalidHeader) Error() string {
	return fmt.Sprintf("invalid header: %s", e.Reason)
}

// ErrIndexOutOfRange indicates a column or record index beyond bounds
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}
