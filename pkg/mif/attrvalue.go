package mif

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/mif/internal/parser"
)

// DefaultTextPrecision is the number of fraction digits used when a numeric
// attribute value is rendered as text.
const DefaultTextPrecision = 8

// Repr reports which representations an AttrValue currently holds.
type Repr uint8

const (
	// ReprEmpty is the zero value: neither text nor number.
	ReprEmpty Repr = iota
	// ReprText holds text only; the number is derived on demand.
	ReprText
	// ReprNumber holds a number only; the text is derived on demand.
	ReprNumber
	// ReprBoth holds both representations.
	ReprBoth
)

// String returns the name of the representation state.
func (r Repr) String() string {
	switch r {
	case ReprEmpty:
		return "Empty"
	case ReprText:
		return "Text"
	case ReprNumber:
		return "Number"
	case ReprBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

func (r Repr) hasText() bool   { return r == ReprText || r == ReprBoth }
func (r Repr) hasNumber() bool { return r == ReprNumber || r == ReprBoth }

// AttrValue is a scalar attribute value that holds text, a number, or both.
//
// A value starts with exactly one representation. Text and Float/Int derive
// the missing one without changing the value, so they are safe on copies
// such as those returned by Record.Attr. Filled returns a value holding both
// representations; filling is idempotent. Text derived from a number is
// fixed-point with DefaultTextPrecision fraction digits; a number derived
// from text uses a permissive parse where a non-numeric prefix yields 0.
type AttrValue struct {
	repr Repr
	text string
	num  float64
}

// TextValue returns a text attribute value.
func TextValue(s string) AttrValue {
	return AttrValue{repr: ReprText, text: s}
}

// IntValue returns a numeric attribute value holding an integer.
func IntValue(v int64) AttrValue {
	return AttrValue{repr: ReprNumber, num: float64(v)}
}

// FloatValue returns a numeric attribute value.
func FloatValue(v float64) AttrValue {
	return AttrValue{repr: ReprNumber, num: v}
}

// Repr returns the representations currently held.
func (v AttrValue) Repr() Repr {
	return v.repr
}

// IsEmpty reports whether the value holds no representation.
func (v AttrValue) IsEmpty() bool {
	return v.repr == ReprEmpty
}

// Text returns the text representation, deriving it from the number when
// needed.
func (v AttrValue) Text() string {
	if v.repr == ReprNumber {
		return parser.FormatFixed(v.num, DefaultTextPrecision)
	}
	return v.text
}

// Float returns the numeric representation, deriving it from the text when
// needed.
func (v AttrValue) Float() float64 {
	if v.repr == ReprText {
		return parser.ParseFloat(v.text)
	}
	return v.num
}

// Int returns Float truncated toward zero.
func (v AttrValue) Int() int64 {
	return int64(v.Float())
}

// Filled returns v with both representations computed. An empty value stays
// empty.
func (v AttrValue) Filled() AttrValue {
	switch v.repr {
	case ReprText:
		v.num = v.Float()
	case ReprNumber:
		v.text = v.Text()
	default:
		return v
	}
	v.repr = ReprBoth
	return v
}

// FormatText returns the text representation, rendering
// a number-only value with prec fraction digits.
func (v AttrValue) FormatText(prec int) string {
	if v.repr == ReprNumber {
		return parser.FormatFixed(v.num, prec)
	}
	return v.text
}

// String implements fmt.Stringer.
func (v AttrValue) String() string {
	return v.FormatText(DefaultTextPrecision)
}

// Compare orders two values and returns -1, 0 or +1.
//
// Values that both hold text compare as text. Otherwise values that both hold
// numbers compare numerically, equal within 1e-8. When the representations do
// not overlap, a text that is a well-formed number compares numerically with
// the other side's number, any other text compares with the number rendered
// as text, and an empty value sorts before everything but another empty value.
func (v AttrValue) Compare(o AttrValue) int {
	switch {
	case v.repr.hasText() && o.repr.hasText():
		return strings.Compare(v.text, o.text)
	case v.repr.hasNumber() && o.repr.hasNumber():
		return compareFloat(v.num, o.num)
	case v.repr == ReprEmpty && o.repr == ReprEmpty:
		return 0
	case v.repr == ReprEmpty:
		return -1
	case o.repr == ReprEmpty:
		return 1
	case v.repr.hasText():
		return compareTextNumber(v.text, o.num)
	default:
		return -compareTextNumber(o.text, v.num)
	}
}

// Equal reports whether Compare returns 0.
func (v AttrValue) Equal(o AttrValue) bool {
	return v.Compare(o) == 0
}

// Less reports whether v orders before o.
func (v AttrValue) Less(o AttrValue) bool {
	return v.Compare(o) < 0
}

// Greater reports whether v orders after o.
func (v AttrValue) Greater(o AttrValue) bool {
	return v.Compare(o) > 0
}

// ValueEqual reports whether v and o are Equal or render to the same text.
// It equates "123" with the number 123 and an empty value with "".
func (v AttrValue) ValueEqual(o AttrValue) bool {
	if v.Equal(o) {
		return true
	}
	return v.String() == o.String()
}

func compareFloat(a, b float64) int {
	switch {
	case parser.FloatEqual(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func compareTextNumber(text string, num float64) int {
	if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return compareFloat(f, num)
	}
	return strings.Compare(text, parser.FormatFixed(num, DefaultTextPrecision))
}
