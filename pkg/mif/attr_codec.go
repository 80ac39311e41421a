package mif

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/mif/internal/parser"
)

// decodeAttrs reads the next non-blank attribute line. It returns io.EOF
// when the attribute stream is exhausted.
func decodeAttrs(s *parser.Scanner, h *Header) (map[string]AttrValue, error) {
	line, err := s.RawLine(h.Delimiter)
	if err != nil {
		return nil, err
	}
	return parseAttrLine(line, s.LineNo(), h)
}

// parseAttrLine splits one attribute line on the header delimiter and
// converts each field according to its column kind.
func parseAttrLine(line string, lineNo int, h *Header) (map[string]AttrValue, error) {
	fields := parser.SplitKeepQuotes(line, h.Delimiter)
	if len(fields) != len(h.columns) {
		return nil, &ErrFieldCount{Line: lineNo, Expected: len(h.columns), Actual: len(fields)}
	}

	attrs := make(map[string]AttrValue, len(fields))
	for i, c := range h.columns {
		key := strings.ToLower(c.Name)
		switch c.Kind() {
		case KindInteger:
			attrs[key] = IntValue(parser.ParseInt(parser.TrimQuotes(fields[i])))
		case KindDecimal:
			attrs[key] = FloatValue(parser.ParseFloat(parser.TrimQuotes(fields[i])))
		default:
			attrs[key] = TextValue(parser.UnquoteText(fields[i]))
		}
	}
	return attrs, nil
}

// formatAttrLine renders the header columns of attrs as one attribute line,
// including its newline. Missing attributes are written as 0, 0.0 or "".
// Text is quoted with backslash escapes, so it never spans lines.
func formatAttrLine(h *Header, attrs map[string]AttrValue, decimalPrec int) string {
	var b strings.Builder
	for i, c := range h.columns {
		if i > 0 {
			b.WriteByte(h.Delimiter)
		}
		v, ok := attrs[strings.ToLower(c.Name)]
		switch c.Kind() {
		case KindInteger:
			var n int64
			if ok {
				n = v.Int()
			}
			b.WriteString(strconv.FormatInt(n, 10))
		case KindDecimal:
			var f float64
			if ok {
				f = v.Float()
			}
			b.WriteString(parser.FormatFixed(f, decimalPrec))
		default:
			var text string
			if ok {
				text = v.Text()
			}
			b.WriteString(parser.QuoteText(text))
		}
	}
	b.WriteByte('\n')
	return b.String()
}
