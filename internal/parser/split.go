package parser

import "strings"

const (
	quote  = '"'
	escape = '\\'
)

// SplitKeepQuotes splits a delimited attribute line into raw fields.
//
// A double-quoted span is atomic: a delimiter inside it does not end the field,
// and a backslash escapes the character that follows it (including a quote).
// Quotes and escapes are kept in the returned fields; callers strip them.
// A line always yields at least one field, and a trailing delimiter yields a
// trailing empty field.
//
// Examples (sep = ','):
//
//	abc,bcd        -> [abc bcd]
//	,abc,bcd,      -> [ abc bcd ]
//	"a,bc",bcd     -> ["a,bc" bcd]
//	"a\",bc",bcd   -> ["a\",bc" bcd]
func SplitKeepQuotes(s string, sep byte) []string {
	fields := make([]string, 0, 8)
	start := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case sep:
			fields = append(fields, s[start:i])
			i++
			start = i
		case quote:
			i = skipQuoted(s, i)
		default:
			i = skipPlain(s, i, sep)
		}
	}
	return append(fields, s[start:])
}

// skipQuoted returns the index just past the quoted span opening at s[i].
// An unterminated span runs to the end of the line.
func skipQuoted(s string, i int) int {
	i++ // opening quote
	for i < len(s) {
		switch s[i] {
		case quote:
			return i + 1
		case escape:
			i++
		}
		i++
	}
	return len(s)
}

// skipPlain returns the index of the next unescaped delimiter, or len(s).
func skipPlain(s string, i int, sep byte) int {
	for i < len(s) && s[i] != sep {
		if s[i] == escape {
			i++
		}
		i++
	}
	if i > len(s) {
		return len(s)
	}
	return i
}

// TrimQuotes removes every leading and trailing double quote from a raw field.
func TrimQuotes(field string) string {
	start, end := 0, len(field)
	for start < end && field[start] == quote {
		start++
	}
	for end > start && field[end-1] == quote {
		end--
	}
	return field[start:end]
}

// QuoteText wraps s in double quotes, escaping backslashes, quotes and line
// breaks so that SplitKeepQuotes and UnquoteText recover s unchanged.
func QuoteText(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case escape, quote:
			b.WriteByte(escape)
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// UnquoteText reverses QuoteText on a raw field. A quoted field loses its
// opening quote and its closing quote if that quote is not escaped; an
// unquoted field falls back to TrimQuotes. The escapes \\, \", \n and \r
// are decoded. Any other backslash is kept as written.
func UnquoteText(field string) string {
	if len(field) == 0 || field[0] != quote {
		return unescape(TrimQuotes(field))
	}
	body := field[1:]
	if n := len(body); n > 0 && body[n-1] == quote && !escapedAt(body, n-1) {
		body = body[:n-1]
	}
	return unescape(body)
}

// escapedAt reports whether s[i] is preceded by an odd run of backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == escape; j-- {
		n++
	}
	return n%2 == 1
}

func unescape(s string) string {
	if strings.IndexByte(s, escape) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != escape || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch next := s[i+1]; next {
		case escape, quote:
			b.WriteByte(next)
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(escape)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}
