package parser

import (
	"strconv"
	"strings"
)

// Epsilon is the tolerance used when comparing floating-point attribute values.
const Epsilon = 1e-8

// FloatEqual reports whether a and b differ by less than Epsilon.
func FloatEqual(a, b float64) bool {
	d := a - b
	return -Epsilon < d && d < Epsilon
}

// FormatFixed formats v in fixed-point notation with prec fraction digits.
func FormatFixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// ParseFloat parses the longest numeric prefix of s, ignoring leading
// whitespace. It never fails: input without a decimal prefix yields 0 and
// out-of-range input yields ±Inf. The parse does not depend on locale.
func ParseFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	n := floatPrefixLen(s)
	if n == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(s[:n], 64)
	return v
}

// ParseInt parses the longest base-10 integer prefix of s, ignoring leading
// whitespace. Input without a numeric prefix yields 0; overflow saturates.
func ParseInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := countDigits(s[i:])
	if digits == 0 {
		return 0
	}
	v, _ := strconv.ParseInt(s[:i+digits], 10, 64)
	return v
}

// floatPrefixLen returns the length of the decimal floating-point literal at
// the start of s, or 0 when there is none.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := countDigits(s[j:]); expDigits > 0 {
			i = j + expDigits
		}
	}
	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
