package mif

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/beetlebugorg/mif/internal/parser"
)

// ParseHeader reads a MIF header block up to and including its Data line.
func ParseHeader(r io.Reader) (*Header, error) {
	return decodeHeader(parser.NewScanner(r))
}

// WriteHeader validates h and writes it as a MIF header block. Nothing is
// written when validation fails.
func WriteHeader(w io.Writer, h *Header) error {
	if err := ValidateHeader(h); err != nil {
		return err
	}
	_, err := io.WriteString(w, formatHeader(h))
	return err
}

func decodeHeader(s *parser.Scanner) (*Header, error) {
	h := NewHeader()
	for {
		line, err := s.Line()
		if err == io.EOF {
			return nil, &ErrHeaderGrammar{Line: s.LineNo(), Reason: "missing Columns directive"}
		}
		if err != nil {
			return nil, err
		}

		fields := strings.Fields(line)
		rest := strings.TrimSpace(line[len(fields[0]):])

		switch strings.ToLower(fields[0]) {
		case "version":
			if len(fields) != 2 {
				return nil, headerArityError(s, line)
			}
			h.Version = int(parser.ParseInt(fields[1]))
		case "charset":
			if rest == "" {
				return nil, headerArityError(s, line)
			}
			h.Charset = parser.TrimQuotes(rest)
		case "delimiter":
			if len(rest) != 3 || rest[0] != '"' || rest[2] != '"' {
				return nil, &ErrHeaderGrammar{
					Line:   s.LineNo(),
					Reason: fmt.Sprintf("delimiter must be one quoted character, got %q", rest),
				}
			}
			h.Delimiter = rest[1]
		case "unique":
			h.Unique = parseColumnList(rest)
		case "index":
			h.Index = parseColumnList(rest)
		case "coordsys":
			h.CoordSys = line
		case "projection":
			h.CoordSys += " " + line
		case "transform":
			h.Transform = line
		case "columns":
			if len(fields) != 2 {
				return nil, headerArityError(s, line)
			}
			n, err := parser.ParseCount(fields[1])
			if err != nil {
				return nil, &ErrHeaderGrammar{Line: s.LineNo(), Reason: "bad Columns directive", Err: err}
			}
			if err := decodeColumns(s, h, n); err != nil {
				return nil, err
			}
			return h, nil
		}
	}
}

// decodeColumns reads n column lines and the Data/None line that follows.
// End of input after the column block is accepted as a layer with no records.
func decodeColumns(s *parser.Scanner, h *Header, n int) error {
	for h.ColumnCount() < n {
		line, err := s.Line()
		if err == io.EOF {
			return &ErrHeaderGrammar{
				Line:   s.LineNo(),
				Reason: "input ended inside column block",
				Err:    &ErrColumnCount{Expected: n, Actual: h.ColumnCount()},
			}
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 1 && isDataSentinel(fields[0]) {
			return &ErrHeaderGrammar{
				Line:   s.LineNo(),
				Reason: "column block ended early",
				Err:    &ErrColumnCount{Expected: n, Actual: h.ColumnCount()},
			}
		}
		if len(fields) < 2 {
			return &ErrHeaderGrammar{
				Line:   s.LineNo(),
				Reason: fmt.Sprintf("column line %q needs a name and a type", line),
			}
		}
		if !h.AddColumn(fields[0], strings.Join(fields[1:], " ")) {
			return &ErrHeaderGrammar{
				Line:   s.LineNo(),
				Reason: fmt.Sprintf("duplicate column %q", fields[0]),
			}
		}
	}

	line, err := s.Line()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if !isDataSentinel(strings.ToLower(line)) {
		return &ErrHeaderGrammar{
			Line:   s.LineNo(),
			Reason: fmt.Sprintf("expected Data or None after columns, got %q", line),
		}
	}
	return nil
}

func isDataSentinel(lower string) bool {
	return lower == "data" || lower == "none"
}

func headerArityError(s *parser.Scanner, line string) error {
	return &ErrHeaderGrammar{Line: s.LineNo(), Reason: fmt.Sprintf("malformed directive %q", line)}
}

// parseColumnList parses a Unique or Index list such as "1,3" or "1, 3".
func parseColumnList(rest string) []int {
	items := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(items) == 0 {
		return nil
	}
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = int(parser.ParseInt(item))
	}
	return out
}

func formatHeader(h *Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version %d\n", h.Version)
	fmt.Fprintf(&b, "Charset \"%s\"\n", h.Charset)
	fmt.Fprintf(&b, "Delimiter \"%c\"\n", h.Delimiter)
	if len(h.Unique) > 0 {
		fmt.Fprintf(&b, "Unique %s\n", joinInts(h.Unique))
	}
	if len(h.Index) > 0 {
		fmt.Fprintf(&b, "Index %s\n", joinInts(h.Index))
	}
	b.WriteString(h.CoordSys)
	b.WriteByte('\n')
	if h.Transform != "" {
		b.WriteString(h.Transform)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Columns %d\n", len(h.columns))
	for _, c := range h.columns {
		fmt.Fprintf(&b, "    %s %s\n", c.Name, c.Type)
	}
	b.WriteString("Data\n")
	return b.String()
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
