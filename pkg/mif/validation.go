package mif

import (
	"fmt"
	"strings"
)

// ValidateHeader checks that a header can be encoded and read back.
func ValidateHeader(h *Header) error {
	if h == nil {
		return &ErrInvalidHeader{Reason: "header is nil"}
	}
	if h.Delimiter == '"' || h.Delimiter == '\\' || h.Delimiter == '\n' || h.Delimiter == '\r' {
		return &ErrInvalidHeader{Reason: fmt.Sprintf("illegal delimiter %q", h.Delimiter)}
	}
	if strings.ContainsAny(h.Charset, "\"\r\n") {
		return &ErrInvalidHeader{Reason: fmt.Sprintf("illegal charset %q", h.Charset)}
	}
	if h.CoordSys == "" {
		return &ErrInvalidHeader{Reason: "coordsys is empty"}
	}
	if strings.ContainsAny(h.CoordSys+h.Transform, "\r\n") {
		return &ErrInvalidHeader{Reason: "coordsys and transform must be single lines"}
	}

	seen := make(map[string]bool, len(h.columns))
	for i, c := range h.columns {
		if c.Name == "" || strings.ContainsAny(c.Name, " \t\r\n") {
			return &ErrInvalidHeader{Reason: fmt.Sprintf("column %d has illegal name %q", i, c.Name)}
		}
		if strings.TrimSpace(c.Type) == "" || strings.ContainsAny(c.Type, "\r\n") {
			return &ErrInvalidHeader{Reason: fmt.Sprintf("column %q has illegal type %q", c.Name, c.Type)}
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return &ErrInvalidHeader{Reason: fmt.Sprintf("duplicate column %q", c.Name)}
		}
		seen[key] = true
	}

	for _, list := range [][]int{h.Unique, h.Index} {
		for _, n := range list {
			if n < 0 {
				return &ErrInvalidHeader{Reason: fmt.Sprintf("negative column number %d", n)}
			}
		}
	}
	return nil
}
