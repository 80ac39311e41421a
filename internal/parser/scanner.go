package parser

import (
	"bufio"
	"io"
	"strings"
)

// Scanner reads a text stream either line by line or as a sequence of
// whitespace-separated tokens that may span lines. Both views share one
// position: reading a token consumes the rest of its line lazily, and the
// next Line call returns whatever tokens of that line are still unread.
type Scanner struct {
	r       *bufio.Reader
	lineNo  int
	pending []string
	eof     bool
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 64*1024)
	}
	return &Scanner{r: br}
}

// LineNo returns the 1-based number of the last physical line read.
func (s *Scanner) LineNo() int {
	return s.lineNo
}

// Line returns the next non-blank line with surrounding whitespace removed.
// Unread tokens of a partially consumed line are returned first.
// It returns io.EOF when the stream holds no further non-blank line.
func (s *Scanner) Line() (string, error) {
	if len(s.pending) > 0 {
		line := strings.Join(s.pending, " ")
		s.pending = nil
		return line, nil
	}
	for {
		raw, err := s.readRaw()
		if err != nil {
			return "", err
		}
		if line := strings.TrimSpace(raw); line != "" {
			return line, nil
		}
	}
}

// RawLine returns the next non-blank line with only its line terminator
// removed, so leading and trailing delimiter characters survive. A line is
// blank when it holds nothing but whitespace other than sep, so a record of
// empty tab-delimited fields is still returned.
// It returns io.EOF when the stream holds no further non-blank line.
func (s *Scanner) RawLine(sep byte) (string, error) {
	s.pending = nil
	for {
		raw, err := s.readRaw()
		if err != nil {
			return "", err
		}
		if !blankLine(raw, sep) {
			return raw, nil
		}
	}
}

func blankLine(line string, sep byte) bool {
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == sep:
			return false
		case c == ' ', c == '\t', c == '\r', c == '\v', c == '\f':
		default:
			return false
		}
	}
	return true
}

// Token returns the next whitespace-separated token, reading further lines
// as needed. It returns io.EOF when the stream is exhausted.
func (s *Scanner) Token() (string, error) {
	for len(s.pending) == 0 {
		raw, err := s.readRaw()
		if err != nil {
			return "", err
		}
		s.pending = strings.Fields(raw)
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}

// readRaw reads one physical line without its terminator.
func (s *Scanner) readRaw() (string, error) {
	if s.eof {
		return "", io.EOF
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		s.eof = true
		if line == "" {
			return "", io.EOF
		}
	}
	s.lineNo++
	return strings.TrimRight(line, "\r\n"), nil
}
