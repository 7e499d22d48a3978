package arff

import (
	"bufio"
	"io"
)

const defaultMaxLineSize = 16 << 20

// Scanner wraps a bufio.Scanner and counts lines.
type Scanner struct {
	*bufio.Scanner
	lineNum int
}

// NewScanner creates a new Scanner from an io.Reader that accepts lines of
// up to maxLine bytes.
func NewScanner(r io.Reader, maxLine int) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	return &Scanner{Scanner: s}
}

// NextLine advances the scanner and returns the current line number and text.
func (s *Scanner) NextLine() (int, string, bool) {
	if !s.Scan() {
		return s.lineNum, "", false
	}
	s.lineNum++
	return s.lineNum, s.Text(), true
}
