package arff

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Parser provides configurable ARFF parsing.
type Parser struct {
	skipEmptyLine func(string) bool
	skipComment   func(string) bool
	defaultLabels int
	maxLineSize   int
}

// NewParser creates a new Parser with default configuration: blank lines and
// lines starting with % are ignored, and one trailing label column is
// assumed when the relation name carries no -C flag.
func NewParser() *Parser {
	return &Parser{
		skipEmptyLine: func(line string) bool { return strings.TrimSpace(line) == "" },
		skipComment:   func(line string) bool { return strings.HasPrefix(strings.TrimSpace(line), "%") },
		defaultLabels: 1,
		maxLineSize:   defaultMaxLineSize,
	}
}

// WithSkipEmptyLine configures the empty line skip function.
func (p *Parser) WithSkipEmptyLine(fn func(string) bool) *Parser {
	p.skipEmptyLine = fn
	return p
}

// WithSkipComment configures the comment skip function.
func (p *Parser) WithSkipComment(fn func(string) bool) *Parser {
	p.skipComment = fn
	return p
}

// WithDefaultLabelCount sets the label count used when the relation name has
// no -C flag. Negative values are treated as zero.
func (p *Parser) WithDefaultLabelCount(n int) *Parser {
	if n < 0 {
		n = 0
	}
	p.defaultLabels = n
	return p
}

// WithMaxLineSize sets the longest line, in bytes, the parser accepts.
func (p *Parser) WithMaxLineSize(n int) *Parser {
	p.maxLineSize = n
	return p
}

// Parse parses an ARFF document held in memory with the default Parser.
func Parse(text string) (*Dataset, error) {
	return NewParser().Parse(text)
}

// Parse parses an ARFF document held in memory.
func (p *Parser) Parse(text string) (*Dataset, error) {
	return p.ParseReader(strings.NewReader(text))
}

// ParseReader parses an ARFF document from an io.Reader. The first failing
// line aborts the parse and is reported as a *ParseError. Lines longer than
// the configured maximum (16 MiB by default) fail with bufio.ErrTooLong.
func (p *Parser) ParseReader(r io.Reader) (*Dataset, error) {
	scanner := NewScanner(r, p.maxLineSize)
	st := &parseState{labelCount: p.defaultLabels}

	for {
		lineNum, line, ok := scanner.NextLine()
		if !ok {
			break
		}

		if p.skipEmptyLine(line) || p.skipComment(line) {
			continue
		}

		line = strings.TrimSpace(line)
		if err := st.consume(line); err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: scanner.lineNum + 1, Err: errors.Wrap(err, "arff: read input")}
	}

	return st.finish()
}

type state int

const (
	stateAwaitingRelation state = iota
	stateHeader
	stateData
)

// parseState is the running state of one parse.
type parseState struct {
	state      state
	name       string
	labelCount int
	explicit   bool
	swap       bool
	attrs      []*Attribute
	rows       [][]float64
}

func (st *parseState) consume(line string) error {
	if st.state == stateData {
		// Directives are not recognised once data starts.
		row, err := st.decodeRow(line)
		if err != nil {
			return err
		}
		st.rows = append(st.rows, row)
		return nil
	}
	return st.header(line)
}

func (st *parseState) header(line string) error {
	keyword, rest := splitKeyword(line)
	switch strings.ToLower(keyword) {
	case "@relation":
		return st.relation(rest)
	case "@attribute":
		return st.attribute(rest)
	case "@data":
		return st.data()
	default:
		return ErrUnexpectedLine
	}
}

func (st *parseState) relation(rest string) error {
	if st.state != stateAwaitingRelation {
		return ErrDuplicateRelation
	}
	// Unreachable while @attribute requires a relation; guards the ordering.
	if len(st.attrs) > 0 {
		return ErrAttributesBeforeRelation
	}

	rel, err := parseRelation(rest, st.labelCount)
	if err != nil {
		return err
	}
	st.name = rel.name
	st.labelCount = rel.labelCount
	st.swap = rel.swap
	st.explicit = rel.explicit
	st.state = stateHeader
	return nil
}

func (st *parseState) attribute(rest string) error {
	if st.state == stateAwaitingRelation {
		return ErrRelationNotSet
	}

	name, spec := splitAttributeName(rest)
	attr, err := newAttributeFromSpec(name, spec)
	if err != nil {
		return err
	}
	st.attrs = append(st.attrs, attr)
	return nil
}

func (st *parseState) data() error {
	if st.state == stateAwaitingRelation {
		return ErrMissingRelation
	}
	if err := st.checkLabelCount(); err != nil {
		return err
	}
	st.state = stateData
	return nil
}

// checkLabelCount enforces labelCount <= len(attrs). The default count is
// clamped instead, so a relation without attributes still parses.
func (st *parseState) checkLabelCount() error {
	if st.labelCount <= len(st.attrs) {
		return nil
	}
	if !st.explicit {
		st.labelCount = len(st.attrs)
		return nil
	}
	return errors.Wrapf(ErrLabelCountOutOfRange, "%d labels, %d attributes", st.labelCount, len(st.attrs))
}

// finish assembles the Dataset. Label attributes are moved to the end here,
// once, to match the per-row reordering done in decodeRow.
func (st *parseState) finish() (*Dataset, error) {
	if st.state == stateAwaitingRelation {
		return nil, ErrMissingRelation
	}
	if err := st.checkLabelCount(); err != nil {
		return nil, err
	}

	attrs := st.attrs
	if st.swap {
		attrs = moveToEnd(attrs, st.labelCount)
	}
	rows := st.rows
	if rows == nil {
		rows = [][]float64{}
	}

	return &Dataset{
		Name:       st.name,
		Attributes: attrs,
		Rows:       rows,
		LabelCount: st.labelCount,
	}, nil
}

// splitKeyword splits a header line at its first whitespace.
func splitKeyword(line string) (string, string) {
	end := strings.IndexAny(line, " \t")
	if end == -1 {
		return line, ""
	}
	return line[:end], line[end:]
}

// splitAttributeName reads the attribute name, bare or quoted, and returns it
// with the remaining type specification. Quoted names are taken literally up
// to the matching quote.
func splitAttributeName(rest string) (string, string) {
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return "", ""
	}

	if q := rest[0]; q == '\'' || q == '"' {
		end := strings.IndexByte(rest[1:], q)
		if end == -1 {
			return rest[1:], ""
		}
		return rest[1 : end+1], strings.TrimSpace(rest[end+2:])
	}

	end := strings.IndexAny(rest, " \t")
	if end == -1 {
		return rest, ""
	}
	return rest[:end], strings.TrimSpace(rest[end:])
}

// newAttributeFromSpec builds an attribute from its type specification:
// numeric, real, integer or a {a,b,...} vocabulary.
func newAttributeFromSpec(name, spec string) (*Attribute, error) {
	switch strings.ToLower(spec) {
	case "numeric", "real", "integer":
		return NewNumeric(name), nil
	}

	if len(spec) >= 2 && strings.HasPrefix(spec, "{") && strings.HasSuffix(spec, "}") {
		categories, err := parseCategoryList(spec[1 : len(spec)-1])
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q", name)
		}
		return NewCategorical(name, categories)
	}

	return nil, errors.Wrapf(ErrUnsupportedAttributeType, "attribute %q: type %q", name, spec)
}

// parseCategoryList parses the comma separated values inside {...}.
// Values may be wrapped in one pair of ' or " quotes and are trimmed.
func parseCategoryList(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyCategories
	}

	fields := splitFields(s)
	categories := make([]string, len(fields))
	for i, f := range fields {
		categories[i] = stripMatchingQuotes(strings.TrimSpace(f))
	}
	return categories, nil
}

// splitFields splits s at commas that are not inside a ' or " quoted run.
// Fields are returned untrimmed with their quotes. An unterminated quote
// runs to the end of s.
func splitFields(s string) []string {
	var (
		fields []string
		start  int
		quote  byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return append(fields, s[start:])
}
