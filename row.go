package arff

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// decodeRow decodes one data line, dense or sparse, into a row of
// len(st.attrs) values. Columns a sparse line omits stay 0.
func (st *parseState) decodeRow(line string) ([]float64, error) {
	row := make([]float64, len(st.attrs))

	var err error
	if isSparse(line) {
		err = st.decodeSparse(row, line[1:len(line)-1])
	} else {
		err = st.decodeDense(row, line)
	}
	if err != nil {
		return nil, err
	}

	if st.swap {
		row = moveToEnd(row, st.labelCount)
	}
	return row, nil
}

func isSparse(line string) bool {
	return len(line) >= 2 && line[0] == '{' && line[len(line)-1] == '}'
}

// decodeSparse fills row from "index value, index value, ..." entries.
func (st *parseState) decodeSparse(row []float64, inner string) error {
	if strings.TrimSpace(inner) == "" {
		return nil
	}

	for _, entry := range splitFields(inner) {
		index, value, ok := splitSparseEntry(entry)
		if !ok {
			return errors.Wrapf(ErrMalformedSparseEntry, "entry %q", strings.TrimSpace(entry))
		}

		idx, err := strconv.Atoi(index)
		if err != nil || idx < 0 {
			return errors.Wrapf(ErrMalformedNumber, "sparse index %q", index)
		}
		if idx >= len(row) {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d, %d attributes", idx, len(row))
		}

		v, err := decodeValue(st.attrs[idx], value)
		if err != nil {
			return err
		}
		row[idx] = v
	}
	return nil
}

// splitSparseEntry splits "index value" at the first run of whitespace, so a
// quoted value may itself contain spaces.
func splitSparseEntry(entry string) (string, string, bool) {
	entry = strings.TrimSpace(entry)
	end := strings.IndexAny(entry, " \t")
	if end == -1 {
		return "", "", false
	}
	return entry[:end], strings.TrimSpace(entry[end:]), true
}

// decodeDense fills row from exactly one comma separated field per attribute.
// Commas inside quoted values do not split fields.
func (st *parseState) decodeDense(row []float64, line string) error {
	fields := splitFields(line)
	if len(fields) != len(row) {
		return errors.Wrapf(ErrFieldCountMismatch, "got %d fields, want %d", len(fields), len(row))
	}

	for i, f := range fields {
		v, err := decodeValue(st.attrs[i], strings.TrimSpace(f))
		if err != nil {
			return err
		}
		row[i] = v
	}
	return nil
}

// decodeValue converts one field according to its attribute.
func decodeValue(attr *Attribute, field string) (float64, error) {
	if attr.IsCategorical() {
		return attr.Encode(stripMatchingQuotes(field))
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedNumber, "attribute %q: value %q", attr.Name(), field)
	}
	return v, nil
}

// moveToEnd returns a copy of s with its first n elements moved to the end.
func moveToEnd[T any](s []T, n int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[n:]...)
	return append(out, s[:n]...)
}
