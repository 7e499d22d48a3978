package arff

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyMatrix is returned when a matrix view would have no rows or columns.
var ErrEmptyMatrix = errors.New("arff: empty matrix")

// Matrix returns all columns of the dataset as a dense matrix.
func (d *Dataset) Matrix() (*mat.Dense, error) {
	return d.columns(0, len(d.Attributes))
}

// Features returns the feature columns as a dense matrix.
func (d *Dataset) Features() (*mat.Dense, error) {
	return d.columns(0, d.NumFeatures())
}

// Labels returns the label columns as a dense matrix.
func (d *Dataset) Labels() (*mat.Dense, error) {
	return d.columns(d.NumFeatures(), len(d.Attributes))
}

// columns copies columns [from, to) of every row into a new matrix.
func (d *Dataset) columns(from, to int) (*mat.Dense, error) {
	r, c := len(d.Rows), to-from
	if r == 0 || c <= 0 {
		return nil, errors.Wrapf(ErrEmptyMatrix, "%d rows, %d columns", r, c)
	}

	data := make([]float64, 0, r*c)
	for _, row := range d.Rows {
		data = append(data, row[from:to]...)
	}
	return mat.NewDense(r, c, data), nil
}
