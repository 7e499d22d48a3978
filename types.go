// Package arff parses Attribute-Relation File Format documents into
// numeric datasets.
package arff

// Kind is the type of an attribute column.
type Kind int

const (
	// Numeric columns hold floating-point values.
	Numeric Kind = iota
	// Categorical columns hold the index of a value in a fixed vocabulary.
	Categorical
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Dataset represents a parsed ARFF document.
//
// The last LabelCount entries of Attributes and of every row are the label
// columns; the leading entries are features.
type Dataset struct {
	Name       string
	Attributes []*Attribute
	Rows       [][]float64
	LabelCount int
}

// NumFeatures returns the number of leading non-label columns.
func (d *Dataset) NumFeatures() int {
	return len(d.Attributes) - d.LabelCount
}

// FeatureAttributes returns the feature columns.
func (d *Dataset) FeatureAttributes() []*Attribute {
	return d.Attributes[:d.NumFeatures()]
}

// LabelAttributes returns the label columns.
func (d *Dataset) LabelAttributes() []*Attribute {
	return d.Attributes[d.NumFeatures():]
}

// FeatureRow returns the feature part of row i.
func (d *Dataset) FeatureRow(i int) []float64 {
	return d.Rows[i][:d.NumFeatures()]
}

// LabelRow returns the label part of row i.
func (d *Dataset) LabelRow(i int) []float64 {
	return d.Rows[i][d.NumFeatures():]
}
