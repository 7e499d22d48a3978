package arff

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Attribute describes one column: its name, kind and, for categorical
// columns, the vocabulary whose indices are the numeric codes.
type Attribute struct {
	name       string
	kind       Kind
	categories []string
	index      map[string]int
}

// NewNumeric creates a numeric attribute.
func NewNumeric(name string) *Attribute {
	return &Attribute{name: name, kind: Numeric}
}

// NewCategorical creates a categorical attribute. Categories keep their
// order; when a value repeats, its first position is its code.
func NewCategorical(name string, categories []string) (*Attribute, error) {
	if len(categories) == 0 {
		return nil, errors.Wrapf(ErrEmptyCategories, "attribute %q", name)
	}
	cats := make([]string, len(categories))
	copy(cats, categories)

	index := make(map[string]int, len(cats))
	for i, c := range cats {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return &Attribute{name: name, kind: Categorical, categories: cats, index: index}, nil
}

// Name returns the attribute name as declared, without quotes.
func (a *Attribute) Name() string { return a.name }

// Kind returns the column type.
func (a *Attribute) Kind() Kind { return a.kind }

// IsNumeric reports whether the attribute is numeric.
func (a *Attribute) IsNumeric() bool { return a.kind == Numeric }

// IsCategorical reports whether the attribute is categorical.
func (a *Attribute) IsCategorical() bool { return a.kind == Categorical }

// Categories returns a copy of the vocabulary, nil for numeric attributes.
func (a *Attribute) Categories() []string {
	if a.kind != Categorical {
		return nil
	}
	out := make([]string, len(a.categories))
	copy(out, a.categories)
	return out
}

// Encode returns the numeric code of category.
func (a *Attribute) Encode(category string) (float64, error) {
	if a.kind != Categorical {
		return 0, errors.Wrapf(ErrInvalidOperation, "encode %q with attribute %q", category, a.name)
	}
	i, ok := a.index[category]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownCategory, "attribute %q: value %q", a.name, category)
	}
	return float64(i), nil
}

// Decode returns the category with the given code.
func (a *Attribute) Decode(code float64) (string, error) {
	if a.kind != Categorical {
		return "", errors.Wrapf(ErrInvalidOperation, "decode %v with attribute %q", code, a.name)
	}
	if code != math.Trunc(code) || code < 0 || int(code) >= len(a.categories) {
		return "", errors.Wrapf(ErrUnknownCategory, "attribute %q: code %v", a.name, code)
	}
	return a.categories[int(code)], nil
}

// String renders the attribute as an ARFF header line.
func (a *Attribute) String() string {
	if a.kind == Numeric {
		return fmt.Sprintf("@attribute %s numeric", quoteName(a.name))
	}
	return fmt.Sprintf("@attribute %s {%s}", quoteName(a.name), strings.Join(a.categories, ","))
}

func quoteName(name string) string {
	if strings.ContainsAny(name, " \t") {
		return "'" + name + "'"
	}
	return name
}
