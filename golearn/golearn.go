// Package golearn converts parsed ARFF datasets into
// github.com/sjwhitworth/golearn/base DenseInstances.
package golearn

import (
	"github.com/pkg/errors"
	"github.com/sjwhitworth/golearn/base"

	"github.com/henrygouk/arff"
)

// ToDenseInstances converts a Dataset into golearn DenseInstances. Numeric
// columns become FloatAttributes, categorical columns become
// CategoricalAttributes with the same value order, and the dataset's label
// columns are registered as class attributes.
func ToDenseInstances(ds *arff.Dataset) (*base.DenseInstances, error) {
	attrs := make([]base.Attribute, len(ds.Attributes))
	for i, a := range ds.Attributes {
		if a.IsNumeric() {
			attrs[i] = base.NewFloatAttribute(a.Name())
			continue
		}
		ca := new(base.CategoricalAttribute)
		ca.SetName(a.Name())
		for _, c := range a.Categories() {
			ca.GetSysValFromString(c)
		}
		attrs[i] = ca
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(len(ds.Rows)); err != nil {
		return nil, errors.Wrap(err, "golearn: extend instances")
	}

	for r, row := range ds.Rows {
		for c, v := range row {
			src := ds.Attributes[c]
			if src.IsNumeric() {
				inst.Set(specs[c], r, base.PackFloatToBytes(v))
				continue
			}
			name, err := src.Decode(v)
			if err != nil {
				return nil, errors.Wrapf(err, "golearn: row %d", r)
			}
			inst.Set(specs[c], r, attrs[c].GetSysValFromString(name))
		}
	}

	for _, a := range attrs[ds.NumFeatures():] {
		if err := inst.AddClassAttribute(a); err != nil {
			return nil, errors.Wrapf(err, "golearn: class attribute %q", a.GetName())
		}
	}
	return inst, nil
}
