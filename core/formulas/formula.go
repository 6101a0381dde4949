// Package formulas holds the per-domain conversion tables.
// Each table is a finite set of directed unit pairs; every direction is an
// independently written formula, and any pair not listed (including
// from == to) is unsupported.
package formulas

import (
	"unit-convert/core/types"
	"unit-convert/internal/errors"
)

// Formula converts a value along one directed pair
type Formula func(value float64) float64

// Table is the formula table of one measurement type
type Table struct {
	measurement types.MeasurementType
	formulas    map[types.Pair]Formula
}

func newTable(mt types.MeasurementType, formulas map[types.Pair]Formula) *Table {
	for p := range formulas {
		if !mt.Has(p.From) || !mt.Has(p.To) {
			panic("formula pair " + p.String() + " is not within " + mt.String())
		}
	}
	return &Table{measurement: mt, formulas: formulas}
}

// Measurement returns the measurement type the table converts
func (t *Table) Measurement() types.MeasurementType {
	return t.measurement
}

// Convert applies the formula for (from, to)
func (t *Table) Convert(value float64, from, to types.Unit) (float64, error) {
	f, ok := t.formulas[types.Pair{From: from, To: to}]
	if !ok {
		return 0, errors.UnsupportedConversion(t.measurement.String(), string(from), string(to))
	}
	return f(value), nil
}

// Supports reports whether the table has a formula for the pair
func (t *Table) Supports(p types.Pair) bool {
	_, ok := t.formulas[p]
	return ok
}

// Pairs lists the supported pairs in unit-table order
func (t *Table) Pairs() []types.Pair {
	units := t.measurement.Units()
	pairs := make([]types.Pair, 0, len(t.formulas))
	for _, from := range units {
		for _, to := range units {
			p := types.Pair{From: from, To: to}
			if t.Supports(p) {
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}

// For returns the formula table of a measurement type
func For(mt types.MeasurementType) (*Table, error) {
	switch mt {
	case types.Temperature:
		return temperatureTable, nil
	case types.Distance:
		return distanceTable, nil
	case types.Weight:
		return weightTable, nil
	}
	return nil, errors.UnknownType(mt.String())
}
