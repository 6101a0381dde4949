package engine

import (
	"unit-convert/core/types"
	"unit-convert/core/validation"
	"unit-convert/internal/errors"
)

// Comparison is the mutual conversion of two quantities of the same type.
// A and B hold the validated input values; AInB is A expressed in B's unit
// and BInA is B expressed in A's unit, both rounded.
type Comparison struct {
	Type types.MeasurementType `json:"type"`
	A    Quantity              `json:"a"`
	B    Quantity              `json:"b"`
	AInB Quantity              `json:"a_in_b"`
	BInA Quantity              `json:"b_in_a"`
}

// Report renders the two-line comparison:
//
//	5 km = 3.11 mi
//	3 mi = 4.83 km
func (c *Comparison) Report() string {
	return c.A.String() + " = " + c.AInB.String() + "\n" +
		c.B.String() + " = " + c.BInA.String()
}

// Compare converts valueA into unitB and valueB into unitA and returns the
// two-line report.
func (c *Converter) Compare(valueA interface{}, unitA string, valueB interface{}, unitB string) (string, error) {
	cmp, err := c.CompareQuantities(valueA, unitA, valueB, unitB)
	if err != nil {
		return "", err
	}
	return cmp.Report(), nil
}

// CompareQuantities validates both sides, checks they share a measurement
// type and converts each into the other's unit.
func (c *Converter) CompareQuantities(valueA interface{}, unitA string, valueB interface{}, unitB string) (*Comparison, error) {
	numA, err := validation.ValidateNumber(valueA)
	if err != nil {
		return nil, err
	}
	numB, err := validation.ValidateNumber(valueB)
	if err != nil {
		return nil, err
	}

	uA, uB := types.Unit(unitA), types.Unit(unitB)
	typeA, ok := validation.ResolveTypeForUnit(uA)
	if !ok {
		return nil, errors.UnknownAnyUnit(unitA)
	}
	typeB, ok := validation.ResolveTypeForUnit(uB)
	if !ok {
		return nil, errors.UnknownAnyUnit(unitB)
	}
	if typeA != typeB {
		return nil, errors.TypeMismatch(typeA.String(), typeB.String())
	}

	aInB, err := c.convertOrIdentity(typeA, numA, uA, uB)
	if err != nil {
		return nil, err
	}
	bInA, err := c.convertOrIdentity(typeA, numB, uB, uA)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Type: typeA,
		A:    Quantity{Value: numA, Unit: uA},
		B:    Quantity{Value: numB, Unit: uB},
		AInB: Quantity{Value: aInB, Unit: uB},
		BInA: Quantity{Value: bInA, Unit: uA},
	}, nil
}

// convertOrIdentity treats a same-unit comparison as the identity; formula
// tables have no from == to entries. Nothing is converted on that path, so
// the value is returned as given.
func (c *Converter) convertOrIdentity(mt types.MeasurementType, value float64, from, to types.Unit) (float64, error) {
	if from == to {
		return value, nil
	}
	return c.convertUnits(mt, value, from, to)
}
