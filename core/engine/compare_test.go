package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-convert/core/types"
	"unit-convert/internal/errors"
)

func TestCompareReport(t *testing.T) {
	c := newConverter(t, 2)

	tests := []struct {
		name   string
		a      interface{}
		unitA  string
		b      interface{}
		unitB  string
		report string
	}{
		{"distance", 5, "km", 3, "mi", "5 km = 3.11 mi\n3 mi = 4.83 km"},
		{"text values", "5", "km", "3", "mi", "5 km = 3.11 mi\n3 mi = 4.83 km"},
		{"temperature", 100, "C", 32, "F", "100 C = 212 F\n32 F = 0 C"},
		{"weight", 1, "lb", 8, "oz", "1 lb = 16 oz\n8 oz = 0.5 lb"},
		{"unrounded inputs kept", 1.2345, "km", 1, "m", "1.2345 km = 1234.5 m\n1 m = 0 km"},
		{"negative", -40, "F", -40, "C", "-40 F = -40 C\n-40 C = -40 F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Compare(tt.a, tt.unitA, tt.b, tt.unitB)
			require.NoError(t, err)
			assert.Equal(t, tt.report, got)
		})
	}
}

func TestCompareSameUnitIsIdentity(t *testing.T) {
	c := newConverter(t, 2)

	// values with more digits than the precision pass through unrounded
	for _, v := range []float64{7.5, 1.234, 0.12345, -40} {
		for _, mt := range types.MeasurementTypes() {
			for _, u := range mt.Units() {
				cmp, err := c.CompareQuantities(v, string(u), v, string(u))
				require.NoError(t, err)
				assert.Equal(t, mt, cmp.Type)
				assert.Equal(t, v, cmp.AInB.Value, "%v %s", v, u)
				assert.Equal(t, v, cmp.BInA.Value, "%v %s", v, u)
			}
		}
	}

	report, err := c.Compare(1.234, "C", 1.234, "C")
	require.NoError(t, err)
	assert.Equal(t, "1.234 C = 1.234 C\n1.234 C = 1.234 C", report)

	report, err = c.Compare("0.12345", "km", "0.12345", "km")
	require.NoError(t, err)
	assert.Equal(t, "0.12345 km = 0.12345 km\n0.12345 km = 0.12345 km", report)
}

func TestCompareQuantities(t *testing.T) {
	c := newConverter(t, 2)

	cmp, err := c.CompareQuantities(5, "km", 3, "mi")
	require.NoError(t, err)
	assert.Equal(t, &Comparison{
		Type: types.Distance,
		A:    Quantity{Value: 5, Unit: types.Kilometer},
		B:    Quantity{Value: 3, Unit: types.Mile},
		AInB: Quantity{Value: 3.11, Unit: types.Mile},
		BInA: Quantity{Value: 4.83, Unit: types.Kilometer},
	}, cmp)
}

func TestCompareErrors(t *testing.T) {
	c := newConverter(t, 2)

	tests := []struct {
		name    string
		a       interface{}
		unitA   string
		b       interface{}
		unitB   string
		want    errors.Type
		message string
	}{
		{"type mismatch", 1, "km", 1, "C", errors.TypeTypeMismatch, "cannot compare different measurement types"},
		{"unknown second unit", 1, "km", 1, "yard", errors.TypeUnknownUnit, `unknown unit "yard"`},
		{"unknown first unit", 1, "stone", 1, "lb", errors.TypeUnknownUnit, `unknown unit "stone"`},
		{"invalid first value", "abc", "km", 1, "mi", errors.TypeInvalidNumber, "invalid numeric value"},
		{"invalid second value", 1, "km", math.Inf(-1), "mi", errors.TypeInvalidNumber, "invalid numeric value"},
		{"values checked before units", nil, "yard", 1, "C", errors.TypeInvalidNumber, "invalid numeric value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compare(tt.a, tt.unitA, tt.b, tt.unitB)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.want), "got %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
