package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-convert/core/types"
	"unit-convert/internal/errors"
)

const tolerance = 1e-9

func TestTemperature(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to types.Unit
		want     float64
	}{
		{"freezing C to F", 0, types.Celsius, types.Fahrenheit, 32},
		{"boiling C to F", 100, types.Celsius, types.Fahrenheit, 212},
		{"crossover C to F", -40, types.Celsius, types.Fahrenheit, -40},
		{"freezing F to C", 32, types.Fahrenheit, types.Celsius, 0},
		{"boiling F to C", 212, types.Fahrenheit, types.Celsius, 100},
		{"C to K", 0, types.Celsius, types.Kelvin, 273.15},
		{"absolute zero C to K", -273.15, types.Celsius, types.Kelvin, 0},
		{"boiling C to K", 100, types.Celsius, types.Kelvin, 373.15},
		{"K to C", 273.15, types.Kelvin, types.Celsius, 0},
		{"absolute zero K to C", 0, types.Kelvin, types.Celsius, -273.15},
		{"F to K", 32, types.Fahrenheit, types.Kelvin, 273.15},
		{"absolute zero F to K", -459.67, types.Fahrenheit, types.Kelvin, 0},
		{"boiling F to K", 212, types.Fahrenheit, types.Kelvin, 373.15},
		{"K to F", 273.15, types.Kelvin, types.Fahrenheit, 32},
		{"absolute zero K to F", 0, types.Kelvin, types.Fahrenheit, -459.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Temperature(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to types.Unit
		want     float64
	}{
		{"km to mi", 1, types.Kilometer, types.Mile, 0.621371},
		{"mi to km", 1, types.Mile, types.Kilometer, 1 / 0.621371},
		{"km to m", 1, types.Kilometer, types.Meter, 1000},
		{"fractional km to m", 5.5, types.Kilometer, types.Meter, 5500},
		{"m to km", 1000, types.Meter, types.Kilometer, 1},
		{"partial m to km", 2500, types.Meter, types.Kilometer, 2.5},
		{"mi to m", 1, types.Mile, types.Meter, 1609.34},
		{"m to mi", 1609.34, types.Meter, types.Mile, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to types.Unit
		want     float64
	}{
		{"g to oz", 28.3495, types.Gram, types.Ounce, 1},
		{"oz to g", 1, types.Ounce, types.Gram, 28.3495},
		{"g to lb", 453.592, types.Gram, types.Pound, 1},
		{"lb to g", 1, types.Pound, types.Gram, 453.592},
		{"oz to lb", 16, types.Ounce, types.Pound, 1},
		{"more oz to lb", 32, types.Ounce, types.Pound, 2},
		{"lb to oz", 1, types.Pound, types.Ounce, 16},
		{"half lb to oz", 0.5, types.Pound, types.Ounce, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Weight(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestEveryTableIsComplete(t *testing.T) {
	for _, mt := range types.MeasurementTypes() {
		table, err := For(mt)
		require.NoError(t, err)
		assert.Equal(t, mt, table.Measurement())

		// three units, every ordered pair of distinct units
		assert.Len(t, table.Pairs(), 6, "%s pairs", mt)
		for _, p := range table.Pairs() {
			assert.True(t, table.Supports(p.Reverse()), "%s has no inverse for %s", mt, p)
		}
	}
}

func TestRoundTripIsExactInverse(t *testing.T) {
	values := []float64{-459.67, -40, 0, 1, 3.5, 100, 12345.678}

	for _, mt := range types.MeasurementTypes() {
		table, err := For(mt)
		require.NoError(t, err)

		for _, p := range table.Pairs() {
			for _, v := range values {
				there, err := table.Convert(v, p.From, p.To)
				require.NoError(t, err)
				back, err := table.Convert(there, p.To, p.From)
				require.NoError(t, err)
				assert.InDelta(t, v, back, tolerance, "%s %s with %v", mt, p, v)
			}
		}
	}
}

func TestUnsupportedPairs(t *testing.T) {
	tests := []struct {
		name    string
		convert func(float64, types.Unit, types.Unit) (float64, error)
		from    types.Unit
		to      types.Unit
	}{
		{"same temperature unit", Temperature, types.Celsius, types.Celsius},
		{"same distance unit", Distance, types.Meter, types.Meter},
		{"same weight unit", Weight, types.Pound, types.Pound},
		{"cross domain", Temperature, types.Celsius, types.Meter},
		{"empty units", Distance, "", ""},
		{"unknown unit", Weight, "stone", types.Gram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.convert(1, tt.from, tt.to)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeUnsupportedConversion), "got %v", err)
		})
	}
}

func TestForRejectsInvalidType(t *testing.T) {
	_, err := For(types.MeasurementType(99))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownType))
}

func TestNewTableRejectsForeignUnits(t *testing.T) {
	assert.Panics(t, func() {
		newTable(types.Weight, map[types.Pair]Formula{
			{From: types.Gram, To: types.Meter}: func(v float64) float64 { return v },
		})
	})
}
