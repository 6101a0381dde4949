package formulas

import "unit-convert/core/types"

const (
	gramsPerOunce  = 28.3495
	gramsPerPound  = 453.592
	ouncesPerPound = 16
)

var weightTable = newTable(types.Weight, map[types.Pair]Formula{
	{From: types.Gram, To: types.Ounce}:  func(v float64) float64 { return v / gramsPerOunce },
	{From: types.Ounce, To: types.Gram}:  func(v float64) float64 { return v * gramsPerOunce },
	{From: types.Gram, To: types.Pound}:  func(v float64) float64 { return v / gramsPerPound },
	{From: types.Pound, To: types.Gram}:  func(v float64) float64 { return v * gramsPerPound },
	{From: types.Ounce, To: types.Pound}: func(v float64) float64 { return v / ouncesPerPound },
	{From: types.Pound, To: types.Ounce}: func(v float64) float64 { return v * ouncesPerPound },
})

// Weight converts between g, oz and lb
func Weight(value float64, from, to types.Unit) (float64, error) {
	return weightTable.Convert(value, from, to)
}
