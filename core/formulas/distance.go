package formulas

import "unit-convert/core/types"

const (
	milesPerKilometer  = 0.621371
	metersPerKilometer = 1000
	metersPerMile      = 1609.34
)

var distanceTable = newTable(types.Distance, map[types.Pair]Formula{
	// mi -> km divides by the same factor; there is no separate km-per-mile constant.
	{From: types.Kilometer, To: types.Mile}:  func(v float64) float64 { return v * milesPerKilometer },
	{From: types.Mile, To: types.Kilometer}:  func(v float64) float64 { return v / milesPerKilometer },
	{From: types.Kilometer, To: types.Meter}: func(v float64) float64 { return v * metersPerKilometer },
	{From: types.Meter, To: types.Kilometer}: func(v float64) float64 { return v / metersPerKilometer },
	{From: types.Mile, To: types.Meter}:      func(v float64) float64 { return v * metersPerMile },
	{From: types.Meter, To: types.Mile}:      func(v float64) float64 { return v / metersPerMile },
})

// Distance converts between km, mi and m
func Distance(value float64, from, to types.Unit) (float64, error) {
	return distanceTable.Convert(value, from, to)
}
