package formulas

import "unit-convert/core/types"

var temperatureTable = newTable(types.Temperature, map[types.Pair]Formula{
	{From: types.Celsius, To: types.Fahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
	{From: types.Fahrenheit, To: types.Celsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
	{From: types.Celsius, To: types.Kelvin}:     func(v float64) float64 { return v + 273.15 },
	{From: types.Kelvin, To: types.Celsius}:     func(v float64) float64 { return v - 273.15 },
	{From: types.Fahrenheit, To: types.Kelvin}:  func(v float64) float64 { return (v-32)*5/9 + 273.15 },
	{From: types.Kelvin, To: types.Fahrenheit}:  func(v float64) float64 { return (v-273.15)*9/5 + 32 },
})

// Temperature converts between C, F and K
func Temperature(value float64, from, to types.Unit) (float64, error) {
	return temperatureTable.Convert(value, from, to)
}
