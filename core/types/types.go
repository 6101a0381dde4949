// Package types defines core domain types shared across all layers.
// This package contains NO conversion logic - only the measurement types,
// their units, and the static unit tables.
package types

import (
	"fmt"
)

// MeasurementType is the closed set of convertible measurement domains
type MeasurementType int

const (
	Temperature MeasurementType = iota
	Distance
	Weight

	measurementTypeCount
)

// Unit is a unit symbol, valid within exactly one measurement type
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"

	Kilometer Unit = "km"
	Mile      Unit = "mi"
	Meter     Unit = "m"

	Gram  Unit = "g"
	Ounce Unit = "oz"
	Pound Unit = "lb"
)

// String returns the string representation
func (u Unit) String() string {
	return string(u)
}

// Pair is a directed (from, to) unit pair
type Pair struct {
	From Unit `json:"from"`
	To   Unit `json:"to"`
}

// String returns "from->to"
func (p Pair) String() string {
	return string(p.From) + "->" + string(p.To)
}

// Reverse returns the opposite direction
func (p Pair) Reverse() Pair {
	return Pair{From: p.To, To: p.From}
}

var measurementNames = [measurementTypeCount]string{
	Temperature: "temperature",
	Distance:    "distance",
	Weight:      "weight",
}

// unitTable holds the ordered unit set of each measurement type.
var unitTable = [measurementTypeCount][]Unit{
	Temperature: {Celsius, Fahrenheit, Kelvin},
	Distance:    {Kilometer, Mile, Meter},
	Weight:      {Gram, Ounce, Pound},
}

// unitOwner is the reverse unit -> type index, built once at init.
var unitOwner map[Unit]MeasurementType

func init() {
	owner, err := buildUnitOwner(unitTable)
	if err != nil {
		panic(err)
	}
	unitOwner = owner
}

// buildUnitOwner indexes every unit by its type and fails if a symbol is
// claimed by more than one type.
func buildUnitOwner(table [measurementTypeCount][]Unit) (map[Unit]MeasurementType, error) {
	owner := make(map[Unit]MeasurementType)
	for i, units := range table {
		mt := MeasurementType(i)
		for _, u := range units {
			if prev, ok := owner[u]; ok {
				return nil, fmt.Errorf("unit %q registered for both %s and %s", u, prev, mt)
			}
			owner[u] = mt
		}
	}
	return owner, nil
}

// String returns the lower-case measurement name
func (m MeasurementType) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("MeasurementType(%d)", int(m))
	}
	return measurementNames[m]
}

// IsValid checks if the value is one of the known measurement types
func (m MeasurementType) IsValid() bool {
	return m >= 0 && m < measurementTypeCount
}

// Units returns a copy of the ordered unit set for the type
func (m MeasurementType) Units() []Unit {
	if !m.IsValid() {
		return nil
	}
	out := make([]Unit, len(unitTable[m]))
	copy(out, unitTable[m])
	return out
}

// Has reports whether unit belongs to the type
func (m MeasurementType) Has(unit Unit) bool {
	owner, ok := unitOwner[unit]
	return ok && owner == m
}

// MarshalText implements encoding.TextMarshaler
func (m MeasurementType) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid measurement type %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *MeasurementType) UnmarshalText(text []byte) error {
	mt, ok := ParseMeasurementType(string(text))
	if !ok {
		return fmt.Errorf("unknown measurement type %q", string(text))
	}
	*m = mt
	return nil
}

// ParseMeasurementType resolves a measurement name. Matching is exact.
func ParseMeasurementType(name string) (MeasurementType, bool) {
	for i, n := range measurementNames {
		if n == name {
			return MeasurementType(i), true
		}
	}
	return 0, false
}

// MeasurementTypes returns all measurement types in declaration order
func MeasurementTypes() []MeasurementType {
	out := make([]MeasurementType, 0, measurementTypeCount)
	for i := MeasurementType(0); i < measurementTypeCount; i++ {
		out = append(out, i)
	}
	return out
}

// TypeOfUnit is the reverse lookup from a unit symbol to its measurement type
func TypeOfUnit(unit Unit) (MeasurementType, bool) {
	mt, ok := unitOwner[unit]
	return mt, ok
}
