package engine

import (
	"unit-convert/core/formulas"
	"unit-convert/core/types"
	"unit-convert/internal/errors"
)

// Listing describes one measurement type: its units and the directed pairs
// its formula table supports
type Listing struct {
	Type  types.MeasurementType `json:"type"`
	Units []types.Unit          `json:"units"`
	Pairs []types.Pair          `json:"pairs"`
}

// Catalog lists every measurement type in declaration order
func Catalog() ([]Listing, error) {
	listings := make([]Listing, 0, len(types.MeasurementTypes()))
	for _, mt := range types.MeasurementTypes() {
		l, err := listingFor(mt)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// CatalogFor lists a single measurement type by name
func CatalogFor(measurement string) (Listing, error) {
	mt, ok := types.ParseMeasurementType(measurement)
	if !ok {
		return Listing{}, errors.UnknownType(measurement)
	}
	return listingFor(mt)
}

func listingFor(mt types.MeasurementType) (Listing, error) {
	table, err := formulas.For(mt)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Type: mt, Units: mt.Units(), Pairs: table.Pairs()}, nil
}
