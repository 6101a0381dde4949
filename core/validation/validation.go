// Package validation checks conversion inputs before they reach a formula table.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"unit-convert/core/types"
	"unit-convert/internal/errors"
)

// ValidateNumber coerces raw into a finite float64.
// Numeric text is accepted; nil, blank or non-numeric text, NaN and
// infinities are rejected with an INVALID_NUMBER error.
func ValidateNumber(raw interface{}) (float64, error) {
	var num float64

	switch v := raw.(type) {
	case nil:
		return 0, errors.InvalidNumber(raw)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, errors.InvalidNumber(raw)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.InvalidNumber(raw)
		}
		num = f
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.InvalidNumber(raw)
		}
		num = f
	case decimal.Decimal:
		num = v.InexactFloat64()
	case float64:
		num = v
	case float32:
		num = float64(v)
	case int:
		num = float64(v)
	case int8:
		num = float64(v)
	case int16:
		num = float64(v)
	case int32:
		num = float64(v)
	case int64:
		num = float64(v)
	case uint:
		num = float64(v)
	case uint8:
		num = float64(v)
	case uint16:
		num = float64(v)
	case uint32:
		num = float64(v)
	case uint64:
		num = float64(v)
	default:
		return 0, errors.InvalidNumber(raw)
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, errors.InvalidNumber(raw)
	}
	return num, nil
}

// UnitBelongsToType reports whether unit is in the unit table of mt
func UnitBelongsToType(mt types.MeasurementType, unit types.Unit) bool {
	return mt.Has(unit)
}

// ResolveTypeForUnit finds the measurement type owning unit.
// Unit symbols are unique across types, so at most one type matches.
func ResolveTypeForUnit(unit types.Unit) (types.MeasurementType, bool) {
	return types.TypeOfUnit(unit)
}
