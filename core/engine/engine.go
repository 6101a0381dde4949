// Package engine provides the API-primary conversion engine.
// CLI is a thin wrapper around this engine.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unit-convert/core/formulas"
	"unit-convert/core/types"
	"unit-convert/core/validation"
	"unit-convert/internal/config"
	"unit-convert/internal/errors"
	"unit-convert/internal/logging"
)

// Converter dispatches conversions and comparisons.
// It holds only immutable settings, so one Converter may be shared by
// concurrent callers.
type Converter struct {
	precision   int32
	defaultFrom types.Unit
	defaultTo   types.Unit
}

// New creates a Converter from a loaded configuration.
// The settings are copied; later changes to cfg are not observed.
func New(cfg *config.Config) *Converter {
	return &Converter{
		precision:   int32(cfg.Precision),
		defaultFrom: cfg.Temperature.DefaultFrom,
		defaultTo:   cfg.Temperature.DefaultTo,
	}
}

// ConversionRequest is a single conversion as received from a caller.
// Value may be text or any numeric type; From and To may be empty.
type ConversionRequest struct {
	Type  string
	Value interface{}
	From  string
	To    string
}

// Conversion is a resolved and computed conversion
type Conversion struct {
	Type   types.MeasurementType `json:"type"`
	Value  float64               `json:"value"`
	From   types.Unit            `json:"from"`
	To     types.Unit            `json:"to"`
	Result float64               `json:"result"`
}

// Convert converts value of the named measurement type from one unit to
// another and rounds the result to the configured precision.
func (c *Converter) Convert(measurement string, value interface{}, from, to string) (float64, error) {
	conv, err := c.Execute(ConversionRequest{Type: measurement, Value: value, From: from, To: to})
	if err != nil {
		return 0, err
	}
	return conv.Result, nil
}

// Execute validates a request, fills in unit defaults and converts it.
func (c *Converter) Execute(req ConversionRequest) (*Conversion, error) {
	num, err := validation.ValidateNumber(req.Value)
	if err != nil {
		return nil, err
	}

	mt, ok := types.ParseMeasurementType(req.Type)
	if !ok {
		return nil, errors.UnknownType(req.Type)
	}

	from, to := types.Unit(req.From), types.Unit(req.To)
	if from != "" && !validation.UnitBelongsToType(mt, from) {
		return nil, errors.UnknownUnit(req.From, mt.String())
	}
	if to != "" && !validation.UnitBelongsToType(mt, to) {
		return nil, errors.UnknownUnit(req.To, mt.String())
	}

	from, to, err = c.resolveUnits(mt, from, to)
	if err != nil {
		return nil, err
	}

	result, err := c.convertUnits(mt, num, from, to)
	if err != nil {
		return nil, err
	}

	return &Conversion{Type: mt, Value: num, From: from, To: to, Result: result}, nil
}

// resolveUnits substitutes configured defaults for omitted units. Only
// temperature has defaults; the other types need both units.
func (c *Converter) resolveUnits(mt types.MeasurementType, from, to types.Unit) (types.Unit, types.Unit, error) {
	switch mt {
	case types.Temperature:
		if from == "" {
			from = c.defaultFrom
		}
		if to == "" {
			to = c.defaultTo
		}
	case types.Distance, types.Weight:
		if from == "" || to == "" {
			return "", "", errors.MissingUnit(mt.String())
		}
	default:
		return "", "", errors.UnknownType(mt.String())
	}
	return from, to, nil
}

// convertUnits routes to the formula table of mt and rounds the result.
func (c *Converter) convertUnits(mt types.MeasurementType, value float64, from, to types.Unit) (float64, error) {
	table, err := formulas.For(mt)
	if err != nil {
		return 0, err
	}

	raw, err := table.Convert(value, from, to)
	if err != nil {
		return 0, err
	}

	result := c.round(raw)
	logging.Debug("converted",
		zap.Stringer("type", mt),
		zap.Float64("value", value),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Float64("raw", raw),
		zap.Float64("result", result),
	)
	return result, nil
}

// round rounds half away from zero at the configured number of digits.
func (c *Converter) round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(c.precision).InexactFloat64()
}

// FormatNumber renders a float in its shortest decimal form without an
// exponent: 5, 3.11, -40.
func FormatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// Quantity is a value with its unit
type Quantity struct {
	Value float64    `json:"value"`
	Unit  types.Unit `json:"unit"`
}

// String returns "value unit"
func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", FormatNumber(q.Value), q.Unit)
}
