// Package output provides output formatting for conversion results.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"unit-convert/core/engine"
	"unit-convert/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the plain CLI output: a bare number, a two-line report, a unit table
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderConversion writes a single conversion result
	RenderConversion(w io.Writer, conv *engine.Conversion) error

	// RenderComparison writes a comparison result
	RenderComparison(w io.Writer, cmp *engine.Comparison) error

	// RenderCatalog writes the unit listings
	RenderCatalog(w io.Writer, listings []engine.Listing) error
}

var formatters = map[Format]Formatter{
	FormatText: textFormatter{},
	FormatJSON: jsonFormatter{},
}

// Get returns the formatter for a format name
func Get(name string) (Formatter, error) {
	f, ok := formatters[Format(name)]
	if !ok {
		return nil, errors.Newf(errors.TypeConfig, "unknown output format %q (available: %s)", name, strings.Join(Available(), ", "))
	}
	return f, nil
}

// Available lists the registered format names, sorted
func Available() []string {
	names := make([]string, 0, len(formatters))
	for f := range formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

type textFormatter struct{}

func (textFormatter) Format() Format { return FormatText }

func (textFormatter) RenderConversion(w io.Writer, conv *engine.Conversion) error {
	_, err := fmt.Fprintln(w, engine.FormatNumber(conv.Result))
	return err
}

func (textFormatter) RenderComparison(w io.Writer, cmp *engine.Comparison) error {
	_, err := fmt.Fprintln(w, cmp.Report())
	return err
}

func (textFormatter) RenderCatalog(w io.Writer, listings []engine.Listing) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Type", "Units", "Conversions"})

	for _, l := range listings {
		units := make([]string, len(l.Units))
		for i, u := range l.Units {
			units[i] = u.String()
		}
		pairs := make([]string, len(l.Pairs))
		for i, p := range l.Pairs {
			pairs[i] = p.String()
		}
		t.AppendRow(table.Row{l.Type.String(), strings.Join(units, ", "), strings.Join(pairs, " ")})
	}

	t.Render()
	return nil
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) RenderConversion(w io.Writer, conv *engine.Conversion) error {
	return writeJSON(w, conv)
}

// comparisonJSON adds the rendered report next to the structured comparison
type comparisonJSON struct {
	*engine.Comparison
	Report string `json:"report"`
}

func (jsonFormatter) RenderComparison(w io.Writer, cmp *engine.Comparison) error {
	return writeJSON(w, comparisonJSON{Comparison: cmp, Report: cmp.Report()})
}

func (jsonFormatter) RenderCatalog(w io.Writer, listings []engine.Listing) error {
	return writeJSON(w, listings)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Internal("failed to encode output", err)
	}
	return nil
}
