// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultEmptySymbols are the SOMA cell symbols that mean "no cube".
const DefaultEmptySymbols = ".-0"

// ConversionConfig holds settings for SOMA-to-yass conversion.
type ConversionConfig struct {
	// EmptySymbols lists the input characters mapped to an empty cell.
	// Every other character becomes a filled cell. Empty means
	// DefaultEmptySymbols.
	EmptySymbols string `json:"empty_symbols" yaml:"empty_symbols"`

	// Header prepends a "<width> <depth> <height> * -" line to the output.
	Header bool `json:"header" yaml:"header"`
}

// Empty returns the effective empty-symbol set.
func (c ConversionConfig) Empty() string {
	if c.EmptySymbols == "" {
		return DefaultEmptySymbols
	}
	return c.EmptySymbols
}

// ReportFormat selects the encoding for piece reports.
type ReportFormat string

const (
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)
