// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/std2yass/pkg/types"
)

// Stats counts the dimensions and cells of p.
func Stats(p *types.Piece) types.PieceStats {
	s := types.PieceStats{
		Width:  p.Width,
		Depth:  p.Depth,
		Height: p.Height,
	}
	for _, layer := range p.Layers {
		for _, row := range layer {
			filled := strings.Count(row, string(types.CellFilled))
			s.Cubicles += filled
			s.Empty += len(row) - filled
		}
	}
	return s
}

// WriteReport encodes s to w as YAML or JSON.
func WriteReport(w io.Writer, s types.PieceStats, format types.ReportFormat) error {
	switch format {
	case types.ReportYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	case types.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
