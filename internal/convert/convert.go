// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert translates SOMA figure descriptions into the layered grid
// format read by the yass solver.
//
// A SOMA line looks like "/ooo/.o./.../": a marker character followed by
// slash-separated layer strings. Every accepted line contributes one row to
// each layer. Output is layer-major: the rows of layer 0, a blank line, the
// rows of layer 1, and so on.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/std2yass/pkg/types"
)

const (
	// commentMarker anywhere in a line makes it a comment.
	commentMarker = ";"
	// sectionMarker starts a figure block header such as "/SOMA 1".
	sectionMarker = "/SOMA"
	// layerSep separates the layer strings of one line.
	layerSep = "/"
	// maxLineSize bounds a single input line.
	maxLineSize = 1 << 20
)

// ErrNoData is returned when the input holds no figure lines at all.
var ErrNoData = errors.New("no piece data in input")

// HeightMismatchError reports a line whose layer count differs from the
// count set by the first figure line.
type HeightMismatchError struct {
	Got  int
	Want int
}

func (e *HeightMismatchError) Error() string {
	return fmt.Sprintf("mismatched heights: %d vs %d", e.Got, e.Want)
}

// WidthMismatchError reports a line whose first layer string differs in
// length from the width set by the first figure line.
type WidthMismatchError struct {
	Got  int
	Want int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("mismatched widths: %d vs %d", e.Got, e.Want)
}

// Convert reads a SOMA figure from r and writes it to w in yass layer
// format. Nothing is written unless the whole input parses.
func Convert(r io.Reader, w io.Writer, cfg types.ConversionConfig) error {
	p, err := Parse(r, cfg)
	if err != nil {
		return err
	}
	return Write(w, p, cfg)
}

// Parse reads SOMA lines from r and builds the piece. Blank lines, lines
// containing ';' and "/SOMA" header lines are ignored. The first figure line
// fixes the height and width; any later line that disagrees aborts parsing
// with a *HeightMismatchError or *WidthMismatchError.
func Parse(r io.Reader, cfg types.ConversionConfig) (*types.Piece, error) {
	empty := cfg.Empty()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var p *types.Piece
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if skipLine(line) {
			continue
		}

		layers := splitLayers(line)
		width := utf8.RuneCountInString(layers[0])

		if p == nil {
			p = &types.Piece{
				Layers: make([][]string, len(layers)),
				Width:  width,
				Height: len(layers),
			}
		} else {
			if len(layers) != p.Height {
				return nil, fmt.Errorf("line %d: %w", lineNo, &HeightMismatchError{Got: len(layers), Want: p.Height})
			}
			if width != p.Width {
				return nil, fmt.Errorf("line %d: %w", lineNo, &WidthMismatchError{Got: width, Want: p.Width})
			}
		}

		for z, layer := range layers {
			p.Layers[z] = append(p.Layers[z], NormalizeRow(layer, empty))
		}
		p.Depth++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if p == nil {
		return nil, ErrNoData
	}
	return p, nil
}

// Write emits p in yass layer format: rows joined by newlines, one blank
// line between layers and none after the last. With cfg.Header set, a
// "<width> <depth> <height> * -" line comes first.
func Write(w io.Writer, p *types.Piece, cfg types.ConversionConfig) error {
	if p == nil || len(p.Layers) == 0 {
		return ErrNoData
	}

	bw := bufio.NewWriter(w)
	if cfg.Header {
		fmt.Fprintf(bw, "%d %d %d * -\n", p.Width, p.Depth, p.Height)
	}
	for z, layer := range p.Layers {
		if z > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(strings.Join(layer, "\n"))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// NormalizeRow maps every character of layer to '.' if it appears in empty
// and to 'o' otherwise.
func NormalizeRow(layer, empty string) string {
	var b strings.Builder
	b.Grow(len(layer))
	for _, c := range layer {
		if strings.ContainsRune(empty, c) {
			b.WriteByte(types.CellEmpty)
		} else {
			b.WriteByte(types.CellFilled)
		}
	}
	return b.String()
}

// skipLine reports whether line carries no geometry.
func skipLine(line string) bool {
	return strings.TrimSpace(line) == "" ||
		strings.Contains(line, commentMarker) ||
		strings.Contains(line, sectionMarker)
}

// splitLayers drops the leading marker character of a trimmed figure line
// and splits the rest into layer strings. The marker is not checked.
func splitLayers(line string) []string {
	line = strings.TrimSpace(line)
	_, size := utf8.DecodeRuneInString(line)
	return strings.Split(line[size:], layerSep)
}
