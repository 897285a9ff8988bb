// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Cell symbols in the yass layered grid format.
const (
	CellEmpty  = '.'
	CellFilled = 'o'
)

// Piece is a polycube figure in layer-major order. Layers[z][y] is a row
// of Width normalized cells; every layer holds Depth rows.
type Piece struct {
	// Layers has exactly Height entries, one per slash-separated segment
	// of the source lines.
	Layers [][]string `json:"layers" yaml:"layers"`

	// Width is the character length of every row.
	Width int `json:"width" yaml:"width"`

	// Height is the number of layers.
	Height int `json:"height" yaml:"height"`

	// Depth is the number of accepted source lines, i.e. rows per layer.
	Depth int `json:"depth" yaml:"depth"`
}

// PieceStats summarizes a converted piece.
type PieceStats struct {
	Width  int `json:"width" yaml:"width"`
	Depth  int `json:"depth" yaml:"depth"`
	Height int `json:"height" yaml:"height"`

	// Cubicles counts filled cells. A complete SOMA figure has 27.
	Cubicles int `json:"cubicles" yaml:"cubicles"`

	// Empty counts empty cells.
	Empty int `json:"empty" yaml:"empty"`
}
